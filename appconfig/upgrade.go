// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package appconfig

import (
	"github.com/juju/errors"

	"github.com/deplio/deplio/upgrades"
)

// Upgrade migrates data from the version it records to version to, or to
// CurrentVersion if to is empty. A nil registry means the default
// registry.
func Upgrade(data, to string, registry upgrades.Registry) (string, error) {
	if to == "" {
		to = CurrentVersion
	}
	if registry == nil {
		registry = upgrades.DefaultRegistry()
	}
	from, err := ReadVersion(data)
	if err != nil {
		return "", errors.Annotate(err, "reading app config version")
	}
	return upgrades.Resolve(from, to, data, registry)
}
