// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package upgrades

import (
	"github.com/juju/collections/set"
	"golang.org/x/mod/semver"
)

// Validate checks that every upgrader creates a valid version, that no two
// upgraders create the same version and that upgraders are listed in
// ascending target version order. Resolve does not call Validate; a
// registry that fails it still resolves on a first match wins basis.
func (r Registry) Validate() error {
	seen := set.NewStrings()
	var previous string
	for i, upgrader := range r {
		version := upgrader.Version()
		v, err := parseVersion(version)
		if err != nil {
			return &RegistryError{Index: i, Version: version, Reason: err.Error()}
		}
		// Canonical drops build metadata, which takes no part in ordering.
		key := semver.Canonical(v)
		if seen.Contains(key) {
			return &RegistryError{Index: i, Version: version, Reason: "duplicate target version"}
		}
		seen.Add(key)
		if previous != "" && semver.Compare(previous, v) > 0 {
			return &RegistryError{Index: i, Version: version, Reason: "listed after a later version"}
		}
		previous = v
	}
	return nil
}
