// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package upgrades

import (
	"strings"

	"github.com/juju/errors"
	"golang.org/x/mod/semver"
)

// Compare validates both versions and returns -1, 0 or +1 depending on
// whether from is lower than, equal to or greater than to. Build metadata
// is ignored and pre-release versions sort before their release.
func Compare(from, to string) (int, error) {
	fromV, err := parseVersion(from)
	if err != nil {
		return 0, &InvalidVersionError{Which: "from", Version: from, Err: err}
	}
	toV, err := parseVersion(to)
	if err != nil {
		return 0, &InvalidVersionError{Which: "to", Version: to, Err: err}
	}
	return semver.Compare(fromV, toV), nil
}

// parseVersion checks that version is a complete semantic version
// (MAJOR.MINOR.PATCH with optional pre-release and build metadata) and
// returns it in the form understood by the semver package.
func parseVersion(version string) (string, error) {
	if version == "" {
		return "", errors.New("empty version")
	}
	if strings.HasPrefix(version, "v") {
		return "", errors.New(`unexpected "v" prefix`)
	}
	core := version
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core = core[:i]
	}
	if strings.Count(core, ".") != 2 {
		return "", errors.Errorf("expected MAJOR.MINOR.PATCH, got %q", core)
	}
	v := "v" + version
	if !semver.IsValid(v) {
		return "", errors.Errorf("%q is not a semantic version", version)
	}
	return v, nil
}

// sameVersion returns true if a and b are valid versions of equal
// precedence.
func sameVersion(a, b string) bool {
	order, err := Compare(a, b)
	return err == nil && order == 0
}
