// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package upgrades

// upgraders returns the registered upgrade steps in ascending target
// version order. Each released schema version after 1.0.0 adds its steps
// here, one stepsForXYZ function per version.
func upgraders() Registry {
	return Registry{}
}
