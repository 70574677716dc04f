// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package upgrades

// Upgrader defines a single step that transforms configuration data from
// one schema version to exactly one successor version.
type Upgrader interface {
	// Version returns the schema version that this upgrader creates.
	Version() string

	// CanUpgrade reports whether the upgrader is the next step for data
	// currently at the given version.
	CanUpgrade(version string) bool

	// Upgrade transforms data produced by the predecessor step.
	Upgrade(data string) string

	// BreakingChange returns a message describing why the step must not
	// be applied automatically, or the empty string if it is safe.
	BreakingChange() string
}

// Registry is an ordered sequence of upgraders. The order is the order in
// which upgraders are considered when resolving an upgrade route, so
// entries are expected to be listed in ascending target version order.
type Registry []Upgrader

// DefaultRegistry returns the upgraders for every released schema version.
func DefaultRegistry() Registry {
	return upgraders()
}

// UpgradeData upgrades data at version from to version to using the
// default registry.
func UpgradeData(from, to, data string) (string, error) {
	return Resolve(from, to, data, DefaultRegistry())
}

// Resolve upgrades data at version from to version to by applying the
// upgraders in registry in a single forward pass.
//
// Data already at the target version is returned unchanged without
// consulting the registry. Otherwise the target must be produced by some
// registry entry, and every applicable entry is applied in turn until the
// target is reached. An applicable entry that declares a breaking change
// aborts the whole resolution; no partially upgraded data is returned.
func Resolve(from, to, data string, registry Registry) (string, error) {
	order, err := Compare(from, to)
	if err != nil {
		return "", err
	}
	if order > 0 {
		return "", &DowngradeError{From: from, To: to}
	}
	if order == 0 {
		return data, nil
	}
	if !registry.produces(to) {
		return "", &UnsupportedTargetError{Version: to}
	}

	current, result := from, data
	for _, upgrader := range registry {
		if !upgrader.CanUpgrade(current) {
			continue
		}
		// The breaking change check must happen before the upgrade runs.
		if message := upgrader.BreakingChange(); message != "" {
			return "", &BreakingChangeError{
				From:    current,
				To:      upgrader.Version(),
				Message: message,
			}
		}
		result = upgrader.Upgrade(result)
		current = upgrader.Version()
		if sameVersion(current, to) {
			return result, nil
		}
	}
	return "", &NoRouteError{Version: to}
}

// produces returns true if any upgrader in the registry creates version.
func (r Registry) produces(version string) bool {
	for _, upgrader := range r {
		if sameVersion(upgrader.Version(), version) {
			return true
		}
	}
	return false
}

// Step is a default Upgrader implementation.
type Step struct {
	// Target is the version the step creates.
	Target string

	// From holds the versions the step upgrades from.
	From []string

	// Breaking, if set, marks the step as one that must never be
	// applied automatically.
	Breaking string

	// Run transforms the data, including the version the data records.
	// The engine never rewrites that version itself. A nil Run returns
	// the data unchanged, so it only suits data that records no version.
	Run func(data string) string
}

var _ Upgrader = (*Step)(nil)

// Version is defined on the Upgrader interface.
func (s *Step) Version() string {
	return s.Target
}

// CanUpgrade is defined on the Upgrader interface.
func (s *Step) CanUpgrade(version string) bool {
	for _, from := range s.From {
		if sameVersion(from, version) {
			return true
		}
	}
	return false
}

// Upgrade is defined on the Upgrader interface.
func (s *Step) Upgrade(data string) string {
	if s.Run == nil {
		return data
	}
	return s.Run(data)
}

// BreakingChange is defined on the Upgrader interface.
func (s *Step) BreakingChange() string {
	return s.Breaking
}
