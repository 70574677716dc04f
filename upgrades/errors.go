// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package upgrades

import (
	"fmt"

	"github.com/juju/errors"
)

const (
	// InvalidVersionFormat is raised when a version is not a valid
	// semantic version.
	InvalidVersionFormat = errors.ConstError("invalid version format")

	// DowngradeNotSupported is raised when the requested target version
	// is lower than the version of the data.
	DowngradeNotSupported = errors.ConstError("downgrade not supported")

	// UnsupportedTargetVersion is raised when no upgrader creates the
	// requested target version.
	UnsupportedTargetVersion = errors.ConstError("unsupported target version")

	// BreakingChange is raised when an upgrader on the route declares a
	// breaking change.
	BreakingChange = errors.ConstError("breaking change")

	// NoRouteFound is raised when the upgraders cannot carry the data all
	// the way to the target version.
	NoRouteFound = errors.ConstError("no upgrade route found")

	// InvalidRegistry is raised when a registry fails validation.
	InvalidRegistry = errors.ConstError("invalid upgrade registry")
)

// InvalidVersionError records which version failed to parse and why.
type InvalidVersionError struct {
	// Which is either "from" or "to".
	Which   string
	Version string
	Err     error
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid %s version %q: %v", e.Which, e.Version, e.Err)
}

// Is implements errors.Is.
func (e *InvalidVersionError) Is(target error) bool {
	return target == InvalidVersionFormat
}

// Unwrap returns the parse error.
func (e *InvalidVersionError) Unwrap() error {
	return e.Err
}

// DowngradeError records a request to move data to an earlier version.
type DowngradeError struct {
	From string
	To   string
}

func (e *DowngradeError) Error() string {
	return fmt.Sprintf("cannot upgrade from version %s to %s: downgrades are not supported", e.From, e.To)
}

// Is implements errors.Is.
func (e *DowngradeError) Is(target error) bool {
	return target == DowngradeNotSupported
}

// UnsupportedTargetError records a target version that no upgrader creates.
type UnsupportedTargetError struct {
	Version string
}

func (e *UnsupportedTargetError) Error() string {
	return fmt.Sprintf("target version %s is not supported", e.Version)
}

// Is implements errors.Is.
func (e *UnsupportedTargetError) Is(target error) bool {
	return target == UnsupportedTargetVersion
}

// BreakingChangeError records the step that refused to run.
type BreakingChangeError struct {
	From    string
	To      string
	Message string
}

func (e *BreakingChangeError) Error() string {
	return fmt.Sprintf("cannot upgrade from version %s to %s: %s", e.From, e.To, e.Message)
}

// Is implements errors.Is.
func (e *BreakingChangeError) Is(target error) bool {
	return target == BreakingChange
}

// NoRouteError records a target version that could not be reached.
type NoRouteError struct {
	Version string
}

func (e *NoRouteError) Error() string {
	return fmt.Sprintf("could not upgrade to target version %s: no applicable upgrade route found", e.Version)
}

// Is implements errors.Is.
func (e *NoRouteError) Is(target error) bool {
	return target == NoRouteFound
}

// RegistryError records the registry entry that failed validation.
type RegistryError struct {
	Index   int
	Version string
	Reason  string
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("upgrader %d (version %q): %s", e.Index, e.Version, e.Reason)
}

// Is implements errors.Is.
func (e *RegistryError) Is(target error) bool {
	return target == InvalidRegistry
}
