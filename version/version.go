// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package version holds the version of the deplio tool.
package version

import (
	"runtime"

	semversion "github.com/juju/version/v2"
)

// The presence and format of this constant is very important.
// The release tooling uses this value for the version number of the
// published binaries.
const version = "0.1.0"

// Current gives the current version of the deplio tool.
var Current = semversion.MustParse(version)

// Binary describes the running binary, for example "0.1.0-linux-amd64".
func Binary() string {
	return Current.String() + "-" + runtime.GOOS + "-" + runtime.GOARCH
}
