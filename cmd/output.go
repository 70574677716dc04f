// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package cmd

import (
	"github.com/juju/cmd/v3"
)

// DefaultFormat is used by commands that print structured data when no
// --format is given.
const DefaultFormat = "yaml"

// DefaultFormatters are used by deplio commands that print structured data.
var DefaultFormatters = map[string]cmd.Formatter{
	"yaml": cmd.FormatYaml,
	"json": cmd.FormatJson,
}
