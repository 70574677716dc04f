// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package appconfig

import (
	_ "embed"
	"strings"
)

//go:embed templates/app_config.toml
var appConfigTemplate string

// WriteTemplate returns a new project configuration at CurrentVersion.
// Values are substituted verbatim; callers are responsible for passing
// values that keep the result valid TOML.
func WriteTemplate(appName, deplioServer, owner string) string {
	replacer := strings.NewReplacer(
		"{{app_name}}", appName,
		"{{deplio_server}}", deplioServer,
		"{{owner}}", owner,
		"{{version}}", CurrentVersion,
	)
	return replacer.Replace(appConfigTemplate)
}
