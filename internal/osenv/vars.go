// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package osenv

import (
	"github.com/caarlos0/env/v11"
	"github.com/juju/errors"
	"github.com/mitchellh/go-homedir"
)

const (
	DeplioHomeEnvKey          = "DEPLIO_HOME"
	DeplioLoggingConfigEnvKey = "DEPLIO_LOGGING_CONFIG"
	// DeplioStartupLoggingConfigEnvKey configures logging before the
	// command line has been parsed.
	DeplioStartupLoggingConfigEnvKey = "DEPLIO_STARTUP_LOGGING_CONFIG"
	EditorEnvKey                     = "EDITOR"
)

// Env holds the environment variables read by deplio.
type Env struct {
	// Home overrides the directory holding the user settings file.
	Home string `env:"DEPLIO_HOME"`

	// Editor is the command used to edit the user settings file.
	Editor string `env:"EDITOR"`

	// LoggingConfig is the default loggo configuration.
	LoggingConfig string `env:"DEPLIO_LOGGING_CONFIG"`
}

// FromEnvironment reads Env from the process environment.
func FromEnvironment() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, errors.Annotate(err, "parsing environment")
	}
	return e, nil
}

// HomeDir returns the directory holding the user settings file: Home if
// set, otherwise the user's home directory.
func (e Env) HomeDir() (string, error) {
	if e.Home != "" {
		return homedir.Expand(e.Home)
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", errors.Annotate(err, "unable to find home directory")
	}
	return home, nil
}
