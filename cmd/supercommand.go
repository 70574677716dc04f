// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/juju/cmd/v3"
	"github.com/juju/loggo"

	"github.com/deplio/deplio/internal/osenv"
	"github.com/deplio/deplio/version"
)

func init() {
	// If the environment key is empty, ConfigureLoggers returns nil and does
	// nothing.
	err := loggo.ConfigureLoggers(os.Getenv(osenv.DeplioStartupLoggingConfigEnvKey))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR parsing %s: %s\n\n", osenv.DeplioStartupLoggingConfigEnvKey, err)
	}
}

var logger = loggo.GetLogger("deplio.cmd")

// NewSuperCommand is like cmd.NewSuperCommand but
// it adds deplio-specific functionality:
// - The default logging configuration is taken from the environment;
// - The version is configured to the current deplio version;
// - The command emits a log message when a command runs.
func NewSuperCommand(p cmd.SuperCommandParams) *cmd.SuperCommand {
	env, err := osenv.FromEnvironment()
	if err != nil {
		logger.Warningf("ignoring environment: %v", err)
	}
	p.Log = &cmd.Log{
		DefaultConfig: env.LoggingConfig,
	}
	p.Version = version.Binary()
	p.NotifyRun = runNotifier
	p.FlagKnownAs = "option"
	return cmd.NewSuperCommand(p)
}

// NewSubSuperCommand should be used to create a SuperCommand
// that runs as a subcommand of some other SuperCommand.
func NewSubSuperCommand(p cmd.SuperCommandParams) *cmd.SuperCommand {
	p.NotifyRun = runNotifier
	p.FlagKnownAs = "option"
	return cmd.NewSuperCommand(p)
}

func runNotifier(name string) {
	logger.Infof("running %s [%s %s %s]", name, version.Current, runtime.Compiler, runtime.Version())
}

// Info returns a copy of i with the deplio flag conventions applied.
func Info(i *cmd.Info) *cmd.Info {
	info := *i
	info.FlagKnownAs = "option"
	info.ShowSuperFlags = []string{"show-log", "debug", "logging-config", "verbose", "quiet", "help"}
	return &info
}
