// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package commands

import (
	"fmt"
	"os"

	"github.com/juju/cmd/v3"
	"github.com/juju/loggo"

	deplcmd "github.com/deplio/deplio/cmd"
	"github.com/deplio/deplio/cmd/deplio/debug"
	"github.com/deplio/deplio/internal/osenv"
)

var logger = loggo.GetLogger("deplio.cmd.deplio.commands")

var deplioDoc = `
deplio sets up deplio projects. It manages the user configuration,
initialises the project configuration of a repository and upgrades
that configuration when a new deplio release changes its format.
`

// environFunc returns the environment the commands run in.
type environFunc func() (osenv.Env, error)

// Main registers subcommands for the deplio executable, and hands over
// control to the cmd package. It returns the process exit code.
func Main(args []string) int {
	ctx, err := cmd.DefaultContext()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	return cmd.Main(NewDeplioCommand(), ctx, args[1:])
}

// NewDeplioCommand returns the deplio super command with all of its
// subcommands registered.
func NewDeplioCommand() cmd.Command {
	dcmd := deplcmd.NewSuperCommand(cmd.SuperCommandParams{
		Name:    "deplio",
		Purpose: "Setup tool for deplio projects.",
		Doc:     deplioDoc,
	})
	registerCommands(dcmd)
	return dcmd
}

type commandRegistry interface {
	Register(cmd.Command)
}

// registerCommands registers commands in the specified registry.
func registerCommands(r commandRegistry) {
	// User configuration.
	r.Register(newConfigCommand(osenv.FromEnvironment, nil))
	r.Register(newShowConfigCommand(osenv.FromEnvironment))

	// Project configuration.
	r.Register(newInitCommand(osenv.FromEnvironment))
	r.Register(newUpdateCommand(nil))

	// Development helpers.
	r.Register(debug.NewSuperCommand())
}
