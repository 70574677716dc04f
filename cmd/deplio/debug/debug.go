// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package debug holds the commands used while developing deplio.
package debug

import (
	"github.com/juju/clock"
	"github.com/juju/cmd/v3"
	"github.com/juju/loggo"

	deplcmd "github.com/deplio/deplio/cmd"
	"github.com/deplio/deplio/internal/osenv"
)

var logger = loggo.GetLogger("deplio.cmd.deplio.debug")

const debugDoc = `
A set of debug commands useful for development on deplio. They back up
and restore the generated files of a project so that upgrades can be
repeated from the same starting point.
`

// NewSuperCommand returns the "debug" super command.
func NewSuperCommand() cmd.Command {
	debugCmd := deplcmd.NewSubSuperCommand(cmd.SuperCommandParams{
		Name:        "debug",
		Doc:         debugDoc,
		UsagePrefix: "deplio",
		Purpose:     "Commands useful for development on deplio.",
	})
	debugCmd.Register(newBackupCommand(osenv.FromEnvironment, clock.WallClock))
	debugCmd.Register(newRestoreCommand(osenv.FromEnvironment))
	return debugCmd
}
