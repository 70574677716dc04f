// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package commands

import (
	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	deplcmd "github.com/deplio/deplio/cmd"
	"github.com/deplio/deplio/userconfig"
)

const showConfigDoc = `
Shows the settings loaded from the deplio user configuration file. A
missing file shows empty settings.
`

func newShowConfigCommand(environ environFunc) cmd.Command {
	return &showConfigCommand{environ: environ}
}

type showConfigCommand struct {
	cmd.CommandBase
	out cmd.Output

	environ environFunc
}

// Info implements Command.
func (c *showConfigCommand) Info() *cmd.Info {
	return deplcmd.Info(&cmd.Info{
		Name:    "show-config",
		Purpose: "Shows the deplio user configuration.",
		Doc:     showConfigDoc,
		SeeAlso: []string{"config"},
	})
}

// SetFlags implements Command.
func (c *showConfigCommand) SetFlags(f *gnuflag.FlagSet) {
	c.CommandBase.SetFlags(f)
	c.out.AddFlags(f, deplcmd.DefaultFormat, deplcmd.DefaultFormatters)
}

// Init implements Command.
func (c *showConfigCommand) Init(args []string) error {
	return cmd.CheckEmpty(args)
}

// Run implements Command.
func (c *showConfigCommand) Run(ctx *cmd.Context) error {
	env, err := c.environ()
	if err != nil {
		return errors.Trace(err)
	}
	home, err := env.HomeDir()
	if err != nil {
		return errors.Trace(err)
	}
	settings, err := userconfig.Load(home)
	if err != nil {
		return errors.Trace(err)
	}
	return c.out.Write(ctx, settings)
}
