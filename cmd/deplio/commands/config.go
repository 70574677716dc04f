// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package commands

import (
	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	deplcmd "github.com/deplio/deplio/cmd"
	"github.com/deplio/deplio/internal/editor"
	"github.com/deplio/deplio/userconfig"
)

const configDoc = `
Creates the deplio user configuration file, ~/.deplio, from a template
with every setting commented out. An existing file is kept unless
--overwrite is given.

The settings in [defaults] are used by "deplio init" when the matching
option is not given. Set DEPLIO_HOME to keep the file somewhere other
than the home directory.
`

const configExamples = `
Create the configuration file and open it in $EDITOR:

    deplio config --edit

Replace the configuration file with a fresh template:

    deplio config --overwrite
`

type openEditorFunc func(ctx *cmd.Context, editor, path string) error

func newConfigCommand(environ environFunc, openEditor openEditorFunc) cmd.Command {
	if openEditor == nil {
		openEditor = editor.Open
	}
	return &configCommand{
		environ:    environ,
		openEditor: openEditor,
	}
}

// configCommand creates, and optionally edits, the user configuration.
type configCommand struct {
	cmd.CommandBase

	environ    environFunc
	openEditor openEditorFunc

	edit      bool
	overwrite bool
}

// Info implements Command.
func (c *configCommand) Info() *cmd.Info {
	return deplcmd.Info(&cmd.Info{
		Name:     "config",
		Purpose:  "Creates the deplio configuration file for the user.",
		Doc:      configDoc,
		Examples: configExamples,
		SeeAlso:  []string{"show-config", "init"},
	})
}

// SetFlags implements Command.
func (c *configCommand) SetFlags(f *gnuflag.FlagSet) {
	c.CommandBase.SetFlags(f)
	f.BoolVar(&c.edit, "e", false, "Open the configuration file in $EDITOR")
	f.BoolVar(&c.edit, "edit", false, "")
	f.BoolVar(&c.overwrite, "overwrite", false, "Replace an existing configuration file with the template")
}

// Init implements Command.
func (c *configCommand) Init(args []string) error {
	return cmd.CheckEmpty(args)
}

// Run implements Command.
func (c *configCommand) Run(ctx *cmd.Context) error {
	env, err := c.environ()
	if err != nil {
		return errors.Trace(err)
	}
	home, err := env.HomeDir()
	if err != nil {
		return errors.Trace(err)
	}
	created, err := userconfig.Create(home, c.overwrite)
	if err != nil {
		return errors.Trace(err)
	}
	path := userconfig.Path(home)
	if created {
		ctx.Infof("Created configuration at: %s", path)
	} else {
		ctx.Infof("Configuration already exists at: %s", path)
	}

	if !c.edit {
		return nil
	}
	if env.Editor == "" {
		return editor.ErrEditorNotSet
	}
	ctx.Infof("Opening configuration file in editor: %s", env.Editor)
	return errors.Trace(c.openEditor(ctx, env.Editor, path))
}
