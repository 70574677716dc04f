// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package debug

import (
	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	deplcmd "github.com/deplio/deplio/cmd"
	"github.com/deplio/deplio/internal/projbackup"
)

const restoreDoc = `
Restores the generated project files saved by "deplio debug proj-backup".
With --purge the backup is removed once it has been restored. The
project directory is chosen as for proj-backup.
`

func newRestoreCommand(environ environFunc) cmd.Command {
	c := &restoreCommand{}
	c.environ = environ
	return c
}

type restoreCommand struct {
	projectDirCommandBase

	purge bool
}

// Info implements Command.
func (c *restoreCommand) Info() *cmd.Info {
	return deplcmd.Info(&cmd.Info{
		Name:    "proj-restore",
		Purpose: "Restores a backup of generated project files.",
		Doc:     restoreDoc,
		SeeAlso: []string{"debug proj-backup"},
	})
}

// SetFlags implements Command.
func (c *restoreCommand) SetFlags(f *gnuflag.FlagSet) {
	c.projectDirCommandBase.SetFlags(f)
	f.BoolVar(&c.purge, "p", false, "Remove the backup once restored")
	f.BoolVar(&c.purge, "purge", false, "")
}

// Init implements Command.
func (c *restoreCommand) Init(args []string) error {
	return cmd.CheckEmpty(args)
}

// Run implements Command.
func (c *restoreCommand) Run(ctx *cmd.Context) error {
	dir, err := c.projectDir(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	manifest, err := projbackup.Restore(dir, c.purge)
	if err != nil {
		return errors.Trace(err)
	}
	writeFiles(ctx, "Restored", manifest)
	if c.purge {
		ctx.Infof("Backup removed")
	}
	return nil
}
