// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package debug

import (
	"fmt"
	"path/filepath"

	"github.com/juju/ansiterm"
	"github.com/juju/clock"
	"github.com/juju/cmd/v3"
	"github.com/juju/errors"

	deplcmd "github.com/deplio/deplio/cmd"
	"github.com/deplio/deplio/internal/projbackup"
)

const backupDoc = `
Creates a backup of the generated project files, deplio.toml and the
workflows in .github/workflows, for quick restore when testing upgrades.
The backup is kept in .deplio-backup and replaces any earlier backup.

Without --dir the project is the synth_working_dir from the [debug]
section of the user configuration, or the current directory.
`

func newBackupCommand(environ environFunc, clk clock.Clock) cmd.Command {
	c := &backupCommand{clock: clk}
	c.environ = environ
	return c
}

type backupCommand struct {
	projectDirCommandBase
	clock clock.Clock
}

// Info implements Command.
func (c *backupCommand) Info() *cmd.Info {
	return deplcmd.Info(&cmd.Info{
		Name:    "proj-backup",
		Purpose: "Creates a backup of generated project files.",
		Doc:     backupDoc,
		SeeAlso: []string{"debug proj-restore"},
	})
}

// Init implements Command.
func (c *backupCommand) Init(args []string) error {
	return cmd.CheckEmpty(args)
}

// Run implements Command.
func (c *backupCommand) Run(ctx *cmd.Context) error {
	dir, err := c.projectDir(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	manifest, err := projbackup.Create(dir, c.clock)
	if err != nil {
		return errors.Trace(err)
	}
	writeFiles(ctx, "Backed up", manifest)
	ctx.Infof("Backup written to %s", filepath.Join(dir, projbackup.BackupDir))
	return nil
}

func writeFiles(ctx *cmd.Context, action string, manifest *projbackup.Manifest) {
	w := ansiterm.NewWriter(ctx.Stdout)
	for _, file := range manifest.Files {
		ansiterm.Foreground(ansiterm.Green).Fprintf(w, "%s", action)
		fmt.Fprintf(w, " %s\n", file)
	}
}
