// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/juju/ansiterm"
	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/utils/v4"

	"github.com/deplio/deplio/appconfig"
	deplcmd "github.com/deplio/deplio/cmd"
	"github.com/deplio/deplio/upgrades"
)

const updateDoc = `
Upgrades the project configuration, deplio.toml, to a newer
configuration version. A file already at the requested version is
left alone. The upgraded file must record the requested version, and
at the latest version it must also decode, before it is written.

Upgrades that would break an existing deployment are refused with an
explanation of what changed.
`

const updateExamples = `
Upgrade to the latest configuration version:

    deplio update

Upgrade to a specific version:

    deplio update --version 1.1.0
`

func newUpdateCommand(registry upgrades.Registry) cmd.Command {
	return &updateCommand{registry: registry}
}

// updateCommand migrates the project configuration to a newer version.
type updateCommand struct {
	cmd.CommandBase

	registry upgrades.Registry

	version string
	dir     string
}

// Info implements Command.
func (c *updateCommand) Info() *cmd.Info {
	return deplcmd.Info(&cmd.Info{
		Name:     "update",
		Purpose:  "Upgrades the project configuration to a newer version.",
		Doc:      updateDoc,
		Examples: updateExamples,
		SeeAlso:  []string{"init"},
	})
}

// SetFlags implements Command.
func (c *updateCommand) SetFlags(f *gnuflag.FlagSet) {
	c.CommandBase.SetFlags(f)
	f.StringVar(&c.version, "version", "", "The version to upgrade to (default latest)")
	f.StringVar(&c.dir, "dir", ".", "The project directory")
}

// Init implements Command.
func (c *updateCommand) Init(args []string) error {
	if c.version == "" {
		c.version = appconfig.CurrentVersion
	}
	return cmd.CheckEmpty(args)
}

// Run implements Command.
func (c *updateCommand) Run(ctx *cmd.Context) error {
	registry := c.registry
	if registry == nil {
		registry = upgrades.DefaultRegistry()
	}
	if err := registry.Validate(); err != nil {
		return errors.Trace(err)
	}

	path := filepath.Join(ctx.AbsPath(c.dir), appconfig.FileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return errors.NotFoundf("project configuration %q", path)
	} else if err != nil {
		return errors.Trace(err)
	}

	from, err := appconfig.ReadVersion(string(data))
	if err != nil {
		return errors.Annotatef(err, "reading %s", path)
	}
	if order, err := upgrades.Compare(from, c.version); err == nil && order == 0 {
		ctx.Infof("%s is already at version %s", appconfig.FileName, from)
		return nil
	}

	upgraded, err := appconfig.Upgrade(string(data), c.version, registry)
	var breaking *upgrades.BreakingChangeError
	if errors.As(err, &breaking) {
		writeBreakingChange(ctx, breaking)
		return cmd.ErrSilent
	} else if err != nil {
		return errors.Trace(err)
	}
	if err := checkUpgraded(upgraded, c.version); err != nil {
		return errors.Annotatef(err, "upgrading %s to version %s", appconfig.FileName, c.version)
	}

	if err := utils.AtomicWriteFile(path, []byte(upgraded), 0644); err != nil {
		return errors.Annotatef(err, "writing %s", path)
	}
	logger.Debugf("upgraded %s", path)
	ctx.Infof("Upgraded %s from version %s to %s", appconfig.FileName, from, c.version)
	return nil
}

// checkUpgraded verifies that upgraded records version, and that a
// configuration at the current version decodes.
func checkUpgraded(upgraded, version string) error {
	recorded, err := appconfig.ReadVersion(upgraded)
	if err != nil {
		return errors.Trace(err)
	}
	if order, err := upgrades.Compare(recorded, version); err != nil || order != 0 {
		return errors.Errorf("upgraded configuration records version %q", recorded)
	}
	if recorded != appconfig.CurrentVersion {
		return nil
	}
	_, err = appconfig.Deserialize(upgraded)
	return errors.Trace(err)
}

func writeBreakingChange(ctx *cmd.Context, breaking *upgrades.BreakingChangeError) {
	w := ansiterm.NewWriter(ctx.Stderr)
	ansiterm.Foreground(ansiterm.Yellow).Fprintf(w, "Breaking change")
	fmt.Fprintf(w, " upgrading from version %s to %s:\n", breaking.From, breaking.To)
	fmt.Fprintf(w, "  %s\n", breaking.Message)
	fmt.Fprintln(w, "The project configuration has not been changed.")
}
