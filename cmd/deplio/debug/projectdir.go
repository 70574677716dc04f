// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package debug

import (
	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/deplio/deplio/internal/osenv"
	"github.com/deplio/deplio/userconfig"
)

// environFunc returns the environment the commands run in.
type environFunc func() (osenv.Env, error)

// projectDirCommandBase resolves the project directory the debug
// commands work on.
type projectDirCommandBase struct {
	cmd.CommandBase

	environ environFunc
	dir     string
}

// SetFlags implements Command.
func (c *projectDirCommandBase) SetFlags(f *gnuflag.FlagSet) {
	c.CommandBase.SetFlags(f)
	f.StringVar(&c.dir, "dir", "", "The project directory (default [debug] synth_working_dir, or the current directory)")
}

// projectDir returns the --dir value if given, otherwise the working
// directory configured in the user settings, otherwise the current
// directory.
func (c *projectDirCommandBase) projectDir(ctx *cmd.Context) (string, error) {
	if c.dir != "" {
		return ctx.AbsPath(c.dir), nil
	}
	env, err := c.environ()
	if err != nil {
		return "", errors.Trace(err)
	}
	home, err := env.HomeDir()
	if err != nil {
		return "", errors.Trace(err)
	}
	settings, err := userconfig.Load(home)
	if err != nil {
		return "", errors.Annotate(err, "loading user configuration")
	}
	dir, err := settings.Debug.WorkingDir()
	if err != nil {
		return "", errors.Trace(err)
	}
	if dir == "" {
		return ctx.Dir, nil
	}
	logger.Debugf("using configured working directory %s", dir)
	return ctx.AbsPath(dir), nil
}
