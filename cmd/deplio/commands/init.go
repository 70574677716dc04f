// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/utils/v4"

	"github.com/deplio/deplio/appconfig"
	deplcmd "github.com/deplio/deplio/cmd"
	"github.com/deplio/deplio/internal/interact"
	"github.com/deplio/deplio/userconfig"
)

const initDoc = `
Initialises the project configuration, deplio.toml, for a repository
using the latest configuration version.

Values not given as options are taken from the [defaults] section of
the user configuration. Anything still missing is prompted for.
An existing deplio.toml is only replaced when --force is given.
`

const initExamples = `
Initialise the current directory, prompting for missing values:

    deplio init

Initialise another directory without prompting:

    deplio init --dir ../my-app --app-name my-app --owner platform \
        --server https://deplio.example.com
`

func newInitCommand(environ environFunc) cmd.Command {
	return &initCommand{environ: environ}
}

// initCommand writes a new project configuration.
type initCommand struct {
	cmd.CommandBase

	environ environFunc

	appName string
	owner   string
	server  string
	dir     string
	force   bool
}

// Info implements Command.
func (c *initCommand) Info() *cmd.Info {
	return deplcmd.Info(&cmd.Info{
		Name:     "init",
		Purpose:  "Initialises the project files for a repository.",
		Doc:      initDoc,
		Examples: initExamples,
		SeeAlso:  []string{"config", "update"},
	})
}

// SetFlags implements Command.
func (c *initCommand) SetFlags(f *gnuflag.FlagSet) {
	c.CommandBase.SetFlags(f)
	f.StringVar(&c.appName, "a", "", "The name of the application to initialise")
	f.StringVar(&c.appName, "app-name", "", "")
	f.StringVar(&c.owner, "o", "", "The owner of the project to initialise")
	f.StringVar(&c.owner, "owner", "", "")
	f.StringVar(&c.server, "server", "", "The deplio server the project deploys through")
	f.StringVar(&c.dir, "dir", ".", "The project directory")
	f.BoolVar(&c.force, "force", false, "Overwrite an existing project configuration")
}

// Init implements Command.
func (c *initCommand) Init(args []string) error {
	return cmd.CheckEmpty(args)
}

// Run implements Command.
func (c *initCommand) Run(ctx *cmd.Context) error {
	path := filepath.Join(ctx.AbsPath(c.dir), appconfig.FileName)
	if _, err := os.Stat(path); err == nil && !c.force {
		return errors.AlreadyExistsf("project configuration %q", path)
	} else if err != nil && !os.IsNotExist(err) {
		return errors.Trace(err)
	}

	defaults, err := c.defaults()
	if err != nil {
		return errors.Trace(err)
	}
	if c.owner == "" {
		c.owner = defaults.Owner
	}
	if c.server == "" {
		c.server = defaults.DeplioServer
	}

	prompter := interact.NewPrompter(ctx.Stdin, ctx.Stdout)
	for _, value := range []struct {
		label string
		flag  string
		value *string
	}{
		{"Application Name", "app-name", &c.appName},
		{"Owner Name", "owner", &c.owner},
		{"Deplio Server", "server", &c.server},
	} {
		if *value.value != "" {
			continue
		}
		answer, err := prompter.Ask(value.label)
		if err != nil && !interact.Interactive(ctx.Stdin) {
			return errors.Annotatef(err, "input is not a terminal, use --%s", value.flag)
		} else if err != nil {
			return errors.Trace(err)
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return errors.NotValidf("empty %s", strings.ToLower(value.label))
		}
		*value.value = answer
	}

	content := appconfig.WriteTemplate(c.appName, c.server, c.owner)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Trace(err)
	}
	if err := utils.AtomicWriteFile(path, []byte(content), 0644); err != nil {
		return errors.Annotatef(err, "writing %s", path)
	}
	logger.Debugf("wrote %s at version %s", path, appconfig.CurrentVersion)
	ctx.Infof("Initialised %s for application %q", path, c.appName)
	return nil
}

func (c *initCommand) defaults() (userconfig.Defaults, error) {
	env, err := c.environ()
	if err != nil {
		return userconfig.Defaults{}, errors.Trace(err)
	}
	home, err := env.HomeDir()
	if err != nil {
		return userconfig.Defaults{}, errors.Trace(err)
	}
	settings, err := userconfig.Load(home)
	if err != nil {
		return userconfig.Defaults{}, errors.Annotate(err, "loading user configuration")
	}
	return settings.Defaults, nil
}
