// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package commands_test

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/juju/cmd/v3"
	"github.com/juju/cmd/v3/cmdtesting"
	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/deplio/deplio/appconfig"
	"github.com/deplio/deplio/cmd/deplio/commands"
	"github.com/deplio/deplio/upgrades"
)

type updateSuite struct {
	testing.IsolationSuite
	dir string
}

var _ = gc.Suite(&updateSuite{})

const oldConfig = `[deplio]
version = "0.9.0"

[server]
deplio_server = "https://api.example.com"
owner = "test-owner"

[app]
name = "test-app"
sdlc = "default"
charts = []
`

func bumpVersion(from, to string) func(string) string {
	return func(data string) string {
		return strings.Replace(data, `version = "`+from+`"`, `version = "`+to+`"`, 1)
	}
}

func (s *updateSuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	s.dir = c.MkDir()
}

func (s *updateSuite) writeConfig(c *gc.C, content string) {
	err := os.WriteFile(filepath.Join(s.dir, "deplio.toml"), []byte(content), 0644)
	c.Assert(err, jc.ErrorIsNil)
}

func (s *updateSuite) readConfig(c *gc.C) string {
	data, err := os.ReadFile(filepath.Join(s.dir, "deplio.toml"))
	c.Assert(err, jc.ErrorIsNil)
	return string(data)
}

func (s *updateSuite) run(c *gc.C, registry upgrades.Registry, args ...string) (*cmd.Context, error) {
	command := commands.NewUpdateCommandForTest(registry)
	return cmdtesting.RunCommand(c, command, append([]string{"--dir", s.dir}, args...)...)
}

func (s *updateSuite) TestAlreadyCurrent(c *gc.C) {
	data := appconfig.WriteTemplate("test-app", "https://api.example.com", "test-owner")
	s.writeConfig(c, data)

	ctx, err := s.run(c, nil)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stderr(ctx), gc.Equals, "deplio.toml is already at version 1.0.0\n")
	c.Check(s.readConfig(c), gc.Equals, data)
}

func (s *updateSuite) TestUpgrades(c *gc.C) {
	s.writeConfig(c, oldConfig)
	registry := upgrades.Registry{
		&upgrades.Step{Target: "1.0.0", From: []string{"0.9.0"}, Run: bumpVersion("0.9.0", "1.0.0")},
	}

	ctx, err := s.run(c, registry)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stderr(ctx), gc.Equals, "Upgraded deplio.toml from version 0.9.0 to 1.0.0\n")

	cfg, err := appconfig.Deserialize(s.readConfig(c))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cfg.App.Name, gc.Equals, "test-app")
}

func (s *updateSuite) TestUpgradesToRequestedVersion(c *gc.C) {
	s.writeConfig(c, oldConfig)
	registry := upgrades.Registry{
		&upgrades.Step{Target: "0.9.5", From: []string{"0.9.0"}, Run: bumpVersion("0.9.0", "0.9.5")},
		&upgrades.Step{Target: "1.0.0", From: []string{"0.9.5"}, Run: bumpVersion("0.9.5", "1.0.0")},
	}

	_, err := s.run(c, registry, "--version", "0.9.5")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(s.readConfig(c), jc.Contains, `version = "0.9.5"`)
}

func (s *updateSuite) TestBreakingChange(c *gc.C) {
	s.writeConfig(c, oldConfig)
	registry := upgrades.Registry{
		&upgrades.Step{
			Target:   "1.0.0",
			From:     []string{"0.9.0"},
			Breaking: "charts moved to [app.charts]",
			Run:      bumpVersion("0.9.0", "1.0.0"),
		},
	}

	ctx, err := s.run(c, registry)
	c.Check(err, gc.Equals, cmd.ErrSilent)
	c.Check(cmdtesting.Stderr(ctx), gc.Equals, ""+
		"Breaking change upgrading from version 0.9.0 to 1.0.0:\n"+
		"  charts moved to [app.charts]\n"+
		"The project configuration has not been changed.\n")
	c.Check(s.readConfig(c), gc.Equals, oldConfig)
}

func (s *updateSuite) TestStepMustRecordTargetVersion(c *gc.C) {
	s.writeConfig(c, oldConfig)
	registry := upgrades.Registry{
		&upgrades.Step{Target: "1.0.0", From: []string{"0.9.0"}},
	}

	ctx, err := s.run(c, registry)
	c.Check(err, gc.ErrorMatches, `upgrading deplio.toml to version 1.0.0: upgraded configuration records version "0.9.0"`)
	c.Check(cmdtesting.Stderr(ctx), gc.Equals, "")
	c.Check(s.readConfig(c), gc.Equals, oldConfig)
}

func (s *updateSuite) TestUpgradedConfigMustDecode(c *gc.C) {
	s.writeConfig(c, oldConfig)
	registry := upgrades.Registry{
		&upgrades.Step{
			Target: "1.0.0",
			From:   []string{"0.9.0"},
			Run: func(data string) string {
				data = bumpVersion("0.9.0", "1.0.0")(data)
				return strings.Replace(data, `name = "test-app"`, "", 1)
			},
		},
	}

	_, err := s.run(c, registry)
	c.Check(errors.Is(err, appconfig.ErrDeserialization), jc.IsTrue)
	c.Check(s.readConfig(c), gc.Equals, oldConfig)
}

func (s *updateSuite) TestAlreadyAtRequestedVersion(c *gc.C) {
	s.writeConfig(c, oldConfig)
	ctx, err := s.run(c, upgrades.Registry{}, "--version", "0.9.0+build.7")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stderr(ctx), gc.Equals, "deplio.toml is already at version 0.9.0\n")
	c.Check(s.readConfig(c), gc.Equals, oldConfig)
}

func (s *updateSuite) TestDowngrade(c *gc.C) {
	s.writeConfig(c, appconfig.WriteTemplate("test-app", "s", "o"))
	_, err := s.run(c, nil, "--version", "0.9.0")
	c.Check(errors.Is(err, upgrades.DowngradeNotSupported), jc.IsTrue)
}

func (s *updateSuite) TestNoRoute(c *gc.C) {
	s.writeConfig(c, oldConfig)
	registry := upgrades.Registry{
		&upgrades.Step{Target: "1.0.0", From: []string{"0.8.0"}},
	}
	_, err := s.run(c, registry)
	c.Check(errors.Is(err, upgrades.NoRouteFound), jc.IsTrue)
	c.Check(s.readConfig(c), gc.Equals, oldConfig)
}

func (s *updateSuite) TestInvalidRegistry(c *gc.C) {
	s.writeConfig(c, oldConfig)
	registry := upgrades.Registry{
		&upgrades.Step{Target: "1.0.0", From: []string{"0.9.0"}},
		&upgrades.Step{Target: "0.9.5", From: []string{"0.9.0"}},
	}
	_, err := s.run(c, registry)
	c.Check(errors.Is(err, upgrades.InvalidRegistry), jc.IsTrue)
}

func (s *updateSuite) TestMissingConfig(c *gc.C) {
	_, err := s.run(c, nil)
	c.Check(errors.Is(err, errors.NotFound), jc.IsTrue)
	c.Check(err, gc.ErrorMatches, `project configuration ".*deplio.toml" not found`)
}

func (s *updateSuite) TestMissingVersion(c *gc.C) {
	s.writeConfig(c, "[app]\nname = \"test-app\"\n")
	_, err := s.run(c, nil)
	c.Check(err, gc.ErrorMatches, `reading .*deplio.toml: deplio version not found`)
}
