// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package cmd_test

import (
	"github.com/juju/cmd/v3"
	"github.com/juju/cmd/v3/cmdtesting"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	deplcmd "github.com/deplio/deplio/cmd"
	"github.com/deplio/deplio/internal/osenv"
	"github.com/deplio/deplio/version"
)

type supercommandSuite struct {
	testing.IsolationSuite
}

var _ = gc.Suite(&supercommandSuite{})

func (s *supercommandSuite) TestVersion(c *gc.C) {
	super := deplcmd.NewSuperCommand(cmd.SuperCommandParams{
		Name: "deplio",
	})
	ctx, err := cmdtesting.RunCommand(c, super, "version")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stdout(ctx), gc.Equals, version.Binary()+"\n")
}

func (s *supercommandSuite) TestLoggingConfigFromEnvironment(c *gc.C) {
	s.PatchEnvironment(osenv.DeplioLoggingConfigEnvKey, "deplio=TRACE")
	super := deplcmd.NewSuperCommand(cmd.SuperCommandParams{
		Name: "deplio",
	})
	c.Assert(super.Log, gc.NotNil)
	c.Check(super.Log.DefaultConfig, gc.Equals, "deplio=TRACE")
}

func (s *supercommandSuite) TestInfo(c *gc.C) {
	info := deplcmd.Info(&cmd.Info{Name: "thing", Purpose: "Does a thing."})
	c.Check(info.Name, gc.Equals, "thing")
	c.Check(info.FlagKnownAs, gc.Equals, "option")
	c.Check(info.ShowSuperFlags, jc.SameContents, []string{
		"show-log", "debug", "logging-config", "verbose", "quiet", "help",
	})
}

func (s *supercommandSuite) TestDefaultFormatters(c *gc.C) {
	c.Check(deplcmd.DefaultFormatters, gc.HasLen, 2)
	_, ok := deplcmd.DefaultFormatters[deplcmd.DefaultFormat]
	c.Check(ok, jc.IsTrue)
}
