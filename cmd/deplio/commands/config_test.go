// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package commands_test

import (
	"os"
	"path/filepath"

	"github.com/juju/cmd/v3"
	"github.com/juju/cmd/v3/cmdtesting"
	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/deplio/deplio/cmd/deplio/commands"
	"github.com/deplio/deplio/internal/editor"
	"github.com/deplio/deplio/internal/osenv"
	"github.com/deplio/deplio/userconfig"
)

type configSuite struct {
	testing.IsolationSuite
	home   string
	edited []string
}

var _ = gc.Suite(&configSuite{})

func (s *configSuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	s.home = c.MkDir()
	s.edited = nil
}

func (s *configSuite) openEditor(_ *cmd.Context, editor, path string) error {
	s.edited = append(s.edited, editor, path)
	return nil
}

func (s *configSuite) run(c *gc.C, env osenv.Env, args ...string) (*cmd.Context, error) {
	env.Home = s.home
	return cmdtesting.RunCommand(c, commands.NewConfigCommandForTest(env, s.openEditor), args...)
}

func (s *configSuite) TestCreates(c *gc.C) {
	ctx, err := s.run(c, osenv.Env{})
	c.Assert(err, jc.ErrorIsNil)
	path := filepath.Join(s.home, ".deplio")
	c.Check(cmdtesting.Stderr(ctx), gc.Equals, "Created configuration at: "+path+"\n")

	data, err := os.ReadFile(path)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(string(data), gc.Equals, userconfig.Template)
	c.Check(s.edited, gc.HasLen, 0)
}

func (s *configSuite) TestKeepsExisting(c *gc.C) {
	path := filepath.Join(s.home, ".deplio")
	c.Assert(os.WriteFile(path, []byte("existing config content"), 0600), jc.ErrorIsNil)

	ctx, err := s.run(c, osenv.Env{})
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stderr(ctx), gc.Equals, "Configuration already exists at: "+path+"\n")

	data, err := os.ReadFile(path)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(string(data), gc.Equals, "existing config content")
}

func (s *configSuite) TestOverwrite(c *gc.C) {
	path := filepath.Join(s.home, ".deplio")
	c.Assert(os.WriteFile(path, []byte("existing config content"), 0600), jc.ErrorIsNil)

	_, err := s.run(c, osenv.Env{}, "--overwrite")
	c.Assert(err, jc.ErrorIsNil)

	data, err := os.ReadFile(path)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(string(data), gc.Equals, userconfig.Template)
}

func (s *configSuite) TestEdit(c *gc.C) {
	ctx, err := s.run(c, osenv.Env{Editor: "vim"}, "--edit")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(s.edited, jc.DeepEquals, []string{"vim", filepath.Join(s.home, ".deplio")})
	c.Check(cmdtesting.Stderr(ctx), jc.Contains, "Opening configuration file in editor: vim\n")
}

func (s *configSuite) TestEditWithoutEditor(c *gc.C) {
	_, err := s.run(c, osenv.Env{}, "-e")
	c.Check(err, gc.ErrorMatches, "EDITOR environment variable not set. Unable to open editor.")
	c.Check(errors.Is(err, editor.ErrEditorNotSet), jc.IsTrue)
	c.Check(s.edited, gc.HasLen, 0)

	// The file is still created.
	_, err = os.Stat(filepath.Join(s.home, ".deplio"))
	c.Check(err, jc.ErrorIsNil)
}

func (s *configSuite) TestRejectsArguments(c *gc.C) {
	_, err := s.run(c, osenv.Env{}, "extra")
	c.Check(err, gc.ErrorMatches, `unrecognized args: \["extra"\]`)
}

type showConfigSuite struct {
	testing.IsolationSuite
	home string
}

var _ = gc.Suite(&showConfigSuite{})

func (s *showConfigSuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	s.home = c.MkDir()
	err := os.WriteFile(filepath.Join(s.home, ".deplio"), []byte(`
[defaults]
deplio_server = "https://api.deplio.com"
owner = "test-owner"

[debug]
`), 0600)
	c.Assert(err, jc.ErrorIsNil)
}

func (s *showConfigSuite) TestYAML(c *gc.C) {
	ctx, err := cmdtesting.RunCommand(c, commands.NewShowConfigCommandForTest(osenv.Env{Home: s.home}))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stdout(ctx), gc.Equals, `
defaults:
  deplio-server: https://api.deplio.com
  owner: test-owner
debug: {}
`[1:])
}

func (s *showConfigSuite) TestJSON(c *gc.C) {
	ctx, err := cmdtesting.RunCommand(c, commands.NewShowConfigCommandForTest(osenv.Env{Home: s.home}), "--format", "json")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stdout(ctx), gc.Equals,
		`{"defaults":{"deplio-server":"https://api.deplio.com","owner":"test-owner"},"debug":{}}`+"\n")
}

func (s *showConfigSuite) TestMissingFile(c *gc.C) {
	ctx, err := cmdtesting.RunCommand(c, commands.NewShowConfigCommandForTest(osenv.Env{Home: c.MkDir()}), "--format", "json")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stdout(ctx), gc.Equals, `{"defaults":{},"debug":{}}`+"\n")
}

func (s *showConfigSuite) TestInvalidFile(c *gc.C) {
	home := c.MkDir()
	c.Assert(os.WriteFile(filepath.Join(home, ".deplio"), []byte("[defaults"), 0600), jc.ErrorIsNil)
	_, err := cmdtesting.RunCommand(c, commands.NewShowConfigCommandForTest(osenv.Env{Home: home}))
	c.Check(errors.Is(err, userconfig.ErrDeserialization), jc.IsTrue)
}
