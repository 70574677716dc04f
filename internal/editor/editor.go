// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package editor runs the user's $EDITOR on a file.
package editor

import (
	"os/exec"

	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/kballard/go-shellquote"
)

var logger = loggo.GetLogger("deplio.editor")

// ErrEditorNotSet is returned when no editor has been configured.
const ErrEditorNotSet = errors.ConstError("EDITOR environment variable not set. Unable to open editor.")

// Command returns the command that opens path in editor. The editor value
// may include arguments, quoted as they would be in a shell.
func Command(editor, path string) (*exec.Cmd, error) {
	words, err := shellquote.Split(editor)
	if err != nil {
		return nil, errors.Annotatef(err, "parsing editor %q", editor)
	}
	if len(words) == 0 {
		return nil, ErrEditorNotSet
	}
	args := append(words[1:], path)
	return exec.Command(words[0], args...), nil
}

// Open runs editor on path, attached to the context's standard streams,
// and waits for it to exit.
func Open(ctx *cmd.Context, editor, path string) error {
	c, err := Command(editor, path)
	if err != nil {
		return errors.Trace(err)
	}
	c.Stdin = ctx.Stdin
	c.Stdout = ctx.Stdout
	c.Stderr = ctx.Stderr
	logger.Debugf("running %s", shellquote.Join(c.Args...))
	if err := c.Run(); err != nil {
		return errors.Annotatef(err, "running editor %q", editor)
	}
	return nil
}
