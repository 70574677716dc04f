// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package debug

import (
	"github.com/juju/clock"
	"github.com/juju/cmd/v3"

	"github.com/deplio/deplio/internal/osenv"
)

func NewBackupCommandForTest(env osenv.Env, clk clock.Clock) cmd.Command {
	return newBackupCommand(staticEnviron(env), clk)
}

func NewRestoreCommandForTest(env osenv.Env) cmd.Command {
	return newRestoreCommand(staticEnviron(env))
}

func staticEnviron(env osenv.Env) environFunc {
	return func() (osenv.Env, error) {
		return env, nil
	}
}
