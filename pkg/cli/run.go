// Run Silent
// Copyright (c) 2026 The Run Silent Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Run Silent.
//
// Run Silent is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Run Silent is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Run Silent.  If not, see <http://www.gnu.org/licenses/>.

// Package cli runs the launcher: it turns the two positional arguments into
// a runner command line, starts it hidden and maps the outcome to an exit
// code.
package cli

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/contextfuncs/runsilent/pkg/command"
	"github.com/contextfuncs/runsilent/pkg/config"
	"github.com/contextfuncs/runsilent/pkg/launcher"
	"github.com/contextfuncs/runsilent/pkg/widestr"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// ExitFailure is returned for usage errors and launch failures.
const ExitFailure = 1

// Env holds the collaborators Run needs. Main fills in Config.
type Env struct {
	Launcher launcher.Launcher
	Config   *config.Instance
	Clock    clockwork.Clock
	Stderr   io.Writer
}

// Run launches the runner for args, which must not include the program
// name. It returns the child's exit code, or ExitFailure if the arguments
// are missing or the child could not be started. The launcher is never
// called on a usage error.
//
//nolint:gocritic // Env is small and passed once per process
func Run(args []string, env Env) int {
	inv, err := command.ParseArgs(args)
	if err != nil {
		log.Warn().Msgf("invalid invocation with %d args", len(args))
		reportError(env.Stderr, err)
		return ExitFailure
	}

	cmdLine := command.Build(env.Config.Runner(), env.Config.Subcommand(), inv)
	workDir := env.Config.WorkingDir()

	log.Info().
		Str("script", inv.ScriptPath).
		Str("target", inv.TargetPath).
		Str("dir", workDir).
		Msg("launching")
	log.Debug().Msgf("command line: %s", cmdLine)

	cp := env.Config.CodePage()
	start := env.Clock.Now()
	code, err := env.Launcher.RunHidden(
		toWide(cmdLine, cp),
		widestr.ExtendLength(toWide(workDir, cp)),
	)
	if err != nil {
		log.Error().Err(err).Str("command", cmdLine).Msg("launch failed")
		reportError(env.Stderr, err)
		return ExitFailure
	}

	log.Info().
		Uint32("exit_code", code).
		Dur("elapsed", env.Clock.Since(start)).
		Msg("child exited")

	// uint32 codes above MaxInt32 (NTSTATUS values) survive os.Exit on
	// Windows, which truncates back to uint32.
	return int(code)
}

// toWide converts argv text to UTF-16. Windows argv is always valid UTF-8
// here; raw bytes from other platforms are decoded with the configured code
// page instead.
func toWide(s string, codePage uint32) []uint16 {
	if utf8.ValidString(s) {
		return widestr.FromString(s)
	}
	return widestr.Normalize([]byte(s), codePage)
}

func reportError(w io.Writer, err error) {
	if w == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "%s: %v\n", config.AppName, err)
}
