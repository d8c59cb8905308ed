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

// Package command builds the runner command line from launcher arguments.
//
// Arguments are quoted but never escaped. They come from an Explorer
// context-menu entry, so a path containing a double quote produces a
// malformed command line rather than being rewritten.
package command

import (
	"errors"
	"strings"
)

// ErrUsage is returned when fewer than two positional arguments are given.
var ErrUsage = errors.New("usage: runsilent <script_path> <target_path>")

// Invocation holds the two positional launcher arguments.
type Invocation struct {
	ScriptPath string
	TargetPath string
}

// ParseArgs reads the script and target paths from args, which must not
// include the program name. Extra arguments are ignored.
func ParseArgs(args []string) (Invocation, error) {
	if len(args) < 2 {
		return Invocation{}, ErrUsage
	}
	return Invocation{
		ScriptPath: args[0],
		TargetPath: args[1],
	}, nil
}

// Build returns `"<runner>" <subcommand> "<script>" "<target>"`.
func Build(runner, subcommand string, inv Invocation) string {
	var sb strings.Builder
	sb.Grow(len(runner) + len(subcommand) + len(inv.ScriptPath) + len(inv.TargetPath) + 9)

	sb.WriteString(quote(runner))
	sb.WriteByte(' ')
	sb.WriteString(subcommand)
	sb.WriteByte(' ')
	sb.WriteString(quote(inv.ScriptPath))
	sb.WriteByte(' ')
	sb.WriteString(quote(inv.TargetPath))

	return sb.String()
}

func quote(s string) string {
	return `"` + s + `"`
}
