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

// Command runsilent starts a script runner without a console window and
// exits with the runner's exit code. Build it with -ldflags -H=windowsgui so
// Explorer does not allocate a console for the launcher itself.
package main

import (
	"os"

	"github.com/contextfuncs/runsilent/pkg/cli"
	"github.com/contextfuncs/runsilent/pkg/helpers"
	"github.com/contextfuncs/runsilent/pkg/launcher"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
)

func main() {
	os.Exit(cli.Main(
		os.Args[1:],
		afero.NewOsFs(),
		helpers.ExeDir(),
		helpers.LogDir(),
		cli.Env{
			Launcher: &launcher.HiddenLauncher{},
			Clock:    clockwork.NewRealClock(),
			Stderr:   os.Stderr,
		},
	))
}
