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

// Command genreg writes a .reg file that adds a context-menu submenu for
// every script in a directory, each entry running runsilent.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/contextfuncs/runsilent/pkg/config"
	"github.com/contextfuncs/runsilent/pkg/helpers"
	"github.com/contextfuncs/runsilent/pkg/regfile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	os.Exit(run())
}

func run() int {
	exeDir := helpers.ExeDir()

	scripts := flag.String("scripts", filepath.Join(exeDir, "scripts"), "directory containing scripts")
	launcherPath := flag.String("launcher", filepath.Join(exeDir, "runsilent.exe"), "path to the runsilent binary")
	out := flag.String("out", "runsilent.reg", "output .reg file")
	name := flag.String("name", regfile.DefaultMenu, "submenu display name")
	key := flag.String("key", regfile.DefaultKey, "submenu registry key")
	icon := flag.String("icon", "", "optional submenu icon")
	pattern := flag.String("pattern", regfile.DefaultPattern, "script file pattern")
	writeConfig := flag.Bool("write-config", false, "write a default "+config.CfgFile+" beside the launcher if none exists")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	err := helpers.InitLogging("", *debug, []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}})
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error initializing logging: %v\n", err)
		return 1
	}

	scriptsDir, err := filepath.Abs(*scripts)
	if err != nil {
		log.Error().Err(err).Msg("error resolving scripts dir")
		return 1
	}
	launcher, err := filepath.Abs(*launcherPath)
	if err != nil {
		log.Error().Err(err).Msg("error resolving launcher path")
		return 1
	}

	fs := afero.NewOsFs()
	data, entries, err := regfile.Generate(fs, regfile.Options{
		ScriptsDir:   scriptsDir,
		LauncherPath: launcher,
		MenuName:     *name,
		MenuKey:      *key,
		Icon:         *icon,
		Pattern:      *pattern,
	})
	if err != nil {
		log.Error().Err(err).Msg("error generating registry file")
		return 1
	}

	if err := afero.WriteFile(fs, *out, data, 0o644); err != nil {
		log.Error().Err(err).Msgf("error writing %s", *out)
		return 1
	}

	for _, e := range entries {
		fmt.Printf("Added: %s (%s)\n", e.DisplayName, e.ScriptPath)
	}
	fmt.Printf("Wrote %d entries to %s\n", len(entries), *out)
	fmt.Printf("Import with: regedit %s\n", *out)

	if *writeConfig {
		cfgPath := filepath.Join(filepath.Dir(launcher), config.CfgFile)
		written, err := writeStarterConfig(fs, cfgPath)
		switch {
		case err != nil:
			log.Error().Err(err).Msgf("error writing %s", cfgPath)
			return 1
		case written:
			fmt.Printf("Wrote default config to %s\n", cfgPath)
		default:
			fmt.Printf("Kept existing config %s\n", cfgPath)
		}
	}
	return 0
}

// writeStarterConfig saves the default config to path unless a file is
// already there. It reports whether it wrote one.
func writeStarterConfig(fs afero.Fs, path string) (bool, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}
	if exists {
		return false, nil
	}

	cfg, err := config.NewConfig(fs, path, config.BaseDefaults)
	if err != nil {
		return false, err
	}
	if err := cfg.Save(); err != nil {
		return false, err
	}
	return true, nil
}
