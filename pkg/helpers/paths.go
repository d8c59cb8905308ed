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

package helpers

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/contextfuncs/runsilent/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func ExeDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}

	return filepath.Dir(exe)
}

// ConfigPath picks the config file location. Order: the config env var, a
// portable config beside the executable, then the user config directory.
// The returned file may not exist.
func ConfigPath(fs afero.Fs, exeDir string) string {
	if v := os.Getenv(config.CfgEnv); v != "" {
		log.Debug().Msgf("env config path: %s", v)
		return v
	}

	if exeDir != "" {
		portable := filepath.Join(exeDir, config.CfgFile)
		if ok, _ := afero.Exists(fs, portable); ok {
			return portable
		}
	}

	return filepath.Join(ConfigDir(), config.CfgFile)
}

func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, config.AppName)
}

// LogDir holds the rotating log file. The launcher runs without a console,
// so this is the only place its diagnostics persist.
func LogDir() string {
	return filepath.Join(xdg.StateHome, config.AppName)
}
