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

package cli

import (
	"fmt"

	"github.com/contextfuncs/runsilent/internal/telemetry"
	"github.com/contextfuncs/runsilent/pkg/config"
	"github.com/contextfuncs/runsilent/pkg/helpers"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Main loads the config from fs, sets up logging and error reporting, then
// runs args with env. The log only goes to logDir; Stderr receives one line
// per error from Main or Run. An empty logDir disables the log file.
// env.Config is replaced by the loaded config.
//
//nolint:gocritic // Env is small and passed once per process
func Main(args []string, fs afero.Fs, exeDir, logDir string, env Env) int {
	cfgPath := helpers.ConfigPath(fs, exeDir)
	cfg, cfgErr := config.NewConfig(fs, cfgPath, config.BaseDefaults)

	debug := cfgErr == nil && cfg.DebugLogging()
	if err := helpers.InitLogging(logDir, debug, nil); err != nil {
		reportError(env.Stderr, fmt.Errorf("error initializing logging: %w", err))
	}
	defer func() {
		if err := helpers.CloseLogging(); err != nil {
			reportError(env.Stderr, fmt.Errorf("error closing log: %w", err))
		}
	}()

	log.Info().Msgf("%s v%s", config.AppName, config.AppVersion)

	if cfgErr != nil {
		log.Error().Err(cfgErr).Str("path", cfgPath).Msg("error loading config")
		reportError(env.Stderr, fmt.Errorf("error loading config: %w", cfgErr))
		return ExitFailure
	}
	log.Debug().Msgf("config path: %s", cfg.Path())

	if err := telemetry.Init(cfg.ErrorReportingDSN(), config.AppVersion); err != nil {
		log.Warn().Err(err).Msg("error reporting disabled")
	}
	defer telemetry.Close()

	env.Config = cfg
	return Run(args, env)
}
