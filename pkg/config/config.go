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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	SchemaVersion = 1
	CfgEnv        = "RUNSILENT_CFG"
	RunnerEnv     = "RUNSILENT_RUNNER"
	SubcommandEnv = "RUNSILENT_SUBCOMMAND"
	WorkDirEnv    = "RUNSILENT_WORKDIR"
)

type Values struct {
	ErrorReporting ErrorReporting `toml:"error_reporting,omitempty"`
	Runner         string         `toml:"runner" validate:"required"`
	Subcommand     string         `toml:"subcommand" validate:"required,noblank"`
	WorkingDir     string         `toml:"working_dir,omitempty"`
	ConfigSchema   int            `toml:"config_schema"`
	CodePage       uint32         `toml:"code_page,omitempty" validate:"lte=65535"`
	DebugLogging   bool           `toml:"debug_logging"`
}

// ErrorReporting configures opt-in Sentry reporting. An empty DSN disables it.
type ErrorReporting struct {
	DSN string `toml:"dsn,omitempty" validate:"omitempty,url"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Runner:       "uv",
	Subcommand:   "run",
}

// Instance is a loaded configuration. It is read-only once NewConfig
// returns.
type Instance struct {
	fs       afero.Fs
	cfgPath  string
	vals     Values
	defaults Values
}

// NewConfig loads cfgPath from fs on top of defaults and applies environment
// overrides. A missing file is not an error and nothing is written to disk.
//
//nolint:gocritic // config struct copied for immutability
func NewConfig(fs afero.Fs, cfgPath string, defaults Values) (*Instance, error) {
	cfg := Instance{
		fs:       fs,
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if err := cfg.Load(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	newVals := c.defaults

	if c.cfgPath != "" {
		data, err := afero.ReadFile(c.fs, c.cfgPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Debug().Msgf("no config file at %s, using defaults", c.cfgPath)
		case err != nil:
			return fmt.Errorf("failed to read config file: %w", err)
		default:
			// Start with defaults, then unmarshal file values on top.
			if err := toml.Unmarshal(data, &newVals); err != nil {
				return fmt.Errorf("failed to unmarshal config: %w", err)
			}
			log.Debug().Msgf("loaded config from %s", c.cfgPath)
		}
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	applyEnv(&newVals)

	if err := Validate(&newVals); err != nil {
		return err
	}

	c.vals = newVals
	return nil
}

// Save writes the current values to the config path, creating its directory.
func (c *Instance) Save() error {
	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := c.fs.MkdirAll(filepath.Dir(c.cfgPath), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := afero.WriteFile(c.fs, c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func applyEnv(vals *Values) {
	if v := os.Getenv(RunnerEnv); v != "" {
		log.Debug().Msgf("runner overridden by %s", RunnerEnv)
		vals.Runner = v
	}
	if v := os.Getenv(SubcommandEnv); v != "" {
		log.Debug().Msgf("subcommand overridden by %s", SubcommandEnv)
		vals.Subcommand = v
	}
	if v := os.Getenv(WorkDirEnv); v != "" {
		log.Debug().Msgf("working dir overridden by %s", WorkDirEnv)
		vals.WorkingDir = v
	}
}

func (c *Instance) Path() string {
	return c.cfgPath
}

func (c *Instance) Runner() string {
	return c.vals.Runner
}

func (c *Instance) Subcommand() string {
	return c.vals.Subcommand
}

// WorkingDir returns the child's working directory. Empty means inherit.
func (c *Instance) WorkingDir() string {
	return c.vals.WorkingDir
}

// CodePage returns the code page for narrow text. Zero means the active
// ANSI code page.
func (c *Instance) CodePage() uint32 {
	return c.vals.CodePage
}

func (c *Instance) DebugLogging() bool {
	return c.vals.DebugLogging
}

func (c *Instance) ErrorReportingDSN() string {
	return c.vals.ErrorReporting.DSN
}
