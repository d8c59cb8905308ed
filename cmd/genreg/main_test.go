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

package main

import (
	"path/filepath"
	"testing"

	"github.com/contextfuncs/runsilent/pkg/config"
	"github.com/contextfuncs/runsilent/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.RunnerEnv, "")
	t.Setenv(config.SubcommandEnv, "")
	t.Setenv(config.WorkDirEnv, "")
}

//nolint:paralleltest // modifies environment
func TestWriteStarterConfig(t *testing.T) {
	clearConfigEnv(t)

	h := helpers.NewMemoryFS()
	path := filepath.Join("/opt/runsilent", config.CfgFile)

	written, err := writeStarterConfig(h.Fs, path)
	require.NoError(t, err)
	assert.True(t, written)
	assert.True(t, h.FileExists(path))

	cfg, err := config.NewConfig(h.Fs, path, config.Values{})
	require.NoError(t, err)
	assert.Equal(t, "uv", cfg.Runner())
	assert.Equal(t, "run", cfg.Subcommand())
}

//nolint:paralleltest // modifies environment
func TestWriteStarterConfig_KeepsExisting(t *testing.T) {
	clearConfigEnv(t)

	h := helpers.NewMemoryFS()
	path := filepath.Join("/opt/runsilent", config.CfgFile)
	existing := []byte("config_schema = 1\nrunner = \"py\"\nsubcommand = \"-3\"\n")
	require.NoError(t, h.WriteFile(path, existing))

	written, err := writeStarterConfig(h.Fs, path)
	require.NoError(t, err)
	assert.False(t, written)

	got, err := h.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, existing, got)
}
