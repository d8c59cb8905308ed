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
	"testing"

	"github.com/contextfuncs/runsilent/pkg/testing/helpers"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCfgPath = `/cfg/runsilent.toml`

func writeConfig(t *testing.T, fs afero.Fs, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, testCfgPath, []byte(content), 0o600))
}

func TestNewConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	cfg, err := NewConfig(fs, testCfgPath, BaseDefaults)

	require.NoError(t, err)
	assert.Equal(t, "uv", cfg.Runner())
	assert.Equal(t, "run", cfg.Subcommand())
	assert.Empty(t, cfg.WorkingDir())
	assert.Equal(t, uint32(0), cfg.CodePage())
	assert.False(t, cfg.DebugLogging())
	assert.Empty(t, cfg.ErrorReportingDSN())

	exists, err := afero.Exists(fs, testCfgPath)
	require.NoError(t, err)
	assert.False(t, exists, "loading must not write a config file")
}

func TestNewConfig_EmptyPathUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(afero.NewMemMapFs(), "", BaseDefaults)

	require.NoError(t, err)
	assert.Equal(t, "uv", cfg.Runner())
}

func TestNewConfig_FileOverlaysDefaults(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeConfig(t, fs, `
config_schema = 1
debug_logging = true
working_dir = 'C:\Users\me\code\windows-context-functions'
code_page = 1252
`)

	cfg, err := NewConfig(fs, testCfgPath, BaseDefaults)

	require.NoError(t, err)
	assert.Equal(t, "uv", cfg.Runner(), "unset keys keep their default")
	assert.Equal(t, "run", cfg.Subcommand())
	assert.Equal(t, `C:\Users\me\code\windows-context-functions`, cfg.WorkingDir())
	assert.Equal(t, uint32(1252), cfg.CodePage())
	assert.True(t, cfg.DebugLogging())
	assert.Equal(t, testCfgPath, cfg.Path())
}

func TestNewConfig_CustomRunner(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeConfig(t, fs, `
config_schema = 1
runner = 'C:\Program Files\Python\python.exe'
subcommand = "-u"

[error_reporting]
dsn = "https://key@o1.ingest.sentry.io/42"
`)

	cfg, err := NewConfig(fs, testCfgPath, BaseDefaults)

	require.NoError(t, err)
	assert.Equal(t, `C:\Program Files\Python\python.exe`, cfg.Runner())
	assert.Equal(t, "-u", cfg.Subcommand())
	assert.Equal(t, "https://key@o1.ingest.sentry.io/42", cfg.ErrorReportingDSN())
}

func TestNewConfig_MarshalledFixture(t *testing.T) {
	t.Parallel()

	h := helpers.NewMemoryFS()
	require.NoError(t, h.CreateConfigFile(testCfgPath, map[string]any{
		"config_schema": SchemaVersion,
		"runner":        "py",
		"subcommand":    "-3",
		"code_page":     932,
	}))

	cfg, err := NewConfig(h.Fs, testCfgPath, BaseDefaults)

	require.NoError(t, err)
	assert.Equal(t, "py", cfg.Runner())
	assert.Equal(t, "-3", cfg.Subcommand())
	assert.Equal(t, uint32(932), cfg.CodePage())
}

func TestNewConfig_SchemaMismatch(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "config_schema = 2\n")

	_, err := NewConfig(fs, testCfgPath, BaseDefaults)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema version mismatch")
}

func TestNewConfig_InvalidTOML(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "runner = \n")

	_, err := NewConfig(fs, testCfgPath, BaseDefaults)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config")
}

func TestNewConfig_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "empty runner",
			content:  "config_schema = 1\nrunner = \"\"\n",
			expected: "runner: failed required",
		},
		{
			name:     "subcommand with space",
			content:  "config_schema = 1\nsubcommand = \"run now\"\n",
			expected: "subcommand: failed noblank",
		},
		{
			name:     "code page out of range",
			content:  "config_schema = 1\ncode_page = 70000\n",
			expected: "code_page: failed lte=65535",
		},
		{
			name:     "bad dsn",
			content:  "config_schema = 1\n[error_reporting]\ndsn = \"not a url\"\n",
			expected: "error_reporting.dsn: failed url",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			writeConfig(t, fs, tt.content)

			_, err := NewConfig(fs, testCfgPath, BaseDefaults)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

//nolint:paralleltest // modifies environment
func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv(RunnerEnv, "pixi")
	t.Setenv(SubcommandEnv, "exec")
	t.Setenv(WorkDirEnv, `D:\work`)

	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "config_schema = 1\nrunner = \"hatch\"\nworking_dir = 'C:\\from-file'\n")

	cfg, err := NewConfig(fs, testCfgPath, BaseDefaults)

	require.NoError(t, err)
	assert.Equal(t, "pixi", cfg.Runner())
	assert.Equal(t, "exec", cfg.Subcommand())
	assert.Equal(t, `D:\work`, cfg.WorkingDir())
}

//nolint:paralleltest // modifies environment
func TestNewConfig_EnvOverrideIsValidated(t *testing.T) {
	t.Setenv(SubcommandEnv, "run it")

	_, err := NewConfig(afero.NewMemMapFs(), testCfgPath, BaseDefaults)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "subcommand: failed noblank")
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	defaults := BaseDefaults
	defaults.WorkingDir = `C:\scripts`
	defaults.DebugLogging = true

	cfg, err := NewConfig(fs, "/new/dir/runsilent.toml", defaults)
	require.NoError(t, err)
	require.NoError(t, cfg.Save())

	loaded, err := NewConfig(fs, "/new/dir/runsilent.toml", BaseDefaults)
	require.NoError(t, err)
	assert.Equal(t, `C:\scripts`, loaded.WorkingDir())
	assert.True(t, loaded.DebugLogging())
	assert.Equal(t, "uv", loaded.Runner())
}

func TestSave_NoPath(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(afero.NewMemMapFs(), "", BaseDefaults)
	require.NoError(t, err)

	assert.Error(t, cfg.Save())
}
