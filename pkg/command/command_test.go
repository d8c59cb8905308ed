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

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()

	t.Run("no_args", func(t *testing.T) {
		t.Parallel()

		_, err := ParseArgs(nil)

		require.ErrorIs(t, err, ErrUsage)
	})

	t.Run("one_arg", func(t *testing.T) {
		t.Parallel()

		_, err := ParseArgs([]string{`C:\scripts\build.py`})

		require.ErrorIs(t, err, ErrUsage)
	})

	t.Run("two_args", func(t *testing.T) {
		t.Parallel()

		inv, err := ParseArgs([]string{`C:\scripts\build.py`, `C:\data\in.csv`})

		require.NoError(t, err)
		assert.Equal(t, `C:\scripts\build.py`, inv.ScriptPath)
		assert.Equal(t, `C:\data\in.csv`, inv.TargetPath)
	})

	t.Run("extra_args_ignored", func(t *testing.T) {
		t.Parallel()

		inv, err := ParseArgs([]string{"a.py", "b.txt", "c"})

		require.NoError(t, err)
		assert.Equal(t, Invocation{ScriptPath: "a.py", TargetPath: "b.txt"}, inv)
	})

	t.Run("empty_strings_pass_through", func(t *testing.T) {
		t.Parallel()

		inv, err := ParseArgs([]string{"", ""})

		require.NoError(t, err)
		assert.Equal(t, Invocation{}, inv)
	})
}

func TestBuild(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		runner     string
		subcommand string
		inv        Invocation
		expected   string
	}{
		{
			name:       "default runner",
			runner:     "uv",
			subcommand: "run",
			inv:        Invocation{ScriptPath: `C:\scripts\build.py`, TargetPath: `C:\data\in.csv`},
			expected:   `"uv" run "C:\scripts\build.py" "C:\data\in.csv"`,
		},
		{
			name:       "paths with spaces",
			runner:     "uv",
			subcommand: "run",
			inv: Invocation{
				ScriptPath: `C:\My Scripts\heif to jpg.py`,
				TargetPath: `D:\Photos\IMG 0001.heic`,
			},
			expected: `"uv" run "C:\My Scripts\heif to jpg.py" "D:\Photos\IMG 0001.heic"`,
		},
		{
			name:       "runner with full path",
			runner:     `C:\Program Files\uv\uv.exe`,
			subcommand: "run",
			inv:        Invocation{ScriptPath: "s.py", TargetPath: "t"},
			expected:   `"C:\Program Files\uv\uv.exe" run "s.py" "t"`,
		},
		{
			name:       "embedded quote is not escaped",
			runner:     "uv",
			subcommand: "run",
			inv:        Invocation{ScriptPath: `a"b.py`, TargetPath: "t"},
			expected:   `"uv" run "a"b.py" "t"`,
		},
		{
			name:       "unc target",
			runner:     "uv",
			subcommand: "run",
			inv:        Invocation{ScriptPath: "s.py", TargetPath: `\\nas\share\doc.md`},
			expected:   `"uv" run "s.py" "\\nas\share\doc.md"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Build(tt.runner, tt.subcommand, tt.inv))
		})
	}
}

// TestPropertyBuildFormat verifies the command text is exactly the quoted
// runner, the subcommand and the two quoted paths, in order.
func TestPropertyBuildFormat(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		script := rapid.String().Draw(t, "script")
		target := rapid.String().Draw(t, "target")

		got := Build("uv", "run", Invocation{ScriptPath: script, TargetPath: target})
		want := `"uv" run "` + script + `" "` + target + `"`
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})
}
