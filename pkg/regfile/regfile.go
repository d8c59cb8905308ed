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

// Package regfile generates a .reg file that adds an Explorer context-menu
// submenu with one entry per script. Each entry runs the hidden launcher
// with the script and the clicked file.
package regfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	textunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
)

const (
	// Header is the first line regedit requires in a .reg file.
	Header = "Windows Registry Editor Version 5.00"
	// DefaultMenu is the submenu label shown in Explorer.
	DefaultMenu = "Python Functions"
	// DefaultKey is the registry key name of the submenu.
	DefaultKey = "PythonFuncs"
	// DefaultPattern selects scripts in the scripts directory.
	DefaultPattern = "*.py"

	shellRoot = `HKEY_CLASSES_ROOT\*\shell`
	crlf      = "\r\n"
)

var (
	// ErrNoScripts is returned when no file in the scripts directory matches.
	ErrNoScripts = errors.New("no scripts found")
	// ErrNoLauncher is returned when Options has no launcher path.
	ErrNoLauncher = errors.New("launcher path not set")
)

// Options controls Generate. Empty fields other than ScriptsDir and
// LauncherPath take the package defaults.
type Options struct {
	ScriptsDir   string
	LauncherPath string
	MenuName     string
	MenuKey      string
	Icon         string
	Pattern      string
}

// Entry is one submenu item.
type Entry struct {
	Key         string
	DisplayName string
	ScriptPath  string
}

func (o *Options) setDefaults() {
	if o.MenuName == "" {
		o.MenuName = DefaultMenu
	}
	if o.MenuKey == "" {
		o.MenuKey = DefaultKey
	}
	if o.Pattern == "" {
		o.Pattern = DefaultPattern
	}
}

// Generate scans opts.ScriptsDir on fs and returns the .reg file encoded as
// UTF-16LE with a BOM, along with the entries it contains.
//
//nolint:gocritic // options are copied so defaults don't leak to the caller
func Generate(fs afero.Fs, opts Options) ([]byte, []Entry, error) {
	opts.setDefaults()
	if opts.LauncherPath == "" {
		return nil, nil, ErrNoLauncher
	}

	entries, err := Scan(fs, opts.ScriptsDir, opts.Pattern)
	if err != nil {
		return nil, nil, err
	}
	if len(entries) == 0 {
		return nil, nil, fmt.Errorf("%w in %s matching %s", ErrNoScripts, opts.ScriptsDir, opts.Pattern)
	}

	text := Render(&opts, entries)

	enc := textunicode.UTF16(textunicode.LittleEndian, textunicode.UseBOM).NewEncoder()
	out, err := enc.Bytes([]byte(text))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode registry file: %w", err)
	}
	return out, entries, nil
}

// Scan lists regular files in dir whose names match pattern, sorted by
// name. dir is taken literally; only pattern is a glob.
func Scan(fs afero.Fs, dir, pattern string) ([]Entry, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		ok, err := filepath.Match(pattern, info.Name())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if !ok {
			continue
		}

		path := filepath.Join(dir, info.Name())
		stem := strings.TrimSuffix(info.Name(), filepath.Ext(info.Name()))
		entries = append(entries, Entry{
			Key:         stem,
			DisplayName: DisplayName(stem),
			ScriptPath:  path,
		})
		log.Debug().Msgf("adding script: %s", path)
	}
	return entries, nil
}

// DisplayName turns a script stem into a menu label. Underscores become
// spaces and each run of letters is title-cased, so a digit also starts a
// new word: "pdf2img_v2" becomes "Pdf2Img V2".
func DisplayName(stem string) string {
	title := cases.Title(language.Und)
	s := strings.ReplaceAll(stem, "_", " ")

	var sb strings.Builder
	start := -1
	for i, r := range s {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			sb.WriteString(title.String(s[start:i]))
			start = -1
		}
		sb.WriteRune(r)
	}
	if start >= 0 {
		sb.WriteString(title.String(s[start:]))
	}
	return sb.String()
}

// Render returns the .reg file text with CRLF line endings.
func Render(opts *Options, entries []Entry) string {
	menuKey := shellRoot + `\` + opts.MenuKey

	var sb strings.Builder
	line := func(s string) {
		sb.WriteString(s)
		sb.WriteString(crlf)
	}

	line(Header)
	line("")
	line("[" + menuKey + "]")
	line(`"MUIVerb"=` + quote(opts.MenuName))
	if opts.Icon != "" {
		line(`"Icon"=` + quote(opts.Icon))
	}
	line(`"SubCommands"=""`)

	for _, e := range entries {
		itemKey := menuKey + `\shell\` + e.Key
		line("")
		line("[" + itemKey + "]")
		line("@=" + quote(e.DisplayName))
		line("")
		line("[" + itemKey + `\command]`)
		line("@=" + quote(CommandLine(opts.LauncherPath, e.ScriptPath)))
	}

	return sb.String()
}

// CommandLine is the verb command Explorer runs for an entry. %1 expands to
// the clicked file.
func CommandLine(launcherPath, scriptPath string) string {
	return `"` + launcherPath + `" "` + scriptPath + `" "%1"`
}

// quote renders a REG_SZ value.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
