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

// Package widestr converts narrow text into the UTF-16 form expected by the
// wide Win32 APIs, and prefixes long paths so they bypass MAX_PATH.
package widestr

import (
	"unicode/utf16"
)

const (
	// MaxPath is the legacy Win32 path length limit in UTF-16 units.
	MaxPath = 260

	// LocalPrefix is the extended-length marker for local paths.
	LocalPrefix = `\\?\`
	// UNCPrefix is the extended-length marker for network paths. It replaces
	// the leading double backslash of the original path.
	UNCPrefix = `\\?\UNC\`
)

var (
	localPrefix16 = utf16.Encode([]rune(LocalPrefix))
	uncPrefix16   = utf16.Encode([]rune(UNCPrefix))
)

// Normalize decodes text from the given Windows code page and returns its
// UTF-16 form. Code page 0 selects the active ANSI code page. Empty input
// returns nil without touching the decoder.
func Normalize(text []byte, codePage uint32) []uint16 {
	if len(text) == 0 {
		return nil
	}
	return FromString(Decode(text, codePage))
}

// NormalizePath is Normalize followed by ExtendLength.
func NormalizePath(text []byte, codePage uint32) []uint16 {
	return ExtendLength(Normalize(text, codePage))
}

// FromString encodes already-decoded text as UTF-16 without a terminator.
// Unlike windows.UTF16FromString it accepts embedded NULs.
func FromString(s string) []uint16 {
	if s == "" {
		return nil
	}
	return utf16.Encode([]rune(s))
}

// ToString decodes a UTF-16 sequence, stopping at the first NUL if present.
func ToString(w []uint16) string {
	for i, c := range w {
		if c == 0 {
			w = w[:i]
			break
		}
	}
	return string(utf16.Decode(w))
}

// ExtendLength adds the extended-length marker to paths longer than MaxPath.
// Paths starting with a double backslash are treated as UNC paths and have
// that prefix replaced by UNCPrefix. Shorter paths are returned unchanged.
func ExtendLength(path []uint16) []uint16 {
	if len(path) <= MaxPath {
		return path
	}

	if len(path) >= 2 && path[0] == '\\' && path[1] == '\\' {
		out := make([]uint16, 0, len(uncPrefix16)+len(path)-2)
		out = append(out, uncPrefix16...)
		return append(out, path[2:]...)
	}

	out := make([]uint16, 0, len(localPrefix16)+len(path))
	out = append(out, localPrefix16...)
	return append(out, path...)
}

// Terminated returns a new NUL-terminated copy of w. The copy is never
// shared with the caller, so it is safe to hand to APIs that write into
// their input buffer.
func Terminated(w []uint16) []uint16 {
	out := make([]uint16, len(w)+1)
	copy(out, w)
	return out
}
