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

package widestr

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// CodePageUTF8 is the Windows identifier for UTF-8.
const CodePageUTF8 = 65001

// DefaultCodePage is used when the requested code page has no decoder.
const DefaultCodePage = 1252

var codePages = map[uint32]encoding.Encoding{
	437:          charmap.CodePage437,
	850:          charmap.CodePage850,
	866:          charmap.CodePage866,
	874:          charmap.Windows874,
	932:          japanese.ShiftJIS,
	936:          simplifiedchinese.GBK,
	949:          korean.EUCKR,
	950:          traditionalchinese.Big5,
	1250:         charmap.Windows1250,
	1251:         charmap.Windows1251,
	1252:         charmap.Windows1252,
	1253:         charmap.Windows1253,
	1254:         charmap.Windows1254,
	1255:         charmap.Windows1255,
	1256:         charmap.Windows1256,
	1257:         charmap.Windows1257,
	1258:         charmap.Windows1258,
	CodePageUTF8: unicode.UTF8,
}

// Encoding returns the decoder for a Windows code page. Code page 0 resolves
// to the active ANSI code page. The second return value reports whether the
// code page was known; unknown pages fall back to Windows-1252.
func Encoding(codePage uint32) (encoding.Encoding, bool) {
	if codePage == 0 {
		codePage = ActiveCodePage()
	}
	enc, ok := codePages[codePage]
	if !ok {
		return codePages[DefaultCodePage], false
	}
	return enc, true
}

// Decode converts text in the given code page to a Go string. Bytes that
// are invalid in that code page become U+FFFD. If the decoder fails outright
// the text is decoded as Windows-1252 instead.
func Decode(text []byte, codePage uint32) string {
	if len(text) == 0 {
		return ""
	}

	enc, ok := Encoding(codePage)
	if !ok {
		log.Debug().Msgf("no decoder for code page %d, using %d", codePage, DefaultCodePage)
	}
	return decodeWith(enc, text, codePage)
}

func decodeWith(enc encoding.Encoding, text []byte, codePage uint32) string {
	out, err := enc.NewDecoder().Bytes(text)
	if err == nil {
		return string(out)
	}

	log.Debug().Err(err).Msgf("decoding with code page %d, retrying with %d", codePage, DefaultCodePage)
	// Windows-1252 maps every byte and never fails.
	out, _ = codePages[DefaultCodePage].NewDecoder().Bytes(text)
	return string(out)
}
