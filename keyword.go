// seehuhn.de/go/bdf - a decoder for BDF bitmap fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bdf

// keyword identifies the kind of a BDF record.
type keyword int

// These are the record keywords understood by the decoder.
const (
	kwUnknown keyword = iota
	kwStartFont
	kwFontName
	kwSize
	kwFontBoundingBox
	kwStartProperties
	kwFontDescent
	kwFontAscent
	kwDefaultChar
	kwEndProperties
	kwChars
	kwStartChar
	kwEncoding
	kwSWidth
	kwDWidth
	kwBBX
	kwBitmap
	kwEndChar
	kwEndFont
)

var keywordNames = [...]string{
	kwUnknown:         "unknown",
	kwStartFont:       "STARTFONT",
	kwFontName:        "FONT",
	kwSize:            "SIZE",
	kwFontBoundingBox: "FONTBOUNDINGBOX",
	kwStartProperties: "STARTPROPERTIES",
	kwFontDescent:     "FONT_DESCENT",
	kwFontAscent:      "FONT_ASCENT",
	kwDefaultChar:     "DEFAULT_CHAR",
	kwEndProperties:   "ENDPROPERTIES",
	kwChars:           "CHARS",
	kwStartChar:       "STARTCHAR",
	kwEncoding:        "ENCODING",
	kwSWidth:          "SWIDTH",
	kwDWidth:          "DWIDTH",
	kwBBX:             "BBX",
	kwBitmap:          "BITMAP",
	kwEndChar:         "ENDCHAR",
	kwEndFont:         "ENDFONT",
}

var keywords = func() map[string]keyword {
	m := make(map[string]keyword, len(keywordNames)-1)
	for k, name := range keywordNames {
		if keyword(k) != kwUnknown {
			m[name] = keyword(k)
		}
	}
	return m
}()

// classify returns the record kind for the first token of a line.
// Tokens which are not BDF keywords map to kwUnknown.
// Keywords are case-sensitive.
func classify(token string) keyword {
	return keywords[token]
}

func (k keyword) String() string {
	if k < 0 || int(k) >= len(keywordNames) {
		return "unknown"
	}
	return keywordNames[k]
}
