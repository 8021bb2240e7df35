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

// Package bdf reads bitmap fonts in the Glyph Bitmap Distribution Format.
//
// A BDF file is a sequence of keyword records.  The font-wide records
// (STARTFONT, FONT, SIZE, FONTBOUNDINGBOX, ...) describe global metrics,
// and every glyph is described by a STARTCHAR ... ENDCHAR section
// containing its metrics and a BITMAP block of hexadecimal scanlines.
//
// A font can be read from an io.Reader or from a file:
//
//	f, err := bdf.Open("fixed.bdf", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, g := range f.Glyphs {
//	    fmt.Println(g.Name, g.Encoding, g.BBox)
//	}
//
// Decoding is all-or-nothing: a malformed file yields an error and no font.
// Records with unknown keywords are reported via the logger given in
// [Options] and are otherwise ignored.
//
// Each [Decoder] owns all of its state, so independent fonts can be decoded
// concurrently.
package bdf
