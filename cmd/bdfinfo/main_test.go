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

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/bdf"
)

const hiFont = `STARTFONT 2.1
FONT -misc-hi-medium-r-normal--4-40-75-75-c-40-iso10646-1
SIZE 1 75 75
FONTBOUNDINGBOX 3 3 0 0
CHARS 3
STARTCHAR H
ENCODING 72
DWIDTH 4 0
BBX 3 3 0 0
BITMAP
A0
E0
A0
ENDCHAR
STARTCHAR I
ENCODING 73
DWIDTH 4 0
BBX 3 3 0 0
BITMAP
E0
40
E0
ENDCHAR
STARTCHAR orphan
ENCODING -1
DWIDTH 4 0
BBX 3 3 0 0
ENDCHAR
ENDFONT
`

func readHi(t *testing.T) *bdf.Font {
	t.Helper()
	f, err := bdf.Read(strings.NewReader(hiFont), nil)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestPreview(t *testing.T) {
	f := readHi(t)
	buf := &bytes.Buffer{}
	preview(buf, f, "HI", 80)

	want := "\n" +
		" # # ###\n" +
		" ###  #\n" +
		" # # ###\n" +
		"\n"
	if got := buf.String(); got != want {
		t.Errorf("wrong preview:\n%s\nwant:\n%s", got, want)
	}
}

func TestListGlyphs(t *testing.T) {
	f := readHi(t)
	buf := &bytes.Buffer{}
	listGlyphs(buf, f)
	out := buf.String()
	for _, want := range []string{"U+0048", "LATIN CAPITAL LETTER H", "U+0049", "1 glyphs without code point"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestShowSummary(t *testing.T) {
	f := readHi(t)
	f.GlyphCount = 5
	buf := &bytes.Buffer{}
	showSummary(buf, "hi.bdf", f)
	out := buf.String()
	for _, want := range []string{"hi.bdf:", "3x3+0+0", "3 (file announces 5)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestWritePNG(t *testing.T) {
	f := readHi(t)
	fname := filepath.Join(t.TempDir(), "hi.png")
	if err := writePNG(fname, f, "", 2, 100); err != nil {
		t.Fatal(err)
	}

	fd, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()
	img, err := png.Decode(fd)
	if err != nil {
		t.Fatal(err)
	}
	// three glyphs of width 6, starting at x=1, advancing by 8
	if b := img.Bounds(); b.Dx() != 1+16+6+1 || b.Dy() != 1+6+1 {
		t.Errorf("wrong image size %v", b)
	}
}
