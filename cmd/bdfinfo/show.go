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
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/goforj/godump"
	"golang.org/x/term"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/bdf"
	"seehuhn.de/go/bdf/layout"
)

func showSummary(w io.Writer, fname string, f *bdf.Font) {
	fmt.Fprintf(w, "%s:\n", fname)
	fmt.Fprintf(w, "  name:         %s\n", f.Name)
	fmt.Fprintf(w, "  BDF version:  %s\n", f.Version)
	fmt.Fprintf(w, "  size:         %d px at %dx%d dpi\n", f.PixelSize, f.XResolution, f.YResolution)
	b := f.FontBBox
	fmt.Fprintf(w, "  bounding box: %dx%d%+d%+d\n", b.Width, b.Height, b.XOffset, b.YOffset)
	fmt.Fprintf(w, "  ascent:       %d\n", f.FontAscent)
	fmt.Fprintf(w, "  descent:      %d\n", f.FontDescent)
	fmt.Fprintf(w, "  default char: %d\n", f.DefaultChar)
	if f.GlyphCount != len(f.Glyphs) {
		fmt.Fprintf(w, "  glyphs:       %d (file announces %d)\n", len(f.Glyphs), f.GlyphCount)
	} else {
		fmt.Fprintf(w, "  glyphs:       %d\n", len(f.Glyphs))
	}
}

func dumpMetadata(w io.Writer, f *bdf.Font) {
	godump.Fdump(w, f.Metadata)
}

func listGlyphs(w io.Writer, f *bdf.Font) {
	idx := f.Index()
	for _, code := range f.Encodings() {
		g := idx[code]
		name := runenames.Name(rune(code))
		fmt.Fprintf(w, "  %6d  U+%04X  %-16s %3dx%-3d  %s\n",
			code, code, g.Name, g.BBox.Width, g.BBox.Height, name)
	}
	if unencoded := len(f.Glyphs) - len(idx); unencoded > 0 {
		fmt.Fprintf(w, "  (%d glyphs without code point or with duplicate code)\n", unencoded)
	}
}

func arrange(f *bdf.Font, text string, scale, width int) []layout.Placement {
	if text != "" {
		return layout.Text(f, text, scale, width)
	}
	return layout.Arrange(f, scale, width)
}

// preview prints the glyphs as text, one character per pixel.
func preview(w io.Writer, f *bdf.Font, text string, width int) {
	if width <= 0 {
		width = 80
		if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
			cols, _, err := term.GetSize(fd)
			if err == nil && cols > 0 {
				width = cols
			}
		}
	}

	img := layout.Render(arrange(f, text, 1, width), 1, image.Rectangle{})
	fmt.Fprint(w, asciiArt(img))
}

// asciiArt converts an image into lines of text, using '#' for dark pixels.
func asciiArt(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder
	line := make([]byte, 0, b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		line = line[:0]
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r+g+bl < 3*0x8000 {
				line = append(line, '#')
			} else {
				line = append(line, ' ')
			}
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func writePNG(fname string, f *bdf.Font, text string, scale, width int) error {
	img := layout.Render(arrange(f, text, scale, width), scale, image.Rectangle{})

	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(out, img)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
