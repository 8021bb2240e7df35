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

import (
	"image"
	"image/color"
	"slices"

	"golang.org/x/exp/maps"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/postscript/funit"
)

// Limits for the size of glyph bitmaps, in pixels.
const (
	MaxGlyphWidth  = 64
	MaxGlyphHeight = 1 << 16
)

// Font is a decoded BDF font.
type Font struct {
	Metadata

	// Glyphs lists the glyphs in the order they appear in the file.
	Glyphs []*Glyph
}

// Metadata holds the font-wide information from a BDF file.
type Metadata struct {
	Version string // from STARTFONT
	Name    string // from FONT

	PixelSize   int
	XResolution int // dots per inch
	YResolution int // dots per inch

	// FontBBox is the default bounding box for the glyphs of the font.
	FontBBox BoundingBox

	FontDescent int
	FontAscent  int
	DefaultChar int

	// GlyphCount is the number of glyphs announced by the CHARS record.
	// This is not checked against len(Font.Glyphs).
	GlyphCount int
}

// BoundingBox describes the pixel extent of a glyph.  The offsets give the
// position of the lower left corner relative to the glyph origin.
type BoundingBox struct {
	Width, Height    int
	XOffset, YOffset int
}

// Rect returns the bounding box as a rectangle in pixel coordinates,
// with the y-axis pointing up.
func (b BoundingBox) Rect() rect.Rect {
	return rect.Rect{
		LLx: float64(b.XOffset),
		LLy: float64(b.YOffset),
		URx: float64(b.XOffset + b.Width),
		URy: float64(b.YOffset + b.Height),
	}
}

// Vector is a width in scalable units (1/1000 of the pixel size).
type Vector struct {
	X, Y funit.Int
}

// Point is a width in device pixels.
type Point struct {
	X, Y int
}

// Glyph is a single character of a BDF font.
type Glyph struct {
	Name string

	// Encoding is the code point of the glyph, or -1 for glyphs which are
	// not encoded.
	Encoding int

	SWidth Vector
	DWidth Point

	// BBox is the bounding box of the glyph bitmap.  If the glyph uses the
	// font bounding box, this is a copy of Font.FontBBox.
	BBox BoundingBox

	// Bitmap has size BBox.Width x BBox.Height.
	Bitmap *Bitmap
}

// Bitmap is a monochrome image.  Pixel (0, 0) is the top left corner.
type Bitmap struct {
	Width, Height int

	// Pix holds the pixels in row-major order.
	Pix []bool
}

// NewBitmap allocates a bitmap with all pixels unset.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]bool, width*height),
	}
}

// At reports whether the pixel at (x, y) is set.
// Pixels outside the bitmap are unset.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return false
	}
	return b.Pix[y*b.Width+x]
}

// Set changes the pixel at (x, y).  Coordinates outside the bitmap are
// ignored.
func (b *Bitmap) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.Pix[y*b.Width+x] = on
}

// Image returns a view of the bitmap as an image.  Set pixels are opaque
// black, unset pixels are transparent.
func (b *Bitmap) Image() image.Image {
	return bitmapImage{b}
}

type bitmapImage struct {
	b *Bitmap
}

func (im bitmapImage) ColorModel() color.Model {
	return color.RGBA64Model
}

func (im bitmapImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.b.Width, im.b.Height)
}

func (im bitmapImage) At(x, y int) color.Color {
	return im.RGBA64At(x, y)
}

func (im bitmapImage) RGBA64At(x, y int) color.RGBA64 {
	if im.b.At(x, y) {
		return color.RGBA64{A: 0xFFFF}
	}
	return color.RGBA64{}
}

// Index returns a map from code points to glyphs.  Unencoded glyphs are
// omitted.  If several glyphs share a code point, the first one is used.
func (f *Font) Index() map[int]*Glyph {
	idx := make(map[int]*Glyph, len(f.Glyphs))
	for _, g := range f.Glyphs {
		if g.Encoding < 0 {
			continue
		}
		if _, seen := idx[g.Encoding]; !seen {
			idx[g.Encoding] = g
		}
	}
	return idx
}

// Lookup returns the glyph for r.  If the font has no glyph for r, the
// glyph for the default character is returned.  If this is missing too,
// Lookup returns nil.
func (f *Font) Lookup(r rune) *Glyph {
	var dflt *Glyph
	for _, g := range f.Glyphs {
		if g.Encoding == int(r) && r >= 0 {
			return g
		}
		if dflt == nil && g.Encoding == f.DefaultChar {
			dflt = g
		}
	}
	return dflt
}

// Encodings returns the code points covered by the font, in increasing order.
func (f *Font) Encodings() []int {
	keys := maps.Keys(f.Index())
	slices.Sort(keys)
	return keys
}
