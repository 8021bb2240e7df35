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

// Package layout arranges the glyphs of a BDF font for display.
//
// Glyphs are placed left to right and wrapped into lines, in the style of a
// font specimen sheet.  All coordinates are in output pixels, with the
// y-axis pointing down.
package layout

import (
	"seehuhn.de/go/bdf"
	"seehuhn.de/go/geom/rect"
)

// Placement gives the output position of one glyph.
type Placement struct {
	Glyph *bdf.Glyph

	// X and Y give the top left corner of the scaled glyph bitmap.
	X, Y int
}

// Arrange places all glyphs of f, in file order.
func Arrange(f *bdf.Font, scale, extent int) []Placement {
	return ArrangeGlyphs(f.Glyphs, &f.Metadata, scale, extent)
}

// Text places the glyphs for the runes of s.  Runes without a glyph are
// replaced by the default glyph of the font, or skipped if the font has no
// default glyph.  A newline starts a new line.
func Text(f *bdf.Font, s string, scale, extent int) []Placement {
	var glyphs []*bdf.Glyph
	for _, r := range s {
		if r == '\n' {
			glyphs = append(glyphs, nil)
			continue
		}
		if g := f.Lookup(r); g != nil {
			glyphs = append(glyphs, g)
		}
	}
	return ArrangeGlyphs(glyphs, &f.Metadata, scale, extent)
}

// ArrangeGlyphs places the given glyphs on lines of the given width.
//
// The first glyph is placed md.PixelSize pixels from the top left corner.
// After each glyph the position advances by the scaled device width of the
// glyph.  Once the position passes extent-2*md.PixelSize, the next glyph
// starts a new line, md.FontBBox.Height scaled pixels further down.
// A nil entry in glyphs starts a new line.
func ArrangeGlyphs(glyphs []*bdf.Glyph, md *bdf.Metadata, scale, extent int) []Placement {
	if scale < 1 {
		scale = 1
	}
	inset := md.PixelSize
	lineSkip := md.FontBBox.Height * scale

	res := make([]Placement, 0, len(glyphs))
	x, y := inset, inset
	for _, g := range glyphs {
		if g == nil {
			x = inset
			y += lineSkip
			continue
		}

		res = append(res, Placement{Glyph: g, X: x, Y: y})
		x += g.DWidth.X * scale
		if x > extent-2*inset {
			x = inset
			y += lineSkip
		}
	}
	return res
}

// Lines splits a list of placements into lines.
func Lines(pp []Placement) [][]Placement {
	var res [][]Placement
	start := 0
	for i := 1; i <= len(pp); i++ {
		if i == len(pp) || pp[i].Y != pp[start].Y {
			res = append(res, pp[start:i])
			start = i
		}
	}
	return res
}

// Extent returns the smallest rectangle which covers all placed glyph
// bitmaps.  Since the y-axis points down, LLy is the top edge.
// The result is the zero rectangle if no pixels are covered.
func Extent(pp []Placement, scale int) rect.Rect {
	if scale < 1 {
		scale = 1
	}
	var res rect.Rect
	first := true
	for _, p := range pp {
		bm := p.Glyph.Bitmap
		if bm == nil || bm.Width <= 0 || bm.Height <= 0 {
			continue
		}
		r := rect.Rect{
			LLx: float64(p.X),
			LLy: float64(p.Y),
			URx: float64(p.X + bm.Width*scale),
			URy: float64(p.Y + bm.Height*scale),
		}
		if first {
			res = r
			first = false
			continue
		}
		res.LLx = min(res.LLx, r.LLx)
		res.LLy = min(res.LLy, r.LLy)
		res.URx = max(res.URx, r.URx)
		res.URy = max(res.URy, r.URy)
	}
	return res
}
