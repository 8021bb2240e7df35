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

package layout

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Render draws the placed glyphs, black on white.  If bounds is empty, the
// image covers the extent of the glyphs plus a margin equal to the top left
// offset of the first line.
func Render(pp []Placement, scale int, bounds image.Rectangle) *image.NRGBA {
	if scale < 1 {
		scale = 1
	}
	if bounds.Empty() {
		ext := Extent(pp, scale)
		bounds = image.Rect(0, 0,
			int(math.Ceil(ext.URx+ext.LLx)),
			int(math.Ceil(ext.URy+ext.LLy)))
	}

	img := image.NewNRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)

	for _, p := range pp {
		bm := p.Glyph.Bitmap
		if bm == nil || bm.Width <= 0 || bm.Height <= 0 {
			continue
		}
		dr := image.Rect(p.X, p.Y, p.X+bm.Width*scale, p.Y+bm.Height*scale)
		src := bm.Image()
		xdraw.NearestNeighbor.Scale(img, dr, src, src.Bounds(), xdraw.Over, nil)
	}
	return img
}
