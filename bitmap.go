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
	"strconv"
	"strings"
)

// decodeRow parses one hexadecimal BITMAP scanline and stores the pixels in
// row y of bm.
//
// Each scanline is padded to a whole number of bytes, with the leftmost
// pixel in the most significant bit.
func decodeRow(bm *Bitmap, y int, line string) error {
	width := bm.Width
	hex := strings.TrimSpace(line)
	if width > MaxGlyphWidth || len(hex)*4 > MaxGlyphWidth {
		return ErrGlyphTooWide
	}
	raw, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return err
	}

	padding := (8 - width%8) % 8

	row := bm.Pix[y*width : (y+1)*width]
	for j := 0; j < width; j++ {
		x := width - 1 - j
		row[x] = raw>>(j+padding)&1 != 0
	}
	return nil
}
