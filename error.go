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
	"errors"
	"strconv"
)

var (
	// ErrUnterminated indicates that the input ended while a section
	// (font, properties or char) was still open.
	ErrUnterminated = errors.New("unterminated section")

	// ErrUnbalanced indicates a section end record without a matching
	// start record.
	ErrUnbalanced = errors.New("unbalanced section close")

	// ErrSectionMismatch indicates that a section end record closes a
	// section of a different kind.
	ErrSectionMismatch = errors.New("mismatched section close")

	// ErrGlyphTooWide indicates a glyph bitmap which is wider than
	// MaxGlyphWidth pixels.
	ErrGlyphTooWide = errors.New("glyph too wide")

	// ErrGlyphTooTall indicates a glyph bitmap which is taller than
	// MaxGlyphHeight pixels.
	ErrGlyphTooTall = errors.New("glyph too tall")

	// ErrTruncatedBitmap indicates that the input ended inside a BITMAP
	// block.
	ErrTruncatedBitmap = errors.New("truncated bitmap")

	// ErrInvalidBBX indicates a glyph bounding box with negative size, or
	// one which follows the glyph's bitmap.
	ErrInvalidBBX = errors.New("invalid glyph bounding box")

	// ErrMissingArgument indicates a record with too few arguments.
	ErrMissingArgument = errors.New("missing argument")
)

// MalformedFontError is returned when a BDF file cannot be decoded.
type MalformedFontError struct {
	Line int    // 1-based line number, or 0 if not known
	Text string // the offending line
	Err  error
}

func (err *MalformedFontError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Line > 0 {
		tail = " (line " + strconv.Itoa(err.Line)
		if err.Text != "" {
			tail += ", " + strconv.Quote(err.Text)
		}
		tail += ")"
	}
	return "malformed BDF font" + middle + tail
}

func (err *MalformedFontError) Unwrap() error {
	return err.Err
}

// SectionError describes a section end record which does not match the
// innermost open section.
type SectionError struct {
	Open  string // the innermost open section, e.g. "PROPERTIES"
	Close string // the section named by the end record, e.g. "CHAR"
}

func (err *SectionError) Error() string {
	return "END" + err.Close + " closes START" + err.Open
}

func (err *SectionError) Unwrap() error {
	return ErrSectionMismatch
}
