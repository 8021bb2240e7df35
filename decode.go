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
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"seehuhn.de/go/postscript/funit"
)

// Options can be used to control the decoding of a BDF file.
// A nil *Options is equivalent to the zero value.
type Options struct {
	// Logger receives a warning for every record which is not understood.
	// If this is nil, slog.Default() is used.
	Logger *slog.Logger
}

// maxLineLength is the longest input line accepted by the decoder.
// Property values, for example copyright notices, can make lines long.
const maxLineLength = 1 << 20

// Decoder reads a BDF font from an input stream.
type Decoder struct {
	sc  *bufio.Scanner
	log *slog.Logger

	lineNo int
	line   string

	font     *Font
	sections sectionStack
	glyph    *Glyph // the glyph being decoded, nil outside of STARTCHAR
}

// NewDecoder returns a Decoder which reads from r.
func NewDecoder(r io.Reader, opt *Options) *Decoder {
	if opt == nil {
		opt = &Options{}
	}
	logger := opt.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxLineLength)

	return &Decoder{
		sc:   sc,
		log:  logger,
		font: &Font{},
	}
}

// Read decodes a BDF font from r.
func Read(r io.Reader, opt *Options) (*Font, error) {
	return NewDecoder(r, opt).Decode()
}

// Decode reads the input until EOF and returns the decoded font.
// Decode must be called at most once.
//
// If the input is malformed, the returned error is a *MalformedFontError.
// Errors from the underlying reader are returned unchanged.
func (d *Decoder) Decode() (*Font, error) {
	for d.next() {
		fields := strings.Fields(d.line)
		if len(fields) == 0 {
			continue
		}
		err := d.record(classify(fields[0]), fields[1:])
		if ioErr := d.sc.Err(); ioErr != nil {
			return nil, ioErr
		} else if err != nil {
			return nil, d.malformed(err)
		}
	}
	if err := d.sc.Err(); err != nil {
		return nil, err
	}

	if open := d.sections.top(); open != 0 {
		return nil, &MalformedFontError{
			Err: fmt.Errorf("%w: START%s", ErrUnterminated, open),
		}
	}

	return d.font, nil
}

// next advances to the next input line.
func (d *Decoder) next() bool {
	if !d.sc.Scan() {
		return false
	}
	d.lineNo++
	d.line = d.sc.Text()
	return true
}

func (d *Decoder) malformed(err error) error {
	var mfe *MalformedFontError
	if errors.As(err, &mfe) {
		return err
	}
	return &MalformedFontError{
		Line: d.lineNo,
		Text: d.line,
		Err:  err,
	}
}

func (d *Decoder) record(kw keyword, args []string) error {
	md := &d.font.Metadata

	switch kw {
	case kwStartFont:
		if len(args) < 1 {
			return ErrMissingArgument
		}
		d.sections.push(sectionFont)
		md.Version = args[0]
	case kwFontName:
		if len(args) < 1 {
			return ErrMissingArgument
		}
		md.Name = strings.Join(args, " ")
	case kwSize:
		return parseInts(args, &md.PixelSize, &md.XResolution, &md.YResolution)
	case kwFontBoundingBox:
		return parseBox(args, &md.FontBBox)
	case kwStartProperties:
		d.sections.push(sectionProperties)
	case kwFontDescent:
		return parseInts(args, &md.FontDescent)
	case kwFontAscent:
		return parseInts(args, &md.FontAscent)
	case kwDefaultChar:
		return parseInts(args, &md.DefaultChar)
	case kwEndProperties:
		return d.sections.pop(sectionProperties)
	case kwChars:
		return parseInts(args, &md.GlyphCount)

	case kwStartChar:
		if len(args) < 1 {
			return ErrMissingArgument
		}
		if d.glyph != nil {
			return fmt.Errorf("%w: STARTCHAR inside STARTCHAR %q",
				ErrSectionMismatch, d.glyph.Name)
		}
		d.sections.push(sectionChar)
		d.glyph = &Glyph{
			Name:     strings.Join(args, " "),
			Encoding: -1,
		}
	case kwEncoding, kwSWidth, kwDWidth, kwBBX, kwBitmap:
		if d.glyph == nil {
			d.log.Warn("BDF glyph record outside of STARTCHAR",
				slog.Int("line", d.lineNo),
				slog.String("text", d.line))
			return nil
		}
		return d.glyphRecord(kw, args)
	case kwEndChar:
		err := d.sections.pop(sectionChar)
		if err != nil {
			return err
		}
		g := d.glyph
		if g.Bitmap == nil {
			g.Bitmap = NewBitmap(g.BBox.Width, g.BBox.Height)
		}
		d.font.Glyphs = append(d.font.Glyphs, g)
		d.glyph = nil
	case kwEndFont:
		return d.sections.pop(sectionFont)

	default:
		d.log.Warn("unknown BDF record",
			slog.Int("line", d.lineNo),
			slog.String("text", d.line))
	}
	return nil
}

func (d *Decoder) glyphRecord(kw keyword, args []string) error {
	g := d.glyph

	switch kw {
	case kwEncoding:
		// An optional second argument gives a font-specific index
		// for unencoded glyphs; it is not used here.
		return parseInts(args, &g.Encoding)
	case kwSWidth:
		var x, y int
		err := parseInts(args, &x, &y)
		if err != nil {
			return err
		}
		g.SWidth = Vector{X: funit.Int(x), Y: funit.Int(y)}
	case kwDWidth:
		return parseInts(args, &g.DWidth.X, &g.DWidth.Y)
	case kwBBX:
		if g.Bitmap != nil {
			return fmt.Errorf("%w: BBX after BITMAP", ErrInvalidBBX)
		}
		// BoundingBox is a value type, so a glyph box which equals the
		// font bounding box is stored as a copy of it.
		err := parseBox(args, &g.BBox)
		if err != nil {
			return err
		}
		if g.BBox.Width < 0 || g.BBox.Height < 0 {
			return fmt.Errorf("%w: %dx%d pixels",
				ErrInvalidBBX, g.BBox.Width, g.BBox.Height)
		}
		if g.BBox.Width > MaxGlyphWidth {
			return fmt.Errorf("%w: %d pixels", ErrGlyphTooWide, g.BBox.Width)
		}
		if g.BBox.Height > MaxGlyphHeight {
			return fmt.Errorf("%w: %d pixels", ErrGlyphTooTall, g.BBox.Height)
		}
	case kwBitmap:
		return d.readBitmap(g)
	}
	return nil
}

// readBitmap reads the hexadecimal scanlines following a BITMAP record.
// The lines are taken directly from the input, without classification.
func (d *Decoder) readBitmap(g *Glyph) error {
	bm := NewBitmap(g.BBox.Width, g.BBox.Height)
	for y := 0; y < bm.Height; y++ {
		if !d.next() {
			if err := d.sc.Err(); err != nil {
				return err
			}
			return fmt.Errorf("%w: glyph %q has %d of %d rows",
				ErrTruncatedBitmap, g.Name, y, bm.Height)
		}
		err := decodeRow(bm, y, d.line)
		if err != nil {
			return d.malformed(err)
		}
	}
	g.Bitmap = bm
	return nil
}

// parseInts converts the leading arguments of a record to integers.
func parseInts(args []string, dst ...*int) error {
	if len(args) < len(dst) {
		return ErrMissingArgument
	}
	for i, p := range dst {
		x, err := strconv.Atoi(args[i])
		if err != nil {
			return err
		}
		*p = x
	}
	return nil
}

func parseBox(args []string, box *BoundingBox) error {
	return parseInts(args, &box.Width, &box.Height, &box.XOffset, &box.YOffset)
}
