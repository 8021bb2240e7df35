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

// section identifies one of the nested regions of a BDF file.
type section uint8

const (
	sectionFont section = iota + 1
	sectionProperties
	sectionChar
)

func (s section) String() string {
	switch s {
	case sectionFont:
		return "FONT"
	case sectionProperties:
		return "PROPERTIES"
	case sectionChar:
		return "CHAR"
	default:
		return "?"
	}
}

// sectionStack keeps track of the currently open sections.
type sectionStack []section

func (s *sectionStack) push(sec section) {
	*s = append(*s, sec)
}

// pop closes the innermost section, which must be of kind want.
func (s *sectionStack) pop(want section) error {
	n := len(*s)
	if n == 0 {
		return ErrUnbalanced
	}
	got := (*s)[n-1]
	if got != want {
		return &SectionError{Open: got.String(), Close: want.String()}
	}
	*s = (*s)[:n-1]
	return nil
}

// top returns the innermost open section, or 0 if no section is open.
func (s sectionStack) top() section {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}
