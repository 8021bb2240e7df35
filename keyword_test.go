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

import "testing"

func TestClassify(t *testing.T) {
	for kw := kwStartFont; kw <= kwEndFont; kw++ {
		name := kw.String()
		if got := classify(name); got != kw {
			t.Errorf("classify(%q) = %v, want %v", name, got, kw)
		}
		if got := classify(name); got != kw {
			t.Errorf("classify(%q) is not stable: %v", name, got)
		}
	}
}

func TestClassifyUnknown(t *testing.T) {
	for _, token := range []string{"", "COMMENT", "FOUNDRY", "startfont", "ENDFONT2", "unknown", "FF"} {
		if got := classify(token); got != kwUnknown {
			t.Errorf("classify(%q) = %v, want kwUnknown", token, got)
		}
	}
}

func TestKeywordString(t *testing.T) {
	if s := keyword(-1).String(); s != "unknown" {
		t.Errorf("keyword(-1).String() = %q", s)
	}
	if s := keyword(1000).String(); s != "unknown" {
		t.Errorf("keyword(1000).String() = %q", s)
	}
	if s := kwFontBoundingBox.String(); s != "FONTBOUNDINGBOX" {
		t.Errorf("kwFontBoundingBox.String() = %q", s)
	}
}
