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

// Package buildinfo reports the version a command was built from.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Short returns a short version string for a command line tool, e.g.
// "bdfinfo v0.2.0" or "bdfinfo (devel 1a2b3c4d)".
func Short(name string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return name
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return fmt.Sprintf("%s %s", name, v)
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	switch {
	case rev == "":
		return name + " (devel)"
	case len(rev) > 8:
		rev = rev[:8]
	}
	if dirty {
		rev += "+dirty"
	}
	return fmt.Sprintf("%s (devel %s)", name, rev)
}
