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

// Package tool sets up logging for the command line programs.
package tool

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig describes where log messages go.
type LogConfig struct {
	// File, if non-empty, selects a rotated JSON log file instead of
	// text output.
	File string

	// Debug enables debug messages.
	Debug bool
}

// NewLogger creates a logger writing to w, or to the log file given in cfg.
// The returned function must be called to close the log file.
func NewLogger(w io.Writer, cfg LogConfig) (*slog.Logger, func() error) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	hopt := &slog.HandlerOptions{Level: level}

	if cfg.File == "" {
		return slog.New(slog.NewTextHandler(w, hopt)), func() error { return nil }
	}

	lj := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    16, // MB
		MaxBackups: 2,
	}
	return slog.New(slog.NewJSONHandler(lj, hopt)), lj.Close
}
