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

// Package fontcache keeps decoded BDF fonts in memory, so that a program
// which uses a font in several places only decodes it once.
//
// Optionally, decoded fonts are also stored on disk as compressed
// snapshots.  A snapshot is used instead of the BDF file as long as the
// BDF file has not been modified after the snapshot was written.
//
// A Cache can be used concurrently from several goroutines.  Concurrent
// requests for the same file share a single decode.  The returned fonts are
// shared between callers and must not be modified.
package fontcache

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"seehuhn.de/go/bdf"
)

// Options configures a Cache.  A nil *Options selects the defaults.
type Options struct {
	// Size is the maximum number of fonts kept in memory.
	// The default is 16.
	Size int

	// TTL is the time after which a font is dropped from memory.
	// The default is one hour.
	TTL time.Duration

	// SnapshotDir, if non-empty, is the directory used for on-disk
	// snapshots.  The directory is created when needed.
	SnapshotDir string

	// Logger is used for decoder warnings and for snapshot problems.
	// If this is nil, slog.Default() is used.
	Logger *slog.Logger
}

// Cache maps file names to decoded fonts.
type Cache struct {
	mem   *expirable.LRU[string, *bdf.Font]
	group singleflight.Group

	dir string
	log *slog.Logger
}

// New allocates a new Cache.
func New(opt *Options) *Cache {
	if opt == nil {
		opt = &Options{}
	}
	size := opt.Size
	if size <= 0 {
		size = 16
	}
	ttl := opt.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	logger := opt.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Cache{
		mem: expirable.NewLRU[string, *bdf.Font](size, nil, ttl),
		dir: opt.SnapshotDir,
		log: logger,
	}
}

// Get returns the font stored in the named file.
func (c *Cache) Get(fname string) (*bdf.Font, error) {
	key, err := filepath.Abs(fname)
	if err != nil {
		return nil, err
	}
	if f, ok := c.mem.Get(key); ok {
		return f, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		f, err := c.load(key)
		if err != nil {
			return nil, err
		}
		c.mem.Add(key, f)
		return f, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*bdf.Font), nil
}

// Forget removes the named file from memory.  Snapshots are kept.
func (c *Cache) Forget(fname string) {
	key, err := filepath.Abs(fname)
	if err != nil {
		return
	}
	c.mem.Remove(key)
}

// Len returns the number of fonts held in memory.
func (c *Cache) Len() int {
	return c.mem.Len()
}

func (c *Cache) load(fname string) (*bdf.Font, error) {
	opt := &bdf.Options{Logger: c.log}
	if c.dir == "" {
		return bdf.Open(fname, opt)
	}

	fi, err := os.Stat(fname)
	if err != nil {
		return nil, err
	}
	snap := c.snapshotPath(fname)
	f, err := readSnapshot(snap, fname, fi.ModTime())
	if err == nil {
		return f, nil
	} else if !os.IsNotExist(err) && err != errStale {
		c.log.Warn("ignoring font snapshot",
			slog.String("file", snap),
			slog.Any("error", err))
	}

	f, err = bdf.Open(fname, opt)
	if err != nil {
		return nil, err
	}
	err = writeSnapshot(snap, fname, f)
	if err != nil {
		c.log.Warn("cannot write font snapshot",
			slog.String("file", snap),
			slog.Any("error", err))
	}
	return f, nil
}
