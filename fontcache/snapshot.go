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

package fontcache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"seehuhn.de/go/bdf"
)

// snapshotFormat must be incremented whenever the layout of bdf.Font
// changes in an incompatible way.
const snapshotFormat = 1

var errStale = errors.New("snapshot is older than the font file")

type snapshot struct {
	Format int
	Source string
	Font   *bdf.Font
}

func (c *Cache) snapshotPath(fname string) string {
	sum := sha256.Sum256([]byte(fname))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:16])+".msgpack.zst")
}

func readSnapshot(path, source string, sourceMod time.Time) (*bdf.Font, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	fi, err := fd.Stat()
	if err != nil {
		return nil, err
	}
	if fi.ModTime().Before(sourceMod) {
		return nil, errStale
	}

	zr, err := zstd.NewReader(fd, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var s snapshot
	if err := msgpack.NewDecoder(zr).Decode(&s); err != nil {
		return nil, err
	}
	if s.Format != snapshotFormat || s.Source != source || s.Font == nil {
		return nil, errStale
	}
	return s.Font, nil
}

// writeSnapshot stores f atomically, by writing to a temporary file which
// is then renamed.
func writeSnapshot(path, source string, f *bdf.Font) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	zw, err := zstd.NewWriter(tmp)
	if err != nil {
		tmp.Close()
		return err
	}
	s := &snapshot{
		Format: snapshotFormat,
		Source: source,
		Font:   f,
	}
	if err := msgpack.NewEncoder(zw).Encode(s); err != nil {
		zw.Close()
		tmp.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
