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
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const testFont = `STARTFONT 2.1
FONT test
SIZE 8 75 75
FONTBOUNDINGBOX 4 2 0 0
CHARS 1
STARTCHAR dot
ENCODING 46
SWIDTH 500 0
DWIDTH 4 0
BBX 4 2 0 0
BITMAP
60
90
ENDCHAR
ENDFONT
`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFont(t *testing.T, dir, body string) string {
	t.Helper()
	fname := filepath.Join(dir, "test.bdf")
	if err := os.WriteFile(fname, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestGetMemory(t *testing.T) {
	fname := writeFont(t, t.TempDir(), testFont)
	c := New(&Options{Logger: quietLogger()})

	f1, err := c.Get(fname)
	if err != nil {
		t.Fatal(err)
	}
	if f1.Name != "test" || len(f1.Glyphs) != 1 {
		t.Fatalf("unexpected font %+v", f1.Metadata)
	}

	// later calls are served from memory, even if the file is gone
	if err := os.Remove(fname); err != nil {
		t.Fatal(err)
	}
	f2, err := c.Get(fname)
	if err != nil {
		t.Fatal(err)
	}
	if f1 != f2 {
		t.Error("second Get decoded the font again")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d", c.Len())
	}

	c.Forget(fname)
	if _, err := c.Get(fname); err == nil {
		t.Error("expected error for removed file")
	}
}

func TestGetConcurrent(t *testing.T) {
	fname := writeFont(t, t.TempDir(), testFont)
	c := New(&Options{Logger: quietLogger()})

	const n = 8
	fonts := make([]any, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f, err := c.Get(fname)
			if err != nil {
				t.Error(err)
				return
			}
			fonts[i] = f
		}()
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if fonts[i] != fonts[0] {
			t.Fatalf("goroutine %d got a different font", i)
		}
	}
}

func TestGetError(t *testing.T) {
	fname := writeFont(t, t.TempDir(), "STARTFONT 2.1\n")
	c := New(&Options{Logger: quietLogger()})
	if _, err := c.Get(fname); err == nil {
		t.Fatal("expected an error")
	}
	if c.Len() != 0 {
		t.Error("failed decode was cached")
	}
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	snapDir := filepath.Join(dir, "snapshots")
	fname := writeFont(t, dir, testFont)
	old := time.Now().Add(-time.Hour)
	if err := os.Chtimes(fname, old, old); err != nil {
		t.Fatal(err)
	}

	opt := &Options{SnapshotDir: snapDir, Logger: quietLogger()}
	want, err := New(opt).Get(fname)
	if err != nil {
		t.Fatal(err)
	}

	abs, err := filepath.Abs(fname)
	if err != nil {
		t.Fatal(err)
	}
	c := New(opt)
	if _, err := os.Stat(c.snapshotPath(abs)); err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}

	// Break the font file without touching its modification time.  A fresh
	// cache must now use the snapshot.
	if err := os.WriteFile(fname, []byte("STARTFONT 2.1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(fname, old, old); err != nil {
		t.Fatal(err)
	}
	got, err := c.Get(fname)
	if err != nil {
		t.Fatalf("snapshot not used: %v", err)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("snapshot differs (-want +got):\n%s", d)
	}

	// Once the font file is newer than the snapshot, it is decoded again.
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(fname, future, future); err != nil {
		t.Fatal(err)
	}
	if _, err := New(opt).Get(fname); err == nil {
		t.Error("stale snapshot was used")
	}
}

func TestSnapshotCorrupt(t *testing.T) {
	dir := t.TempDir()
	fname := writeFont(t, dir, testFont)
	old := time.Now().Add(-time.Hour)
	if err := os.Chtimes(fname, old, old); err != nil {
		t.Fatal(err)
	}

	opt := &Options{SnapshotDir: filepath.Join(dir, "snap"), Logger: quietLogger()}
	c := New(opt)
	abs, err := filepath.Abs(fname)
	if err != nil {
		t.Fatal(err)
	}
	snap := c.snapshotPath(abs)
	if err := os.MkdirAll(filepath.Dir(snap), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(snap, []byte("not a snapshot"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := c.Get(fname)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Glyphs) != 1 {
		t.Fatalf("unexpected font %+v", f)
	}

	// the snapshot has been replaced by a valid one
	g, err := readSnapshot(snap, abs, old)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(f, g); d != "" {
		t.Errorf("rewritten snapshot differs (-want +got):\n%s", d)
	}
}
