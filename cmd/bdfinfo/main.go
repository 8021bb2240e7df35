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

package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/bdf"
	"seehuhn.de/go/bdf/fontcache"
	"seehuhn.de/go/bdf/internal/buildinfo"
	"seehuhn.de/go/bdf/internal/tool"
)

var (
	listArg     = flag.Bool("list", false, "list all encoded glyphs")
	previewArg  = flag.Bool("preview", false, "show the glyphs in the terminal")
	pngArg      = flag.String("png", "", "write a specimen image to `file`")
	textArg     = flag.String("text", "", "show the given text instead of all glyphs")
	scaleArg    = flag.Int("scale", 1, "scale factor for -png")
	widthArg    = flag.Int("width", 0, "line width in pixels (default: terminal width, or 800 for -png)")
	dumpArg     = flag.Bool("dump", false, "dump the font metadata")
	snapshotArg = flag.String("snapshots", "", "keep decoded fonts in `dir` for faster loading")
	logArg      = flag.String("log", "", "write log messages to `file`")
	verboseArg  = flag.Bool("v", false, "show debug messages")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "bdfinfo \u2014 show information about BDF bitmap fonts\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("bdfinfo"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  bdfinfo [options] <font.bdf>...\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  font.bdf   one or more BDF files, optionally compressed (.gz, .zst)\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bdfinfo -list 6x13.bdf\n")
		fmt.Fprintf(os.Stderr, "  bdfinfo -preview -text 'Hello, World!' 9x15.bdf.gz\n")
		fmt.Fprintf(os.Stderr, "  bdfinfo -png specimen.png -scale 3 unifont.bdf\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "bdfinfo:", err)
		os.Exit(1)
	}
}

func run() error {
	if *pngArg != "" && flag.NArg() > 1 {
		return fmt.Errorf("-png needs exactly one font file")
	}

	logger, closeLog := tool.NewLogger(os.Stderr, tool.LogConfig{
		File:  *logArg,
		Debug: *verboseArg,
	})
	defer closeLog()

	cache := fontcache.New(&fontcache.Options{
		Size:        flag.NArg(),
		SnapshotDir: *snapshotArg,
		Logger:      logger,
	})

	fonts := make([]*bdf.Font, flag.NArg())
	var eg errgroup.Group
	for i, fname := range flag.Args() {
		eg.Go(func() error {
			logger.Debug("loading font", "file", fname)
			f, err := cache.Get(fname)
			if err != nil {
				return fmt.Errorf("%s: %w", fname, err)
			}
			fonts[i] = f
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	out := os.Stdout
	for i, f := range fonts {
		if i > 0 {
			fmt.Fprintln(out)
		}
		showSummary(out, flag.Arg(i), f)
		if *dumpArg {
			dumpMetadata(out, f)
		}
		if *listArg {
			listGlyphs(out, f)
		}
		if *previewArg {
			preview(out, f, *textArg, *widthArg)
		}
	}

	if *pngArg != "" {
		width := *widthArg
		if width <= 0 {
			width = 800
		}
		err := writePNG(*pngArg, fonts[0], *textArg, *scaleArg, width)
		if err != nil {
			return err
		}
		logger.Info("specimen written", "file", *pngArg)
	}
	return nil
}
