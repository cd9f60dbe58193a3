// Command patchcart patches a cartridge image in place.
//
// Without -codes it applies the built-in Tetris patch. A codes file holds
// one edit per line, "offset value...", e.g. "$38b 1".
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jonathangjertsen/gbscripts/gbutil"
	"github.com/jonathangjertsen/gbscripts/rompatch"
	. "github.com/strickyak/gomar/gu"
)

var ROM = flag.String("rom", "assets/cartridges/tetris.gb", "cartridge image")
var CODES = flag.String("codes", "", "file of edits to apply instead of the built-in patch")
var OUT = flag.String("out", "", "write here instead of back to -rom")
var FIXSUM = flag.Bool("fixsum", false, "recompute the global checksum after patching")

func main() {
	flag.Parse()
	logger := gbutil.Setup(os.Stderr)

	patch := rompatch.Tetris
	if *CODES != "" {
		r := Value(os.Open(*CODES))
		edits, err := rompatch.ParseEdits(r)
		r.Close()
		if err != nil {
			log.Fatalf("patchcart: %s: %v", *CODES, err)
		}
		patch = rompatch.Patch{Name: *CODES, Edits: edits}
	}

	rom, err := rompatch.LoadROM(*ROM, patch.Size)
	if err != nil {
		log.Fatalf("patchcart: %v", err)
	}
	if h, err := rompatch.ReadHeader(rom); err == nil {
		logger.Info("cartridge", "header", h)
	}
	for _, e := range patch.Edits {
		for i := range e.Data {
			if off := e.Offset + i; off < len(rom) {
				fmt.Printf("original byte at %s: %d\n", Hex(off), rom[off])
			}
		}
	}

	changes, err := patch.Apply(rom)
	if err != nil {
		log.Fatalf("patchcart: %v", err)
	}
	for _, c := range changes {
		logger.Debug("changed", "byte", c)
	}
	if *FIXSUM {
		Check(rompatch.FixGlobalChecksum(rom))
	}

	out := Cond(*OUT != "", *OUT, *ROM)
	if err := rompatch.SaveROM(out, rom); err != nil {
		log.Fatalf("patchcart: %v", err)
	}
	logger.Info("wrote patched cartridge", "out", out, "changed", len(changes))
}
