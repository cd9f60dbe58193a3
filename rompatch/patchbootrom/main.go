// Command patchbootrom writes a copy of the DMG boot ROM that skips
// clearing VRAM and scrolls the logo faster.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/jonathangjertsen/gbscripts/gbutil"
	"github.com/jonathangjertsen/gbscripts/rompatch"
)

var IN = flag.String("in", "assets/bootrom/dmg_boot.bin", "boot ROM to read")
var OUT = flag.String("out", "assets/bootrom/dmg_boot_patched.bin", "patched boot ROM to write")

func main() {
	flag.Parse()
	logger := gbutil.Setup(os.Stderr)

	rom, err := rompatch.LoadROM(*IN, rompatch.BootROMSize)
	if err != nil {
		log.Fatalf("patchbootrom: %v", err)
	}
	changes, err := rompatch.BootROM.Apply(rom)
	if err != nil {
		log.Fatalf("patchbootrom: %v", err)
	}
	for _, e := range rompatch.BootROM.Edits {
		logger.Debug("edit", "patch", rompatch.BootROM.Name, "range", e)
	}
	for _, c := range changes {
		logger.Debug("changed", "byte", c)
	}
	if err := rompatch.SaveROM(*OUT, rom); err != nil {
		log.Fatalf("patchbootrom: %v", err)
	}
	logger.Info("wrote patched boot rom", "out", *OUT, "changed", len(changes))
}
