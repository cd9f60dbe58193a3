// Package rompatch applies fixed-offset byte patches to Game Boy boot ROM
// and cartridge images, and reads the cartridge header.
package rompatch

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	. "github.com/strickyak/gomar/gu"
)

var (
	ErrSize       = errors.New("unexpected image size")
	ErrOutOfRange = errors.New("edit outside image")
)

const (
	BootROMSize   = 0x100
	CartridgeSize = 0x8000
)

// Edit overwrites len(Data) bytes starting at Offset.
type Edit struct {
	Offset int
	Data   []byte
	Note   string
}

// Fill sets every byte in [start, end) to v.
func Fill(start, end int, v byte, note string) Edit {
	return Edit{Offset: start, Data: bytes.Repeat([]byte{v}, end-start), Note: note}
}

func (e Edit) End() int {
	return e.Offset + len(e.Data)
}

func (e Edit) String() string {
	s := Fmt("%s..%s", Hex(e.Offset), Hex(e.End()))
	if e.Note != "" {
		s += " (" + e.Note + ")"
	}
	return s
}

// Patch is a named list of edits for images of one size. Size 0 takes any size.
type Patch struct {
	Name  string
	Size  int
	Edits []Edit
}

// Change records one byte that Apply actually modified.
type Change struct {
	Offset   int
	Old, New byte
}

func (c Change) String() string {
	return Fmt("%s: %s -> %s", Hex(c.Offset), Hex(c.Old), Hex(c.New))
}

// Apply checks every edit against rom and then writes them in order.
// Nothing is written if any check fails.
func (p Patch) Apply(rom []byte) ([]Change, error) {
	if p.Size != 0 && len(rom) != p.Size {
		return nil, fmt.Errorf("%s: image is %d bytes, want %d: %w", p.Name, len(rom), p.Size, ErrSize)
	}
	for _, e := range p.Edits {
		if e.Offset < 0 || e.End() > len(rom) {
			return nil, fmt.Errorf("%s: edit %v in %d byte image: %w", p.Name, e, len(rom), ErrOutOfRange)
		}
	}

	var changes []Change
	for _, e := range p.Edits {
		for i, v := range e.Data {
			off := e.Offset + i
			if rom[off] == v {
				continue
			}
			changes = append(changes, Change{Offset: off, Old: rom[off], New: v})
			rom[off] = v
		}
	}
	return changes, nil
}

// LoadROM reads an image and checks its size, unless size is 0.
func LoadROM(filename string, size int) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading image '%s': %w", filename, err)
	}
	if size != 0 && len(data) != size {
		return nil, fmt.Errorf("image '%s' is %d bytes, want %d: %w", filename, len(data), size, ErrSize)
	}
	return data, nil
}

func SaveROM(filename string, rom []byte) error {
	if err := os.WriteFile(filename, rom, 0o666); err != nil {
		return fmt.Errorf("error writing image '%s': %w", filename, err)
	}
	return nil
}
