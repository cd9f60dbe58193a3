package rompatch

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Cartridge header layout.
const (
	addrTitle          = 0x134
	titleLen           = 16
	addrCartType       = 0x147
	addrROMSize        = 0x148
	addrHeaderChecksum = 0x14d
	addrGlobalChecksum = 0x14e
	headerEnd          = 0x150
)

type Header struct {
	Title            string
	CartType         byte
	ROMSize          byte
	HeaderChecksum   byte
	HeaderChecksumOK bool
	GlobalChecksum   uint16
	GlobalChecksumOK bool
}

func (h Header) String() string {
	return fmt.Sprintf("%q type=$%02x size=$%02x hsum=$%02x(ok=%v) gsum=$%04x(ok=%v)",
		h.Title, h.CartType, h.ROMSize, h.HeaderChecksum, h.HeaderChecksumOK, h.GlobalChecksum, h.GlobalChecksumOK)
}

func ReadHeader(rom []byte) (Header, error) {
	if len(rom) < headerEnd {
		return Header{}, fmt.Errorf("image is %d bytes, header needs %d: %w", len(rom), headerEnd, ErrSize)
	}
	h := Header{
		Title:          title(rom),
		CartType:       rom[addrCartType],
		ROMSize:        rom[addrROMSize],
		HeaderChecksum: rom[addrHeaderChecksum],
		GlobalChecksum: binary.BigEndian.Uint16(rom[addrGlobalChecksum:]),
	}
	h.HeaderChecksumOK = h.HeaderChecksum == HeaderChecksum(rom)
	h.GlobalChecksumOK = h.GlobalChecksum == GlobalChecksum(rom)
	return h, nil
}

// title stops at the first NUL or at the CGB flag, which shares the last
// title byte on newer cartridges.
func title(rom []byte) string {
	var bb bytes.Buffer
	for _, b := range rom[addrTitle : addrTitle+titleLen] {
		if b == 0 || b >= 0x80 {
			break
		}
		bb.WriteByte(b)
	}
	return bb.String()
}

// HeaderChecksum is what the boot ROM checks: x = x - b - 1 over $134..$14c.
func HeaderChecksum(rom []byte) byte {
	var x byte
	for _, b := range rom[addrTitle:addrHeaderChecksum] {
		x = x - b - 1
	}
	return x
}

// GlobalChecksum sums every byte except the two checksum bytes themselves.
func GlobalChecksum(rom []byte) uint16 {
	var sum uint16
	for i, b := range rom {
		if i == addrGlobalChecksum || i == addrGlobalChecksum+1 {
			continue
		}
		sum += uint16(b)
	}
	return sum
}

// FixGlobalChecksum stores GlobalChecksum(rom) in the header.
func FixGlobalChecksum(rom []byte) error {
	if len(rom) < headerEnd {
		return fmt.Errorf("image is %d bytes, header needs %d: %w", len(rom), headerEnd, ErrSize)
	}
	binary.BigEndian.PutUint16(rom[addrGlobalChecksum:], GlobalChecksum(rom))
	return nil
}
