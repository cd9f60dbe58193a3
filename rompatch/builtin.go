package rompatch

// BootROM makes the DMG boot ROM get out of the way faster.
var BootROM = Patch{
	Name: "dmg_boot",
	Size: BootROMSize,
	Edits: []Edit{
		Fill(0x04, 0x0c, 0x00, "skip vram zeroing"),
		Fill(0x6d, 0x70, 0x00, "scroll faster"),
	},
}

// Tetris flips the byte at $38b to 1.
var Tetris = Patch{
	Name: "tetris",
	Size: CartridgeSize,
	Edits: []Edit{
		{Offset: 0x038b, Data: []byte{0x01}},
	},
}
