package wl6

import "image/color"

// Palette is the 256-color VGA palette shipped with the retail WL6 data
// set. Index 0xFF doubles as the sprite color key.
var Palette = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xFF}, color.RGBA{0x00, 0x00, 0xA8, 0xFF}, color.RGBA{0x00, 0xA8, 0x00, 0xFF}, color.RGBA{0x00, 0xA8, 0xA8, 0xFF},
	color.RGBA{0xA8, 0x00, 0x00, 0xFF}, color.RGBA{0xA8, 0x00, 0xA8, 0xFF}, color.RGBA{0xA8, 0x54, 0x00, 0xFF}, color.RGBA{0xA8, 0xA8, 0xA8, 0xFF},
	color.RGBA{0x54, 0x54, 0x54, 0xFF}, color.RGBA{0x54, 0x54, 0xFC, 0xFF}, color.RGBA{0x54, 0xFC, 0x54, 0xFF}, color.RGBA{0x54, 0xFC, 0xFC, 0xFF},
	color.RGBA{0xFC, 0x54, 0x54, 0xFF}, color.RGBA{0xFC, 0x54, 0xFC, 0xFF}, color.RGBA{0xFC, 0xFC, 0x54, 0xFF}, color.RGBA{0xFC, 0xFC, 0xFC, 0xFF},
	color.RGBA{0xEC, 0xEC, 0xEC, 0xFF}, color.RGBA{0xDC, 0xDC, 0xDC, 0xFF}, color.RGBA{0xD0, 0xD0, 0xD0, 0xFF}, color.RGBA{0xC0, 0xC0, 0xC0, 0xFF},
	color.RGBA{0xB4, 0xB4, 0xB4, 0xFF}, color.RGBA{0xA8, 0xA8, 0xA8, 0xFF}, color.RGBA{0x98, 0x98, 0x98, 0xFF}, color.RGBA{0x8C, 0x8C, 0x8C, 0xFF},
	color.RGBA{0x7C, 0x7C, 0x7C, 0xFF}, color.RGBA{0x70, 0x70, 0x70, 0xFF}, color.RGBA{0x64, 0x64, 0x64, 0xFF}, color.RGBA{0x54, 0x54, 0x54, 0xFF},
	color.RGBA{0x48, 0x48, 0x48, 0xFF}, color.RGBA{0x38, 0x38, 0x38, 0xFF}, color.RGBA{0x2C, 0x2C, 0x2C, 0xFF}, color.RGBA{0x20, 0x20, 0x20, 0xFF},
	color.RGBA{0xFC, 0x00, 0x00, 0xFF}, color.RGBA{0xEC, 0x00, 0x00, 0xFF}, color.RGBA{0xE0, 0x00, 0x00, 0xFF}, color.RGBA{0xD4, 0x00, 0x00, 0xFF},
	color.RGBA{0xC8, 0x00, 0x00, 0xFF}, color.RGBA{0xBC, 0x00, 0x00, 0xFF}, color.RGBA{0xB0, 0x00, 0x00, 0xFF}, color.RGBA{0xA4, 0x00, 0x00, 0xFF},
	color.RGBA{0x98, 0x00, 0x00, 0xFF}, color.RGBA{0x88, 0x00, 0x00, 0xFF}, color.RGBA{0x7C, 0x00, 0x00, 0xFF}, color.RGBA{0x70, 0x00, 0x00, 0xFF},
	color.RGBA{0x64, 0x00, 0x00, 0xFF}, color.RGBA{0x58, 0x00, 0x00, 0xFF}, color.RGBA{0x4C, 0x00, 0x00, 0xFF}, color.RGBA{0x40, 0x00, 0x00, 0xFF},
	color.RGBA{0xFC, 0xD8, 0xD8, 0xFF}, color.RGBA{0xFC, 0xB8, 0xB8, 0xFF}, color.RGBA{0xFC, 0x9C, 0x9C, 0xFF}, color.RGBA{0xFC, 0x7C, 0x7C, 0xFF},
	color.RGBA{0xFC, 0x5C, 0x5C, 0xFF}, color.RGBA{0xFC, 0x40, 0x40, 0xFF}, color.RGBA{0xFC, 0x20, 0x20, 0xFF}, color.RGBA{0xFC, 0x00, 0x00, 0xFF},
	color.RGBA{0xFC, 0xA8, 0x5C, 0xFF}, color.RGBA{0xFC, 0x98, 0x40, 0xFF}, color.RGBA{0xFC, 0x88, 0x20, 0xFF}, color.RGBA{0xFC, 0x78, 0x00, 0xFF},
	color.RGBA{0xE4, 0x6C, 0x00, 0xFF}, color.RGBA{0xCC, 0x60, 0x00, 0xFF}, color.RGBA{0xB4, 0x54, 0x00, 0xFF}, color.RGBA{0x9C, 0x4C, 0x00, 0xFF},
	color.RGBA{0xFC, 0xFC, 0xD8, 0xFF}, color.RGBA{0xFC, 0xFC, 0xB8, 0xFF}, color.RGBA{0xFC, 0xFC, 0x9C, 0xFF}, color.RGBA{0xFC, 0xFC, 0x7C, 0xFF},
	color.RGBA{0xFC, 0xF8, 0x5C, 0xFF}, color.RGBA{0xFC, 0xF4, 0x40, 0xFF}, color.RGBA{0xFC, 0xF4, 0x20, 0xFF}, color.RGBA{0xFC, 0xF4, 0x00, 0xFF},
	color.RGBA{0xE4, 0xD8, 0x00, 0xFF}, color.RGBA{0xCC, 0xC4, 0x00, 0xFF}, color.RGBA{0xB4, 0xAC, 0x00, 0xFF}, color.RGBA{0x9C, 0x9C, 0x00, 0xFF},
	color.RGBA{0x84, 0x84, 0x00, 0xFF}, color.RGBA{0x70, 0x6C, 0x00, 0xFF}, color.RGBA{0x58, 0x54, 0x00, 0xFF}, color.RGBA{0x40, 0x40, 0x00, 0xFF},
	color.RGBA{0xD0, 0xFC, 0x5C, 0xFF}, color.RGBA{0xC4, 0xFC, 0x40, 0xFF}, color.RGBA{0xB4, 0xFC, 0x20, 0xFF}, color.RGBA{0xA0, 0xFC, 0x00, 0xFF},
	color.RGBA{0x90, 0xE4, 0x00, 0xFF}, color.RGBA{0x80, 0xCC, 0x00, 0xFF}, color.RGBA{0x74, 0xB4, 0x00, 0xFF}, color.RGBA{0x60, 0x9C, 0x00, 0xFF},
	color.RGBA{0xD8, 0xFC, 0xD8, 0xFF}, color.RGBA{0xBC, 0xFC, 0xB8, 0xFF}, color.RGBA{0x9C, 0xFC, 0x9C, 0xFF}, color.RGBA{0x80, 0xFC, 0x7C, 0xFF},
	color.RGBA{0x60, 0xFC, 0x5C, 0xFF}, color.RGBA{0x40, 0xFC, 0x40, 0xFF}, color.RGBA{0x20, 0xFC, 0x20, 0xFF}, color.RGBA{0x00, 0xFC, 0x00, 0xFF},
	color.RGBA{0x00, 0xFC, 0x00, 0xFF}, color.RGBA{0x00, 0xEC, 0x00, 0xFF}, color.RGBA{0x00, 0xE0, 0x00, 0xFF}, color.RGBA{0x00, 0xD4, 0x00, 0xFF},
	color.RGBA{0x04, 0xC8, 0x00, 0xFF}, color.RGBA{0x04, 0xBC, 0x00, 0xFF}, color.RGBA{0x04, 0xB0, 0x00, 0xFF}, color.RGBA{0x04, 0xA4, 0x00, 0xFF},
	color.RGBA{0x04, 0x98, 0x00, 0xFF}, color.RGBA{0x04, 0x88, 0x00, 0xFF}, color.RGBA{0x04, 0x7C, 0x00, 0xFF}, color.RGBA{0x04, 0x70, 0x00, 0xFF},
	color.RGBA{0x04, 0x64, 0x00, 0xFF}, color.RGBA{0x04, 0x58, 0x00, 0xFF}, color.RGBA{0x04, 0x4C, 0x00, 0xFF}, color.RGBA{0x04, 0x40, 0x00, 0xFF},
	color.RGBA{0xD8, 0xFC, 0xFC, 0xFF}, color.RGBA{0xB8, 0xFC, 0xFC, 0xFF}, color.RGBA{0x9C, 0xFC, 0xFC, 0xFF}, color.RGBA{0x7C, 0xFC, 0xF8, 0xFF},
	color.RGBA{0x5C, 0xFC, 0xFC, 0xFF}, color.RGBA{0x40, 0xFC, 0xFC, 0xFF}, color.RGBA{0x20, 0xFC, 0xFC, 0xFF}, color.RGBA{0x00, 0xFC, 0xFC, 0xFF},
	color.RGBA{0x00, 0xE4, 0xE4, 0xFF}, color.RGBA{0x00, 0xCC, 0xCC, 0xFF}, color.RGBA{0x00, 0xB4, 0xB4, 0xFF}, color.RGBA{0x00, 0x9C, 0x9C, 0xFF},
	color.RGBA{0x00, 0x84, 0x84, 0xFF}, color.RGBA{0x00, 0x70, 0x70, 0xFF}, color.RGBA{0x00, 0x58, 0x58, 0xFF}, color.RGBA{0x00, 0x40, 0x40, 0xFF},
	color.RGBA{0x5C, 0xBC, 0xFC, 0xFF}, color.RGBA{0x40, 0xB0, 0xFC, 0xFF}, color.RGBA{0x20, 0xA8, 0xFC, 0xFF}, color.RGBA{0x00, 0x9C, 0xFC, 0xFF},
	color.RGBA{0x00, 0x8C, 0xE4, 0xFF}, color.RGBA{0x00, 0x7C, 0xCC, 0xFF}, color.RGBA{0x00, 0x6C, 0xB4, 0xFF}, color.RGBA{0x00, 0x5C, 0x9C, 0xFF},
	color.RGBA{0xD8, 0xD8, 0xFC, 0xFF}, color.RGBA{0xB8, 0xBC, 0xFC, 0xFF}, color.RGBA{0x9C, 0x9C, 0xFC, 0xFF}, color.RGBA{0x7C, 0x80, 0xFC, 0xFF},
	color.RGBA{0x5C, 0x60, 0xFC, 0xFF}, color.RGBA{0x40, 0x40, 0xFC, 0xFF}, color.RGBA{0x20, 0x24, 0xFC, 0xFF}, color.RGBA{0x00, 0x04, 0xFC, 0xFF},
	color.RGBA{0x00, 0x00, 0xFC, 0xFF}, color.RGBA{0x00, 0x00, 0xEC, 0xFF}, color.RGBA{0x00, 0x00, 0xE0, 0xFF}, color.RGBA{0x00, 0x00, 0xD4, 0xFF},
	color.RGBA{0x00, 0x00, 0xC8, 0xFF}, color.RGBA{0x00, 0x00, 0xBC, 0xFF}, color.RGBA{0x00, 0x00, 0xB0, 0xFF}, color.RGBA{0x00, 0x00, 0xA4, 0xFF},
	color.RGBA{0x00, 0x00, 0x98, 0xFF}, color.RGBA{0x00, 0x00, 0x88, 0xFF}, color.RGBA{0x00, 0x00, 0x7C, 0xFF}, color.RGBA{0x00, 0x00, 0x70, 0xFF},
	color.RGBA{0x00, 0x00, 0x64, 0xFF}, color.RGBA{0x00, 0x00, 0x58, 0xFF}, color.RGBA{0x00, 0x00, 0x4C, 0xFF}, color.RGBA{0x00, 0x00, 0x40, 0xFF},
	color.RGBA{0x28, 0x28, 0x28, 0xFF}, color.RGBA{0xFC, 0xE0, 0x34, 0xFF}, color.RGBA{0xFC, 0xD4, 0x24, 0xFF}, color.RGBA{0xFC, 0xCC, 0x18, 0xFF},
	color.RGBA{0xFC, 0xC0, 0x08, 0xFF}, color.RGBA{0xFC, 0xB4, 0x00, 0xFF}, color.RGBA{0xB4, 0x20, 0xFC, 0xFF}, color.RGBA{0xA8, 0x00, 0xFC, 0xFF},
	color.RGBA{0x98, 0x00, 0xE4, 0xFF}, color.RGBA{0x80, 0x00, 0xCC, 0xFF}, color.RGBA{0x74, 0x00, 0xB4, 0xFF}, color.RGBA{0x60, 0x00, 0x9C, 0xFF},
	color.RGBA{0x50, 0x00, 0x84, 0xFF}, color.RGBA{0x44, 0x00, 0x70, 0xFF}, color.RGBA{0x34, 0x00, 0x58, 0xFF}, color.RGBA{0x28, 0x00, 0x40, 0xFF},
	color.RGBA{0xFC, 0xD8, 0xFC, 0xFF}, color.RGBA{0xFC, 0xB8, 0xFC, 0xFF}, color.RGBA{0xFC, 0x9C, 0xFC, 0xFF}, color.RGBA{0xFC, 0x7C, 0xFC, 0xFF},
	color.RGBA{0xFC, 0x5C, 0xFC, 0xFF}, color.RGBA{0xFC, 0x40, 0xFC, 0xFF}, color.RGBA{0xFC, 0x20, 0xFC, 0xFF}, color.RGBA{0xFC, 0x00, 0xFC, 0xFF},
	color.RGBA{0xE0, 0x00, 0xE4, 0xFF}, color.RGBA{0xC8, 0x00, 0xCC, 0xFF}, color.RGBA{0xB4, 0x00, 0xB4, 0xFF}, color.RGBA{0x9C, 0x00, 0x9C, 0xFF},
	color.RGBA{0x84, 0x00, 0x84, 0xFF}, color.RGBA{0x6C, 0x00, 0x70, 0xFF}, color.RGBA{0x58, 0x00, 0x58, 0xFF}, color.RGBA{0x40, 0x00, 0x40, 0xFF},
	color.RGBA{0xFC, 0xE8, 0xDC, 0xFF}, color.RGBA{0xFC, 0xE0, 0xD0, 0xFF}, color.RGBA{0xFC, 0xD8, 0xC4, 0xFF}, color.RGBA{0xFC, 0xD4, 0xBC, 0xFF},
	color.RGBA{0xFC, 0xCC, 0xB0, 0xFF}, color.RGBA{0xFC, 0xC4, 0xA4, 0xFF}, color.RGBA{0xFC, 0xBC, 0x9C, 0xFF}, color.RGBA{0xFC, 0xB8, 0x90, 0xFF},
	color.RGBA{0xFC, 0xB0, 0x80, 0xFF}, color.RGBA{0xFC, 0xA4, 0x70, 0xFF}, color.RGBA{0xFC, 0x9C, 0x60, 0xFF}, color.RGBA{0xF0, 0x94, 0x5C, 0xFF},
	color.RGBA{0xE8, 0x8C, 0x58, 0xFF}, color.RGBA{0xDC, 0x88, 0x54, 0xFF}, color.RGBA{0xD0, 0x80, 0x50, 0xFF}, color.RGBA{0xC8, 0x7C, 0x4C, 0xFF},
	color.RGBA{0xBC, 0x78, 0x48, 0xFF}, color.RGBA{0xB4, 0x70, 0x44, 0xFF}, color.RGBA{0xA8, 0x68, 0x40, 0xFF}, color.RGBA{0xA0, 0x64, 0x3C, 0xFF},
	color.RGBA{0x9C, 0x60, 0x38, 0xFF}, color.RGBA{0x90, 0x5C, 0x34, 0xFF}, color.RGBA{0x88, 0x58, 0x30, 0xFF}, color.RGBA{0x80, 0x50, 0x2C, 0xFF},
	color.RGBA{0x74, 0x4C, 0x28, 0xFF}, color.RGBA{0x6C, 0x48, 0x24, 0xFF}, color.RGBA{0x5C, 0x40, 0x20, 0xFF}, color.RGBA{0x54, 0x3C, 0x1C, 0xFF},
	color.RGBA{0x48, 0x38, 0x18, 0xFF}, color.RGBA{0x40, 0x30, 0x18, 0xFF}, color.RGBA{0x38, 0x2C, 0x14, 0xFF}, color.RGBA{0x28, 0x20, 0x0C, 0xFF},
	color.RGBA{0x60, 0x00, 0x64, 0xFF}, color.RGBA{0x00, 0x64, 0x64, 0xFF}, color.RGBA{0x00, 0x60, 0x60, 0xFF}, color.RGBA{0x00, 0x00, 0x1C, 0xFF},
	color.RGBA{0x00, 0x00, 0x2C, 0xFF}, color.RGBA{0x30, 0x24, 0x10, 0xFF}, color.RGBA{0x48, 0x00, 0x48, 0xFF}, color.RGBA{0x50, 0x00, 0x50, 0xFF},
	color.RGBA{0x00, 0x00, 0x34, 0xFF}, color.RGBA{0x1C, 0x1C, 0x1C, 0xFF}, color.RGBA{0x4C, 0x4C, 0x4C, 0xFF}, color.RGBA{0x5C, 0x5C, 0x5C, 0xFF},
	color.RGBA{0x40, 0x40, 0x40, 0xFF}, color.RGBA{0x30, 0x30, 0x30, 0xFF}, color.RGBA{0x34, 0x34, 0x34, 0xFF}, color.RGBA{0xD8, 0xF4, 0xF4, 0xFF},
	color.RGBA{0xB8, 0xE8, 0xE8, 0xFF}, color.RGBA{0x9C, 0xDC, 0xDC, 0xFF}, color.RGBA{0x74, 0xC8, 0xC8, 0xFF}, color.RGBA{0x48, 0xC0, 0xC0, 0xFF},
	color.RGBA{0x20, 0xB4, 0xB4, 0xFF}, color.RGBA{0x20, 0xB0, 0xB0, 0xFF}, color.RGBA{0x00, 0xA4, 0xA4, 0xFF}, color.RGBA{0x00, 0x98, 0x98, 0xFF},
	color.RGBA{0x00, 0x8C, 0x8C, 0xFF}, color.RGBA{0x00, 0x84, 0x84, 0xFF}, color.RGBA{0x00, 0x7C, 0x7C, 0xFF}, color.RGBA{0x00, 0x78, 0x78, 0xFF},
	color.RGBA{0x00, 0x74, 0x74, 0xFF}, color.RGBA{0x00, 0x70, 0x70, 0xFF}, color.RGBA{0x00, 0x6C, 0x6C, 0xFF}, color.RGBA{0x98, 0x00, 0x88, 0xFF},
}
