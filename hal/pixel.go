package hal

import "image/color"

// rgb565 packs 8-bit channels into the panel format, keeping the high bits.
func rgb565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// rgba565 widens a panel pixel back to 8 bits per channel, opaque.
func rgba565(p uint16) color.RGBA {
	return color.RGBA{
		R: uint8(uint32(p>>11&0x1f) * 255 / 31),
		G: uint8(uint32(p>>5&0x3f) * 255 / 63),
		B: uint8(uint32(p&0x1f) * 255 / 31),
		A: 0xff,
	}
}
