package ppu

import "github.com/kestrelcore/goboycore/internal/ioaddr"

const oamBase uint16 = 0xFE00

// renderScanline composes background, window and sprites for line ly into
// the framebuffer, in raw 2-bit palette-index form (post BGP/OBP mapping).
func (p *PPU) renderScanline(b bus, ly int) {
	lcdc := b.Read(ioaddr.LCDC)
	scx := b.Read(ioaddr.SCX)
	scy := b.Read(ioaddr.SCY)
	wy := b.Read(ioaddr.WY)
	wx := b.Read(ioaddr.WX)
	bgp := b.Read(ioaddr.BGP)

	bgMapBase := uint16(0x9800)
	if lcdc&0x08 != 0 {
		bgMapBase = 0x9C00
	}
	winMapBase := uint16(0x9800)
	if lcdc&0x40 != 0 {
		winMapBase = 0x9C00
	}

	windowActive := wx <= 166 && wy < 143 && uint8(ly) >= wy

	var raw [ScreenWidth]uint8
	for x := 0; x < ScreenWidth; x++ {
		mx := (x + int(scx)) & 0xFF
		my := (ly + int(scy)) & 0xFF
		raw[x] = p.tileColorIndex(b, lcdc, bgMapBase, mx, my)

		if windowActive {
			wxPixel := x - (int(wx) - 7)
			if wxPixel >= 0 {
				raw[x] = p.tileColorIndex(b, lcdc, winMapBase, wxPixel, ly-int(wy))
			}
		}

		p.framebuffer[ly*ScreenWidth+x] = (bgp >> (2 * raw[x])) & 0x03
	}

	p.renderSprites(b, lcdc, ly, raw)
}

// tileColorIndex returns the raw 2-bit color index (before palette mapping)
// for the pixel at map-space coordinate (mx,my) against the tile map at
// mapBase, honoring LCDC bit 4's tile-data addressing mode.
func (p *PPU) tileColorIndex(b bus, lcdc uint8, mapBase uint16, mx, my int) uint8 {
	tileX := (mx / 8) & 0x1F
	tileY := (my / 8) & 0x1F
	tileIdx := b.Read(mapBase + uint16(tileY)*32 + uint16(tileX))

	var tileAddr uint16
	if lcdc&0x10 != 0 {
		tileAddr = 0x8000 + uint16(tileIdx)*16
	} else {
		tileAddr = uint16(int32(0x9000) + int32(int8(tileIdx))*16)
	}

	return tilePixel(b, tileAddr, mx%8, my%8)
}

func tilePixel(b bus, tileAddr uint16, localX, localY int) uint8 {
	rowAddr := tileAddr + uint16(localY)*2
	lo := b.Read(rowAddr)
	hi := b.Read(rowAddr + 1)
	bit := 7 - localX
	return ((hi>>bit)&1)<<1 | ((lo >> bit) & 1)
}

// renderSprites composes up to 10 OAM-ordered sprites intersecting line ly
// on top of the raw background/window indices already written this line.
func (p *PPU) renderSprites(b bus, lcdc uint8, ly int, bgRaw [ScreenWidth]uint8) {
	if lcdc&0x02 == 0 {
		return
	}
	height := 8
	if lcdc&0x04 != 0 {
		height = 16
	}
	obp0 := b.Read(ioaddr.OBP0)
	obp1 := b.Read(ioaddr.OBP1)

	drawn := 0
	for i := 0; i < 40 && drawn < 10; i++ {
		base := oamBase + uint16(i*4)
		spriteY := int(b.Read(base)) - 16
		spriteX := int(b.Read(base+1)) - 8
		tileIdx := b.Read(base + 2)
		attr := b.Read(base + 3)

		if ly < spriteY || ly >= spriteY+height {
			continue
		}
		drawn++

		if height == 16 {
			tileIdx &^= 1
		}
		row := ly - spriteY
		if attr&0x40 != 0 {
			row = height - 1 - row
		}
		xFlip := attr&0x20 != 0
		behindBG := attr&0x80 != 0
		palette := obp0
		if attr&0x10 != 0 {
			palette = obp1
		}

		tileAddr := uint16(0x8000) + uint16(tileIdx)*16
		for sx := 0; sx < 8; sx++ {
			screenX := spriteX + sx
			if screenX < 0 || screenX >= ScreenWidth {
				continue
			}
			col := sx
			if xFlip {
				col = 7 - sx
			}
			colorIdx := tilePixel(b, tileAddr, col, row)
			if colorIdx == 0 {
				continue
			}
			if behindBG && bgRaw[screenX] != 0 {
				continue
			}
			p.framebuffer[ly*ScreenWidth+screenX] = (palette >> (2 * colorIdx)) & 0x03
		}
	}
}
