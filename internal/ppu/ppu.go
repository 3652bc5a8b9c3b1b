// Package ppu implements the pixel-processing unit: the LCD line state
// machine, background/window/sprite composition, and the VBlank/LCDC
// interrupt sources.
//
// Rendering is scanline-based rather than dot-exact: a whole line's pixels
// are produced the instant drawing mode (mode 3) is entered for that line,
// rather than one pixel per dot. The spec explicitly excludes cycle-perfect
// FIFO emulation and only tests framebuffer contents and interrupt timing
// at line/frame granularity, so the externally observable behaviour is
// identical; see DESIGN.md for the full rationale.
package ppu

import "github.com/kestrelcore/goboycore/internal/ioaddr"

const (
	ScreenWidth  = 160
	ScreenHeight = 144

	dotsPerLine  = 456
	linesPerFrame = 154
)

type bus interface {
	Read(addr uint16) uint8
	WriteInternal(addr uint16, value uint8)
	RequestInterrupt(bit uint8)
}

// PPU owns the dot/line counters and the output framebuffer. LCDC, STAT,
// SCX/SCY, WX/WY, LYC and the palette registers live on the bus; PPU only
// mirrors LY there for external reads.
type PPU struct {
	lx int
	ly int

	prevMode   uint8
	prevLycHit bool

	framebuffer [ScreenWidth * ScreenHeight]uint8
}

// New returns a PPU at the power-on line/dot state.
func New() *PPU {
	return &PPU{}
}

// Reset returns the PPU to ly=0, lx=0 and clears the framebuffer.
func (p *PPU) Reset() {
	*p = PPU{}
}

// Framebuffer returns the 160x144 palette-index framebuffer, row-major.
func (p *PPU) Framebuffer() [ScreenWidth * ScreenHeight]uint8 {
	return p.framebuffer
}

// IsVBlankComplete reports whether the PPU is exactly at ly==0, lx==0 —
// the instant a freshly started frame begins.
func (p *PPU) IsVBlankComplete() bool {
	return p.ly == 0 && p.lx == 0
}

// Tick advances the PPU by one master-clock unit.
func (p *PPU) Tick(b bus) {
	lcdc := b.Read(ioaddr.LCDC)
	if lcdc&0x80 == 0 {
		p.lx, p.ly = 0, 0
		b.WriteInternal(ioaddr.LY, 0)
		p.writeSTATMode(b, 0)
		p.prevMode = 0
		return
	}

	p.lx++
	if p.lx >= dotsPerLine {
		p.lx = 0
		p.ly++
		if p.ly >= linesPerFrame {
			p.ly = 0
		}
		b.WriteInternal(ioaddr.LY, uint8(p.ly))
	}

	mode := p.computeMode()
	if mode != p.prevMode {
		p.onModeEnter(b, mode)
	}
	p.prevMode = mode

	lyc := b.Read(ioaddr.LYC)
	lycHit := uint8(p.ly) == lyc
	if lycHit && !p.prevLycHit {
		if b.Read(ioaddr.STAT)&0x40 != 0 {
			b.RequestInterrupt(ioaddr.IntLCDC)
		}
	}
	p.prevLycHit = lycHit

	p.writeSTATMode(b, mode)
	if lycHit {
		b.WriteInternal(ioaddr.STAT, b.Read(ioaddr.STAT)|0x04)
	} else {
		b.WriteInternal(ioaddr.STAT, b.Read(ioaddr.STAT)&^0x04)
	}

	if p.ly == 144 && p.lx == 0 {
		b.RequestInterrupt(ioaddr.IntVBlank)
	}
}

// computeMode derives the STAT mode from (ly, lx): VBlank for ly>=144;
// otherwise drawing for the first 160 dots, HBlank for the next 200, and
// OAM scan for the remaining dots of the line.
func (p *PPU) computeMode() uint8 {
	switch {
	case p.ly >= 144:
		return 1
	case p.lx < 160:
		return 3
	case p.lx < 360:
		return 0
	default:
		return 2
	}
}

func (p *PPU) writeSTATMode(b bus, mode uint8) {
	stat := b.Read(ioaddr.STAT)
	b.WriteInternal(ioaddr.STAT, (stat&^0x03)|mode)
}

func (p *PPU) onModeEnter(b bus, mode uint8) {
	stat := b.Read(ioaddr.STAT)
	switch mode {
	case 0:
		if stat&0x08 != 0 {
			b.RequestInterrupt(ioaddr.IntLCDC)
		}
	case 1:
		if stat&0x10 != 0 {
			b.RequestInterrupt(ioaddr.IntLCDC)
		}
	case 2:
		if stat&0x20 != 0 {
			b.RequestInterrupt(ioaddr.IntLCDC)
		}
	case 3:
		p.renderScanline(b, p.ly)
	}
}
