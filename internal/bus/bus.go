// Package bus implements the Game Boy memory map: the single mutable
// resource shared, one borrow at a time, by every other subsystem.
package bus

import (
	"github.com/kestrelcore/goboycore/internal/cartridge"
	"github.com/kestrelcore/goboycore/internal/corelog"
	"github.com/kestrelcore/goboycore/internal/ioaddr"
)

// Bus owns every region of the 16-bit address space that isn't the
// cartridge itself, and routes reads/writes to the cartridge, work RAM,
// video RAM, OAM, HRAM or the I/O register block.
type Bus struct {
	Cart *cartridge.Cartridge

	wram [0x2000]uint8
	vram [0x2000]uint8
	oam  [0xA0]uint8
	io   [0x80]uint8 // 0xFF00-0xFF7F
	hram [0x7F]uint8 // 0xFF80-0xFFFE
	ie   uint8

	log corelog.Logger
}

// New returns a Bus with all RAM zeroed. Cart must be set (via Attach)
// before the bus is used.
func New(log corelog.Logger) *Bus {
	if log == nil {
		log = corelog.Discard()
	}
	return &Bus{log: log}
}

// Attach wires a cartridge into the bus. Console calls this once per
// LoadROM.
func (b *Bus) Attach(cart *cartridge.Cartridge) {
	b.Cart = cart
}

// Reset zeroes every RAM region and register, matching power-on IF=0x00,
// IE=0xFF.
func (b *Bus) Reset() {
	b.wram = [0x2000]uint8{}
	b.vram = [0x2000]uint8{}
	b.oam = [0xA0]uint8{}
	b.io = [0x80]uint8{}
	b.hram = [0x7F]uint8{}
	b.ie = 0xFF
}

// Read returns the byte visible at addr. Reads never have observable side
// effects.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x8000:
		return b.Cart.Read(addr)
	case addr <= 0x9FFF:
		return b.vram[addr-0x8000]
	case addr <= 0xBFFF:
		return b.Cart.Read(addr)
	case addr <= 0xDFFF:
		return b.wram[addr-0xC000]
	case addr <= 0xFDFF:
		return b.wram[addr-0xE000]
	case addr <= 0xFE9F:
		return b.oam[addr-0xFE00]
	case addr <= 0xFEFF:
		return 0xFF
	case addr <= 0xFF7F:
		return b.io[addr-0xFF00]
	case addr <= 0xFFFE:
		return b.hram[addr-0xFF80]
	default: // 0xFFFF
		return b.ie | 0xE0
	}
}

// WriteExternal performs a write originating from the CPU (or any other
// guest-visible write). Writes below 0x8000 are MBC control-register
// writes, never memory writes. Writing DIV or LY resets them to zero
// instead of storing the written value — the PPU/Timer must use
// WriteInternal to actually advance those registers. Writing the DMA
// register (0xFF46) triggers an immediate, synchronous OAM transfer.
func (b *Bus) WriteExternal(addr uint16, value uint8) {
	switch {
	case addr < 0x8000:
		b.Cart.Write(addr, value)
	case addr <= 0x9FFF:
		b.vram[addr-0x8000] = value
	case addr <= 0xBFFF:
		b.Cart.Write(addr, value)
	case addr <= 0xDFFF:
		b.wram[addr-0xC000] = value
	case addr <= 0xFDFF:
		b.wram[addr-0xE000] = value
	case addr <= 0xFE9F:
		b.oam[addr-0xFE00] = value
	case addr <= 0xFEFF:
		// unused, writes dropped
	case addr == ioaddr.DIV, addr == ioaddr.LY:
		b.io[addr-0xFF00] = 0
	case addr == ioaddr.DMA:
		b.io[addr-0xFF00] = value
		b.runOAMDMA(value)
	case addr <= 0xFF7F:
		b.io[addr-0xFF00] = value
	case addr <= 0xFFFE:
		b.hram[addr-0xFF80] = value
	default: // 0xFFFF
		b.ie = value
	}
}

// WriteInternal performs a write originating from a subsystem acting on
// the guest's behalf (the PPU advancing LY, the Timer advancing DIV). It
// stores exactly the given value with none of WriteExternal's
// guest-write side effects.
func (b *Bus) WriteInternal(addr uint16, value uint8) {
	switch {
	case addr < 0x8000:
		// ROM is immutable even to internal writes.
	case addr <= 0x9FFF:
		b.vram[addr-0x8000] = value
	case addr <= 0xBFFF:
		b.Cart.Write(addr, value)
	case addr <= 0xDFFF:
		b.wram[addr-0xC000] = value
	case addr <= 0xFDFF:
		b.wram[addr-0xE000] = value
	case addr <= 0xFE9F:
		b.oam[addr-0xFE00] = value
	case addr <= 0xFEFF:
	case addr <= 0xFF7F:
		b.io[addr-0xFF00] = value
	case addr <= 0xFFFE:
		b.hram[addr-0xFF80] = value
	default:
		b.ie = value
	}
}

// runOAMDMA copies 160 bytes from (src<<8) into OAM. It completes
// synchronously within the triggering write, matching the engine's
// cooperative, no-suspension-points tick model.
func (b *Bus) runOAMDMA(src uint8) {
	base := uint16(src) << 8
	for i := uint16(0); i < 0xA0; i++ {
		b.oam[i] = b.Read(base + i)
	}
}

// RequestInterrupt sets bit in the IF register.
func (b *Bus) RequestInterrupt(bit uint8) {
	b.io[ioaddr.IF-0xFF00] |= 1 << bit
}

// ClearInterrupt clears bit in the IF register.
func (b *Bus) ClearInterrupt(bit uint8) {
	b.io[ioaddr.IF-0xFF00] &^= 1 << bit
}

// IF returns the live IF register, low 5 bits meaningful.
func (b *Bus) IF() uint8 { return b.io[ioaddr.IF-0xFF00] & 0x1F }

// IE returns the live IE register, low 5 bits meaningful.
func (b *Bus) IE() uint8 { return b.ie & 0x1F }

// Log exposes the shared logger so subsystems constructed with only a
// *Bus reference (rather than their own logger) can still report locally
// recovered anomalies.
func (b *Bus) Log() corelog.Logger { return b.log }
