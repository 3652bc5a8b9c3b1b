package ppu_test

import (
	"testing"

	"github.com/kestrelcore/goboycore/internal/bus"
	"github.com/kestrelcore/goboycore/internal/cartridge"
	"github.com/kestrelcore/goboycore/internal/corelog"
	"github.com/kestrelcore/goboycore/internal/ioaddr"
	"github.com/kestrelcore/goboycore/internal/ppu"
)

func newBus(t *testing.T) *bus.Bus {
	t.Helper()
	rom := make([]byte, 0x8000)
	rom[0x0147] = 0x00
	cart, err := cartridge.New(rom)
	if err != nil {
		t.Fatalf("cartridge.New: %v", err)
	}
	b := bus.New(corelog.Discard())
	b.Attach(cart)
	b.Reset()
	b.WriteExternal(ioaddr.LCDC, 0x80) // LCD on, everything else default/off
	return b
}

func TestVBlankCadence(t *testing.T) {
	b := newBus(t)
	p := ppu.New()

	const ticksPerFrame = 456 * 154
	vblankRaises := 0
	for i := 0; i < ticksPerFrame; i++ {
		before := b.IF()
		p.Tick(b)
		after := b.IF()
		if after&0x01 != 0 && before&0x01 == 0 {
			vblankRaises++
		}
	}

	if !p.IsVBlankComplete() {
		t.Fatal("PPU not at ly==0, lx==0 after exactly one full frame's worth of ticks")
	}
	if vblankRaises != 1 {
		t.Fatalf("VBlank IF bit raised %d times in one frame, want 1", vblankRaises)
	}
}

func TestFramebufferDomain(t *testing.T) {
	b := newBus(t)
	p := ppu.New()

	for i := 0; i < 456*154; i++ {
		p.Tick(b)
	}
	fb := p.Framebuffer()
	if len(fb) != ppu.ScreenWidth*ppu.ScreenHeight {
		t.Fatalf("framebuffer length = %d, want %d", len(fb), ppu.ScreenWidth*ppu.ScreenHeight)
	}
	for i, v := range fb {
		if v > 3 {
			t.Fatalf("framebuffer[%d] = %d, outside the 0-3 palette-index domain", i, v)
		}
	}
}

func TestLCDOffFreezesLine(t *testing.T) {
	b := newBus(t)
	b.WriteExternal(ioaddr.LCDC, 0x00)
	p := ppu.New()

	for i := 0; i < 1000; i++ {
		p.Tick(b)
	}
	if !p.IsVBlankComplete() {
		t.Fatal("PPU with LCD off should remain parked at ly==0, lx==0")
	}
}
