// Package console wires the Bus, CPU, PPU, Timer, Joypad and Wave channel
// together behind a single host-facing façade: load a ROM, pulse the
// master clock, poll the framebuffer and audio buffer, inject input.
package console

import (
	"github.com/kestrelcore/goboycore/internal/apu"
	"github.com/kestrelcore/goboycore/internal/bus"
	"github.com/kestrelcore/goboycore/internal/cartridge"
	"github.com/kestrelcore/goboycore/internal/corelog"
	"github.com/kestrelcore/goboycore/internal/cpu"
	"github.com/kestrelcore/goboycore/internal/ioaddr"
	"github.com/kestrelcore/goboycore/internal/joypad"
	"github.com/kestrelcore/goboycore/internal/ppu"
	"github.com/kestrelcore/goboycore/internal/timer"
)

// Console is a plain value: multiple independent consoles can coexist, and
// nothing about it is global process state.
type Console struct {
	bus    *bus.Bus
	cpu    *cpu.CPU
	ppu    *ppu.PPU
	timer  *timer.Timer
	pad    *joypad.Joypad
	wave   *apu.Wave
	cart   *cartridge.Cartridge
	logger corelog.Logger
}

// Option configures a Console at construction time.
type Option func(*Console)

// WithLogger overrides the default discard logger.
func WithLogger(l corelog.Logger) Option {
	return func(c *Console) { c.logger = l }
}

// New returns a powered-off Console with no cartridge attached.
func New(opts ...Option) *Console {
	c := &Console{
		cpu:   cpu.New(),
		ppu:   ppu.New(),
		timer: timer.New(),
		pad:   joypad.New(),
		wave:  apu.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = corelog.Discard()
	}
	c.bus = bus.New(c.logger)
	return c
}

// LoadROM parses the cartridge header, selects the MBC, and attaches the
// cartridge to the bus. It returns cartridge.ErrRomNotSupported for
// cartridge type codes outside ROM-only/MBC1/MBC2/MBC5.
func (c *Console) LoadROM(rom []byte) error {
	cart, err := cartridge.New(rom)
	if err != nil {
		return err
	}
	c.cart = cart
	c.bus.Attach(cart)
	return nil
}

// LoadRAM replaces cartridge RAM with data, for restoring a save.
func (c *Console) LoadRAM(data []byte) {
	if c.cart != nil {
		c.cart.LoadRAM(data)
	}
}

// RAM snapshots cartridge RAM, for persisting a save.
func (c *Console) RAM() []byte {
	if c.cart == nil {
		return nil
	}
	return c.cart.RAM()
}

// PowerOn resets every subsystem: PC=0x0100, SP=0xFFFF, IF=0x00, IE=0xFF,
// LCDC=0x91 (LCD on, the post-boot value), and a zeroed framebuffer.
func (c *Console) PowerOn() {
	c.bus.Reset()
	c.bus.WriteInternal(ioaddr.LCDC, 0x91)
	c.cpu.PowerOn()
	c.ppu.Reset()
	c.timer = timer.New()
	c.pad = joypad.New()
	c.wave = apu.New()
}

// Tick advances every subsystem by one master-clock unit, in the fixed
// order CPU, Joypad, Timer, PPU, Wave.
func (c *Console) Tick() {
	c.cpu.Step(c.bus)
	c.pad.Tick(c.bus)
	c.timer.Tick(c.bus)
	c.ppu.Tick(c.bus)
	c.wave.Tick(c.bus)
}

// IsVBlankComplete reports whether the PPU is exactly at ly==0, lx==0.
func (c *Console) IsVBlankComplete() bool {
	return c.ppu.IsVBlankComplete()
}

// Screen returns the palette-indexed framebuffer, row-major, 160x144.
func (c *Console) Screen() [ppu.ScreenWidth * ppu.ScreenHeight]uint8 {
	return c.ppu.Framebuffer()
}

// WaveSamples returns the accumulated wave-channel output buffer.
func (c *Console) WaveSamples() []float32 {
	return c.wave.Samples()
}

// ClearSound empties the wave-channel output buffer.
func (c *Console) ClearSound() {
	c.wave.Clear()
}

// SetButton updates one of the eight joypad buttons.
func (c *Console) SetButton(btn joypad.Button, pressed bool) {
	c.pad.SetButton(btn, pressed)
}

// Mem is a debug-overlay read-through of the bus.
func (c *Console) Mem(addr uint16) uint8 {
	return c.bus.Read(addr)
}
