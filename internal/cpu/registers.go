package cpu

// Flag bit positions within the F register.
const (
	flagZ uint8 = 0x80
	flagN uint8 = 0x40
	flagH uint8 = 0x20
	flagC uint8 = 0x10
)

// CPU is the LR35902 register file plus the interrupt/halt status the
// instruction interpreter needs. Register pairs (AF, BC, DE, HL) are
// derived from the 8-bit fields on demand rather than stored separately,
// so there is exactly one source of truth per byte.
type CPU struct {
	A, B, C, D, E, H, L, F uint8
	PC, SP                 uint16

	ime        bool
	halted     bool
	busyCycles int
}

// New returns a CPU with every register zeroed; PowerOn (driven by the
// console) establishes the documented post-boot state.
func New() *CPU {
	return &CPU{}
}

func (c *CPU) af() uint16     { return uint16(c.A)<<8 | uint16(c.F) }
func (c *CPU) setAF(v uint16) { c.A = uint8(v >> 8); c.F = uint8(v) & 0xF0 }

func (c *CPU) bc() uint16     { return uint16(c.B)<<8 | uint16(c.C) }
func (c *CPU) setBC(v uint16) { c.B = uint8(v >> 8); c.C = uint8(v) }

func (c *CPU) de() uint16     { return uint16(c.D)<<8 | uint16(c.E) }
func (c *CPU) setDE(v uint16) { c.D = uint8(v >> 8); c.E = uint8(v) }

func (c *CPU) hl() uint16     { return uint16(c.H)<<8 | uint16(c.L) }
func (c *CPU) setHL(v uint16) { c.H = uint8(v >> 8); c.L = uint8(v) }

func (c *CPU) flagZ() bool { return c.F&flagZ != 0 }
func (c *CPU) flagN() bool { return c.F&flagN != 0 }
func (c *CPU) flagH() bool { return c.F&flagH != 0 }
func (c *CPU) flagC() bool { return c.F&flagC != 0 }

// setFlags overwrites all four flags at once; F's low nibble is always 0.
func (c *CPU) setFlags(z, n, h, cy bool) {
	var f uint8
	if z {
		f |= flagZ
	}
	if n {
		f |= flagN
	}
	if h {
		f |= flagH
	}
	if cy {
		f |= flagC
	}
	c.F = f
}

// IME reports whether the master interrupt enable flag is set.
func (c *CPU) IME() bool { return c.ime }

// Halted reports whether the CPU is in the HALT/STOP-parked state.
func (c *CPU) Halted() bool { return c.halted }
