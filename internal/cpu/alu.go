package cpu

import "github.com/kestrelcore/goboycore/internal/bus"

func (c *CPU) readR(b *bus.Bus, idx uint8) uint8 {
	switch idx {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return b.Read(c.hl())
	default:
		return c.A
	}
}

func (c *CPU) writeR(b *bus.Bus, idx uint8, v uint8) {
	switch idx {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		b.WriteExternal(c.hl(), v)
	default:
		c.A = v
	}
}

// alu performs one of the eight ALU A,n operations (op = (opcode>>3)&7)
// against n, per the flag semantics table: ADD, ADC, SUB, SBC, AND, XOR,
// OR, CP in that order.
func (c *CPU) alu(op uint8, n uint8) {
	a := c.A
	switch op {
	case 0: // ADD
		res := uint16(a) + uint16(n)
		c.setFlags(uint8(res) == 0, false, (a&0x0F)+(n&0x0F) > 0x0F, res > 0xFF)
		c.A = uint8(res)
	case 1: // ADC
		cin := uint16(0)
		if c.flagC() {
			cin = 1
		}
		res := uint16(a) + uint16(n) + cin
		c.setFlags(uint8(res) == 0, false, (a&0x0F)+(n&0x0F)+uint8(cin) > 0x0F, res > 0xFF)
		c.A = uint8(res)
	case 2: // SUB
		res := a - n
		c.setFlags(res == 0, true, (a&0x0F) < (n&0x0F), a < n)
		c.A = res
	case 3: // SBC
		cin := uint8(0)
		if c.flagC() {
			cin = 1
		}
		res := int(a) - int(n) - int(cin)
		h := int(a&0x0F)-int(n&0x0F)-int(cin) < 0
		c.setFlags(uint8(res) == 0, true, h, res < 0)
		c.A = uint8(res)
	case 4: // AND
		c.A = a & n
		c.setFlags(c.A == 0, false, true, false)
	case 5: // XOR
		c.A = a ^ n
		c.setFlags(c.A == 0, false, false, false)
	case 6: // OR
		c.A = a | n
		c.setFlags(c.A == 0, false, false, false)
	case 7: // CP
		res := a - n
		c.setFlags(res == 0, true, (a&0x0F) < (n&0x0F), a < n)
	}
}

func (c *CPU) incN(v uint8) uint8 {
	res := v + 1
	c.setFlags(res == 0, false, (v&0x0F)+1 > 0x0F, c.flagC())
	return res
}

func (c *CPU) decN(v uint8) uint8 {
	res := v - 1
	c.setFlags(res == 0, true, v&0x0F == 0, c.flagC())
	return res
}

func (c *CPU) addHL(rr uint16) {
	hl := c.hl()
	res := uint32(hl) + uint32(rr)
	h := (hl&0x0FFF)+(rr&0x0FFF) > 0x0FFF
	c.setFlags(c.flagZ(), false, h, res > 0xFFFF)
	c.setHL(uint16(res))
}

// addSPSigned implements the shared SP+s8 arithmetic used by both
// ADD SP,s8 and LD HL,SP+s8: Z and N are always cleared, H/C come from the
// unsigned low-nibble/low-byte additions of SP and the sign-extended
// immediate.
func (c *CPU) addSPSigned(b *bus.Bus) uint16 {
	s8 := int8(c.fetch8(b))
	sp := c.SP
	simm := uint16(int16(s8))
	res := sp + simm
	h := (sp^simm^res)&0x10 != 0
	cy := (sp^simm^res)&0x100 != 0
	c.setFlags(false, false, h, cy)
	return res
}

func (c *CPU) daa() {
	a := c.A
	var adjust uint8
	cy := c.flagC()
	if c.flagH() || (!c.flagN() && a&0x0F > 9) {
		adjust |= 0x06
	}
	if cy || (!c.flagN() && a > 0x99) {
		adjust |= 0x60
		cy = true
	}
	if c.flagN() {
		a -= adjust
	} else {
		a += adjust
	}
	c.A = a
	c.setFlags(a == 0, c.flagN(), false, cy)
}

func (c *CPU) cpl() {
	c.A = ^c.A
	c.setFlags(c.flagZ(), true, true, c.flagC())
}

func (c *CPU) scf() { c.setFlags(c.flagZ(), false, false, true) }
func (c *CPU) ccf() { c.setFlags(c.flagZ(), false, false, !c.flagC()) }

// rlc/rl/rrc/rr implement the four rotate families. forceZ0 matches the
// A-variant opcodes (0x07/0x17/0x0F/0x1F), which clear Z unconditionally
// even though the generic CB-prefixed forms set it from the result.
func (c *CPU) rlc(v uint8, forceZ0 bool) uint8 {
	cy := v&0x80 != 0
	res := v << 1
	if cy {
		res |= 1
	}
	c.setFlags(res == 0 && !forceZ0, false, false, cy)
	return res
}

func (c *CPU) rl(v uint8, forceZ0 bool) uint8 {
	oldC := uint8(0)
	if c.flagC() {
		oldC = 1
	}
	cy := v&0x80 != 0
	res := (v << 1) | oldC
	c.setFlags(res == 0 && !forceZ0, false, false, cy)
	return res
}

func (c *CPU) rrc(v uint8, forceZ0 bool) uint8 {
	cy := v&0x01 != 0
	res := v >> 1
	if cy {
		res |= 0x80
	}
	c.setFlags(res == 0 && !forceZ0, false, false, cy)
	return res
}

func (c *CPU) rr(v uint8, forceZ0 bool) uint8 {
	oldC := uint8(0)
	if c.flagC() {
		oldC = 0x80
	}
	cy := v&0x01 != 0
	res := (v >> 1) | oldC
	c.setFlags(res == 0 && !forceZ0, false, false, cy)
	return res
}

func (c *CPU) sla(v uint8) uint8 {
	cy := v&0x80 != 0
	res := v << 1
	c.setFlags(res == 0, false, false, cy)
	return res
}

func (c *CPU) sra(v uint8) uint8 {
	cy := v&0x01 != 0
	res := (v >> 1) | (v & 0x80)
	c.setFlags(res == 0, false, false, cy)
	return res
}

func (c *CPU) srl(v uint8) uint8 {
	cy := v&0x01 != 0
	res := v >> 1
	c.setFlags(res == 0, false, false, cy)
	return res
}

func (c *CPU) swap(v uint8) uint8 {
	res := (v << 4) | (v >> 4)
	c.setFlags(res == 0, false, false, false)
	return res
}

func (c *CPU) bit(n uint8, v uint8) {
	c.setFlags(v&(1<<n) == 0, false, true, c.flagC())
}
