package cpu

import "github.com/kestrelcore/goboycore/internal/bus"

// exec decodes and executes one non-CB-prefixed opcode and charges the
// instruction's total tick cost (branch-dependent costs are charged by
// the branch/jump handlers themselves).
func (c *CPU) exec(b *bus.Bus, opcode uint8) {
	switch {
	// LD r,r' / HALT — the regular 0x40-0x7F block.
	case opcode >= 0x40 && opcode <= 0x7F && opcode != 0x76:
		dst := (opcode >> 3) & 7
		src := opcode & 7
		c.writeR(b, dst, c.readR(b, src))
		if dst == 6 || src == 6 {
			c.cost(8)
		} else {
			c.cost(4)
		}
		return
	case opcode == 0x76: // HALT
		c.halted = true
		c.cost(4)
		return

	// ALU A,r' — the regular 0x80-0xBF block.
	case opcode >= 0x80 && opcode <= 0xBF:
		op := (opcode >> 3) & 7
		src := opcode & 7
		c.alu(op, c.readR(b, src))
		if src == 6 {
			c.cost(8)
		} else {
			c.cost(4)
		}
		return
	}

	switch opcode {
	case 0x00: // NOP
		c.cost(4)
	case 0x01: // LD BC,d16
		c.setBC(c.fetch16(b))
		c.cost(12)
	case 0x02: // LD (BC),A
		b.WriteExternal(c.bc(), c.A)
		c.cost(8)
	case 0x03: // INC BC
		c.setBC(c.bc() + 1)
		c.cost(8)
	case 0x04: // INC B
		c.B = c.incN(c.B)
		c.cost(4)
	case 0x05: // DEC B
		c.B = c.decN(c.B)
		c.cost(4)
	case 0x06: // LD B,d8
		c.B = c.fetch8(b)
		c.cost(8)
	case 0x07: // RLCA
		c.A = c.rlc(c.A, true)
		c.cost(4)
	case 0x08: // LD (a16),SP
		addr := c.fetch16(b)
		b.WriteExternal(addr, uint8(c.SP))
		b.WriteExternal(addr+1, uint8(c.SP>>8))
		c.cost(20)
	case 0x09: // ADD HL,BC
		c.addHL(c.bc())
		c.cost(8)
	case 0x0A: // LD A,(BC)
		c.A = b.Read(c.bc())
		c.cost(8)
	case 0x0B: // DEC BC
		c.setBC(c.bc() - 1)
		c.cost(8)
	case 0x0C: // INC C
		c.C = c.incN(c.C)
		c.cost(4)
	case 0x0D: // DEC C
		c.C = c.decN(c.C)
		c.cost(4)
	case 0x0E: // LD C,d8
		c.C = c.fetch8(b)
		c.cost(8)
	case 0x0F: // RRCA
		c.A = c.rrc(c.A, true)
		c.cost(4)

	case 0x10: // STOP — treated as HALT
		c.fetch8(b) // STOP's padding byte
		c.halted = true
		c.cost(4)
	case 0x11: // LD DE,d16
		c.setDE(c.fetch16(b))
		c.cost(12)
	case 0x12: // LD (DE),A
		b.WriteExternal(c.de(), c.A)
		c.cost(8)
	case 0x13: // INC DE
		c.setDE(c.de() + 1)
		c.cost(8)
	case 0x14: // INC D
		c.D = c.incN(c.D)
		c.cost(4)
	case 0x15: // DEC D
		c.D = c.decN(c.D)
		c.cost(4)
	case 0x16: // LD D,d8
		c.D = c.fetch8(b)
		c.cost(8)
	case 0x17: // RLA
		c.A = c.rl(c.A, true)
		c.cost(4)
	case 0x18: // JR r8
		off := int8(c.fetch8(b))
		c.PC = uint16(int32(c.PC) + int32(off))
		c.cost(12)
	case 0x19: // ADD HL,DE
		c.addHL(c.de())
		c.cost(8)
	case 0x1A: // LD A,(DE)
		c.A = b.Read(c.de())
		c.cost(8)
	case 0x1B: // DEC DE
		c.setDE(c.de() - 1)
		c.cost(8)
	case 0x1C: // INC E
		c.E = c.incN(c.E)
		c.cost(4)
	case 0x1D: // DEC E
		c.E = c.decN(c.E)
		c.cost(4)
	case 0x1E: // LD E,d8
		c.E = c.fetch8(b)
		c.cost(8)
	case 0x1F: // RRA
		c.A = c.rr(c.A, true)
		c.cost(4)

	case 0x20: // JR NZ,r8
		c.jr(b, !c.flagZ())
	case 0x21: // LD HL,d16
		c.setHL(c.fetch16(b))
		c.cost(12)
	case 0x22: // LD (HL+),A
		hl := c.hl()
		b.WriteExternal(hl, c.A)
		c.setHL(hl + 1)
		c.cost(8)
	case 0x23: // INC HL
		c.setHL(c.hl() + 1)
		c.cost(8)
	case 0x24: // INC H
		c.H = c.incN(c.H)
		c.cost(4)
	case 0x25: // DEC H
		c.H = c.decN(c.H)
		c.cost(4)
	case 0x26: // LD H,d8
		c.H = c.fetch8(b)
		c.cost(8)
	case 0x27: // DAA
		c.daa()
		c.cost(4)
	case 0x28: // JR Z,r8
		c.jr(b, c.flagZ())
	case 0x29: // ADD HL,HL
		c.addHL(c.hl())
		c.cost(8)
	case 0x2A: // LD A,(HL+)
		hl := c.hl()
		c.A = b.Read(hl)
		c.setHL(hl + 1)
		c.cost(8)
	case 0x2B: // DEC HL
		c.setHL(c.hl() - 1)
		c.cost(8)
	case 0x2C: // INC L
		c.L = c.incN(c.L)
		c.cost(4)
	case 0x2D: // DEC L
		c.L = c.decN(c.L)
		c.cost(4)
	case 0x2E: // LD L,d8
		c.L = c.fetch8(b)
		c.cost(8)
	case 0x2F: // CPL
		c.cpl()
		c.cost(4)

	case 0x30: // JR NC,r8
		c.jr(b, !c.flagC())
	case 0x31: // LD SP,d16
		c.SP = c.fetch16(b)
		c.cost(12)
	case 0x32: // LD (HL-),A
		hl := c.hl()
		b.WriteExternal(hl, c.A)
		c.setHL(hl - 1)
		c.cost(8)
	case 0x33: // INC SP
		c.SP++
		c.cost(8)
	case 0x34: // INC (HL)
		b.WriteExternal(c.hl(), c.incN(b.Read(c.hl())))
		c.cost(12)
	case 0x35: // DEC (HL)
		b.WriteExternal(c.hl(), c.decN(b.Read(c.hl())))
		c.cost(12)
	case 0x36: // LD (HL),d8
		b.WriteExternal(c.hl(), c.fetch8(b))
		c.cost(12)
	case 0x37: // SCF
		c.scf()
		c.cost(4)
	case 0x38: // JR C,r8
		c.jr(b, c.flagC())
	case 0x39: // ADD HL,SP
		c.addHL(c.SP)
		c.cost(8)
	case 0x3A: // LD A,(HL-)
		hl := c.hl()
		c.A = b.Read(hl)
		c.setHL(hl - 1)
		c.cost(8)
	case 0x3B: // DEC SP
		c.SP--
		c.cost(8)
	case 0x3C: // INC A
		c.A = c.incN(c.A)
		c.cost(4)
	case 0x3D: // DEC A
		c.A = c.decN(c.A)
		c.cost(4)
	case 0x3E: // LD A,d8
		c.A = c.fetch8(b)
		c.cost(8)
	case 0x3F: // CCF
		c.ccf()
		c.cost(4)

	case 0xC0: // RET NZ
		c.ret(b, !c.flagZ())
	case 0xC1: // POP BC
		c.setBC(c.pop16(b))
		c.cost(12)
	case 0xC2: // JP NZ,a16
		c.jp(b, !c.flagZ())
	case 0xC3: // JP a16
		c.PC = c.fetch16(b)
		c.cost(16)
	case 0xC4: // CALL NZ,a16
		c.call(b, !c.flagZ())
	case 0xC5: // PUSH BC
		c.push16(b, c.bc())
		c.cost(16)
	case 0xC6: // ADD A,d8
		c.alu(0, c.fetch8(b))
		c.cost(8)
	case 0xC7: // RST 00H
		c.rst(b, 0x00)
	case 0xC8: // RET Z
		c.ret(b, c.flagZ())
	case 0xC9: // RET
		c.PC = c.pop16(b)
		c.cost(16)
	case 0xCA: // JP Z,a16
		c.jp(b, c.flagZ())
	case 0xCC: // CALL Z,a16
		c.call(b, c.flagZ())
	case 0xCD: // CALL a16
		addr := c.fetch16(b)
		c.push16(b, c.PC)
		c.PC = addr
		c.cost(24)
	case 0xCE: // ADC A,d8
		c.alu(1, c.fetch8(b))
		c.cost(8)
	case 0xCF: // RST 08H
		c.rst(b, 0x08)

	case 0xD0: // RET NC
		c.ret(b, !c.flagC())
	case 0xD1: // POP DE
		c.setDE(c.pop16(b))
		c.cost(12)
	case 0xD2: // JP NC,a16
		c.jp(b, !c.flagC())
	case 0xD4: // CALL NC,a16
		c.call(b, !c.flagC())
	case 0xD5: // PUSH DE
		c.push16(b, c.de())
		c.cost(16)
	case 0xD6: // SUB d8
		c.alu(2, c.fetch8(b))
		c.cost(8)
	case 0xD7: // RST 10H
		c.rst(b, 0x10)
	case 0xD8: // RET C
		c.ret(b, c.flagC())
	case 0xD9: // RETI
		c.PC = c.pop16(b)
		c.ime = true
		c.cost(16)
	case 0xDA: // JP C,a16
		c.jp(b, c.flagC())
	case 0xDC: // CALL C,a16
		c.call(b, c.flagC())
	case 0xDE: // SBC A,d8
		c.alu(3, c.fetch8(b))
		c.cost(8)
	case 0xDF: // RST 18H
		c.rst(b, 0x18)

	case 0xE0: // LDH (a8),A
		b.WriteExternal(0xFF00+uint16(c.fetch8(b)), c.A)
		c.cost(12)
	case 0xE1: // POP HL
		c.setHL(c.pop16(b))
		c.cost(12)
	case 0xE2: // LD (C),A
		b.WriteExternal(0xFF00+uint16(c.C), c.A)
		c.cost(8)
	case 0xE5: // PUSH HL
		c.push16(b, c.hl())
		c.cost(16)
	case 0xE6: // AND d8
		c.alu(4, c.fetch8(b))
		c.cost(8)
	case 0xE7: // RST 20H
		c.rst(b, 0x20)
	case 0xE8: // ADD SP,r8
		c.SP = c.addSPSigned(b)
		c.cost(16)
	case 0xE9: // JP (HL)
		c.PC = c.hl()
		c.cost(4)
	case 0xEA: // LD (a16),A
		b.WriteExternal(c.fetch16(b), c.A)
		c.cost(16)
	case 0xEE: // XOR d8
		c.alu(5, c.fetch8(b))
		c.cost(8)
	case 0xEF: // RST 28H
		c.rst(b, 0x28)

	case 0xF0: // LDH A,(a8)
		c.A = b.Read(0xFF00 + uint16(c.fetch8(b)))
		c.cost(12)
	case 0xF1: // POP AF
		c.setAF(c.pop16(b))
		c.cost(12)
	case 0xF2: // LD A,(C)
		c.A = b.Read(0xFF00 + uint16(c.C))
		c.cost(8)
	case 0xF3: // DI
		c.ime = false
		c.cost(4)
	case 0xF5: // PUSH AF
		c.push16(b, c.af())
		c.cost(16)
	case 0xF6: // OR d8
		c.alu(6, c.fetch8(b))
		c.cost(8)
	case 0xF7: // RST 30H
		c.rst(b, 0x30)
	case 0xF8: // LD HL,SP+r8
		c.setHL(c.addSPSigned(b))
		c.cost(12)
	case 0xF9: // LD SP,HL
		c.SP = c.hl()
		c.cost(8)
	case 0xFA: // LD A,(a16)
		c.A = b.Read(c.fetch16(b))
		c.cost(16)
	case 0xFB: // EI
		c.ime = true
		c.cost(4)
	case 0xFE: // CP d8
		c.alu(7, c.fetch8(b))
		c.cost(8)
	case 0xFF: // RST 38H
		c.rst(b, 0x38)
	}
}

func (c *CPU) jr(b *bus.Bus, take bool) {
	off := int8(c.fetch8(b))
	if take {
		c.PC = uint16(int32(c.PC) + int32(off))
		c.cost(12)
	} else {
		c.cost(8)
	}
}

func (c *CPU) jp(b *bus.Bus, take bool) {
	addr := c.fetch16(b)
	if take {
		c.PC = addr
		c.cost(16)
	} else {
		c.cost(12)
	}
}

func (c *CPU) call(b *bus.Bus, take bool) {
	addr := c.fetch16(b)
	if take {
		c.push16(b, c.PC)
		c.PC = addr
		c.cost(24)
	} else {
		c.cost(12)
	}
}

func (c *CPU) ret(b *bus.Bus, take bool) {
	if take {
		c.PC = c.pop16(b)
		c.cost(20)
	} else {
		c.cost(8)
	}
}

func (c *CPU) rst(b *bus.Bus, vector uint16) {
	c.push16(b, c.PC)
	c.PC = vector
	c.cost(16)
}
