// Package cpu implements the LR35902 instruction interpreter: fetch,
// decode, execute, flags, and the interrupt/HALT/STOP state machine.
//
// Dispatch is a centralized switch-based decode routine (decode.go,
// decode_cb.go) rather than a 256-entry table of closures capturing the
// CPU — every handler is a plain function of (*CPU, *bus.Bus).
package cpu

import (
	"github.com/kestrelcore/goboycore/internal/bus"
	"github.com/kestrelcore/goboycore/internal/ioaddr"
)

// illegalOpcodes never exist on real LR35902 silicon but must not abort
// the emulator; they execute as a single 4-tick no-op.
var illegalOpcodes = map[uint8]bool{
	0xD3: true, 0xDB: true, 0xDD: true, 0xE3: true, 0xE4: true,
	0xEB: true, 0xEC: true, 0xED: true, 0xF4: true, 0xFC: true, 0xFD: true,
}

// PowerOn establishes the documented post-boot-ROM register state.
func (c *CPU) PowerOn() {
	*c = CPU{PC: 0x0100, SP: 0xFFFF}
}

// Step advances the CPU by one master-clock tick, per the §4.3 contract:
// multi-tick instructions hold busyCycles down before the next fetch;
// pending interrupts are serviced ahead of ordinary fetch/decode/execute;
// a halted CPU performs no fetch until an enabled interrupt clears it.
func (c *CPU) Step(b *bus.Bus) {
	if c.busyCycles > 0 {
		c.busyCycles--
		return
	}

	if c.serviceInterrupt(b) {
		return
	}

	if c.halted {
		return
	}

	opcode := c.fetch8(b)
	if opcode == 0xCB {
		cb := c.fetch8(b)
		c.execCB(b, cb)
		return
	}
	if illegalOpcodes[opcode] {
		b.Log().Debugf("cpu: illegal opcode 0x%02X at 0x%04X treated as no-op", opcode, c.PC-1)
		c.busyCycles = 3
		return
	}
	c.exec(b, opcode)
}

func (c *CPU) serviceInterrupt(b *bus.Bus) bool {
	pending := b.IE() & b.IF() & 0x1F
	if pending != 0 {
		c.halted = false
	}
	if !c.ime || pending == 0 {
		return false
	}
	for i := uint8(0); i < 5; i++ {
		if pending&(1<<i) == 0 {
			continue
		}
		b.ClearInterrupt(i)
		c.ime = false
		c.push16(b, c.PC)
		c.PC = ioaddr.Vectors[i]
		c.busyCycles = 19 // 20 total ticks, one already spent this Step
		return true
	}
	return false
}

func (c *CPU) fetch8(b *bus.Bus) uint8 {
	v := b.Read(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetch16(b *bus.Bus) uint16 {
	lo := c.fetch8(b)
	hi := c.fetch8(b)
	return uint16(hi)<<8 | uint16(lo)
}

// push16 writes the high byte at SP-1 and the low byte at SP-2, then
// decrements SP by 2 — the stack grows downward.
func (c *CPU) push16(b *bus.Bus, v uint16) {
	c.SP--
	b.WriteExternal(c.SP, uint8(v>>8))
	c.SP--
	b.WriteExternal(c.SP, uint8(v))
}

func (c *CPU) pop16(b *bus.Bus) uint16 {
	lo := b.Read(c.SP)
	c.SP++
	hi := b.Read(c.SP)
	c.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// cost sets busyCycles so that, combined with the tick already spent
// executing this Step, the instruction occupies ticks total master-clock
// units before the next fetch.
func (c *CPU) cost(ticks int) {
	c.busyCycles = ticks - 1
}
