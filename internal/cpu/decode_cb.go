package cpu

import "github.com/kestrelcore/goboycore/internal/bus"

// execCB decodes and executes a CB-prefixed opcode. The whole 256-entry
// space is regular: bits 0-2 select the register/(HL), bits 3-5 select the
// operation (or the bit index for BIT/RES/SET), bits 6-7 select the
// family. Register targets cost 8 ticks; (HL) targets cost 16, except
// BIT n,(HL) which costs 12.
func (c *CPU) execCB(b *bus.Bus, opcode uint8) {
	reg := opcode & 7
	group := opcode >> 6
	bitIdx := (opcode >> 3) & 7

	v := c.readR(b, reg)

	switch group {
	case 0: // rotate/shift/swap family, selected by bitIdx
		var res uint8
		switch bitIdx {
		case 0:
			res = c.rlc(v, false)
		case 1:
			res = c.rrc(v, false)
		case 2:
			res = c.rl(v, false)
		case 3:
			res = c.rr(v, false)
		case 4:
			res = c.sla(v)
		case 5:
			res = c.sra(v)
		case 6:
			res = c.swap(v)
		case 7:
			res = c.srl(v)
		}
		c.writeR(b, reg, res)
		c.cbCost(reg, 8, 16)

	case 1: // BIT n,r
		c.bit(bitIdx, v)
		c.cbCost(reg, 8, 12)

	case 2: // RES n,r
		c.writeR(b, reg, v&^(1<<bitIdx))
		c.cbCost(reg, 8, 16)

	case 3: // SET n,r
		c.writeR(b, reg, v|(1<<bitIdx))
		c.cbCost(reg, 8, 16)
	}
}

func (c *CPU) cbCost(reg uint8, regCost, hlCost int) {
	if reg == 6 {
		c.cost(hlCost)
	} else {
		c.cost(regCost)
	}
}
