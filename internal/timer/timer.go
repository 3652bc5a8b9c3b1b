// Package timer implements the DIV/TIMA/TMA/TAC interval timer.
package timer

import "github.com/kestrelcore/goboycore/internal/ioaddr"

// divisors maps TAC's low two bits to the number of ticks between TIMA
// increments.
var divisors = [4]int{1024, 16, 64, 256}

type bus interface {
	Read(addr uint16) uint8
	WriteInternal(addr uint16, value uint8)
	RequestInterrupt(bit uint8)
}

// Timer owns the internal prescalers that are not themselves
// memory-mapped; the visible DIV/TIMA/TMA/TAC registers live on the bus.
type Timer struct {
	divCounter  int
	timaCounter int
}

// New returns a Timer with both prescalers at zero.
func New() *Timer {
	return &Timer{}
}

// Tick advances the timer by one master-clock unit.
func (t *Timer) Tick(b bus) {
	t.divCounter++
	if t.divCounter >= 16 {
		t.divCounter = 0
		b.WriteInternal(ioaddr.DIV, b.Read(ioaddr.DIV)+1)
	}

	tac := b.Read(ioaddr.TAC)
	if tac&0x04 == 0 {
		return
	}

	t.timaCounter++
	divisor := divisors[tac&0x03]
	if t.timaCounter < divisor {
		return
	}
	t.timaCounter = 0

	tima := b.Read(ioaddr.TIMA)
	if tima == 0xFF {
		b.WriteInternal(ioaddr.TIMA, b.Read(ioaddr.TMA))
		b.RequestInterrupt(ioaddr.IntTimer)
	} else {
		b.WriteInternal(ioaddr.TIMA, tima+1)
	}
}
