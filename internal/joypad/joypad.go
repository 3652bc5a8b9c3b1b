// Package joypad implements the eight-button matrix read through the P1
// register's P14/P15 select lines.
package joypad

import "github.com/kestrelcore/goboycore/internal/ioaddr"

// Button identifies one of the eight buttons the console recognises.
type Button uint8

const (
	Right Button = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

// Joypad tracks the current and previous state of all eight buttons and
// feeds the live P1 register value back onto the bus every tick.
type Joypad struct {
	state [8]bool
	prev  [8]bool
}

// New returns a Joypad with every button released.
func New() *Joypad {
	return &Joypad{}
}

// SetButton marks btn pressed or released. The edge is only observed (and
// only raises the Joypad interrupt) on the next Tick.
func (j *Joypad) SetButton(btn Button, pressed bool) {
	j.state[btn] = pressed
}

// bus is the minimal surface Joypad needs from the memory bus.
type bus interface {
	Read(addr uint16) uint8
	WriteInternal(addr uint16, value uint8)
	RequestInterrupt(bit uint8)
}

// Tick recomposes the P1 register from the current button state and the
// most recent select-line write, and raises the Joypad interrupt if any
// button transitioned released -> pressed since the previous tick.
func (j *Joypad) Tick(b bus) {
	p1 := b.Read(ioaddr.P1)
	selectDirections := p1&0x10 == 0 // P14 active-low
	selectButtons := p1&0x20 == 0    // P15 active-low

	lower := uint8(0x0F)
	if selectDirections {
		lower &^= j.nibble(Right, Left, Up, Down)
	}
	if selectButtons {
		lower &^= j.nibble(A, B, Select, Start)
	}

	b.WriteInternal(ioaddr.P1, (p1&0xF0)|lower)

	edge := false
	for i := 0; i < 8; i++ {
		if j.state[i] && !j.prev[i] {
			edge = true
		}
		j.prev[i] = j.state[i]
	}
	if edge {
		b.RequestInterrupt(ioaddr.IntJoypad)
	}
}

// nibble returns a bitmask (bit0..bit3 corresponding to btns[0..3]) of
// which of the given buttons are currently pressed.
func (j *Joypad) nibble(btns ...Button) uint8 {
	var mask uint8
	for i, btn := range btns {
		if j.state[btn] {
			mask |= 1 << i
		}
	}
	return mask
}
