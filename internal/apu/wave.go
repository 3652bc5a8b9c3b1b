// Package apu implements the wave-table sound channel: NR30-NR34, the
// 32-nibble wave RAM, a length counter and a volume-shift output stage.
//
// Grounded on original_source/src/gb/wave_channel.hpp rather than the
// richer multi-channel APU a production Game Boy core would carry — the
// wave channel is the only sound channel in scope. See DESIGN.md.
package apu

import "github.com/kestrelcore/goboycore/internal/ioaddr"

type bus interface {
	Read(addr uint16) uint8
	WriteInternal(addr uint16, value uint8)
}

const masterClockHz = 4194304

var volumeShift = [4]float32{0.0, 1.0, 0.5, 0.25}

// Wave is the NR3x-driven wave channel: a sample cursor into the 32-nibble
// wave table, a 256 Hz length-counter clock, and a frequency-derived
// wave-advance clock, producing a growable buffer of float32 samples.
type Wave struct {
	lengthClock clock
	waveClock   clock

	wavePos int
	samples []float32
}

// New returns a Wave channel with its length-counter clock running at
// 256 Hz, matching power_on() in the reference implementation.
func New() *Wave {
	w := &Wave{}
	w.lengthClock.setPeriodHz(256)
	return w
}

// Tick advances the length-counter clock and, if the channel is on,
// the wave-advance clock, appending exactly one sample to the output
// buffer.
func (w *Wave) Tick(b bus) {
	w.lengthClock.tick()

	length := b.Read(ioaddr.NR31)
	if length != 0 && w.lengthClock.active {
		length--
		b.WriteInternal(ioaddr.NR31, length)
	}

	if b.Read(ioaddr.NR30)&0x80 == 0 {
		w.samples = append(w.samples, 0)
		return
	}

	freq := (uint16(b.Read(ioaddr.NR34)&0x07) << 8) | uint16(b.Read(ioaddr.NR33))
	w.waveClock.setPeriodTicks(int((2048 - int(freq)) * 2))
	w.waveClock.tick()
	if w.waveClock.active {
		w.wavePos = (w.wavePos + 1) % 32
	}

	vol := volumeShift[(b.Read(ioaddr.NR32)&0x60)>>5]
	if length == 0 {
		vol = 0
	}

	nibbleAddr := ioaddr.WaveRAMStart + uint16(w.wavePos/2)
	raw := b.Read(nibbleAddr)
	var nibble uint8
	if w.wavePos%2 == 0 {
		nibble = (raw >> 4) & 0x0F
	} else {
		nibble = raw & 0x0F
	}

	rel := (2.0/16.0)*float32(nibble) - 1.0
	w.samples = append(w.samples, rel*vol)
}

// Samples returns the accumulated output buffer.
func (w *Wave) Samples() []float32 {
	return w.samples
}

// Clear empties the output buffer.
func (w *Wave) Clear() {
	w.samples = w.samples[:0]
}

// clock is a free-running divider: active is true on the tick
// where the counter wraps back to zero.
type clock struct {
	count  int
	period int
	active bool
}

func (c *clock) setPeriodHz(hz int) {
	c.setPeriodTicks(masterClockHz / hz)
}

func (c *clock) setPeriodTicks(period int) {
	if period < 1 {
		period = 1
	}
	c.period = period
}

func (c *clock) tick() {
	c.count = (c.count + 1) % c.period
	c.active = c.count == 0
}
