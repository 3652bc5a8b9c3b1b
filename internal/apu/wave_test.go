package apu_test

import (
	"testing"

	"github.com/kestrelcore/goboycore/internal/apu"
	"github.com/kestrelcore/goboycore/internal/bus"
	"github.com/kestrelcore/goboycore/internal/cartridge"
	"github.com/kestrelcore/goboycore/internal/corelog"
	"github.com/kestrelcore/goboycore/internal/ioaddr"
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
	return b
}

func TestWaveChannelOffEmitsSilence(t *testing.T) {
	b := newBus(t)
	b.WriteExternal(ioaddr.NR30, 0x00) // DAC off
	w := apu.New()

	w.Tick(b)
	samples := w.Samples()
	if len(samples) != 1 || samples[0] != 0 {
		t.Fatalf("samples = %v, want a single 0.0 sample", samples)
	}
}

func TestWaveChannelProducesOneSamplePerTick(t *testing.T) {
	b := newBus(t)
	b.WriteExternal(ioaddr.NR30, 0x80) // DAC on
	b.WriteExternal(ioaddr.NR31, 0x00) // length counter 0: output is silenced, but a sample is still appended every tick
	b.WriteExternal(ioaddr.NR32, 0x20) // 100% volume
	b.WriteExternal(ioaddr.NR33, 0x00)
	b.WriteExternal(ioaddr.NR34, 0x00)
	b.WriteExternal(ioaddr.WaveRAMStart, 0xF0)
	w := apu.New()

	for i := 0; i < 10; i++ {
		w.Tick(b)
	}
	if len(w.Samples()) != 10 {
		t.Fatalf("sample count = %d, want 10", len(w.Samples()))
	}
}

func TestClearEmptiesBuffer(t *testing.T) {
	b := newBus(t)
	w := apu.New()
	w.Tick(b)
	w.Tick(b)
	w.Clear()
	if len(w.Samples()) != 0 {
		t.Fatalf("samples after Clear = %d, want 0", len(w.Samples()))
	}
}
