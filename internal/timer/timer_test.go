package timer_test

import (
	"testing"

	"github.com/kestrelcore/goboycore/internal/bus"
	"github.com/kestrelcore/goboycore/internal/cartridge"
	"github.com/kestrelcore/goboycore/internal/corelog"
	"github.com/kestrelcore/goboycore/internal/ioaddr"
	"github.com/kestrelcore/goboycore/internal/timer"
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

func TestDIVIncrementsEvery16Ticks(t *testing.T) {
	b := newBus(t)
	tm := timer.New()

	for i := 0; i < 15; i++ {
		tm.Tick(b)
	}
	if got := b.Read(ioaddr.DIV); got != 0 {
		t.Fatalf("DIV after 15 ticks = %d, want 0", got)
	}
	tm.Tick(b)
	if got := b.Read(ioaddr.DIV); got != 1 {
		t.Fatalf("DIV after 16 ticks = %d, want 1", got)
	}
}

func TestTIMAOverflowReloadsFromTMAAndInterrupts(t *testing.T) {
	b := newBus(t)
	b.WriteExternal(ioaddr.TAC, 0x05) // enabled, divisor 16 (00 selects 1024; 01 selects 16)
	b.WriteExternal(ioaddr.TMA, 0x10)
	b.WriteExternal(ioaddr.TIMA, 0xFF)
	tm := timer.New()

	for i := 0; i < 16; i++ {
		tm.Tick(b)
	}

	if got := b.Read(ioaddr.TIMA); got != 0x10 {
		t.Fatalf("TIMA after overflow = 0x%02X, want TMA (0x10)", got)
	}
	if b.IF()&0x04 == 0 {
		t.Fatal("Timer interrupt not raised on TIMA overflow")
	}
}

func TestTimerDisabledDoesNotAdvanceTIMA(t *testing.T) {
	b := newBus(t)
	b.WriteExternal(ioaddr.TAC, 0x00) // disabled
	tm := timer.New()
	for i := 0; i < 2000; i++ {
		tm.Tick(b)
	}
	if got := b.Read(ioaddr.TIMA); got != 0 {
		t.Fatalf("TIMA advanced while TAC disabled: %d", got)
	}
}
