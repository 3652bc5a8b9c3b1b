package cpu

import (
	"testing"

	"github.com/kestrelcore/goboycore/internal/bus"
	"github.com/kestrelcore/goboycore/internal/cartridge"
	"github.com/kestrelcore/goboycore/internal/corelog"
)

func newTestBus(t *testing.T) *bus.Bus {
	t.Helper()
	rom := make([]byte, 0x8000)
	rom[0x0147] = 0x00 // ROM only
	return newTestBusFromROM(t, rom)
}

// newTestBusFromROM attaches a caller-assembled ROM image, for tests that
// need specific bytes at the CPU's fetch address: PC starts at 0x0100,
// which is ROM space, so WriteExternal there is a no-op (ROM-only cartridges
// reject writes) — any immediate the CPU must fetch has to be baked into
// the image before cartridge.New, not poked in afterward.
func newTestBusFromROM(t *testing.T, rom []byte) *bus.Bus {
	t.Helper()
	rom[0x0147] = 0x00 // ROM only
	cart, err := cartridge.New(rom)
	if err != nil {
		t.Fatalf("cartridge.New: %v", err)
	}
	b := bus.New(corelog.Discard())
	b.Attach(cart)
	b.Reset()
	return b
}

func TestPushPopRoundTrip(t *testing.T) {
	b := newTestBus(t)
	c := New()
	c.PowerOn()
	sp := c.SP

	c.push16(b, 0xBEEF)
	if c.SP != sp-2 {
		t.Fatalf("SP after push = 0x%04X, want 0x%04X", c.SP, sp-2)
	}
	got := c.pop16(b)
	if got != 0xBEEF {
		t.Fatalf("pop16 = 0x%04X, want 0xBEEF", got)
	}
	if c.SP != sp {
		t.Fatalf("SP after pop = 0x%04X, want 0x%04X", c.SP, sp)
	}
}

func TestFlagsLowNibbleAlwaysZero(t *testing.T) {
	c := New()
	c.setFlags(true, true, true, true)
	if c.F&0x0F != 0 {
		t.Fatalf("F = 0x%02X, low nibble not zero", c.F)
	}
}

func TestDAA(t *testing.T) {
	b := newTestBus(t)
	c := New()
	c.PowerOn()
	c.A = 0x15
	c.alu(0, 0x27) // ADD A,0x27
	c.daa()
	_ = b

	if c.A != 0x42 {
		t.Fatalf("A = 0x%02X, want 0x42", c.A)
	}
	if c.flagZ() || c.flagC() || c.flagH() || c.flagN() {
		t.Fatalf("flags after DAA = 0x%02X, want all clear", c.F)
	}
}

func TestAddSPSigned(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x0100] = 2
	b := newTestBusFromROM(t, rom)

	c := New()
	c.PowerOn()
	c.SP = 0xFFF8
	res := c.addSPSigned(b)
	if res != 0xFFFA {
		t.Fatalf("SP+2 = 0x%04X, want 0xFFFA", res)
	}
	if c.flagZ() || c.flagN() || c.flagH() || c.flagC() {
		t.Fatalf("flags = 0x%02X, want all clear", c.F)
	}

	rom2 := make([]byte, 0x8000)
	rom2[0x0100] = 1
	b2 := newTestBusFromROM(t, rom2)

	c2 := New()
	c2.PowerOn()
	c2.SP = 0x000F
	res2 := c2.addSPSigned(b2)
	if res2 != 0x0010 {
		t.Fatalf("SP+1 = 0x%04X, want 0x0010", res2)
	}
	if !c2.flagH() || c2.flagC() {
		t.Fatalf("flags = 0x%02X, want H set, C clear", c2.F)
	}
}

func TestInterruptDispatch(t *testing.T) {
	b := newTestBus(t)
	c := New()
	c.PowerOn()
	c.ime = true
	prePC := c.PC

	b.RequestInterrupt(1) // LCDC
	serviced := c.serviceInterrupt(b)
	if !serviced {
		t.Fatal("serviceInterrupt returned false with a pending, enabled interrupt")
	}
	if c.IME() {
		t.Fatal("IME still set after dispatch")
	}
	if c.PC != 0x0048 {
		t.Fatalf("PC = 0x%04X, want the LCDC vector 0x0048", c.PC)
	}
	if b.IF()&0x02 != 0 {
		t.Fatal("IF bit not cleared after dispatch")
	}
	pushed := c.pop16(b)
	if pushed != prePC {
		t.Fatalf("pushed PC = 0x%04X, want pre-dispatch PC 0x%04X", pushed, prePC)
	}
}

func TestInterruptDispatchRequiresIME(t *testing.T) {
	b := newTestBus(t)
	c := New()
	c.PowerOn()
	b.RequestInterrupt(0)

	if c.serviceInterrupt(b) {
		t.Fatal("serviceInterrupt fired with IME clear")
	}
}

func TestIllegalOpcodeIsNoOp(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x0100] = 0xD3
	b := newTestBusFromROM(t, rom)
	c := New()
	c.PowerOn()
	start := c.PC

	c.Step(b)

	if c.PC != start+1 {
		t.Fatalf("PC after illegal opcode = 0x%04X, want 0x%04X", c.PC, start+1)
	}
}

func TestRotateAVariantForcesZeroFlagClear(t *testing.T) {
	c := New()
	c.rlc(0, true)
	if c.flagZ() {
		t.Fatal("A-variant rotate of 0 must clear Z even though the result is 0")
	}

	c2 := New()
	c2.rlc(0, false)
	if !c2.flagZ() {
		t.Fatal("generic CB-prefixed rotate of 0 must set Z")
	}
}
