package cartridge_test

import (
	"testing"

	"github.com/kestrelcore/goboycore/internal/cartridge"
)

func mbc1ROM(t *testing.T, size int) []byte {
	t.Helper()
	rom := make([]byte, size)
	rom[0x0147] = 0x01 // MBC1
	rom[0x0148] = 0x06 // header claims 128 banks; reads are bounded by the image's actual length, not by this field
	return rom
}

func TestMBC1Banking(t *testing.T) {
	rom := mbc1ROM(t, 128*1024)
	// mark the first byte of every 16 KiB bank with the bank index, so a
	// read at 0x4000 after selecting bank N returns N.
	for bank := 0; bank < len(rom)/0x4000; bank++ {
		rom[bank*0x4000] = byte(bank)
	}

	cart, err := cartridge.New(rom)
	if err != nil {
		t.Fatalf("cartridge.New: %v", err)
	}

	cart.Write(0x2000, 0x03)
	got := cart.Read(0x4000)
	want := rom[3*0x4000]
	if got != want {
		t.Fatalf("read(0x4000) after selecting bank 3 = 0x%02X, want 0x%02X", got, want)
	}
}

func TestMBC1ZeroBankSelectReadsAsOne(t *testing.T) {
	rom := mbc1ROM(t, 128*1024)
	for bank := 0; bank < len(rom)/0x4000; bank++ {
		rom[bank*0x4000] = byte(bank)
	}
	cart, err := cartridge.New(rom)
	if err != nil {
		t.Fatalf("cartridge.New: %v", err)
	}

	cart.Write(0x2000, 0x00)
	if got := cart.Read(0x4000); got != 1 {
		t.Fatalf("read(0x4000) with bank register 0 = %d, want bank 1's marker", got)
	}
}

func TestROMOnlyRAMReadsFF(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x0147] = 0x00
	cart, err := cartridge.New(rom)
	if err != nil {
		t.Fatalf("cartridge.New: %v", err)
	}
	if got := cart.Read(0xA000); got != 0xFF {
		t.Fatalf("ROM-only read at 0xA000 = 0x%02X, want 0xFF", got)
	}
}

func TestRAMLoadRoundTrip(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x0147] = 0x03 // MBC1+RAM+BATTERY
	rom[0x0149] = 0x02 // 1 bank, 8 KiB
	cart, err := cartridge.New(rom)
	if err != nil {
		t.Fatalf("cartridge.New: %v", err)
	}

	data := make([]byte, 8*1024)
	data[0] = 0xAB
	data[100] = 0xCD
	cart.LoadRAM(data)

	snap := cart.RAM()
	if snap[0] != 0xAB || snap[100] != 0xCD {
		t.Fatalf("RAM snapshot mismatch: %02X %02X", snap[0], snap[100])
	}
}

func TestUnsupportedCartridgeType(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x0147] = 0x11 // MBC3, explicitly out of scope
	_, err := cartridge.New(rom)
	if err == nil {
		t.Fatal("expected an error for an unsupported cartridge type")
	}
	var notSupported *cartridge.ErrRomNotSupported
	if !asErrRomNotSupported(err, &notSupported) {
		t.Fatalf("error = %v, want *ErrRomNotSupported", err)
	}
}

func asErrRomNotSupported(err error, target **cartridge.ErrRomNotSupported) bool {
	e, ok := err.(*cartridge.ErrRomNotSupported)
	if ok {
		*target = e
	}
	return ok
}
