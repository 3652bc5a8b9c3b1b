// Package cartridge implements the cartridge header decode and the ROM/RAM
// bank-switching behaviour of the ROM-only, MBC1, MBC2 and MBC5 controller
// families.
//
// The MBC itself is a single tagged value (mbcState) rather than a family of
// subclasses: the Cartridge owns both the ROM and RAM byte slices and
// passes them into the mbcState's read/write on every access, so the
// controller state never has to carry (or alias) the memory it banks.
package cartridge

const (
	romBankSize = 16 * 1024
	ramBankSize = 8 * 1024
)

// Cartridge owns the immutable ROM image and the mutable, battery-backed
// external RAM, and routes addresses through whichever MBC the header
// selected.
type Cartridge struct {
	header Header
	rom    []byte
	ram    []byte
	mbc    mbcState
}

// New parses the header out of rom and constructs a Cartridge wired to the
// appropriate MBC. It fails with *ErrRomNotSupported for any cartridge type
// this engine does not implement.
func New(rom []byte) (*Cartridge, error) {
	header, kind, err := ParseHeader(rom)
	if err != nil {
		return nil, err
	}

	ramSize := header.RAMBanks * ramBankSize
	if kind == KindMBC2 {
		ramSize = 512 // 512 4-bit nibbles, one byte each, low nibble significant
	}

	c := &Cartridge{
		header: header,
		rom:    rom,
		ram:    make([]byte, ramSize),
		mbc:    newMBCState(kind),
	}
	return c, nil
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() Header { return c.header }

// Read returns the byte visible at addr, which must be in either the ROM
// window (0x0000-0x7FFF) or the external RAM window (0xA000-0xBFFF). Any
// other address returns 0xFF.
func (c *Cartridge) Read(addr uint16) uint8 {
	return c.mbc.read(c.rom, c.ram, addr)
}

// Write forwards a bus write into the MBC control registers (addr <
// 0x8000) or into external RAM (0xA000-0xBFFF). RAM-enable writes are
// ignored: external RAM is always enabled.
func (c *Cartridge) Write(addr uint16, value uint8) {
	c.mbc.write(c.rom, c.ram, addr, value)
}

// RAM snapshots the external RAM for save persistence. The returned slice
// is a copy; callers may retain or mutate it freely.
func (c *Cartridge) RAM() []byte {
	out := make([]byte, len(c.ram))
	copy(out, c.ram)
	return out
}

// LoadRAM replaces the external RAM contents with data, truncating or
// zero-padding to the cartridge's own RAM size.
func (c *Cartridge) LoadRAM(data []byte) {
	n := copy(c.ram, data)
	for i := n; i < len(c.ram); i++ {
		c.ram[i] = 0
	}
}
