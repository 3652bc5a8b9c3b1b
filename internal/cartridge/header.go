package cartridge

import "fmt"

// Kind identifies the MBC family a cartridge is wired to. Unlike the family
// of subclasses a naive port would reach for, Kind is a discriminant on a
// single tagged mbc value (see mbc.go) — there is no per-variant type.
type Kind uint8

const (
	KindROMOnly Kind = iota
	KindMBC1
	KindMBC2
	KindMBC5
)

// romBankCounts maps the ROM size code at header offset 0x0148 to a bank
// count. The table follows the values enumerated in the cartridge header
// specification: the first nine entries double starting from 2 banks (32
// KiB, the unbanked case), and three further codes describe the odd
// "1.1/1.2/1.5 MiB" ROM sizes used by a handful of MBC1 multicarts.
var romBankCounts = map[uint8]int{
	0x00: 2,
	0x01: 4,
	0x02: 8,
	0x03: 16,
	0x04: 32,
	0x05: 64,
	0x06: 128,
	0x07: 256,
	0x08: 512,
	0x52: 72,
	0x53: 80,
	0x54: 96,
}

// ramBankCounts maps the RAM size code at header offset 0x0149 to a bank
// count, each bank being 8 KiB.
var ramBankCounts = map[uint8]int{
	0x00: 0,
	0x01: 1,
	0x02: 1,
	0x03: 4,
	0x04: 16,
	0x05: 8,
}

// Header carries the fields of the cartridge header relevant to bank
// construction. Unlike the teacher's Header, it does not parse CGB/SGB
// flags or licensee codes — the engine never branches on them.
type Header struct {
	Title    string
	TypeCode uint8
	ROMBanks int
	RAMBanks int
}

// ErrRomNotSupported is returned by ParseHeader when the cartridge type
// code names an MBC family this engine does not implement.
type ErrRomNotSupported struct {
	TypeCode uint8
}

func (e *ErrRomNotSupported) Error() string {
	return fmt.Sprintf("cartridge: rom type code 0x%02X is not supported", e.TypeCode)
}

// ParseHeader decodes the fixed-offset header fields out of a ROM image and
// resolves the MBC family it implies. It fails with *ErrRomNotSupported for
// any type code this engine doesn't implement (anything outside ROM-only,
// MBC1, MBC2 and MBC5).
func ParseHeader(rom []byte) (Header, Kind, error) {
	if len(rom) < 0x150 {
		return Header{}, 0, fmt.Errorf("cartridge: rom too small to contain a header (%d bytes)", len(rom))
	}

	h := Header{
		Title:    decodeTitle(rom[0x0134:0x0144]),
		TypeCode: rom[0x0147],
		ROMBanks: romBankCounts[rom[0x0148]],
		RAMBanks: ramBankCounts[rom[0x0149]],
	}
	if h.ROMBanks == 0 {
		h.ROMBanks = 2
	}

	kind, err := kindForType(h.TypeCode)
	if err != nil {
		return Header{}, 0, err
	}

	// MBC2 always carries exactly 512 nibbles of RAM regardless of the
	// RAM-size header byte (which is typically zero on MBC2 carts).
	if kind == KindMBC2 {
		h.RAMBanks = 0
	}

	return h, kind, nil
}

func decodeTitle(raw []byte) string {
	end := len(raw)
	for i, b := range raw {
		if b == 0 {
			end = i
			break
		}
	}
	return string(raw[:end])
}

func kindForType(typeCode uint8) (Kind, error) {
	switch typeCode {
	case 0x00, 0x08, 0x09:
		return KindROMOnly, nil
	case 0x01, 0x02, 0x03:
		return KindMBC1, nil
	case 0x05, 0x06:
		return KindMBC2, nil
	case 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E:
		return KindMBC5, nil
	default:
		return 0, &ErrRomNotSupported{TypeCode: typeCode}
	}
}
