// Package ioaddr names the memory-mapped I/O register addresses shared
// across the bus and every subsystem that reads or writes through it.
// Keeping them in one leaf package avoids the subsystems importing each
// other just to see a register's address.
package ioaddr

const (
	P1   uint16 = 0xFF00 // joypad
	DIV  uint16 = 0xFF04
	TIMA uint16 = 0xFF05
	TMA  uint16 = 0xFF06
	TAC  uint16 = 0xFF07
	IF   uint16 = 0xFF0F

	NR30 uint16 = 0xFF1A
	NR31 uint16 = 0xFF1B
	NR32 uint16 = 0xFF1C
	NR33 uint16 = 0xFF1D
	NR34 uint16 = 0xFF1E

	WaveRAMStart uint16 = 0xFF30

	LCDC uint16 = 0xFF40
	STAT uint16 = 0xFF41
	SCY  uint16 = 0xFF42
	SCX  uint16 = 0xFF43
	LY   uint16 = 0xFF44
	LYC  uint16 = 0xFF45
	DMA  uint16 = 0xFF46
	BGP  uint16 = 0xFF47
	OBP0 uint16 = 0xFF48
	OBP1 uint16 = 0xFF49
	WY   uint16 = 0xFF4A
	WX   uint16 = 0xFF4B

	IE uint16 = 0xFFFF
)

// Interrupt bit positions within IF/IE, in dispatch-priority order.
const (
	IntVBlank uint8 = iota
	IntLCDC
	IntTimer
	IntSerial
	IntJoypad
)

// Vectors are the interrupt service routine addresses, indexed the same
// way as the Int* bit constants above.
var Vectors = [5]uint16{0x0040, 0x0048, 0x0050, 0x0058, 0x0060}
