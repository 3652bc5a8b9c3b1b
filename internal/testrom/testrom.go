// Package testrom assembles small synthetic ROM images shared by the
// engine's test suites. It is a regular importable package rather than a
// testdata/ directory because Go's toolchain excludes testdata/ from
// compilation — these builders need to be callable from other packages'
// _test.go files.
package testrom

const (
	romSize          = 0x8000
	headerTypeOffset = 0x0147
	entryPoint       = 0x0100
)

// Builder assembles LR35902 machine code starting at the cartridge entry
// point (0x0100) into a minimal ROM-only, header-valid image.
type Builder struct {
	rom []byte
	pc  int
}

// New returns a Builder over a fresh, zeroed ROM-only image.
func New() *Builder {
	rom := make([]byte, romSize)
	rom[headerTypeOffset] = 0x00 // ROM only
	return &Builder{rom: rom, pc: entryPoint}
}

// Bytes appends raw bytes at the current write cursor.
func (b *Builder) Bytes(bs ...byte) *Builder {
	for _, v := range bs {
		b.rom[b.pc] = v
		b.pc++
	}
	return b
}

// LDAd8 appends `LD A,d8`.
func (b *Builder) LDAd8(v byte) *Builder { return b.Bytes(0x3E, v) }

// LDHAtoA8 appends `LDH (a8),A`.
func (b *Builder) LDHAtoA8(addr byte) *Builder { return b.Bytes(0xE0, addr) }

// JRBack appends `JR r8` with a negative offset back to target (a PC
// already written earlier in the program).
func (b *Builder) JRBack(target int) *Builder {
	off := target - (b.pc + 2)
	return b.Bytes(0x18, byte(int8(off)))
}

// Halt appends `HALT`.
func (b *Builder) Halt() *Builder { return b.Bytes(0x76) }

// ROM returns the assembled image.
func (b *Builder) ROM() []byte { return b.rom }

// SerialEcho builds a ROM that writes each byte of msg to the serial data
// register (0xFF01), pulses the serial transfer-start bit (0xFF02), then
// jumps back to the start, so the whole sequence repeats forever — the
// Blargg cpu_instrs-style harness shape.
func SerialEcho(msg []byte) []byte {
	b := New()
	loopStart := b.pc
	for _, ch := range msg {
		b.LDAd8(ch).LDHAtoA8(0x01)
		b.LDAd8(0x81).LDHAtoA8(0x02)
	}
	b.JRBack(loopStart)
	return b.ROM()
}

// InfiniteLoop builds a ROM whose entire program is a self-jump, for tests
// that only need the CPU to keep fetching deterministically.
func InfiniteLoop() []byte {
	b := New()
	start := b.pc
	b.JRBack(start)
	return b.ROM()
}
