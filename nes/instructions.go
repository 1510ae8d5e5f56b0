package nes

// addressingMode enumerates the ways an instruction names its operand.
type addressingMode byte

const (
	// immediate operands carry their 1-byte value in the instruction.
	immediate addressingMode = iota

	// zeroPage names a 1-byte address within 0x0000-0x00FF.
	zeroPage

	// absolute names a full 2-byte address.
	absolute

	// relative is used by branches: a signed 1-byte offset from the
	// address of the next instruction.
	relative

	// implied instructions have no operand.
	implied

	// accumulator is implied addressing that targets A.
	accumulator

	// indexedX is absolute plus X. Reads pay an extra "oops" cycle when
	// the sum crosses a page; writes and modifies always pay it.
	indexedX

	// indexedY is absolute plus Y, same oops-cycle rule as indexedX.
	indexedY

	// zeroPageIndexedX adds X to a zero-page address, wrapping in page 0.
	zeroPageIndexedX

	// zeroPageIndexedY adds Y to a zero-page address, wrapping in page 0.
	zeroPageIndexedY

	// indirect reads the target from a 2-byte pointer. JMP only, and the
	// pointer high byte fetch does not carry into the next page: a pointer
	// at 0xXXFF reads its high byte from 0xXX00.
	indirect

	// preIndexedIndirect, (d,X): the pointer lives at operand+X in page 0.
	preIndexedIndirect

	// postIndexedIndirect, (d),Y: the pointer lives at the operand in
	// page 0 and Y is added to the fetched address.
	postIndexedIndirect
)

// instructionKind records the bus behavior of the memory forms. The
// page-cross (oops) cycle itself comes from the table's pageCycles
// column for reads; writes and read-modify-writes carry it in cycles.
type instructionKind byte

const (
	_ instructionKind = iota
	read
	write
	readModWrite
)

type instruction struct {
	opCode     byte
	name       string
	mode       addressingMode
	kind       instructionKind
	size       byte
	cycles     byte
	pageCycles byte
	illegal    bool
}

// instructions is the full decode table, one entry per opcode byte.
// Documented opcodes follow the 6502 datasheet; the unofficial ones
// decode to the (mode, mnemonic) pairs games actually rely on. The
// halting KIL variants and the unstable 0x8B/0x93/0x9B/0x9C/0x9E/0x9F/0xBB
// group keep well-defined sizes and cycle counts so the fetch stream
// never desynchronizes, even though their operation is a no-op here.
var instructions = [256]instruction{
	{opCode: 0x00, name: "BRK", size: 2, cycles: 7, mode: implied},
	{opCode: 0x01, name: "ORA", size: 2, cycles: 6, mode: preIndexedIndirect, kind: read},
	{opCode: 0x02, name: "KIL", size: 1, cycles: 2, mode: implied, illegal: true},
	{opCode: 0x03, name: "SLO", size: 2, cycles: 8, mode: preIndexedIndirect, kind: readModWrite, illegal: true},
	{opCode: 0x04, name: "NOP", size: 2, cycles: 3, mode: zeroPage, kind: read, illegal: true},
	{opCode: 0x05, name: "ORA", size: 2, cycles: 3, mode: zeroPage, kind: read},
	{opCode: 0x06, name: "ASL", size: 2, cycles: 5, mode: zeroPage, kind: readModWrite},
	{opCode: 0x07, name: "SLO", size: 2, cycles: 5, mode: zeroPage, kind: readModWrite, illegal: true},
	{opCode: 0x08, name: "PHP", size: 1, cycles: 3, mode: implied},
	{opCode: 0x09, name: "ORA", size: 2, cycles: 2, mode: immediate, kind: read},
	{opCode: 0x0A, name: "ASL", size: 1, cycles: 2, mode: accumulator, kind: readModWrite},
	{opCode: 0x0B, name: "ANC", size: 2, cycles: 2, mode: immediate, kind: read, illegal: true},
	{opCode: 0x0C, name: "NOP", size: 3, cycles: 4, mode: absolute, kind: read, illegal: true},
	{opCode: 0x0D, name: "ORA", size: 3, cycles: 4, mode: absolute, kind: read},
	{opCode: 0x0E, name: "ASL", size: 3, cycles: 6, mode: absolute, kind: readModWrite},
	{opCode: 0x0F, name: "SLO", size: 3, cycles: 6, mode: absolute, kind: readModWrite, illegal: true},
	{opCode: 0x10, name: "BPL", size: 2, cycles: 2, pageCycles: 1, mode: relative},
	{opCode: 0x11, name: "ORA", size: 2, cycles: 5, pageCycles: 1, mode: postIndexedIndirect, kind: read},
	{opCode: 0x12, name: "KIL", size: 1, cycles: 2, mode: implied, illegal: true},
	{opCode: 0x13, name: "SLO", size: 2, cycles: 8, mode: postIndexedIndirect, kind: readModWrite, illegal: true},
	{opCode: 0x14, name: "NOP", size: 2, cycles: 4, mode: zeroPageIndexedX, kind: read, illegal: true},
	{opCode: 0x15, name: "ORA", size: 2, cycles: 4, mode: zeroPageIndexedX, kind: read},
	{opCode: 0x16, name: "ASL", size: 2, cycles: 6, mode: zeroPageIndexedX, kind: readModWrite},
	{opCode: 0x17, name: "SLO", size: 2, cycles: 6, mode: zeroPageIndexedX, kind: readModWrite, illegal: true},
	{opCode: 0x18, name: "CLC", size: 1, cycles: 2, mode: implied},
	{opCode: 0x19, name: "ORA", size: 3, cycles: 4, pageCycles: 1, mode: indexedY, kind: read},
	{opCode: 0x1A, name: "NOP", size: 1, cycles: 2, mode: implied, kind: read, illegal: true},
	{opCode: 0x1B, name: "SLO", size: 3, cycles: 7, mode: indexedY, kind: readModWrite, illegal: true},
	{opCode: 0x1C, name: "NOP", size: 3, cycles: 4, pageCycles: 1, mode: indexedX, kind: read, illegal: true},
	{opCode: 0x1D, name: "ORA", size: 3, cycles: 4, pageCycles: 1, mode: indexedX, kind: read},
	{opCode: 0x1E, name: "ASL", size: 3, cycles: 7, mode: indexedX, kind: readModWrite},
	{opCode: 0x1F, name: "SLO", size: 3, cycles: 7, mode: indexedX, kind: readModWrite, illegal: true},
	{opCode: 0x20, name: "JSR", size: 3, cycles: 6, mode: absolute},
	{opCode: 0x21, name: "AND", size: 2, cycles: 6, mode: preIndexedIndirect, kind: read},
	{opCode: 0x22, name: "KIL", size: 1, cycles: 2, mode: implied, illegal: true},
	{opCode: 0x23, name: "RLA", size: 2, cycles: 8, mode: preIndexedIndirect, kind: readModWrite, illegal: true},
	{opCode: 0x24, name: "BIT", size: 2, cycles: 3, mode: zeroPage, kind: read},
	{opCode: 0x25, name: "AND", size: 2, cycles: 3, mode: zeroPage, kind: read},
	{opCode: 0x26, name: "ROL", size: 2, cycles: 5, mode: zeroPage, kind: readModWrite},
	{opCode: 0x27, name: "RLA", size: 2, cycles: 5, mode: zeroPage, kind: readModWrite, illegal: true},
	{opCode: 0x28, name: "PLP", size: 1, cycles: 4, mode: implied},
	{opCode: 0x29, name: "AND", size: 2, cycles: 2, mode: immediate, kind: read},
	{opCode: 0x2A, name: "ROL", size: 1, cycles: 2, mode: accumulator, kind: readModWrite},
	{opCode: 0x2B, name: "ANC", size: 2, cycles: 2, mode: immediate, kind: read, illegal: true},
	{opCode: 0x2C, name: "BIT", size: 3, cycles: 4, mode: absolute, kind: read},
	{opCode: 0x2D, name: "AND", size: 3, cycles: 4, mode: absolute, kind: read},
	{opCode: 0x2E, name: "ROL", size: 3, cycles: 6, mode: absolute, kind: readModWrite},
	{opCode: 0x2F, name: "RLA", size: 3, cycles: 6, mode: absolute, kind: readModWrite, illegal: true},
	{opCode: 0x30, name: "BMI", size: 2, cycles: 2, pageCycles: 1, mode: relative},
	{opCode: 0x31, name: "AND", size: 2, cycles: 5, pageCycles: 1, mode: postIndexedIndirect, kind: read},
	{opCode: 0x32, name: "KIL", size: 1, cycles: 2, mode: implied, illegal: true},
	{opCode: 0x33, name: "RLA", size: 2, cycles: 8, mode: postIndexedIndirect, kind: readModWrite, illegal: true},
	{opCode: 0x34, name: "NOP", size: 2, cycles: 4, mode: zeroPageIndexedX, kind: read, illegal: true},
	{opCode: 0x35, name: "AND", size: 2, cycles: 4, mode: zeroPageIndexedX, kind: read},
	{opCode: 0x36, name: "ROL", size: 2, cycles: 6, mode: zeroPageIndexedX, kind: readModWrite},
	{opCode: 0x37, name: "RLA", size: 2, cycles: 6, mode: zeroPageIndexedX, kind: readModWrite, illegal: true},
	{opCode: 0x38, name: "SEC", size: 1, cycles: 2, mode: implied},
	{opCode: 0x39, name: "AND", size: 3, cycles: 4, pageCycles: 1, mode: indexedY, kind: read},
	{opCode: 0x3A, name: "NOP", size: 1, cycles: 2, mode: implied, kind: read, illegal: true},
	{opCode: 0x3B, name: "RLA", size: 3, cycles: 7, mode: indexedY, kind: readModWrite, illegal: true},
	{opCode: 0x3C, name: "NOP", size: 3, cycles: 4, pageCycles: 1, mode: indexedX, kind: read, illegal: true},
	{opCode: 0x3D, name: "AND", size: 3, cycles: 4, pageCycles: 1, mode: indexedX, kind: read},
	{opCode: 0x3E, name: "ROL", size: 3, cycles: 7, mode: indexedX, kind: readModWrite},
	{opCode: 0x3F, name: "RLA", size: 3, cycles: 7, mode: indexedX, kind: readModWrite, illegal: true},
	{opCode: 0x40, name: "RTI", size: 1, cycles: 6, mode: implied},
	{opCode: 0x41, name: "EOR", size: 2, cycles: 6, mode: preIndexedIndirect, kind: read},
	{opCode: 0x42, name: "KIL", size: 1, cycles: 2, mode: implied, illegal: true},
	{opCode: 0x43, name: "SRE", size: 2, cycles: 8, mode: preIndexedIndirect, kind: readModWrite, illegal: true},
	{opCode: 0x44, name: "NOP", size: 2, cycles: 3, mode: zeroPage, kind: read, illegal: true},
	{opCode: 0x45, name: "EOR", size: 2, cycles: 3, mode: zeroPage, kind: read},
	{opCode: 0x46, name: "LSR", size: 2, cycles: 5, mode: zeroPage, kind: readModWrite},
	{opCode: 0x47, name: "SRE", size: 2, cycles: 5, mode: zeroPage, kind: readModWrite, illegal: true},
	{opCode: 0x48, name: "PHA", size: 1, cycles: 3, mode: implied},
	{opCode: 0x49, name: "EOR", size: 2, cycles: 2, mode: immediate, kind: read},
	{opCode: 0x4A, name: "LSR", size: 1, cycles: 2, mode: accumulator, kind: readModWrite},
	{opCode: 0x4B, name: "ALR", size: 2, cycles: 2, mode: immediate, kind: read, illegal: true},
	{opCode: 0x4C, name: "JMP", size: 3, cycles: 3, mode: absolute},
	{opCode: 0x4D, name: "EOR", size: 3, cycles: 4, mode: absolute, kind: read},
	{opCode: 0x4E, name: "LSR", size: 3, cycles: 6, mode: absolute, kind: readModWrite},
	{opCode: 0x4F, name: "SRE", size: 3, cycles: 6, mode: absolute, kind: readModWrite, illegal: true},
	{opCode: 0x50, name: "BVC", size: 2, cycles: 2, pageCycles: 1, mode: relative},
	{opCode: 0x51, name: "EOR", size: 2, cycles: 5, pageCycles: 1, mode: postIndexedIndirect, kind: read},
	{opCode: 0x52, name: "KIL", size: 1, cycles: 2, mode: implied, illegal: true},
	{opCode: 0x53, name: "SRE", size: 2, cycles: 8, mode: postIndexedIndirect, kind: readModWrite, illegal: true},
	{opCode: 0x54, name: "NOP", size: 2, cycles: 4, mode: zeroPageIndexedX, kind: read, illegal: true},
	{opCode: 0x55, name: "EOR", size: 2, cycles: 4, mode: zeroPageIndexedX, kind: read},
	{opCode: 0x56, name: "LSR", size: 2, cycles: 6, mode: zeroPageIndexedX, kind: readModWrite},
	{opCode: 0x57, name: "SRE", size: 2, cycles: 6, mode: zeroPageIndexedX, kind: readModWrite, illegal: true},
	{opCode: 0x58, name: "CLI", size: 1, cycles: 2, mode: implied},
	{opCode: 0x59, name: "EOR", size: 3, cycles: 4, pageCycles: 1, mode: indexedY, kind: read},
	{opCode: 0x5A, name: "NOP", size: 1, cycles: 2, mode: implied, kind: read, illegal: true},
	{opCode: 0x5B, name: "SRE", size: 3, cycles: 7, mode: indexedY, kind: readModWrite, illegal: true},
	{opCode: 0x5C, name: "NOP", size: 3, cycles: 4, pageCycles: 1, mode: indexedX, kind: read, illegal: true},
	{opCode: 0x5D, name: "EOR", size: 3, cycles: 4, pageCycles: 1, mode: indexedX, kind: read},
	{opCode: 0x5E, name: "LSR", size: 3, cycles: 7, mode: indexedX, kind: readModWrite},
	{opCode: 0x5F, name: "SRE", size: 3, cycles: 7, mode: indexedX, kind: readModWrite, illegal: true},
	{opCode: 0x60, name: "RTS", size: 1, cycles: 6, mode: implied},
	{opCode: 0x61, name: "ADC", size: 2, cycles: 6, mode: preIndexedIndirect, kind: read},
	{opCode: 0x62, name: "KIL", size: 1, cycles: 2, mode: implied, illegal: true},
	{opCode: 0x63, name: "RRA", size: 2, cycles: 8, mode: preIndexedIndirect, kind: readModWrite, illegal: true},
	{opCode: 0x64, name: "NOP", size: 2, cycles: 3, mode: zeroPage, kind: read, illegal: true},
	{opCode: 0x65, name: "ADC", size: 2, cycles: 3, mode: zeroPage, kind: read},
	{opCode: 0x66, name: "ROR", size: 2, cycles: 5, mode: zeroPage, kind: readModWrite},
	{opCode: 0x67, name: "RRA", size: 2, cycles: 5, mode: zeroPage, kind: readModWrite, illegal: true},
	{opCode: 0x68, name: "PLA", size: 1, cycles: 4, mode: implied},
	{opCode: 0x69, name: "ADC", size: 2, cycles: 2, mode: immediate, kind: read},
	{opCode: 0x6A, name: "ROR", size: 1, cycles: 2, mode: accumulator, kind: readModWrite},
	{opCode: 0x6B, name: "ARR", size: 2, cycles: 2, mode: immediate, kind: read, illegal: true},
	{opCode: 0x6C, name: "JMP", size: 3, cycles: 5, mode: indirect},
	{opCode: 0x6D, name: "ADC", size: 3, cycles: 4, mode: absolute, kind: read},
	{opCode: 0x6E, name: "ROR", size: 3, cycles: 6, mode: absolute, kind: readModWrite},
	{opCode: 0x6F, name: "RRA", size: 3, cycles: 6, mode: absolute, kind: readModWrite, illegal: true},
	{opCode: 0x70, name: "BVS", size: 2, cycles: 2, pageCycles: 1, mode: relative},
	{opCode: 0x71, name: "ADC", size: 2, cycles: 5, pageCycles: 1, mode: postIndexedIndirect, kind: read},
	{opCode: 0x72, name: "KIL", size: 1, cycles: 2, mode: implied, illegal: true},
	{opCode: 0x73, name: "RRA", size: 2, cycles: 8, mode: postIndexedIndirect, kind: readModWrite, illegal: true},
	{opCode: 0x74, name: "NOP", size: 2, cycles: 4, mode: zeroPageIndexedX, kind: read, illegal: true},
	{opCode: 0x75, name: "ADC", size: 2, cycles: 4, mode: zeroPageIndexedX, kind: read},
	{opCode: 0x76, name: "ROR", size: 2, cycles: 6, mode: zeroPageIndexedX, kind: readModWrite},
	{opCode: 0x77, name: "RRA", size: 2, cycles: 6, mode: zeroPageIndexedX, kind: readModWrite, illegal: true},
	{opCode: 0x78, name: "SEI", size: 1, cycles: 2, mode: implied},
	{opCode: 0x79, name: "ADC", size: 3, cycles: 4, pageCycles: 1, mode: indexedY, kind: read},
	{opCode: 0x7A, name: "NOP", size: 1, cycles: 2, mode: implied, kind: read, illegal: true},
	{opCode: 0x7B, name: "RRA", size: 3, cycles: 7, mode: indexedY, kind: readModWrite, illegal: true},
	{opCode: 0x7C, name: "NOP", size: 3, cycles: 4, pageCycles: 1, mode: indexedX, kind: read, illegal: true},
	{opCode: 0x7D, name: "ADC", size: 3, cycles: 4, pageCycles: 1, mode: indexedX, kind: read},
	{opCode: 0x7E, name: "ROR", size: 3, cycles: 7, mode: indexedX, kind: readModWrite},
	{opCode: 0x7F, name: "RRA", size: 3, cycles: 7, mode: indexedX, kind: readModWrite, illegal: true},
	{opCode: 0x80, name: "NOP", size: 2, cycles: 2, mode: immediate, kind: read, illegal: true},
	{opCode: 0x81, name: "STA", size: 2, cycles: 6, mode: preIndexedIndirect, kind: write},
	{opCode: 0x82, name: "NOP", size: 2, cycles: 2, mode: immediate, kind: read, illegal: true},
	{opCode: 0x83, name: "SAX", size: 2, cycles: 6, mode: preIndexedIndirect, kind: write, illegal: true},
	{opCode: 0x84, name: "STY", size: 2, cycles: 3, mode: zeroPage, kind: write},
	{opCode: 0x85, name: "STA", size: 2, cycles: 3, mode: zeroPage, kind: write},
	{opCode: 0x86, name: "STX", size: 2, cycles: 3, mode: zeroPage, kind: write},
	{opCode: 0x87, name: "SAX", size: 2, cycles: 3, mode: zeroPage, kind: write, illegal: true},
	{opCode: 0x88, name: "DEY", size: 1, cycles: 2, mode: implied},
	{opCode: 0x89, name: "NOP", size: 2, cycles: 2, mode: immediate, kind: read, illegal: true},
	{opCode: 0x8A, name: "TXA", size: 1, cycles: 2, mode: implied},
	{opCode: 0x8B, name: "XAA", size: 2, cycles: 2, mode: immediate, illegal: true},
	{opCode: 0x8C, name: "STY", size: 3, cycles: 4, mode: absolute, kind: write},
	{opCode: 0x8D, name: "STA", size: 3, cycles: 4, mode: absolute, kind: write},
	{opCode: 0x8E, name: "STX", size: 3, cycles: 4, mode: absolute, kind: write},
	{opCode: 0x8F, name: "SAX", size: 3, cycles: 4, mode: absolute, kind: write, illegal: true},
	{opCode: 0x90, name: "BCC", size: 2, cycles: 2, pageCycles: 1, mode: relative},
	{opCode: 0x91, name: "STA", size: 2, cycles: 6, mode: postIndexedIndirect, kind: write},
	{opCode: 0x92, name: "KIL", size: 1, cycles: 2, mode: implied, illegal: true},
	{opCode: 0x93, name: "AHX", size: 2, cycles: 6, mode: postIndexedIndirect, kind: write, illegal: true},
	{opCode: 0x94, name: "STY", size: 2, cycles: 4, mode: zeroPageIndexedX, kind: write},
	{opCode: 0x95, name: "STA", size: 2, cycles: 4, mode: zeroPageIndexedX, kind: write},
	{opCode: 0x96, name: "STX", size: 2, cycles: 4, mode: zeroPageIndexedY, kind: write},
	{opCode: 0x97, name: "SAX", size: 2, cycles: 4, mode: zeroPageIndexedY, kind: write, illegal: true},
	{opCode: 0x98, name: "TYA", size: 1, cycles: 2, mode: implied},
	{opCode: 0x99, name: "STA", size: 3, cycles: 5, mode: indexedY, kind: write},
	{opCode: 0x9A, name: "TXS", size: 1, cycles: 2, mode: implied},
	{opCode: 0x9B, name: "TAS", size: 3, cycles: 5, mode: indexedY, kind: write, illegal: true},
	{opCode: 0x9C, name: "SHY", size: 3, cycles: 5, mode: indexedX, kind: write, illegal: true},
	{opCode: 0x9D, name: "STA", size: 3, cycles: 5, mode: indexedX, kind: write},
	{opCode: 0x9E, name: "SHX", size: 3, cycles: 5, mode: indexedY, kind: write, illegal: true},
	{opCode: 0x9F, name: "AHX", size: 3, cycles: 5, mode: indexedY, kind: write, illegal: true},
	{opCode: 0xA0, name: "LDY", size: 2, cycles: 2, mode: immediate, kind: read},
	{opCode: 0xA1, name: "LDA", size: 2, cycles: 6, mode: preIndexedIndirect, kind: read},
	{opCode: 0xA2, name: "LDX", size: 2, cycles: 2, mode: immediate, kind: read},
	{opCode: 0xA3, name: "LAX", size: 2, cycles: 6, mode: preIndexedIndirect, kind: read, illegal: true},
	{opCode: 0xA4, name: "LDY", size: 2, cycles: 3, mode: zeroPage, kind: read},
	{opCode: 0xA5, name: "LDA", size: 2, cycles: 3, mode: zeroPage, kind: read},
	{opCode: 0xA6, name: "LDX", size: 2, cycles: 3, mode: zeroPage, kind: read},
	{opCode: 0xA7, name: "LAX", size: 2, cycles: 3, mode: zeroPage, kind: read, illegal: true},
	{opCode: 0xA8, name: "TAY", size: 1, cycles: 2, mode: implied},
	{opCode: 0xA9, name: "LDA", size: 2, cycles: 2, mode: immediate, kind: read},
	{opCode: 0xAA, name: "TAX", size: 1, cycles: 2, mode: implied},
	{opCode: 0xAB, name: "LAX", size: 2, cycles: 2, mode: immediate, kind: read, illegal: true},
	{opCode: 0xAC, name: "LDY", size: 3, cycles: 4, mode: absolute, kind: read},
	{opCode: 0xAD, name: "LDA", size: 3, cycles: 4, mode: absolute, kind: read},
	{opCode: 0xAE, name: "LDX", size: 3, cycles: 4, mode: absolute, kind: read},
	{opCode: 0xAF, name: "LAX", size: 3, cycles: 4, mode: absolute, kind: read, illegal: true},
	{opCode: 0xB0, name: "BCS", size: 2, cycles: 2, pageCycles: 1, mode: relative},
	{opCode: 0xB1, name: "LDA", size: 2, cycles: 5, pageCycles: 1, mode: postIndexedIndirect, kind: read},
	{opCode: 0xB2, name: "KIL", size: 1, cycles: 2, mode: implied, illegal: true},
	{opCode: 0xB3, name: "LAX", size: 2, cycles: 5, pageCycles: 1, mode: postIndexedIndirect, kind: read, illegal: true},
	{opCode: 0xB4, name: "LDY", size: 2, cycles: 4, mode: zeroPageIndexedX, kind: read},
	{opCode: 0xB5, name: "LDA", size: 2, cycles: 4, mode: zeroPageIndexedX, kind: read},
	{opCode: 0xB6, name: "LDX", size: 2, cycles: 4, mode: zeroPageIndexedY, kind: read},
	{opCode: 0xB7, name: "LAX", size: 2, cycles: 4, mode: zeroPageIndexedY, kind: read, illegal: true},
	{opCode: 0xB8, name: "CLV", size: 1, cycles: 2, mode: implied},
	{opCode: 0xB9, name: "LDA", size: 3, cycles: 4, pageCycles: 1, mode: indexedY, kind: read},
	{opCode: 0xBA, name: "TSX", size: 1, cycles: 2, mode: implied},
	{opCode: 0xBB, name: "LAS", size: 3, cycles: 4, pageCycles: 1, mode: indexedY, illegal: true},
	{opCode: 0xBC, name: "LDY", size: 3, cycles: 4, pageCycles: 1, mode: indexedX, kind: read},
	{opCode: 0xBD, name: "LDA", size: 3, cycles: 4, pageCycles: 1, mode: indexedX, kind: read},
	{opCode: 0xBE, name: "LDX", size: 3, cycles: 4, pageCycles: 1, mode: indexedY, kind: read},
	{opCode: 0xBF, name: "LAX", size: 3, cycles: 4, pageCycles: 1, mode: indexedY, kind: read, illegal: true},
	{opCode: 0xC0, name: "CPY", size: 2, cycles: 2, mode: immediate, kind: read},
	{opCode: 0xC1, name: "CMP", size: 2, cycles: 6, mode: preIndexedIndirect, kind: read},
	{opCode: 0xC2, name: "NOP", size: 2, cycles: 2, mode: immediate, kind: read, illegal: true},
	{opCode: 0xC3, name: "DCP", size: 2, cycles: 8, mode: preIndexedIndirect, kind: readModWrite, illegal: true},
	{opCode: 0xC4, name: "CPY", size: 2, cycles: 3, mode: zeroPage, kind: read},
	{opCode: 0xC5, name: "CMP", size: 2, cycles: 3, mode: zeroPage, kind: read},
	{opCode: 0xC6, name: "DEC", size: 2, cycles: 5, mode: zeroPage, kind: readModWrite},
	{opCode: 0xC7, name: "DCP", size: 2, cycles: 5, mode: zeroPage, kind: readModWrite, illegal: true},
	{opCode: 0xC8, name: "INY", size: 1, cycles: 2, mode: implied},
	{opCode: 0xC9, name: "CMP", size: 2, cycles: 2, mode: immediate, kind: read},
	{opCode: 0xCA, name: "DEX", size: 1, cycles: 2, mode: implied},
	{opCode: 0xCB, name: "AXS", size: 2, cycles: 2, mode: immediate, kind: read, illegal: true},
	{opCode: 0xCC, name: "CPY", size: 3, cycles: 4, mode: absolute, kind: read},
	{opCode: 0xCD, name: "CMP", size: 3, cycles: 4, mode: absolute, kind: read},
	{opCode: 0xCE, name: "DEC", size: 3, cycles: 6, mode: absolute, kind: readModWrite},
	{opCode: 0xCF, name: "DCP", size: 3, cycles: 6, mode: absolute, kind: readModWrite, illegal: true},
	{opCode: 0xD0, name: "BNE", size: 2, cycles: 2, pageCycles: 1, mode: relative},
	{opCode: 0xD1, name: "CMP", size: 2, cycles: 5, pageCycles: 1, mode: postIndexedIndirect, kind: read},
	{opCode: 0xD2, name: "KIL", size: 1, cycles: 2, mode: implied, illegal: true},
	{opCode: 0xD3, name: "DCP", size: 2, cycles: 8, mode: postIndexedIndirect, kind: readModWrite, illegal: true},
	{opCode: 0xD4, name: "NOP", size: 2, cycles: 4, mode: zeroPageIndexedX, kind: read, illegal: true},
	{opCode: 0xD5, name: "CMP", size: 2, cycles: 4, mode: zeroPageIndexedX, kind: read},
	{opCode: 0xD6, name: "DEC", size: 2, cycles: 6, mode: zeroPageIndexedX, kind: readModWrite},
	{opCode: 0xD7, name: "DCP", size: 2, cycles: 6, mode: zeroPageIndexedX, kind: readModWrite, illegal: true},
	{opCode: 0xD8, name: "CLD", size: 1, cycles: 2, mode: implied},
	{opCode: 0xD9, name: "CMP", size: 3, cycles: 4, pageCycles: 1, mode: indexedY, kind: read},
	{opCode: 0xDA, name: "NOP", size: 1, cycles: 2, mode: implied, kind: read, illegal: true},
	{opCode: 0xDB, name: "DCP", size: 3, cycles: 7, mode: indexedY, kind: readModWrite, illegal: true},
	{opCode: 0xDC, name: "NOP", size: 3, cycles: 4, pageCycles: 1, mode: indexedX, kind: read, illegal: true},
	{opCode: 0xDD, name: "CMP", size: 3, cycles: 4, pageCycles: 1, mode: indexedX, kind: read},
	{opCode: 0xDE, name: "DEC", size: 3, cycles: 7, mode: indexedX, kind: readModWrite},
	{opCode: 0xDF, name: "DCP", size: 3, cycles: 7, mode: indexedX, kind: readModWrite, illegal: true},
	{opCode: 0xE0, name: "CPX", size: 2, cycles: 2, mode: immediate, kind: read},
	{opCode: 0xE1, name: "SBC", size: 2, cycles: 6, mode: preIndexedIndirect, kind: read},
	{opCode: 0xE2, name: "NOP", size: 2, cycles: 2, mode: immediate, kind: read, illegal: true},
	{opCode: 0xE3, name: "ISB", size: 2, cycles: 8, mode: preIndexedIndirect, kind: readModWrite, illegal: true},
	{opCode: 0xE4, name: "CPX", size: 2, cycles: 3, mode: zeroPage, kind: read},
	{opCode: 0xE5, name: "SBC", size: 2, cycles: 3, mode: zeroPage, kind: read},
	{opCode: 0xE6, name: "INC", size: 2, cycles: 5, mode: zeroPage, kind: readModWrite},
	{opCode: 0xE7, name: "ISB", size: 2, cycles: 5, mode: zeroPage, kind: readModWrite, illegal: true},
	{opCode: 0xE8, name: "INX", size: 1, cycles: 2, mode: implied},
	{opCode: 0xE9, name: "SBC", size: 2, cycles: 2, mode: immediate, kind: read},
	{opCode: 0xEA, name: "NOP", size: 1, cycles: 2, mode: implied, kind: read},
	{opCode: 0xEB, name: "SBC", size: 2, cycles: 2, mode: immediate, kind: read, illegal: true},
	{opCode: 0xEC, name: "CPX", size: 3, cycles: 4, mode: absolute, kind: read},
	{opCode: 0xED, name: "SBC", size: 3, cycles: 4, mode: absolute, kind: read},
	{opCode: 0xEE, name: "INC", size: 3, cycles: 6, mode: absolute, kind: readModWrite},
	{opCode: 0xEF, name: "ISB", size: 3, cycles: 6, mode: absolute, kind: readModWrite, illegal: true},
	{opCode: 0xF0, name: "BEQ", size: 2, cycles: 2, pageCycles: 1, mode: relative},
	{opCode: 0xF1, name: "SBC", size: 2, cycles: 5, pageCycles: 1, mode: postIndexedIndirect, kind: read},
	{opCode: 0xF2, name: "KIL", size: 1, cycles: 2, mode: implied, illegal: true},
	{opCode: 0xF3, name: "ISB", size: 2, cycles: 8, mode: postIndexedIndirect, kind: readModWrite, illegal: true},
	{opCode: 0xF4, name: "NOP", size: 2, cycles: 4, mode: zeroPageIndexedX, kind: read, illegal: true},
	{opCode: 0xF5, name: "SBC", size: 2, cycles: 4, mode: zeroPageIndexedX, kind: read},
	{opCode: 0xF6, name: "INC", size: 2, cycles: 6, mode: zeroPageIndexedX, kind: readModWrite},
	{opCode: 0xF7, name: "ISB", size: 2, cycles: 6, mode: zeroPageIndexedX, kind: readModWrite, illegal: true},
	{opCode: 0xF8, name: "SED", size: 1, cycles: 2, mode: implied},
	{opCode: 0xF9, name: "SBC", size: 3, cycles: 4, pageCycles: 1, mode: indexedY, kind: read},
	{opCode: 0xFA, name: "NOP", size: 1, cycles: 2, mode: implied, kind: read, illegal: true},
	{opCode: 0xFB, name: "ISB", size: 3, cycles: 7, mode: indexedY, kind: readModWrite, illegal: true},
	{opCode: 0xFC, name: "NOP", size: 3, cycles: 4, pageCycles: 1, mode: indexedX, kind: read, illegal: true},
	{opCode: 0xFD, name: "SBC", size: 3, cycles: 4, pageCycles: 1, mode: indexedX, kind: read},
	{opCode: 0xFE, name: "INC", size: 3, cycles: 7, mode: indexedX, kind: readModWrite},
	{opCode: 0xFF, name: "ISB", size: 3, cycles: 7, mode: indexedX, kind: readModWrite, illegal: true},
}
