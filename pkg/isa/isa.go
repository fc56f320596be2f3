package isa

import "fmt"

// Opcode is the high nibble of an instruction word.
type Opcode uint8

const (
	OpNOP  Opcode = 0x0
	OpMOV  Opcode = 0x1 // MOV dest, src
	OpMOVI Opcode = 0x2 // MOVI dest, imm4
	OpADD  Opcode = 0x3 // ADD dest, src
	OpSUB  Opcode = 0x4 // SUB dest, src
	OpAND  Opcode = 0x5 // AND dest, src
	OpOR   Opcode = 0x6 // OR  dest, src
	OpXOR  Opcode = 0x7 // XOR dest, src
	OpNOT  Opcode = 0x8 // NOT dest
	OpSHL  Opcode = 0x9 // SHL dest
	OpSHR  Opcode = 0xA // SHR dest
	OpLD   Opcode = 0xB // LD dest, [addr]
	OpST   Opcode = 0xC // ST [addr], src
	OpJMP  Opcode = 0xD // JMP target
	OpHALT Opcode = 0xF
)

const (
	RegisterCount = 8
	MemorySize    = 256
	// MaxWords is the capacity of an assembled program, in instruction words.
	MaxWords = 128
)

var mnemonics = map[string]Opcode{
	"NOP":  OpNOP,
	"MOV":  OpMOV,
	"MOVI": OpMOVI,
	"ADD":  OpADD,
	"SUB":  OpSUB,
	"AND":  OpAND,
	"OR":   OpOR,
	"XOR":  OpXOR,
	"NOT":  OpNOT,
	"SHL":  OpSHL,
	"SHR":  OpSHR,
	"LD":   OpLD,
	"ST":   OpST,
	"JMP":  OpJMP,
	"HALT": OpHALT,
}

var names = func() map[Opcode]string {
	m := make(map[Opcode]string, len(mnemonics))
	for name, op := range mnemonics {
		m[op] = name
	}
	return m
}()

// Lookup resolves a mnemonic to its opcode. Matching is exact and
// case-sensitive: "mov" is not a mnemonic.
func Lookup(mnemonic string) (Opcode, bool) {
	op, ok := mnemonics[mnemonic]
	return op, ok
}

func (op Opcode) String() string {
	if name, ok := names[op]; ok {
		return name
	}
	return fmt.Sprintf("OP_%X", uint8(op))
}

// Valid reports whether op has a defined meaning. 0xE is unassigned.
func (op Opcode) Valid() bool {
	_, ok := names[op]
	return ok
}
