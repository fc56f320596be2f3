package cpu

import (
	"errors"
	"fmt"

	"gigaasm/pkg/alu"
	"gigaasm/pkg/isa"
)

var (
	ErrProgramTooLarge = errors.New("program does not fit in memory")
	ErrPCOutOfRange    = errors.New("program counter outside loaded program")
)

// CPU is the Giga-ALU machine state. Instruction execution is left to the
// caller: the CPU loads programs and fetches and decodes words.
type CPU struct {
	// Regs hold 4-bit values in their low nibble.
	Regs [isa.RegisterCount]uint8

	// Copies of the last ALU flags.
	Z bool
	C bool
	N bool
	V bool

	// PC is the index of the next instruction word, not a byte address.
	PC uint16

	Memory [isa.MemorySize]byte

	// LoadedWords is the number of valid instruction words in Memory.
	LoadedWords int
}

func NewCPU() *CPU {
	return &CPU{}
}

// Reset clears registers, flags, memory and the loaded program.
func (c *CPU) Reset() {
	*c = CPU{}
}

// LoadProgram stores words little-endian from address 0 (low byte at the
// even address) and rewinds PC.
func (c *CPU) LoadProgram(words []uint16) error {
	if len(words)*2 > len(c.Memory) {
		return fmt.Errorf("%w: %d words need %d bytes, have %d", ErrProgramTooLarge, len(words), len(words)*2, len(c.Memory))
	}
	for i, w := range words {
		c.Memory[i*2] = byte(w & 0xFF)
		c.Memory[i*2+1] = byte(w >> 8)
	}
	c.LoadedWords = len(words)
	c.PC = 0
	return nil
}

// LoadBytes loads an assembled byte image. A trailing odd byte is rejected.
func (c *CPU) LoadBytes(image []byte) error {
	if len(image)%2 != 0 {
		return fmt.Errorf("program image has odd length %d", len(image))
	}
	words := make([]uint16, len(image)/2)
	for i := range words {
		words[i] = uint16(image[i*2]) | uint16(image[i*2+1])<<8
	}
	return c.LoadProgram(words)
}

// Read16 reads a little-endian word from addr and addr+1.
func (c *CPU) Read16(addr uint8) uint16 {
	return uint16(c.Memory[addr]) | uint16(c.Memory[addr+1])<<8
}

// FetchWord returns the word at PC without advancing it.
func (c *CPU) FetchWord() (uint16, error) {
	if int(c.PC) >= c.LoadedWords {
		return 0, fmt.Errorf("%w: PC=%d, %d words loaded", ErrPCOutOfRange, c.PC, c.LoadedWords)
	}
	addr := int(c.PC) * 2
	return uint16(c.Memory[addr]) | uint16(c.Memory[addr+1])<<8, nil
}

// Fetch returns the decoded instruction at PC without advancing it.
func (c *CPU) Fetch() (isa.Instruction, error) {
	w, err := c.FetchWord()
	if err != nil {
		return isa.Instruction{}, err
	}
	return isa.Decode(w), nil
}

// SetFlags copies the flags of an ALU result into the CPU.
func (c *CPU) SetFlags(r alu.Result) {
	c.Z = r.Zero
	c.C = r.Carry
	c.N = r.Negative
	c.V = r.Overflow
}
