package isa

import "fmt"

// Instruction is the decoded view of one 16-bit word:
// [15:12] opcode, [11:8] dest, [7:4] src, [3:0] imm4.
type Instruction struct {
	Raw    uint16
	Opcode Opcode
	Dest   uint8
	Src    uint8
	Imm4   uint8
}

// Encode packs four nibbles into an instruction word. Each field is masked
// to 4 bits.
func Encode(op Opcode, dest, src, imm4 uint8) uint16 {
	return uint16(op&0x0F)<<12 | uint16(dest&0x0F)<<8 | uint16(src&0x0F)<<4 | uint16(imm4&0x0F)
}

// Decode splits a word into its fields. The opcode is not range checked;
// a nibble with no assigned meaning still decodes.
func Decode(word uint16) Instruction {
	return Instruction{
		Raw:    word,
		Opcode: Opcode((word >> 12) & 0x0F),
		Dest:   uint8((word >> 8) & 0x0F),
		Src:    uint8((word >> 4) & 0x0F),
		Imm4:   uint8(word & 0x0F),
	}
}

// Target returns the 12-bit jump address held in dest:src:imm4.
func (in Instruction) Target() uint16 {
	return in.Raw & 0x0FFF
}

// LoadAddress returns the byte address of an LD, held in src:imm4.
func (in Instruction) LoadAddress() uint8 {
	return in.Src<<4 | in.Imm4
}

// StoreAddress returns the byte address of an ST, held in dest:imm4.
func (in Instruction) StoreAddress() uint8 {
	return in.Dest<<4 | in.Imm4
}

// SplitTarget breaks a 12-bit jump target into dest, src and imm4,
// most significant nibble first.
func SplitTarget(target uint16) (dest, src, imm4 uint8) {
	return uint8(target>>8) & 0x0F, uint8(target>>4) & 0x0F, uint8(target) & 0x0F
}

// SplitAddress breaks a byte address into its high and low nibbles.
func SplitAddress(addr uint8) (high, low uint8) {
	return addr >> 4, addr & 0x0F
}

// String renders the instruction as assembly text.
func (in Instruction) String() string {
	switch in.Opcode {
	case OpNOP, OpHALT:
		return in.Opcode.String()
	case OpMOVI:
		return fmt.Sprintf("MOVI R%d, %d", in.Dest, in.Imm4)
	case OpMOV, OpADD, OpSUB, OpAND, OpOR, OpXOR:
		return fmt.Sprintf("%s R%d, R%d", in.Opcode, in.Dest, in.Src)
	case OpNOT, OpSHL, OpSHR:
		return fmt.Sprintf("%s R%d", in.Opcode, in.Dest)
	case OpLD:
		return fmt.Sprintf("LD R%d, [%d]", in.Dest, in.LoadAddress())
	case OpST:
		return fmt.Sprintf("ST [%d], R%d", in.StoreAddress(), in.Src)
	case OpJMP:
		return fmt.Sprintf("JMP %d", in.Target())
	default:
		return fmt.Sprintf(".word 0x%04X", in.Raw)
	}
}
