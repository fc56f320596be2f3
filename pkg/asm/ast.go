package asm

import (
	"fmt"
	"strings"
)

// MaxOperands is the most operands one instruction may carry.
const MaxOperands = 3

// Operand is one of Register, Immediate, Memory or LabelRef.
type Operand interface {
	isOperand()
	String() string
}

// Register is a general-purpose register index, 0-7.
type Register uint8

// Immediate is a 4-bit literal, 0-15.
type Immediate uint8

// Memory is a bracketed byte address.
type Memory uint8

// LabelRef names a label; it is resolved in pass 2.
type LabelRef string

func (Register) isOperand()  {}
func (Immediate) isOperand() {}
func (Memory) isOperand()    {}
func (LabelRef) isOperand()  {}

func (r Register) String() string  { return fmt.Sprintf("R%d", uint8(r)) }
func (i Immediate) String() string { return fmt.Sprintf("%d", uint8(i)) }
func (m Memory) String() string    { return fmt.Sprintf("[%d]", uint8(m)) }
func (l LabelRef) String() string  { return fmt.Sprintf("'%s'", string(l)) }

// Position is a 1-based source location.
type Position struct {
	Line   int
	Column int
}

func (p Position) Pos() Position { return p }

// Statement is one of *Label, *Instruction or *Directive.
type Statement interface {
	Pos() Position
	isStatement()
	String() string
}

// Label defines Name as the address of the next instruction.
type Label struct {
	Name string
	Position
}

// Instruction is a mnemonic with up to MaxOperands operands.
type Instruction struct {
	Mnemonic string
	Operands []Operand
	Position
}

// Directive is a .name line. It is kept in program order but has no
// effect on addressing or encoding.
type Directive struct {
	Name string
	Position
}

func (*Label) isStatement()       {}
func (*Instruction) isStatement() {}
func (*Directive) isStatement()   {}

func (s *Label) String() string {
	return fmt.Sprintf("%d:%d  LABEL     '%s':", s.Line, s.Column, s.Name)
}

func (s *Instruction) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:%d  INSTR     '%s'", s.Line, s.Column, s.Mnemonic)
	for _, op := range s.Operands {
		sb.WriteByte(' ')
		sb.WriteString(op.String())
	}
	return sb.String()
}

func (s *Directive) String() string {
	return fmt.Sprintf("%d:%d  DIRECTIVE '%s'", s.Line, s.Column, s.Name)
}
