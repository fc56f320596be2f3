package asm

import (
	"errors"
	"fmt"
)

// Parse errors.
var (
	ErrUnexpectedToken = errors.New("unexpected token at start of statement")
	ErrExpectedColon   = errors.New("expected ':' after label")
	ErrTooManyOperands = errors.New("too many operands")
	ErrExpectedOperand = errors.New("expected operand")
	ErrInvalidDecimal  = errors.New("invalid decimal digit")
	ErrInvalidHex      = errors.New("invalid hex digit")
	ErrImmediateRange  = errors.New("immediate value exceeds 4 bits (max 15)")
	ErrAddressRange    = errors.New("memory address exceeds 8 bits (max 255)")
	ErrExpectedAddress = errors.New("expected number or register in memory address")
	ErrExpectedBracket = errors.New("expected ']' to close memory address")
)

// Assembly errors.
var (
	ErrEmptyProgram     = errors.New("no statements to assemble")
	ErrProgramTooLarge  = errors.New("program too large")
	ErrDuplicateLabel   = errors.New("duplicate label")
	ErrUnknownMnemonic  = errors.New("unknown mnemonic")
	ErrUndefinedLabel   = errors.New("undefined label")
	ErrPassMismatch     = errors.New("instruction count differs between passes")
	ErrOperandCount0    = errors.New("instruction takes no operands")
	ErrOperandCount1    = errors.New("instruction requires 1 operand")
	ErrOperandCount2    = errors.New("instruction requires 2 operands")
	ErrRegisterOperands = errors.New("operands must be registers")
	ErrMOVIOperands     = errors.New("MOVI requires a register and an immediate")
	ErrLDOperands       = errors.New("LD requires a register and a memory address")
	ErrSTOperands       = errors.New("ST requires a memory address and a register")
	ErrJMPOperand       = errors.New("JMP operand must be label or immediate")
)

// Error is a failure tied to a source position. Err is one of the
// package's sentinel errors.
type Error struct {
	Err    error
	Line   int
	Column int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %v", e.Line, e.Column, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func errorAt(err error, pos Position) *Error {
	return &Error{Err: err, Line: pos.Line, Column: pos.Column}
}

func errorAtToken(err error, tok Token) *Error {
	return &Error{Err: err, Line: tok.Line, Column: tok.Column}
}
