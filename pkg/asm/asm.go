package asm

import (
	"gigaasm/pkg/isa"
)

var zeroOperandOps = map[isa.Opcode]bool{
	isa.OpNOP:  true,
	isa.OpHALT: true,
}

var oneRegisterOps = map[isa.Opcode]bool{
	isa.OpNOT: true,
	isa.OpSHL: true,
	isa.OpSHR: true,
}

var twoRegisterOps = map[isa.Opcode]bool{
	isa.OpMOV: true,
	isa.OpADD: true,
	isa.OpSUB: true,
	isa.OpAND: true,
	isa.OpOR:  true,
	isa.OpXOR: true,
}

// Program is the output of a successful assembly.
type Program struct {
	Words []uint16
	// SourceMap maps a word address to the 1-based line it came from.
	SourceMap map[uint16]int
	// Labels is the label table built by pass 1.
	Labels map[string]uint16
}

// Bytes returns the program as little-endian byte pairs, the layout the VM
// loads into memory.
func (p *Program) Bytes() []byte {
	out := make([]byte, len(p.Words)*2)
	for i, w := range p.Words {
		out[i*2] = byte(w & 0xFF)
		out[i*2+1] = byte(w >> 8)
	}
	return out
}

// assembler is the state of one assembly run. Its label table is never
// shared, so independent runs may proceed concurrently.
type assembler struct {
	labels map[string]uint16
	count  int // instruction words counted by pass 1
}

// Assemble parses and assembles src.
func Assemble(src string) (*Program, error) {
	stmts, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return AssembleStatements(stmts)
}

// AssembleStatements runs both passes over an already parsed program. Any
// error is an *Error carrying the offending statement's position.
func AssembleStatements(stmts []Statement) (*Program, error) {
	if len(stmts) == 0 {
		return nil, &Error{Err: ErrEmptyProgram}
	}

	a := &assembler{labels: make(map[string]uint16)}
	if err := a.pass1(stmts); err != nil {
		return nil, err
	}
	return a.pass2(stmts)
}

// pass1 assigns every label the address of the instruction that follows it.
func (a *assembler) pass1(stmts []Statement) error {
	address := 0
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *Label:
			if _, exists := a.labels[s.Name]; exists {
				return errorAt(ErrDuplicateLabel, s.Position)
			}
			a.labels[s.Name] = uint16(address)
		case *Instruction:
			address++
			if address > isa.MaxWords {
				return errorAt(ErrProgramTooLarge, s.Position)
			}
		case *Directive:
		}
	}
	a.count = address
	return nil
}

func (a *assembler) pass2(stmts []Statement) (*Program, error) {
	prog := &Program{
		Words:     make([]uint16, 0, isa.MaxWords),
		SourceMap: make(map[uint16]int),
		Labels:    a.labels,
	}

	for _, stmt := range stmts {
		inst, ok := stmt.(*Instruction)
		if !ok {
			continue
		}
		word, err := a.encode(inst)
		if err != nil {
			return nil, err
		}
		prog.SourceMap[uint16(len(prog.Words))] = inst.Line
		prog.Words = append(prog.Words, word)
	}

	if len(prog.Words) != a.count {
		return nil, &Error{Err: ErrPassMismatch}
	}
	return prog, nil
}

// encode validates the operand shapes for the instruction's opcode and packs
// the result into one word.
func (a *assembler) encode(inst *Instruction) (uint16, error) {
	op, ok := isa.Lookup(inst.Mnemonic)
	if !ok {
		return 0, errorAt(ErrUnknownMnemonic, inst.Position)
	}

	ops := inst.Operands
	fail := func(err error) (uint16, error) {
		return 0, errorAt(err, inst.Position)
	}

	var dest, src, imm uint8
	switch {
	case zeroOperandOps[op]:
		if len(ops) != 0 {
			return fail(ErrOperandCount0)
		}

	case oneRegisterOps[op]:
		if len(ops) != 1 {
			return fail(ErrOperandCount1)
		}
		r, ok := ops[0].(Register)
		if !ok {
			return fail(ErrRegisterOperands)
		}
		dest = uint8(r)

	case twoRegisterOps[op]:
		if len(ops) != 2 {
			return fail(ErrOperandCount2)
		}
		r0, ok0 := ops[0].(Register)
		r1, ok1 := ops[1].(Register)
		if !ok0 || !ok1 {
			return fail(ErrRegisterOperands)
		}
		dest, src = uint8(r0), uint8(r1)

	case op == isa.OpMOVI:
		if len(ops) != 2 {
			return fail(ErrOperandCount2)
		}
		r, ok0 := ops[0].(Register)
		v, ok1 := ops[1].(Immediate)
		if !ok0 || !ok1 {
			return fail(ErrMOVIOperands)
		}
		dest, imm = uint8(r), uint8(v)

	case op == isa.OpLD:
		if len(ops) != 2 {
			return fail(ErrOperandCount2)
		}
		r, ok0 := ops[0].(Register)
		m, ok1 := ops[1].(Memory)
		if !ok0 || !ok1 {
			return fail(ErrLDOperands)
		}
		dest = uint8(r)
		src, imm = isa.SplitAddress(uint8(m))

	case op == isa.OpST:
		if len(ops) != 2 {
			return fail(ErrOperandCount2)
		}
		m, ok0 := ops[0].(Memory)
		r, ok1 := ops[1].(Register)
		if !ok0 || !ok1 {
			return fail(ErrSTOperands)
		}
		src = uint8(r)
		dest, imm = isa.SplitAddress(uint8(m))

	case op == isa.OpJMP:
		if len(ops) != 1 {
			return fail(ErrOperandCount1)
		}
		var target uint16
		switch t := ops[0].(type) {
		case LabelRef:
			addr, ok := a.labels[string(t)]
			if !ok {
				return fail(ErrUndefinedLabel)
			}
			target = addr
		case Immediate:
			target = uint16(t)
		default:
			return fail(ErrJMPOperand)
		}
		dest, src, imm = isa.SplitTarget(target)

	default:
		return fail(ErrUnknownMnemonic)
	}

	return isa.Encode(op, dest, src, imm), nil
}
