package asm

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseRegisterOperands(t *testing.T) {
	stmts, err := Parse("ADD R0, R1\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(stmts) != 1 {
		t.Fatalf("got %d statements; want 1", len(stmts))
	}
	inst, ok := stmts[0].(*Instruction)
	if !ok {
		t.Fatalf("statement is %T; want *Instruction", stmts[0])
	}
	want := []Operand{Register(0), Register(1)}
	if inst.Mnemonic != "ADD" || !reflect.DeepEqual(inst.Operands, want) {
		t.Errorf("got %s %v; want ADD %v", inst.Mnemonic, inst.Operands, want)
	}
}

func TestParseStatements(t *testing.T) {
	src := `
; counter
.org 0
START:
    MOVI R0, 5      ; load
loop: ADD R0, R1
    LD R2, [0x14]
    ST [R3], R2
    JMP loop
    HALT`

	want := []Statement{
		&Directive{Name: ".org", Position: Position{3, 1}},
		&Label{Name: "START", Position: Position{4, 1}},
		&Instruction{Mnemonic: "MOVI", Operands: []Operand{Register(0), Immediate(5)}, Position: Position{5, 5}},
		&Label{Name: "loop", Position: Position{6, 1}},
		&Instruction{Mnemonic: "ADD", Operands: []Operand{Register(0), Register(1)}, Position: Position{6, 7}},
		&Instruction{Mnemonic: "LD", Operands: []Operand{Register(2), Memory(20)}, Position: Position{7, 5}},
		&Instruction{Mnemonic: "ST", Operands: []Operand{Memory(3), Register(2)}, Position: Position{8, 5}},
		&Instruction{Mnemonic: "JMP", Operands: []Operand{LabelRef("loop")}, Position: Position{9, 5}},
		&Instruction{Mnemonic: "HALT", Position: Position{10, 5}},
	}

	got, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d statements; want %d", len(got), len(want))
	}
	for i := range want {
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Errorf("statement %d = %s; want %s", i, got[i], want[i])
		}
	}
}

func TestParseOperandForms(t *testing.T) {
	tests := []struct {
		src  string
		want []Operand
	}{
		{"X R7", []Operand{Register(7)}},
		{"X R8", []Operand{LabelRef("R8")}},
		{"X r1", []Operand{LabelRef("r1")}},
		{"X R10", []Operand{LabelRef("R10")}},
		{"X 15", []Operand{Immediate(15)}},
		{"X 0xF", []Operand{Immediate(15)}},
		{"X 007", []Operand{Immediate(7)}},
		{"X [255]", []Operand{Memory(255)}},
		{"X [0xff]", []Operand{Memory(255)}},
		{"X [R5]", []Operand{Memory(5)}},
		{"X R1 R2", []Operand{Register(1), Register(2)}},
		{"X R1,,R2", nil},
		{"X a, b, c", []Operand{LabelRef("a"), LabelRef("b"), LabelRef("c")}},
	}
	for _, tc := range tests {
		stmts, err := Parse(tc.src)
		if tc.want == nil {
			if err == nil {
				t.Errorf("Parse(%q) succeeded; want error", tc.src)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tc.src, err)
			continue
		}
		inst := stmts[0].(*Instruction)
		if !reflect.DeepEqual(inst.Operands, tc.want) {
			t.Errorf("Parse(%q) operands = %v; want %v", tc.src, inst.Operands, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src    string
		err    error
		line   int
		column int
	}{
		{"MOVI R0, 16", ErrImmediateRange, 1, 10},
		{"MOVI R0, 0x10", ErrImmediateRange, 1, 10},
		{"MOVI R0, 99999999999999999999999", ErrImmediateRange, 1, 10},
		{"MOVI R0, 0x", ErrInvalidHex, 1, 10},
		{"LD R0, [256]", ErrAddressRange, 1, 9},
		{"LD R0, [foo]", ErrExpectedAddress, 1, 9},
		{"LD R0, [5", ErrExpectedBracket, 1, 10},
		{"LD R0, [5,", ErrExpectedBracket, 1, 10},
		{"ADD R0, R1, R2, R3", ErrTooManyOperands, 1, 17},
		{"ADD R0,\nHALT", ErrExpectedOperand, 1, 8},
		{"ADD R0, :", ErrExpectedOperand, 1, 9},
		{"NOP\n, NOP", ErrUnexpectedToken, 2, 1},
		{": NOP", ErrUnexpectedToken, 1, 1},
		{"NOP\n\n  $", ErrUnexpectedToken, 3, 3},
		{"5", ErrUnexpectedToken, 1, 1},
	}
	for _, tc := range tests {
		_, err := Parse(tc.src)
		if !errors.Is(err, tc.err) {
			t.Errorf("Parse(%q) error = %v; want %v", tc.src, err, tc.err)
			continue
		}
		var perr *Error
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q) error %T is not *Error", tc.src, err)
			continue
		}
		if perr.Line != tc.line || perr.Column != tc.column {
			t.Errorf("Parse(%q) error at %d:%d; want %d:%d", tc.src, perr.Line, perr.Column, tc.line, tc.column)
		}
	}
}

func TestParseLabelRequiresColon(t *testing.T) {
	p := NewParser(NewLexer("name NOP"))
	// Force the label path even though the lookahead is not a colon.
	if err := p.parseLabel(); !errors.Is(err, ErrExpectedColon) {
		t.Errorf("parseLabel() error = %v; want %v", err, ErrExpectedColon)
	}
}

func TestParseDirectiveLineIsSkipped(t *testing.T) {
	stmts, err := Parse(".data 1, [2], foo: ] $\nNOP")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(stmts) != 2 {
		t.Fatalf("got %d statements; want 2", len(stmts))
	}
	if d, ok := stmts[0].(*Directive); !ok || d.Name != ".data" {
		t.Errorf("first statement = %v; want directive .data", stmts[0])
	}
	if _, ok := stmts[1].(*Instruction); !ok {
		t.Errorf("second statement = %T; want *Instruction", stmts[1])
	}
}

func TestParseEmptySource(t *testing.T) {
	stmts, err := Parse("\n\n ; nothing\n")
	if err != nil || len(stmts) != 0 {
		t.Errorf("Parse(blank) = %v, %v; want no statements", stmts, err)
	}
}

func TestStatementString(t *testing.T) {
	stmts, err := Parse("go: LD R1, [20]\nJMP go\n.end")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []string{
		"1:1  LABEL     'go':",
		"1:5  INSTR     'LD' R1 [20]",
		"2:1  INSTR     'JMP' 'go'",
		"3:1  DIRECTIVE '.end'",
	}
	for i, w := range want {
		if got := stmts[i].String(); got != w {
			t.Errorf("stmts[%d].String() = %q; want %q", i, got, w)
		}
	}
}
