package asm

import (
	"errors"
	"strconv"
)

// Parser builds statements from a token stream using the current token and
// one token of lookahead.
type Parser struct {
	lexer     *Lexer
	cur       Token
	lookahead Token
	stmts     []Statement
}

// NewParser primes both the current and the lookahead token.
func NewParser(l *Lexer) *Parser {
	p := &Parser{lexer: l, cur: Token{Kind: EOF}}
	p.lookahead = l.Next()
	p.advance()
	return p
}

// Parse lexes and parses src in one step.
func Parse(src string) ([]Statement, error) {
	return NewParser(NewLexer(src)).Parse()
}

func (p *Parser) advance() {
	p.cur = p.lookahead
	p.lookahead = p.lexer.Next()
}

func posOf(tok Token) Position {
	return Position{Line: tok.Line, Column: tok.Column}
}

// Parse consumes the remaining input. It stops at the first error, which is
// always an *Error.
func (p *Parser) Parse() ([]Statement, error) {
	for p.cur.Kind != EOF {
		var err error
		switch p.cur.Kind {
		case NEWLINE:
			p.advance()
		case DIRECTIVE:
			p.parseDirective()
		case IDENTIFIER:
			if p.lookahead.Kind == COLON {
				err = p.parseLabel()
			} else {
				err = p.parseInstruction()
			}
		default:
			err = errorAtToken(ErrUnexpectedToken, p.cur)
		}
		if err != nil {
			return nil, err
		}
	}
	return p.stmts, nil
}

// parseDirective records the directive name and drops the rest of its line.
func (p *Parser) parseDirective() {
	p.stmts = append(p.stmts, &Directive{Name: p.cur.Text, Position: posOf(p.cur)})
	p.advance()
	for p.cur.Kind != NEWLINE && p.cur.Kind != EOF {
		p.advance()
	}
	if p.cur.Kind == NEWLINE {
		p.advance()
	}
}

func (p *Parser) parseLabel() error {
	label := &Label{Name: p.cur.Text, Position: posOf(p.cur)}
	p.stmts = append(p.stmts, label)
	p.advance()
	if p.cur.Kind != COLON {
		return errorAtToken(ErrExpectedColon, p.cur)
	}
	p.advance()
	if p.cur.Kind == NEWLINE {
		p.advance()
	}
	return nil
}

func (p *Parser) parseInstruction() error {
	inst := &Instruction{Mnemonic: p.cur.Text, Position: posOf(p.cur)}
	p.stmts = append(p.stmts, inst)
	p.advance()
	for p.cur.Kind != NEWLINE && p.cur.Kind != EOF {
		if p.cur.Kind == COMMA {
			p.advance()
		}
		if len(inst.Operands) >= MaxOperands {
			return errorAtToken(ErrTooManyOperands, p.cur)
		}
		op, err := p.parseOperand()
		if err != nil {
			return err
		}
		inst.Operands = append(inst.Operands, op)
	}
	if p.cur.Kind == NEWLINE {
		p.advance()
	}
	return nil
}

// parseOperand tries memory, register, immediate and label reference in
// that order; the first form that matches wins.
func (p *Parser) parseOperand() (Operand, error) {
	if m, ok, err := p.parseMemory(); err != nil {
		return nil, err
	} else if ok {
		return m, nil
	}
	if r, ok := p.parseRegister(); ok {
		return r, nil
	}
	if v, ok, err := p.parseNumber(0x0F, ErrImmediateRange); err != nil {
		return nil, err
	} else if ok {
		return Immediate(v), nil
	}
	if p.cur.Kind == IDENTIFIER {
		ref := LabelRef(p.cur.Text)
		p.advance()
		return ref, nil
	}
	return nil, errorAtToken(ErrExpectedOperand, p.cur)
}

// parseRegister matches R0 through R7 exactly.
func (p *Parser) parseRegister() (Register, bool) {
	text := p.cur.Text
	if p.cur.Kind != IDENTIFIER || len(text) != 2 || text[0] != 'R' || text[1] < '0' || text[1] > '7' {
		return 0, false
	}
	p.advance()
	return Register(text[1] - '0'), true
}

// parseNumber converts a NUMBER token, rejecting values above limit with
// rangeErr.
func (p *Parser) parseNumber(limit uint64, rangeErr error) (uint8, bool, error) {
	if p.cur.Kind != NUMBER {
		return 0, false, nil
	}
	text, base, digitErr := p.cur.Text, 10, ErrInvalidDecimal
	if len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		text, base, digitErr = text[2:], 16, ErrInvalidHex
	}
	v, err := strconv.ParseUint(text, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, false, errorAtToken(rangeErr, p.cur)
		}
		return 0, false, errorAtToken(digitErr, p.cur)
	}
	if v > limit {
		return 0, false, errorAtToken(rangeErr, p.cur)
	}
	p.advance()
	return uint8(v), true, nil
}

// parseMemory matches [number] or [register]. A register inside the
// brackets contributes its index as the address.
func (p *Parser) parseMemory() (Memory, bool, error) {
	if !p.cur.is(UNKNOWN, '[') {
		return 0, false, nil
	}
	p.advance()

	var addr uint8
	if v, ok, err := p.parseNumber(0xFF, ErrAddressRange); err != nil {
		return 0, false, err
	} else if ok {
		addr = v
	} else if r, ok := p.parseRegister(); ok {
		addr = uint8(r)
	} else {
		return 0, false, errorAtToken(ErrExpectedAddress, p.cur)
	}

	if !p.cur.is(UNKNOWN, ']') {
		return 0, false, errorAtToken(ErrExpectedBracket, p.cur)
	}
	p.advance()
	return Memory(addr), true, nil
}
