package asm

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src    string
	pos    int // index of the next byte to consume
	line   int // current 1-based source line
	column int // current 1-based source column
}

// NewLexer returns a lexer positioned at the start of src. A NUL byte ends
// the input just like the end of src does.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1, column: 1}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentContinue(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// peek returns the byte at the current position without advancing, or 0 at
// end of input.
func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// advance consumes one byte, keeping line and column in step.
func (l *Lexer) advance() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return c
}

// skipSpaceAndComments discards horizontal whitespace and ; comments. The
// newline ending a comment is left in place.
func (l *Lexer) skipSpaceAndComments() {
	for {
		c := l.peek()
		for c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v' {
			l.advance()
			c = l.peek()
		}
		if c != ';' {
			return
		}
		for c != 0 && c != '\n' {
			l.advance()
			c = l.peek()
		}
	}
}

func (l *Lexer) scanIdentContinue() {
	for isIdentContinue(l.peek()) {
		l.advance()
	}
}

// scanNumber collects a decimal run, or 0x followed by hex digits. The first
// digit must still be at l.peek().
func (l *Lexer) scanNumber() {
	first := l.advance()
	if first == '0' && (l.peek() == 'x' || l.peek() == 'X') {
		l.advance()
		for isHexDigit(l.peek()) {
			l.advance()
		}
		return
	}
	for isDigit(l.peek()) {
		l.advance()
	}
}

// Next returns the next token. Once the input is exhausted every call
// returns an EOF token.
func (l *Lexer) Next() Token {
	l.skipSpaceAndComments()

	start, line, column := l.pos, l.line, l.column
	c := l.peek()
	if c == 0 {
		return Token{Kind: EOF, Text: "", Offset: start, Line: line, Column: column}
	}

	var kind TokenKind
	switch {
	case c == '\n':
		l.advance()
		kind = NEWLINE
	case c == ',':
		l.advance()
		kind = COMMA
	case c == ':':
		l.advance()
		kind = COLON
	case c == '.':
		l.advance()
		l.scanIdentContinue()
		kind = DIRECTIVE
	case isDigit(c):
		l.scanNumber()
		kind = NUMBER
	case isIdentStart(c):
		l.advance()
		l.scanIdentContinue()
		kind = IDENTIFIER
	default:
		l.advance()
		kind = UNKNOWN
	}

	return Token{Kind: kind, Text: l.src[start:l.pos], Offset: start, Line: line, Column: column}
}

// Tokenize lexes the whole of src. The returned slice always ends with an
// EOF token.
func Tokenize(src string) []Token {
	l := NewLexer(src)
	var tokens []Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens
		}
	}
}
