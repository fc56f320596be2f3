package asm

import "fmt"

// TokenKind identifies the category of a lexed token.
type TokenKind int

const (
	EOF        TokenKind = iota // sentinel: end of input
	IDENTIFIER                  // mnemonic, register, or label name
	NUMBER                      // decimal or 0x-prefixed hex literal
	COMMA                       // ,
	COLON                       // :
	NEWLINE                     // \n, the statement separator
	DIRECTIVE                   // .name
	UNKNOWN                     // any other single byte, e.g. [ or ]
)

var tokenNames = [...]string{
	EOF:        "EOF",
	IDENTIFIER: "IDENT",
	NUMBER:     "NUMBER",
	COMMA:      "COMMA",
	COLON:      "COLON",
	NEWLINE:    "NEWLINE",
	DIRECTIVE:  "DIRECTIVE",
	UNKNOWN:    "UNKNOWN",
}

func (k TokenKind) String() string {
	if int(k) >= 0 && int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a single lexical unit produced by the Lexer. Text is a slice of
// the source string, so it shares the source's backing memory.
type Token struct {
	Kind   TokenKind
	Text   string
	Offset int // byte offset of Text in the source
	Line   int // 1-based source line
	Column int // 1-based source column
}

// is reports whether t is a single-byte token with the given content.
// The parser uses it to pick [ and ] out of UNKNOWN tokens.
func (t Token) is(kind TokenKind, b byte) bool {
	return t.Kind == kind && len(t.Text) == 1 && t.Text[0] == b
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d  %-10s  %q", t.Line, t.Column, t.Kind, t.Text)
}
