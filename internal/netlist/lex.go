// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"unicode"
	"unicode/utf8"
)

// Token types
const (
	EOF = iota
	Raw
	Ident
	Percent
	Ampersand
	Arrow
	Comma
)

var tokenNames = [...]string{
	EOF:       "end of line",
	Raw:       "character",
	Ident:     "name",
	Percent:   "'%'",
	Ampersand: "'&'",
	Arrow:     "'->'",
	Comma:     "','",
}

// An Item is a token read from a single line of input.
//
type Item struct {
	Type  int
	Pos   int // byte offset in the line
	Value string
}

func (i Item) String() string {
	if i.Type == Ident || i.Type == Raw {
		return tokenNames[i.Type] + " " + quote(i.Value)
	}
	return tokenNames[i.Type]
}

func quote(s string) string { return "\"" + s + "\"" }

// lexer splits a line into items. Comments start with '#' and run to the
// end of the line.
//
type lexer struct {
	in  string
	pos int
}

func isIdent(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.'
}

func (l *lexer) Lex() Item {
	for l.pos < len(l.in) {
		r, sz := utf8.DecodeRuneInString(l.in[l.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		l.pos += sz
	}
	if l.pos >= len(l.in) {
		return Item{Type: EOF, Pos: l.pos}
	}
	start := l.pos
	r, sz := utf8.DecodeRuneInString(l.in[l.pos:])
	l.pos += sz
	switch {
	case r == '#':
		l.pos = len(l.in)
		return Item{Type: EOF, Pos: start}
	case r == '%':
		return Item{Type: Percent, Pos: start, Value: "%"}
	case r == '&':
		return Item{Type: Ampersand, Pos: start, Value: "&"}
	case r == ',':
		return Item{Type: Comma, Pos: start, Value: ","}
	case r == '-' && l.pos < len(l.in) && l.in[l.pos] == '>':
		l.pos++
		return Item{Type: Arrow, Pos: start, Value: "->"}
	case isIdent(r):
		for l.pos < len(l.in) {
			r, sz := utf8.DecodeRuneInString(l.in[l.pos:])
			if !isIdent(r) {
				break
			}
			l.pos += sz
		}
		return Item{Type: Ident, Pos: start, Value: l.in[start:l.pos]}
	}
	// stop at the first unknown character.
	l.pos = len(l.in)
	return Item{Type: Raw, Pos: start, Value: string(r)}
}
