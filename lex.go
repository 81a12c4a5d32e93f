package kcalc

import (
	"errors"
	"strconv"
	"unicode/utf8"
)

type lexToken struct {
	kind tokenKind
	// num is the value of a tokenNum.
	num float64
	// sym is the binding of a tokenVar or tokenFunc, or the operator function
	// of a tokenInfix.
	sym Symbol
	// pos is the byte offset of the start of the token.
	pos int
}

func (t lexToken) String() string {
	s := t.kind.String()
	switch t.kind {
	case tokenNum:
		s += ":" + strconv.FormatFloat(t.num, 'g', -1, 64)
	case tokenVar, tokenFunc, tokenInfix:
		s += ":" + t.sym.name
	}
	return s + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEnd indicates the end of the input.
	tokenEnd
	// tokenError is an unrecognized character or malformed numeral. The
	// parser also sets it to mark that parsing has stopped progressing.
	tokenError
	// tokenNum is a numeral or a constant from the symbol table.
	tokenNum
	// tokenVar is a variable from the symbol table.
	tokenVar
	// tokenFunc is a function from the symbol table.
	tokenFunc
	// tokenInfix is an arithmetic operator.
	tokenInfix
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
	// tokenSep is the comma.
	tokenSep
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEnd:
		return "End"
	case tokenError:
		return "Error"
	case tokenNum:
		return "Num"
	case tokenVar:
		return "Var"
	case tokenFunc:
		return "Func"
	case tokenInfix:
		return "Infix"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenSep:
		return "Sep"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the characters which are infix operators.
const Operators = "+-*/^%"

// lexer classifies one token at a time from src. It never backtracks.
type lexer struct {
	src  string
	pos  int
	syms *Table
	tok  lexToken
}

// next scans the next token into l.tok. Identifiers which are not in the
// symbol table Raise ErrUnknownIdentifier.
func (l *lexer) next() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		start := l.pos
		switch {
		case c == ' ', c == '\t', c == '\n', c == '\r':
			l.pos++
			continue
		case c == '#':
			l.pos++
			l.tok = lexToken{kind: tokenNum, num: l.scanHex(), pos: start}
		case isDigit(c), c == '.':
			v, ok := l.scanNum()
			if !ok {
				// Malformed numerals leave the cursor on the bad text.
				l.tok = lexToken{kind: tokenError, pos: start}
				return
			}
			l.tok = lexToken{kind: tokenNum, num: v, pos: start}
		case isLetter(c):
			name := l.scanIdent()
			s, ok := l.syms.Lookup(name)
			if !ok {
				l.tok = lexToken{kind: tokenError, pos: start}
				Raise(ErrUnknownIdentifier)
			}
			switch s.kind {
			case SymbolConstant:
				l.tok = lexToken{kind: tokenNum, num: s.value, sym: s, pos: start}
			case SymbolVariable:
				l.tok = lexToken{kind: tokenVar, sym: s, pos: start}
			case SymbolFunction:
				l.tok = lexToken{kind: tokenFunc, sym: s, pos: start}
			default:
				panic("kcalc: lookup found free slot for " + strconv.Quote(name))
			}
		default:
			_, sz := utf8.DecodeRuneInString(l.src[l.pos:])
			l.pos += sz
			l.tok = lexToken{kind: tokenError, pos: start}
			switch c {
			case '(':
				l.tok.kind = tokenOpen
			case ')':
				l.tok.kind = tokenClose
			case ',':
				l.tok.kind = tokenSep
			default:
				if op, ok := infix(c); ok {
					l.tok.kind = tokenInfix
					l.tok.sym = op
				}
			}
		}
		return
	}
	l.tok = lexToken{kind: tokenEnd, pos: l.pos}
}

// scanHex decodes hex digits following a #. With no digits, the result is 0.
func (l *lexer) scanHex() float64 {
	var v float64
	for l.pos < len(l.src) {
		d := hexval(l.src[l.pos])
		if d < 0 {
			break
		}
		v = v*16 + float64(d)
		l.pos++
	}
	return v
}

// scanNum decodes a decimal numeral: digits with at most one point, then an
// optional exponent which is only consumed if it has digits. If there are no
// mantissa digits, the result is 0 and false, and the cursor does not move.
func (l *lexer) scanNum() (float64, bool) {
	p := l.pos
	var dig, dot bool
	for ; p < len(l.src); p++ {
		c := l.src[p]
		if isDigit(c) {
			dig = true
			continue
		}
		if c == '.' && !dot {
			dot = true
			continue
		}
		break
	}
	if !dig {
		return 0, false
	}
	if p < len(l.src) && (l.src[p] == 'e' || l.src[p] == 'E') {
		q := p + 1
		if q < len(l.src) && (l.src[q] == '+' || l.src[q] == '-') {
			q++
		}
		if q < len(l.src) && isDigit(l.src[q]) {
			for q < len(l.src) && isDigit(l.src[q]) {
				q++
			}
			p = q
		}
	}
	v, err := strconv.ParseFloat(l.src[l.pos:p], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	// Out of range numerals saturate to infinity or zero, like strtod.
	l.pos = p
	return v, true
}

func (l *lexer) scanIdent() string {
	start := l.pos
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if !isLetter(c) && !isDigit(c) && c != '_' {
			break
		}
		l.pos++
	}
	return l.src[start:l.pos]
}

// col returns the number of runes the lexer has consumed.
func (l *lexer) col() int {
	return utf8.RuneCountInString(l.src[:l.pos])
}

// IsName reports whether s is spelled like an identifier: an ASCII letter
// followed by any number of ASCII letters, digits, and underscores.
func IsName(s string) bool {
	if s == "" || !isLetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if c := s[i]; !isLetter(c) && !isDigit(c) && c != '_' {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func hexval(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}
