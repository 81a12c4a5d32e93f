package kcalc

import (
	"math"
	"strings"
)

// list   = expr { "," expr }
// expr   = term { ("+" | "-") term }
// term   = factor { ("*" | "/" | "%") factor }
// factor = power { "^" power }
// power  = { "+" | "-" } base
// base   = num | variable | func1 power | func2 "(" expr "," expr ")" | "(" list ")"
//
// The comma operator yields its right operand. Exponentiation is
// left-associative, and unary signs bind tighter than it: -2^2 is 4.

// Expr is a compiled expression.
type Expr struct {
	// n is the root node of the expression.
	n node
	// names is the list of variable names used in the expression.
	names []string
}

// parser holds the state of one compilation. Productions leave the lexer on
// the first token past what they parsed. A production that finds a token it
// cannot use sets the current token to tokenError, which stops every other
// production from consuming more input.
type parser struct {
	lexer
	names map[string]bool
}

// Compile parses an expression, resolving every identifier against syms. If
// the expression is malformed, the error is a *SyntaxError giving the position
// where parsing stopped. If it names an identifier missing from syms, the
// error is a *Fault of kind ErrUnknownIdentifier.
func Compile(src string, syms *Table, opts ...CompileOption) (e *Expr, err error) {
	defer checkpoint(&err)
	return compile(src, syms, options(opts))
}

// compile is Compile without a checkpoint.
func compile(src string, syms *Table, o compilectx) (*Expr, error) {
	if syms == nil {
		syms = NewTable(0)
	}
	p := parser{
		lexer: lexer{src: src, syms: syms},
		names: make(map[string]bool),
	}
	p.next()
	n := p.list()
	if p.tok.kind != tokenEnd {
		col := p.col()
		if col == 0 {
			col = 1
		}
		return nil, &SyntaxError{Col: col}
	}
	if !o.nofold {
		n = optimize(n)
	}
	ex := Expr{
		n:     n,
		names: make([]string, 0, len(p.names)),
	}
	for k := range p.names {
		ex.names = append(ex.names, k)
	}
	sortstrs(ex.names)
	return &ex, nil
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// fail marks the parse as stopped.
func (p *parser) fail() {
	p.tok.kind = tokenError
}

// isop reports whether the current token is one of the given operators.
func (p *parser) isop(ops string) bool {
	return p.tok.kind == tokenInfix && strings.Contains(ops, p.tok.sym.name)
}

func (p *parser) list() node {
	n := p.expr()
	for p.tok.kind == tokenSep {
		p.next()
		n = call2(opComma, n, p.expr())
	}
	return n
}

func (p *parser) expr() node {
	n := p.term()
	for p.isop("+-") {
		op := p.tok.sym
		p.next()
		n = call2(op, n, p.term())
	}
	return n
}

func (p *parser) term() node {
	n := p.factor()
	for p.isop("*/%") {
		op := p.tok.sym
		p.next()
		n = call2(op, n, p.factor())
	}
	return n
}

func (p *parser) factor() node {
	n := p.power()
	for p.isop("^") {
		op := p.tok.sym
		p.next()
		n = call2(op, n, p.power())
	}
	return n
}

func (p *parser) power() node {
	neg := false
	for p.isop("+-") {
		if p.tok.sym.name == "-" {
			neg = !neg
		}
		p.next()
	}
	n := p.base()
	if neg {
		return call1(opNeg, n)
	}
	return n
}

func (p *parser) base() node {
	switch p.tok.kind {
	case tokenNum:
		n := &constNode{v: p.tok.num}
		p.next()
		return n
	case tokenVar:
		s := p.tok.sym
		p.names[s.name] = true
		p.next()
		return &varNode{name: s.name, cell: s.cell}
	case tokenFunc:
		s := p.tok.sym
		p.next()
		if s.arity == 1 {
			// Single argument without brackets binds like a unary sign:
			// SIN X^2 is (SIN X)^2.
			return call1(s, p.power())
		}
		args := p.arglist(s.arity)
		switch s.arity {
		case 2:
			return call2(s, args[0], args[1])
		default:
			panic("kcalc: unsupported arity for " + s.name)
		}
	case tokenOpen:
		p.next()
		n := p.list()
		if p.tok.kind != tokenClose {
			p.fail()
			return n
		}
		p.next()
		return n
	default:
		p.fail()
		return nan()
	}
}

// arglist parses a bracketed list of exactly n expressions. Arguments that
// could not be parsed are NaN constants.
func (p *parser) arglist(n int) []node {
	args := make([]node, n)
	for i := range args {
		args[i] = nan()
	}
	if p.tok.kind != tokenOpen {
		p.fail()
		return args
	}
	i := 0
	for ; i < n; i++ {
		p.next()
		args[i] = p.expr()
		if p.tok.kind != tokenSep {
			break
		}
	}
	if p.tok.kind != tokenClose || i != n-1 {
		p.fail()
		return args
	}
	p.next()
	return args
}

// nan is the placeholder for a subexpression that failed to parse.
func nan() node {
	return &constNode{v: math.NaN()}
}

// Vars returns the variable names used by the expression, sorted.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String creates a string representation of the compiled expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, false)
	return b.String()
}
