package kcalc

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. Each node owns
// its children; variable nodes only observe cells owned by a Table.
type node interface {
	// eval computes the node's value. Native functions may Raise.
	eval() float64
	fmt(b *strings.Builder, square bool)
}

type (
	// constNode is a number known at compile time.
	constNode struct {
		v float64
	}

	// varNode reads a variable's cell when evaluated.
	varNode struct {
		name string
		cell *float64
	}

	// call1Node applies a function of one argument.
	call1Node struct {
		name string
		pure bool
		f    Func1
		c    ClosureFunc1
		ctx  any
		arg  node
	}

	// call2Node applies a function of two arguments, evaluating them left to
	// right.
	call2Node struct {
		name string
		pure bool
		f    Func2
		c    ClosureFunc2
		ctx  any
		args [2]node
	}
)

// call1 creates a call node for a function symbol of arity 1.
func call1(s Symbol, arg node) *call1Node {
	return &call1Node{name: s.name, pure: s.pure, f: s.f1, c: s.c1, ctx: s.ctx, arg: arg}
}

// call2 creates a call node for a function symbol of arity 2.
func call2(s Symbol, x, y node) *call2Node {
	return &call2Node{name: s.name, pure: s.pure, f: s.f2, c: s.c2, ctx: s.ctx, args: [2]node{x, y}}
}

func (n *constNode) eval() float64 {
	return n.v
}

func (n *varNode) eval() float64 {
	return *n.cell
}

func (n *call1Node) eval() float64 {
	x := n.arg.eval()
	if n.c != nil {
		return n.c(n.ctx, x)
	}
	return n.f(x)
}

func (n *call2Node) eval() float64 {
	x := n.args[0].eval()
	y := n.args[1].eval()
	if n.c != nil {
		return n.c(n.ctx, x, y)
	}
	return n.f(x, y)
}

func brackets(square bool) (byte, byte) {
	if square {
		return '[', ']'
	}
	return '(', ')'
}

func (n *constNode) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	b.WriteString(strconv.FormatFloat(n.v, 'g', -1, 64))
	b.WriteByte(r)
}

func (n *varNode) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	b.WriteString(n.name)
	b.WriteByte(r)
}

func (n *call1Node) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	defer b.WriteByte(r)
	if n.name == "-" {
		// Synthetic negation from unary signs.
		b.WriteByte('-')
		n.arg.fmt(b, !square)
		return
	}
	b.WriteString(n.name)
	n.arg.fmt(b, !square)
}

func (n *call2Node) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	defer b.WriteByte(r)
	if isOperator(n.name) {
		n.args[0].fmt(b, !square)
		if n.name == "," {
			b.WriteString(", ")
		} else {
			b.WriteString(" " + n.name + " ")
		}
		n.args[1].fmt(b, !square)
		return
	}
	b.WriteString(n.name)
	b.WriteByte(l)
	n.args[0].fmt(b, !square)
	b.WriteString(", ")
	n.args[1].fmt(b, !square)
	b.WriteByte(r)
}

// isOperator reports whether a call node name is an infix operator or the
// comma rather than a named function.
func isOperator(name string) bool {
	return len(name) == 1 && strings.Contains(Operators+",", name)
}
