package kcalc

import (
	"math"
	"strconv"
)

// Eval evaluates the expression. Variables are read as they are at the time
// of the call, so evaluating the same expression twice may give different
// results. If a function refuses its argument, the result is NaN and a
// *Fault.
func (e *Expr) Eval() (float64, error) {
	v, err := tryeval(e.n)
	if err != nil {
		return math.NaN(), err
	}
	return v, nil
}

// Result is the outcome of Interpret. Exactly one of three cases holds:
//
//   - Kind is ErrNone: Value is the result and Pos is 0.
//   - Kind is ErrSyntax: Pos is the positive rune offset where parsing
//     stopped and Value is NaN.
//   - Otherwise, compilation or evaluation was abandoned: Pos is -1 and
//     Value is NaN.
type Result struct {
	Value float64
	Pos   int
	Kind  ErrorKind
}

// Err returns the error described by r, or nil if r is a success.
func (r Result) Err() error {
	switch r.Kind {
	case ErrNone:
		return nil
	case ErrSyntax:
		return &SyntaxError{Col: r.Pos}
	default:
		return &Fault{Kind: r.Kind}
	}
}

func (r Result) String() string {
	switch r.Kind {
	case ErrNone:
		return strconv.FormatFloat(r.Value, 'g', -1, 64)
	case ErrSyntax:
		return r.Kind.String() + " at position " + strconv.Itoa(r.Pos)
	default:
		return r.Kind.String()
	}
}

// Interpret compiles and evaluates an expression in one step. Any fault
// raised while compiling or evaluating, however deep, ends the call.
func Interpret(src string, syms *Table, opts ...CompileOption) Result {
	return ResultOf(interpret(src, syms, options(opts)))
}

// ResultOf converts the results of Compile followed by Eval, or of
// EvalString, to a Result. err must be nil, a *SyntaxError, or a *Fault.
func ResultOf(v float64, err error) Result {
	switch err := err.(type) {
	case nil:
		return Result{Value: v}
	case *SyntaxError:
		return Result{Value: math.NaN(), Pos: err.Col, Kind: ErrSyntax}
	case *Fault:
		return Result{Value: math.NaN(), Pos: -1, Kind: err.Kind}
	default:
		panic("kcalc: unexpected error " + err.Error())
	}
}

// EvalString is a shortcut to compile and evaluate an expression.
func EvalString(src string, syms *Table, opts ...CompileOption) (float64, error) {
	v, err := interpret(src, syms, options(opts))
	if err != nil {
		return math.NaN(), err
	}
	return v, nil
}

// interpret is the single checkpoint for a compile and evaluation.
func interpret(src string, syms *Table, o compilectx) (v float64, err error) {
	defer checkpoint(&err)
	e, err := compile(src, syms, o)
	if err != nil {
		return math.NaN(), err
	}
	return e.n.eval(), nil
}
