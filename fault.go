package kcalc

import "errors"

// ErrorKind identifies the reason an expression could not be compiled or
// evaluated. The values are stable and small; ErrNone means success.
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	// ErrSyntax is any grammar violation found while compiling.
	ErrSyntax
	// ErrDivideByZero is division or remainder by zero, or ATAN2(y, 0).
	ErrDivideByZero
	// ErrUnknownIdentifier is a name that is not in the symbol table.
	ErrUnknownIdentifier
	// ErrNegativeSqrt is the square root of a negative number.
	ErrNegativeSqrt
	// ErrNegativeLog is the logarithm of a negative number.
	ErrNegativeLog
	// ErrTrigRange is an inverse trig argument outside [-1, 1].
	ErrTrigRange
	// ErrMissingIdentifier is an assignment with nothing left of the =.
	ErrMissingIdentifier
	// ErrMissingExpression is an assignment with nothing right of the =.
	ErrMissingExpression
	// ErrSymbolTableFull is a new variable that does not fit in the table.
	ErrSymbolTableFull
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNone:
		return "No error"
	case ErrSyntax:
		return "Syntax error"
	case ErrDivideByZero:
		return "Division by zero"
	case ErrUnknownIdentifier:
		return "Unknown identifier"
	case ErrNegativeSqrt:
		return "Square root of negative number"
	case ErrNegativeLog:
		return "Logarithm of negative number"
	case ErrTrigRange:
		return "Trig argument out of range"
	case ErrMissingIdentifier:
		return "Missing identifier"
	case ErrMissingExpression:
		return "Missing expression"
	case ErrSymbolTableFull:
		return "Symbol table full"
	default:
		return "Unknown error"
	}
}

// Fault is the error delivered when compilation or evaluation is abandoned
// from arbitrary depth. It carries only the kind of failure.
type Fault struct {
	Kind ErrorKind
}

func (f *Fault) Error() string {
	return f.Kind.String()
}

// Raise abandons the compilation or evaluation in progress and reports kind
// to the nearest checkpoint, which is the Compile, Eval, or Interpret call
// that is running. Native functions use Raise to refuse arguments outside
// their domains. Calling Raise outside of those calls panics.
func Raise(kind ErrorKind) {
	panic(&Fault{Kind: kind})
}

// checkpoint recovers a Fault raised below it and stores it in err. Any other
// panic continues unwinding.
func checkpoint(err *error) {
	r := recover()
	if r == nil {
		return
	}
	f, ok := r.(*Fault)
	if !ok {
		panic(r)
	}
	*err = f
}

// KindOf returns the kind of err: ErrNone for nil, the kind of a Fault or
// SyntaxError found in err's chain, or ErrSyntax for any other InputError.
// Unrecognized errors yield -1.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ErrNone
	}
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	var ie InputError
	if errors.As(err, &ie) {
		return ErrSyntax
	}
	return -1
}
