package kcalc

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// AngleMode selects the unit of trig function arguments and results.
type AngleMode int8

const (
	Radians AngleMode = iota
	Degrees
)

func (m AngleMode) String() string {
	if m == Degrees {
		return "degrees"
	}
	return "radians"
}

// BaseMode selects how results are displayed. The core does not use it; it
// travels with Settings for the benefit of callers.
type BaseMode int8

const (
	Decimal BaseMode = iota
	Hex
)

func (m BaseMode) String() string {
	if m == Hex {
		return "hexadecimal"
	}
	return "decimal"
}

// Settings is the configuration read by the built-in trig functions. The
// functions hold a pointer to it, so changes apply to every later evaluation,
// including evaluations of expressions that are already compiled.
type Settings struct {
	Angle AngleMode
	Base  BaseMode
}

// Infix operators and the synthetic functions the parser inserts.
var (
	opAdd   = Function2("+", func(x, y float64) float64 { return x + y }, true)
	opSub   = Function2("-", func(x, y float64) float64 { return x - y }, true)
	opMul   = Function2("*", func(x, y float64) float64 { return x * y }, true)
	opDiv   = Function2("/", divide, true)
	opPow   = Function2("^", math.Pow, true)
	opMod   = Function2("%", fmod, true)
	opComma = Function2(",", func(x, y float64) float64 { return y }, true)
	opNeg   = Function1("-", func(x float64) float64 { return -x }, true)
)

// infix gets the operator function for an operator character.
func infix(c byte) (Symbol, bool) {
	switch c {
	case '+':
		return opAdd, true
	case '-':
		return opSub, true
	case '*':
		return opMul, true
	case '/':
		return opDiv, true
	case '^':
		return opPow, true
	case '%':
		return opMod, true
	default:
		return Symbol{}, false
	}
}

func divide(x, y float64) float64 {
	if y == 0 {
		Raise(ErrDivideByZero)
	}
	return x / y
}

// fmod is the floating-point remainder x - trunc(x/y)*y.
func fmod(x, y float64) float64 {
	if y == 0 {
		Raise(ErrDivideByZero)
	}
	return x - math.Trunc(x/y)*y
}

func sqrt(x float64) float64 {
	if x < 0 {
		Raise(ErrNegativeSqrt)
	}
	return math.Sqrt(x)
}

func ln(x float64) float64 {
	if x < 0 {
		Raise(ErrNegativeLog)
	}
	return math.Log(x)
}

func log10(x float64) float64 {
	if x < 0 {
		Raise(ErrNegativeLog)
	}
	return math.Log10(x)
}

func angle(ctx any) AngleMode {
	if s, _ := ctx.(*Settings); s != nil {
		return s.Angle
	}
	return Radians
}

// toRad converts an argument in the context's angle unit to radians.
func toRad(ctx any, x float64) float64 {
	if angle(ctx) == Degrees {
		return x * (math.Pi / 180)
	}
	return x
}

// fromRad converts a result in radians to the context's angle unit.
func fromRad(ctx any, x float64) float64 {
	if angle(ctx) == Degrees {
		return x * (180 / math.Pi)
	}
	return x
}

func sin(ctx any, x float64) float64 { return math.Sin(toRad(ctx, x)) }
func cos(ctx any, x float64) float64 { return math.Cos(toRad(ctx, x)) }
func tan(ctx any, x float64) float64 { return math.Tan(toRad(ctx, x)) }

func asin(ctx any, x float64) float64 {
	if x < -1 || x > 1 {
		Raise(ErrTrigRange)
	}
	return fromRad(ctx, math.Asin(x))
}

func acos(ctx any, x float64) float64 {
	if x < -1 || x > 1 {
		Raise(ErrTrigRange)
	}
	return fromRad(ctx, math.Acos(x))
}

func atan(ctx any, x float64) float64 {
	return fromRad(ctx, math.Atan(x))
}

func atan2(ctx any, y, x float64) float64 {
	if x == 0 {
		Raise(ErrDivideByZero)
	}
	return fromRad(ctx, math.Atan2(y, x))
}

// constprec is the precision in bits used to compute built-in constants
// before rounding them to float64.
const constprec = 128

// Pi returns π rounded to the nearest float64.
func Pi() float64 {
	r := new(big.Float).SetPrec(constprec)
	bigfloat.Pi(r)
	f, _ := r.Float64()
	return f
}

// E returns Euler's number rounded to the nearest float64.
func E() float64 {
	one := new(big.Float).SetPrec(constprec).SetInt64(1)
	r := new(big.Float).SetPrec(constprec)
	bigfloat.Exp(r, one)
	f, _ := r.Float64()
	return f
}

// AddBuiltins registers the standard constants and functions under upper-case
// names. Trig functions read their angle unit from settings, which may be nil
// to always use radians. They are not pure, since settings may change between
// evaluations of a compiled expression. The result is a Fault of kind
// ErrSymbolTableFull if the table cannot hold every built-in; the symbols
// added before the table filled remain.
func (t *Table) AddBuiltins(settings *Settings) error {
	for _, s := range builtins(settings) {
		if err := t.Add(s); err != nil {
			return err
		}
	}
	return nil
}

// NumBuiltins is the number of symbols AddBuiltins registers.
var NumBuiltins = len(builtins(nil))

func builtins(settings *Settings) []Symbol {
	return []Symbol{
		Constant("PI", Pi()),
		Constant("E", E()),
		Function1("ABS", math.Abs, true),
		Closure1("ACOS", settings, acos, false),
		Closure1("ASIN", settings, asin, false),
		Closure1("ATAN", settings, atan, false),
		Closure2("ATAN2", settings, atan2, false),
		Function1("CEIL", math.Ceil, true),
		Closure1("COS", settings, cos, false),
		Function1("COSH", math.Cosh, true),
		Function1("EXP", math.Exp, true),
		Function1("FLOOR", math.Floor, true),
		Function1("LOG", ln, true),
		Function1("LOG10", log10, true),
		Function2("POW", math.Pow, true),
		Closure1("SIN", settings, sin, false),
		Function1("SINH", math.Sinh, true),
		Function1("SQRT", sqrt, true),
		Closure1("TAN", settings, tan, false),
		Function1("TANH", math.Tanh, true),
	}
}
