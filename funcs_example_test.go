package kcalc_test

import (
	"fmt"

	"github.com/zephyrtronium/kcalc"
)

func ExampleInterpret() {
	syms := kcalc.NewTable(0)
	syms.AddBuiltins(nil)
	syms.BindVariable("X", 5)

	fmt.Println(kcalc.Interpret("2+3*4", syms))
	fmt.Println(kcalc.Interpret("X*2", syms))
	fmt.Println(kcalc.Interpret("SQRT(-1)", syms))
	fmt.Println(kcalc.Interpret("(1+2", syms))
	// Output:
	// 14
	// 10
	// Square root of negative number
	// Syntax error at position 4
}

func ExampleClosure1() {
	type counter struct{ n int }
	c := &counter{}
	tick := func(ctx any, x float64) float64 {
		ctx.(*counter).n++
		return x
	}
	syms := kcalc.NewTable(0)
	syms.Add(kcalc.Closure1("TICK", c, tick, false))

	e, _ := kcalc.Compile("TICK 1 + TICK 2", syms)
	v, _ := e.Eval()
	fmt.Println(v, c.n)
	v, _ = e.Eval()
	fmt.Println(v, c.n)
	// Output:
	// 3 2
	// 3 4
}

func ExampleRaise() {
	syms := kcalc.NewTable(0)
	syms.Add(kcalc.Function1("RECIP", func(x float64) float64 {
		if x == 0 {
			kcalc.Raise(kcalc.ErrDivideByZero)
		}
		return 1 / x
	}, true))

	_, err := kcalc.EvalString("1 + RECIP(2 - 2)", syms)
	fmt.Println(err)
	// Output:
	// Division by zero
}
