// Package kcalc implements the expression compiler and evaluator of a small
// interactive calculator.
//
// An expression is compiled against a symbol Table, which binds upper-case
// names to constants, variables, and native functions of one or two
// arguments. "2+3*4" is 14. "2^3^2" is 64, because ^ groups to the left, and
// "-2^2" is 4, because unary signs bind tighter than ^. A function of one
// argument needs no brackets: "SQRT 16" is 4. Numerals are decimal, or
// hexadecimal after a #, so "#1A" is 26. The comma operator evaluates both
// sides and yields the right.
//
// Compiled expressions read variables when they are evaluated, so one Expr
// can be evaluated many times as its variables change. Interpret compiles and
// evaluates in one step, which is the usual way to process a line of input.
//
// When a native function refuses its argument, such as SQRT of a negative
// number, it calls Raise. That abandons all work in progress and reports a
// Fault to the Compile, Eval, or Interpret call that started it.
package kcalc
