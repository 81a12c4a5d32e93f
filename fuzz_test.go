package kcalc_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/kcalc"
)

func FuzzCompile(f *testing.F) {
	f.Add("X")
	f.Add("2+3*4")
	f.Add("TWO(1,")
	f.Add("#")
	f.Add("1Ã—2")
	f.Fuzz(func(t *testing.T, s string) {
		syms := kcalc.NewTable(0)
		syms.AddBuiltins(nil)
		syms.BindVariable("X", 1)
		e, err := kcalc.Compile(s, syms)
		if (e == nil) == (err == nil) {
			t.Fatalf("%q: expression %v with error %v", s, e, err)
		}
		if err != nil {
			k := kcalc.KindOf(err)
			if k != kcalc.ErrSyntax && k != kcalc.ErrUnknownIdentifier {
				t.Fatalf("%q: unexpected compile error %v", s, err)
			}
		}
	})
}

func FuzzInterpret(f *testing.F) {
	f.Add("X")
	f.Add("SQRT -1")
	f.Add("1/0")
	f.Add("(1+2")
	f.Add("ATAN2(1, 0)")
	f.Fuzz(func(t *testing.T, s string) {
		syms := kcalc.NewTable(0)
		syms.AddBuiltins(nil)
		syms.BindVariable("X", 1)
		r := kcalc.Interpret(s, syms)
		switch r.Kind {
		case kcalc.ErrNone:
			if r.Pos != 0 {
				t.Fatalf("%q: success at position %d", s, r.Pos)
			}
		case kcalc.ErrSyntax:
			if r.Pos < 1 || !math.IsNaN(r.Value) {
				t.Fatalf("%q: bad syntax result %+v", s, r)
			}
		default:
			if r.Pos != -1 || !math.IsNaN(r.Value) {
				t.Fatalf("%q: bad fault result %+v", s, r)
			}
		}
	})
}
