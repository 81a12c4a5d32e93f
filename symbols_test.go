package kcalc_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/kcalc"
)

func names(t *kcalc.Table) []string {
	var r []string
	for _, s := range t.Symbols() {
		r = append(r, s.Name())
	}
	return r
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTableFirstMatch(t *testing.T) {
	syms := kcalc.NewTable(0)
	syms.Add(kcalc.Constant("A", 1))
	syms.Add(kcalc.Constant("A", 2))
	s, ok := syms.Lookup("A")
	if !ok || s.Value() != 1 {
		t.Errorf("want first A = 1, got %v %v", s.Value(), ok)
	}
	if r := kcalc.Interpret("A", syms); r.Value != 1 {
		t.Errorf("expression saw shadowed A: %+v", r)
	}
	if _, ok := syms.Lookup("a"); ok {
		t.Error("lookup is case-insensitive")
	}
	if _, ok := syms.Lookup(""); ok {
		t.Error("found empty name")
	}
}

func TestBindVariableUpdatesInPlace(t *testing.T) {
	syms := kcalc.NewTable(0)
	if err := syms.BindVariable("X", 1); err != nil {
		t.Fatal(err)
	}
	e, err := kcalc.Compile("X", syms)
	if err != nil {
		t.Fatal(err)
	}
	if err := syms.BindVariable("X", 2); err != nil {
		t.Fatal(err)
	}
	if syms.Len() != 1 {
		t.Errorf("rebinding added a symbol: %q", names(syms))
	}
	if v, _ := e.Eval(); v != 2 {
		t.Errorf("compiled expression saw %v after rebinding to 2", v)
	}
}

func TestBindVariableCallerCell(t *testing.T) {
	x := 3.0
	syms := kcalc.NewTable(0)
	syms.Add(kcalc.Variable("X", &x))
	if err := syms.BindVariable("X", 9); err != nil {
		t.Fatal(err)
	}
	if x != 9 {
		t.Errorf("caller's cell is %v, want 9", x)
	}
	x = 4
	if s, _ := syms.Lookup("X"); s.Value() != 4 {
		t.Errorf("table reads %v, want 4", s.Value())
	}
}

func TestBindVariableNonVariable(t *testing.T) {
	// Assigning to a constant or function name changes nothing and is not an
	// error. Callers that care must check the kind themselves.
	syms := kcalc.NewTable(0)
	syms.Add(kcalc.Constant("K", 1))
	syms.Add(kcalc.Function1("F", math.Abs, true))
	if err := syms.BindVariable("K", 5); err != nil {
		t.Errorf("constant: %v", err)
	}
	if err := syms.BindVariable("F", 5); err != nil {
		t.Errorf("function: %v", err)
	}
	if s, _ := syms.Lookup("K"); s.Kind() != kcalc.SymbolConstant || s.Value() != 1 {
		t.Errorf("constant changed to %v %v", s.Kind(), s.Value())
	}
	if s, _ := syms.Lookup("F"); s.Kind() != kcalc.SymbolFunction {
		t.Errorf("function changed to %v", s.Kind())
	}
	if syms.Len() != 2 {
		t.Errorf("assignment added a symbol: %q", names(syms))
	}
}

func TestBindVariableEmptyName(t *testing.T) {
	syms := kcalc.NewTable(0)
	err := syms.BindVariable("", 1)
	if kcalc.KindOf(err) != kcalc.ErrMissingIdentifier {
		t.Errorf("want missing identifier, got %v", err)
	}
}

func TestTableCapacity(t *testing.T) {
	syms := kcalc.NewTable(2)
	if err := syms.BindVariable("A", 1); err != nil {
		t.Fatal(err)
	}
	if err := syms.BindVariable("B", 2); err != nil {
		t.Fatal(err)
	}
	if err := syms.BindVariable("C", 3); kcalc.KindOf(err) != kcalc.ErrSymbolTableFull {
		t.Errorf("want table full, got %v", err)
	}
	if err := syms.Add(kcalc.Constant("D", 4)); kcalc.KindOf(err) != kcalc.ErrSymbolTableFull {
		t.Errorf("Add: want table full, got %v", err)
	}
	// Existing variables still update when the table is full.
	if err := syms.BindVariable("A", 10); err != nil {
		t.Errorf("update at capacity: %v", err)
	}
	if !sameNames(names(syms), []string{"A", "B"}) {
		t.Errorf("wrong contents %q", names(syms))
	}
}

func TestUnsetReusesSlot(t *testing.T) {
	syms := kcalc.NewTable(3)
	syms.BindVariable("A", 1)
	syms.BindVariable("B", 2)
	syms.BindVariable("C", 3)
	if !syms.Unset("B") {
		t.Fatal("couldn't unset B")
	}
	if syms.Unset("B") {
		t.Error("unset B twice")
	}
	if _, ok := syms.Lookup("B"); ok {
		t.Error("B still visible")
	}
	if syms.Len() != 3 {
		t.Errorf("free slot not counted: len %d", syms.Len())
	}
	if err := syms.BindVariable("D", 4); err != nil {
		t.Fatalf("free slot not reused: %v", err)
	}
	if !sameNames(names(syms), []string{"A", "D", "C"}) {
		t.Errorf("wrong order %q", names(syms))
	}
	if r := kcalc.Interpret("A+D+C", syms); r.Value != 8 {
		t.Errorf("want 8, got %+v", r)
	}
}

func TestClear(t *testing.T) {
	syms := kcalc.NewTable(0)
	syms.AddBuiltins(nil)
	syms.BindVariable("X", 1)
	syms.Clear()
	if syms.Len() != 0 || len(syms.Symbols()) != 0 {
		t.Errorf("not empty after clear: %q", names(syms))
	}
	if r := kcalc.Interpret("PI", syms); r.Kind != kcalc.ErrUnknownIdentifier {
		t.Errorf("PI survived clear: %+v", r)
	}
}

func TestSymbolAccessors(t *testing.T) {
	x := 2.5
	ctx := new(int)
	cases := []struct {
		s       kcalc.Symbol
		kind    kcalc.SymbolKind
		arity   int
		pure    bool
		closure bool
		value   float64
	}{
		{kcalc.Constant("K", 1.5), kcalc.SymbolConstant, 0, false, false, 1.5},
		{kcalc.Variable("X", &x), kcalc.SymbolVariable, 0, false, false, 2.5},
		{kcalc.Function1("F", math.Abs, true), kcalc.SymbolFunction, 1, true, false, 0},
		{kcalc.Function2("G", math.Max, false), kcalc.SymbolFunction, 2, false, false, 0},
		{kcalc.Closure1("C", ctx, func(any, float64) float64 { return 0 }, false), kcalc.SymbolFunction, 1, false, true, 0},
		{kcalc.Closure2("D", ctx, func(any, float64, float64) float64 { return 0 }, true), kcalc.SymbolFunction, 2, true, true, 0},
	}
	for _, c := range cases {
		t.Run(c.s.Name(), func(t *testing.T) {
			s := c.s
			if s.Kind() != c.kind || s.Arity() != c.arity || s.Pure() != c.pure || s.Closure() != c.closure || s.Value() != c.value {
				t.Errorf("got %v/%d/%t/%t/%v", s.Kind(), s.Arity(), s.Pure(), s.Closure(), s.Value())
			}
		})
	}
}

func TestAddBuiltins(t *testing.T) {
	syms := kcalc.NewTable(0)
	if err := syms.AddBuiltins(nil); err != nil {
		t.Fatal(err)
	}
	if syms.Len() != kcalc.NumBuiltins {
		t.Errorf("added %d symbols, NumBuiltins is %d", syms.Len(), kcalc.NumBuiltins)
	}
	want := []string{
		"PI", "E", "ABS", "ACOS", "ASIN", "ATAN", "ATAN2", "CEIL", "COS", "COSH",
		"EXP", "FLOOR", "LOG", "LOG10", "POW", "SIN", "SINH", "SQRT", "TAN", "TANH",
	}
	if !sameNames(names(syms), want) {
		t.Errorf("want %q, got %q", want, names(syms))
	}
	for _, name := range []string{"SIN", "COS", "TAN", "ASIN", "ACOS", "ATAN", "ATAN2"} {
		s, _ := syms.Lookup(name)
		if s.Pure() || !s.Closure() {
			t.Errorf("%s should be an impure closure", name)
		}
	}
}

func TestAddBuiltinsFull(t *testing.T) {
	syms := kcalc.NewTable(kcalc.NumBuiltins - 1)
	err := syms.AddBuiltins(nil)
	if kcalc.KindOf(err) != kcalc.ErrSymbolTableFull {
		t.Errorf("want table full, got %v", err)
	}
	if syms.Len() != kcalc.NumBuiltins-1 {
		t.Errorf("want partial table of %d, got %d", kcalc.NumBuiltins-1, syms.Len())
	}
}
