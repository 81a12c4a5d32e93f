package kcalc

// SymbolKind is the kind of binding a Symbol holds.
type SymbolKind int8

const (
	// SymbolNone marks a free slot in a Table.
	SymbolNone SymbolKind = iota
	// SymbolConstant is a name bound to a fixed number.
	SymbolConstant
	// SymbolVariable is a name bound to a mutable numeric cell.
	SymbolVariable
	// SymbolFunction is a name bound to a native function of one or two
	// arguments.
	SymbolFunction
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolNone:
		return "None"
	case SymbolConstant:
		return "Constant"
	case SymbolVariable:
		return "Variable"
	case SymbolFunction:
		return "Function"
	default:
		return "SymbolKind(?)"
	}
}

// Func1 is a native function of one argument. It may call Raise to refuse an
// argument outside its domain.
type Func1 func(x float64) float64

// Func2 is a native function of two arguments. It may call Raise to refuse
// arguments outside its domain.
type Func2 func(x, y float64) float64

// ClosureFunc1 is a native function of one argument which receives the
// context it was registered with on every call.
type ClosureFunc1 func(ctx any, x float64) float64

// ClosureFunc2 is a native function of two arguments which receives the
// context it was registered with on every call.
type ClosureFunc2 func(ctx any, x, y float64) float64

// Symbol is a named binding in a Table. The zero Symbol is a free slot.
type Symbol struct {
	name  string
	kind  SymbolKind
	arity int
	pure  bool

	value float64
	cell  *float64

	f1  Func1
	f2  Func2
	c1  ClosureFunc1
	c2  ClosureFunc2
	ctx any
}

// Constant creates a symbol bound to a fixed value.
func Constant(name string, value float64) Symbol {
	return Symbol{name: name, kind: SymbolConstant, value: value}
}

// Variable creates a symbol bound to a numeric cell owned by the caller.
// Expressions compiled against the symbol read the cell each time they are
// evaluated.
func Variable(name string, cell *float64) Symbol {
	if cell == nil {
		panic("kcalc: nil variable cell for " + name)
	}
	return Symbol{name: name, kind: SymbolVariable, cell: cell}
}

// Function1 creates a symbol bound to a function of one argument. If pure,
// calls with constant arguments may be evaluated once at compile time.
func Function1(name string, f Func1, pure bool) Symbol {
	return Symbol{name: name, kind: SymbolFunction, arity: 1, pure: pure, f1: f}
}

// Function2 creates a symbol bound to a function of two arguments.
func Function2(name string, f Func2, pure bool) Symbol {
	return Symbol{name: name, kind: SymbolFunction, arity: 2, pure: pure, f2: f}
}

// Closure1 creates a symbol bound to a function of one argument that is
// passed ctx on each call.
func Closure1(name string, ctx any, f ClosureFunc1, pure bool) Symbol {
	return Symbol{name: name, kind: SymbolFunction, arity: 1, pure: pure, c1: f, ctx: ctx}
}

// Closure2 creates a symbol bound to a function of two arguments that is
// passed ctx on each call.
func Closure2(name string, ctx any, f ClosureFunc2, pure bool) Symbol {
	return Symbol{name: name, kind: SymbolFunction, arity: 2, pure: pure, c2: f, ctx: ctx}
}

// Name returns the symbol's name.
func (s Symbol) Name() string { return s.name }

// Kind returns the kind of binding.
func (s Symbol) Kind() SymbolKind { return s.kind }

// Arity returns the number of arguments of a function symbol, or 0.
func (s Symbol) Arity() int { return s.arity }

// Pure reports whether a function symbol is referentially transparent.
func (s Symbol) Pure() bool { return s.pure }

// Closure reports whether a function symbol carries a context.
func (s Symbol) Closure() bool { return s.c1 != nil || s.c2 != nil }

// Value returns the current value of a constant or variable. It is 0 for
// functions.
func (s Symbol) Value() float64 {
	switch s.kind {
	case SymbolConstant:
		return s.value
	case SymbolVariable:
		return *s.cell
	default:
		return 0
	}
}

// Table is an ordered list of symbols. Lookups find the first symbol with a
// matching name, so earlier entries shadow later duplicates. A Table is not
// safe for concurrent use.
type Table struct {
	syms []Symbol
	max  int
}

// NewTable creates an empty symbol table that holds at most capacity symbols,
// counting free slots. If capacity is not positive, the table grows without
// bound.
func NewTable(capacity int) *Table {
	t := Table{max: capacity}
	if capacity > 0 {
		t.syms = make([]Symbol, 0, capacity)
	}
	return &t
}

// Add appends a symbol. The result is a Fault of kind ErrSymbolTableFull if
// the table is at capacity. Add never reuses free slots and never checks for
// duplicate names.
func (t *Table) Add(s Symbol) error {
	if s.name == "" || s.kind == SymbolNone {
		panic("kcalc: adding empty symbol")
	}
	if t.max > 0 && len(t.syms) >= t.max {
		return &Fault{Kind: ErrSymbolTableFull}
	}
	t.syms = append(t.syms, s)
	return nil
}

// Lookup finds the first symbol named exactly name. Names are case-sensitive.
func (t *Table) Lookup(name string) (Symbol, bool) {
	if k := t.find(name); k >= 0 {
		return t.syms[k], true
	}
	return Symbol{}, false
}

func (t *Table) find(name string) int {
	if name == "" {
		return -1
	}
	for k := range t.syms {
		if t.syms[k].name == name {
			return k
		}
	}
	return -1
}

// BindVariable sets the variable named name to value. If the first symbol
// with that name is a variable, its cell is overwritten in place. If it is a
// constant or function, nothing happens. Otherwise, a new variable is created
// in the first free slot, or appended if there is none. The result is a Fault
// of kind ErrSymbolTableFull if the variable could not be created.
func (t *Table) BindVariable(name string, value float64) error {
	if name == "" {
		return &Fault{Kind: ErrMissingIdentifier}
	}
	if k := t.find(name); k >= 0 {
		if s := &t.syms[k]; s.kind == SymbolVariable {
			*s.cell = value
		}
		return nil
	}
	cell := new(float64)
	*cell = value
	for k := range t.syms {
		if t.syms[k].kind == SymbolNone {
			t.syms[k] = Variable(name, cell)
			return nil
		}
	}
	return t.Add(Variable(name, cell))
}

// Unset clears the first symbol named name, leaving a free slot that a later
// BindVariable may reuse. The result reports whether a symbol was cleared.
func (t *Table) Unset(name string) bool {
	k := t.find(name)
	if k < 0 {
		return false
	}
	t.syms[k] = Symbol{}
	return true
}

// Clear removes every symbol.
func (t *Table) Clear() {
	for k := range t.syms {
		t.syms[k] = Symbol{}
	}
	t.syms = t.syms[:0]
}

// Len returns the number of slots in use, including free slots.
func (t *Table) Len() int {
	return len(t.syms)
}

// Symbols returns the symbols in table order, skipping free slots.
func (t *Table) Symbols() []Symbol {
	r := make([]Symbol, 0, len(t.syms))
	for _, s := range t.syms {
		if s.kind != SymbolNone {
			r = append(r, s)
		}
	}
	return r
}
