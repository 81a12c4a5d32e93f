package kcalc

// CompileOption is an option for compiling.
type CompileOption interface {
	compileOption(compilectx) compilectx
}

// compilectx holds general data for compiling.
type compilectx struct {
	// nofold disables constant folding.
	nofold bool
}

type foldopt bool

// NoFold disables constant folding of pure function calls. The compiled
// expression evaluates to the same value either way; it only does more work.
func NoFold() CompileOption {
	return foldopt(false)
}

// Fold sets whether pure function calls with constant arguments are evaluated
// once at compile time. Folding is enabled by default.
func Fold(enable bool) CompileOption {
	return foldopt(enable)
}

func (o foldopt) compileOption(p compilectx) compilectx {
	p.nofold = !bool(o)
	return p
}

func options(opts []CompileOption) compilectx {
	var p compilectx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.compileOption(p)
	}
	return p
}
