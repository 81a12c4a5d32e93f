package kcalc

// optimize folds calls to pure functions whose arguments are all constant,
// working bottom-up, and returns the replacement for n. Constants and
// variables are returned unchanged. A fold that would Raise is abandoned so
// that the fault is reported when the expression is evaluated instead.
func optimize(n node) node {
	switch n := n.(type) {
	case *constNode, *varNode:
		return n
	case *call1Node:
		n.arg = optimize(n.arg)
		if !n.pure || !isconst(n.arg) {
			return n
		}
	case *call2Node:
		n.args[0] = optimize(n.args[0])
		n.args[1] = optimize(n.args[1])
		if !n.pure || !isconst(n.args[0]) || !isconst(n.args[1]) {
			return n
		}
	default:
		panic("kcalc: optimize on unknown node")
	}
	v, err := tryeval(n)
	if err != nil {
		return n
	}
	return &constNode{v: v}
}

func isconst(n node) bool {
	_, ok := n.(*constNode)
	return ok
}

// tryeval evaluates n, recovering a Fault as an error.
func tryeval(n node) (v float64, err error) {
	defer checkpoint(&err)
	return n.eval(), nil
}
