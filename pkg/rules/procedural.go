package rules

import "github.com/jwalk/algex/pkg/expr"

// constantFoldRule folds e into a single Const via expr.Eval. It declines
// to fire on an expression that is already a bare Const, since folding a
// leaf is a no-op that would otherwise add a self-loop edge to the
// transformation graph.
func constantFoldRule(e *expr.Expr) (*expr.Expr, bool) {
	if e.Kind == expr.KindConst {
		return nil, false
	}
	return expr.Eval(e)
}

// groupRepeatedRule folds a repeated factor into a power (a*a -> a^2,
// a*a^n -> a^(n+1)) or a repeated term into a scaled product (a+a -> 2*a,
// a+n*a -> (n+1)*a), for a constant exponent/coefficient n.
func groupRepeatedRule(e *expr.Expr) (*expr.Expr, bool) {
	switch e.Kind {
	case expr.KindMul:
		return groupRepeatedMul(e.L, e.R)
	case expr.KindAdd:
		return groupRepeatedAdd(e.L, e.R)
	default:
		return nil, false
	}
}

func groupRepeatedMul(a, b *expr.Expr) (*expr.Expr, bool) {
	if expr.Equal(a, b) {
		return expr.NewPow(a, expr.NewConst(2)), true
	}
	if b.Kind == expr.KindPow {
		if n, ok := b.R.UnwrapConst(); ok && expr.Equal(b.L, a) {
			return expr.NewPow(a, expr.NewConst(n+1)), true
		}
	}
	if a.Kind == expr.KindPow {
		if n, ok := a.R.UnwrapConst(); ok && expr.Equal(a.L, b) {
			return expr.NewPow(b, expr.NewConst(n+1)), true
		}
	}
	return nil, false
}

func groupRepeatedAdd(a, b *expr.Expr) (*expr.Expr, bool) {
	if expr.Equal(a, b) {
		return expr.NewMul(expr.NewConst(2), a), true
	}
	if b.Kind == expr.KindMul {
		if n, ok := b.L.UnwrapConst(); ok && expr.Equal(b.R, a) {
			return expr.NewMul(expr.NewConst(n+1), a), true
		}
	}
	if a.Kind == expr.KindMul {
		if n, ok := a.L.UnwrapConst(); ok && expr.Equal(a.R, b) {
			return expr.NewMul(expr.NewConst(n+1), b), true
		}
	}
	return nil, false
}

// splitConstantsRule peels one unit off a constant whose magnitude exceeds
// one, so the search can recombine it with neighboring terms: Const(n) ->
// 1 + Const(n-1) for n > 1, Const(n) -> -1 + Const(n+1) for n < -1.
func splitConstantsRule(e *expr.Expr) (*expr.Expr, bool) {
	n, ok := e.UnwrapConst()
	if !ok {
		return nil, false
	}
	switch {
	case n > 1:
		return expr.NewAdd(expr.NewConst(1), expr.NewConst(n-1)), true
	case n < -1:
		return expr.NewAdd(expr.NewConst(-1), expr.NewConst(n+1)), true
	default:
		return nil, false
	}
}

// multiplicativeInverseRule implements the guarded identities a^0 -> 1 and
// a/a -> 1 (only when a is not provably the constant zero, avoiding 0^0's
// separate definedness and division by zero), plus the unconditional a*1
// -> a.
func multiplicativeInverseRule(e *expr.Expr) (*expr.Expr, bool) {
	switch e.Kind {
	case expr.KindPow:
		if n, ok := e.R.UnwrapConst(); ok && n == 0 && !isProvablyZero(e.L) {
			return expr.NewConst(1), true
		}
	case expr.KindDiv:
		if expr.Equal(e.L, e.R) && !isProvablyZero(e.L) {
			return expr.NewConst(1), true
		}
	case expr.KindMul:
		if n, ok := e.R.UnwrapConst(); ok && n == 1 {
			return e.L, true
		}
	}
	return nil, false
}

func isProvablyZero(e *expr.Expr) bool {
	folded, ok := expr.Eval(e)
	if !ok {
		return false
	}
	n, _ := folded.UnwrapConst()
	return n == 0
}
