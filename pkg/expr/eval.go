package expr

import "math"

// Eval folds a subtree whose leaves are all integer constants into a single
// Const node. It returns ok == false — never panics — when the subtree
// contains a Var, when a Div divisor is zero, when a Pow exponent is
// negative, or when intermediate 32-bit arithmetic would overflow. Eval is
// pure and total outside those explicit failure cases.
func Eval(e *Expr) (result *Expr, ok bool) {
	if e == nil {
		return nil, false
	}
	switch e.Kind {
	case KindConst:
		return NewConst(e.N), true
	case KindVar:
		return nil, false
	}

	l, ok := Eval(e.L)
	if !ok {
		return nil, false
	}
	r, ok := Eval(e.R)
	if !ok {
		return nil, false
	}
	a, b := l.N, r.N

	switch e.Kind {
	case KindAdd:
		n, ok := addChecked(a, b)
		if !ok {
			return nil, false
		}
		return NewConst(n), true
	case KindSub:
		n, ok := subChecked(a, b)
		if !ok {
			return nil, false
		}
		return NewConst(n), true
	case KindMul:
		n, ok := mulChecked(a, b)
		if !ok {
			return nil, false
		}
		return NewConst(n), true
	case KindDiv:
		if b == 0 {
			return nil, false
		}
		// Go's integer division already truncates toward zero.
		return NewConst(a / b), true
	case KindPow:
		return evalPow(a, b)
	default:
		return nil, false
	}
}

func addChecked(a, b int32) (int32, bool) {
	sum := int64(a) + int64(b)
	if sum < math.MinInt32 || sum > math.MaxInt32 {
		return 0, false
	}
	return int32(sum), true
}

func subChecked(a, b int32) (int32, bool) {
	diff := int64(a) - int64(b)
	if diff < math.MinInt32 || diff > math.MaxInt32 {
		return 0, false
	}
	return int32(diff), true
}

func mulChecked(a, b int32) (int32, bool) {
	prod := int64(a) * int64(b)
	if prod < math.MinInt32 || prod > math.MaxInt32 {
		return 0, false
	}
	return int32(prod), true
}

// evalPow computes base^exp for a non-negative exp, with 0^0 = 1 by
// convention. A negative exponent fails rather than producing a fraction,
// matching the integer-only arithmetic this evaluator is scoped to.
func evalPow(base, exp int32) (*Expr, bool) {
	if exp < 0 {
		return nil, false
	}
	result := int64(1)
	for i := int32(0); i < exp; i++ {
		result *= int64(base)
		if result < math.MinInt32 || result > math.MaxInt32 {
			return nil, false
		}
	}
	return NewConst(int32(result)), true
}
