// Package rules holds the two static rule catalogs used by the rewriter and
// search driver: a reversible main catalog explored during search, and a
// forward-only simple catalog used only by the forward simplifier. Rules
// are either structural (a pattern pair, optionally reversible) or
// procedural (a named, pure function over an expression). Both catalogs are
// process-wide constants built once in init and never mutated afterward.
package rules

import "github.com/jwalk/algex/pkg/expr"

// Rule is one equivalence in a catalog. A structural rule has Before/After
// patterns and no Proc; a procedural rule has Proc and leaves Before/After
// nil. ForwardOnly controls the rewriter's early-exit behavior (see
// pkg/rewrite.Transform): when true, a caller collecting rewrites stops at
// the first successful application instead of enumerating every position.
// Reversible is meaningful only for structural rules and selects whether
// the rewriter also tries the After-to-Before direction.
type Rule struct {
	Name        string
	Before      *expr.Expr
	After       *expr.Expr
	Reversible  bool
	ForwardOnly bool
	Proc        func(*expr.Expr) (*expr.Expr, bool)
}

// IsProcedural reports whether r is a procedural rule.
func (r Rule) IsProcedural() bool { return r.Proc != nil }

// String prints a structural rule as "LEFT = RIGHT" and a procedural rule
// as its registered name, per the rule print format.
func (r Rule) String() string {
	if r.IsProcedural() {
		return r.Name
	}
	return r.Before.String() + " = " + r.After.String()
}

// structural is a constructor shorthand for the common case.
func structural(before, after *expr.Expr, reversible bool) Rule {
	return Rule{Before: before, After: after, Reversible: reversible}
}

// procedural is a constructor shorthand for a named, forward-only
// procedural rule.
func procedural(name string, fn func(*expr.Expr) (*expr.Expr, bool)) Rule {
	return Rule{Name: name, ForwardOnly: true, Proc: fn}
}

// pattern-construction shorthands for terser catalog literals below.
func v(name string) *expr.Expr { return expr.NewVar(name) }
func c(n int32) *expr.Expr     { return expr.NewConst(n) }

var mainCatalog []Rule
var simpleForwardCatalog []Rule

func init() {
	a, b, cc := v("a"), v("b"), v("c")

	mainCatalog = []Rule{
		// Distributive.
		structural(expr.NewMul(a, expr.NewAdd(b, cc)), expr.NewAdd(expr.NewMul(a, b), expr.NewMul(a, cc)), true),
		structural(expr.NewPow(expr.NewMul(a, b), cc), expr.NewMul(expr.NewPow(a, cc), expr.NewPow(b, cc)), true),
		// Commutative.
		structural(expr.NewAdd(a, b), expr.NewAdd(b, a), true),
		structural(expr.NewMul(a, b), expr.NewMul(b, a), true),
		// Associative.
		structural(expr.NewMul(a, expr.NewMul(b, cc)), expr.NewMul(expr.NewMul(a, b), cc), true),
		structural(expr.NewAdd(a, expr.NewAdd(b, cc)), expr.NewAdd(expr.NewAdd(a, b), cc), true),
		// Rewriting.
		structural(expr.NewDiv(a, b), expr.NewMul(a, expr.NewPow(b, c(-1))), true),
		structural(expr.NewMul(expr.NewPow(a, b), expr.NewPow(a, cc)), expr.NewPow(a, expr.NewAdd(b, cc)), true),
		structural(expr.NewSub(a, b), expr.NewAdd(a, expr.NewMul(c(-1), b)), true),
		// Procedural.
		procedural("constant-fold", constantFoldRule),
		procedural("group-repeated", groupRepeatedRule),
		procedural("split-constants", splitConstantsRule),
	}

	simpleForwardCatalog = []Rule{
		forwardStructural(expr.NewAdd(c(0), a), a),
		forwardStructural(expr.NewSub(a, a), c(0)),
		forwardStructural(expr.NewPow(expr.NewPow(a, b), cc), expr.NewPow(a, expr.NewMul(b, cc))),
		forwardStructural(expr.NewMul(a, c(0)), c(0)),
		forwardStructural(expr.NewPow(a, c(1)), a),
		procedural("multiplicative-inverse", multiplicativeInverseRule),
	}
}

func forwardStructural(before, after *expr.Expr) Rule {
	r := structural(before, after, false)
	r.ForwardOnly = true
	return r
}

// Main returns the reversible catalog explored by the search driver. The
// returned slice is shared and must not be modified.
func Main() []Rule { return mainCatalog }

// SimpleForward returns the forward-only catalog used by the simplifier.
// The returned slice is shared and must not be modified.
func SimpleForward() []Rule { return simpleForwardCatalog }
