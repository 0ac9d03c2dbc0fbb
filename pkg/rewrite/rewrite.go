// Package rewrite enumerates single-step rewrites of an expression under a
// rule (the "rewriter") and iterates a forward-only rule subset to a fixed
// point (the "forward simplifier"). Both are pure tree-to-tree transforms
// over expr.Expr.
package rewrite

import (
	"github.com/jwalk/algex/pkg/expr"
	"github.com/jwalk/algex/pkg/pattern"
	"github.com/jwalk/algex/pkg/rules"
)

// Transform returns every distinct expression reachable from exp by a
// single application of r at any one position — root or any descendant.
// At each position at most one rewrite is produced: for a reversible
// structural rule the backward direction is tried only where the forward
// direction does not match, so a node matching both directions yields
// only the forward result. The result
// order is root first, then left-subtree results, then right-subtree
// results, each in-order; duplicates may appear, deduplication is the
// transformation graph's responsibility. When r.ForwardOnly is set,
// Transform stops at the first successful application instead of
// enumerating every position, which is what lets the forward simplifier
// treat a forward-only rule as a single deterministic step.
func Transform(exp *expr.Expr, r rules.Rule) []*expr.Expr {
	results, _ := transformAt(exp, r)
	return results
}

func transformAt(exp *expr.Expr, r rules.Rule) (results []*expr.Expr, stopped bool) {
	if res, ok := applyAtRoot(exp, r); ok {
		results = append(results, res)
		if r.ForwardOnly {
			return results, true
		}
	}
	if !exp.IsBinary() {
		return results, false
	}

	leftResults, _ := transformAt(exp.L, r)
	for _, lr := range leftResults {
		results = append(results, &expr.Expr{Kind: exp.Kind, L: lr, R: exp.R})
		if r.ForwardOnly {
			return results, true
		}
	}

	rightResults, _ := transformAt(exp.R, r)
	for _, rr := range rightResults {
		results = append(results, &expr.Expr{Kind: exp.Kind, L: exp.L, R: rr})
		if r.ForwardOnly {
			return results, true
		}
	}
	return results, false
}

// applyAtRoot tries r once at exp itself and returns at most one rewrite:
// the structural forward direction, else (if reversible) the backward
// direction, or the procedural function.
func applyAtRoot(exp *expr.Expr, r rules.Rule) (*expr.Expr, bool) {
	if r.IsProcedural() {
		return r.Proc(exp)
	}
	if res, ok := pattern.RewriteRoot(exp, r.Before, r.After); ok {
		return res, true
	}
	if r.Reversible {
		if res, ok := pattern.RewriteRoot(exp, r.After, r.Before); ok {
			return res, true
		}
	}
	return nil, false
}

// Simplify repeatedly scans simpleRules in catalog order, replacing exp
// with the first rewrite any rule produces and restarting the scan, until
// a full pass yields no rewrite. Every rule in simpleRules is forward-only
// and strictly measure-reducing, except the power-of-a-power rule, which
// keeps the measure unchanged and removes one Pow node; so this loop always
// reaches a fixed point.
func Simplify(exp *expr.Expr, simpleRules []rules.Rule) *expr.Expr {
	for {
		progressed := false
		for _, r := range simpleRules {
			if results := Transform(exp, r); len(results) > 0 {
				exp = results[0]
				progressed = true
				break
			}
		}
		if !progressed {
			return exp
		}
	}
}
