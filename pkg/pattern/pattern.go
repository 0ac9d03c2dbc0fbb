// Package pattern implements one-way unification of a concrete expression
// tree against a pattern tree, and substitution of a bound environment back
// into a pattern to produce a rewritten tree. A pattern reuses expr.Expr:
// a Var node is interpreted as a meta-variable rather than a program
// variable. The same meta-variable name occurring twice in a pattern
// denotes the same subtree — repeated names must unify to equal subtrees:
// bind once, check equality on reuse, as a pure tree walk rather than a
// goal/stream pipeline.
package pattern

import "github.com/jwalk/algex/pkg/expr"

// Env is a finite mapping from meta-variable name to the expression it is
// bound to, produced by Match and consumed by Apply.
type Env map[string]*expr.Expr

// Match attempts to unify exp against pat, binding meta-variables into env
// as it goes. It reports whether the match succeeded. On failure env may
// have been partially mutated by bindings made before the failing subterm
// was reached; callers must discard env rather than reuse it.
func Match(exp, pat *expr.Expr, env Env) bool {
	switch pat.Kind {
	case expr.KindVar:
		if bound, ok := env[pat.Name]; ok {
			return expr.Equal(bound, exp)
		}
		env[pat.Name] = exp
		return true
	case expr.KindConst:
		n, ok := exp.UnwrapConst()
		return ok && n == pat.N
	default:
		if exp.Kind != pat.Kind {
			return false
		}
		return Match(exp.L, pat.L, env) && Match(exp.R, pat.R, env)
	}
}

// Apply substitutes env into pat. Every operator node of the result is
// newly allocated; bound subtrees and the pattern's constant leaves are
// shared with env and pat rather than copied. A Var node
// not present in env is returned unchanged — this cannot occur for a
// well-formed rule, where every meta-variable on the right-hand side also
// appears on the left.
func Apply(pat *expr.Expr, env Env) *expr.Expr {
	switch pat.Kind {
	case expr.KindVar:
		if bound, ok := env[pat.Name]; ok {
			return bound
		}
		return pat
	case expr.KindConst:
		return pat
	default:
		return &expr.Expr{Kind: pat.Kind, L: Apply(pat.L, env), R: Apply(pat.R, env)}
	}
}

// RewriteRoot matches exp against before and, on success, substitutes the
// resulting bindings into after. It reports false without allocating an
// output expression when exp does not match before.
func RewriteRoot(exp, before, after *expr.Expr) (*expr.Expr, bool) {
	env := Env{}
	if !Match(exp, before, env) {
		return nil, false
	}
	return Apply(after, env), true
}
