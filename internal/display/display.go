// Package display renders search output for the interactive CLI: the
// parsed expression, the final transformation graph, and the summary line.
// It is styled after npillmayer/gorgo/terex/terexlang/trepl's use of
// pterm.Info/pterm.Error for colorized REPL output. Per-depth search
// progress is surfaced separately, through internal/obslog's logger.
package display

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/jwalk/algex/pkg/expr"
	"github.com/jwalk/algex/pkg/graph"
	"github.com/jwalk/algex/pkg/search"
)

func init() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " INFO ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// ParsedExpr prints the expression the parser produced for the line just
// read, before the search begins.
func ParsedExpr(e *expr.Expr) {
	pterm.Info.Println("parsed: " + e.String())
}

// ParseError prints the parse error for the current line. The REPL
// keeps reading after this — a single bad line does not end the session.
func ParseError(err error) {
	pterm.Error.Println(err.Error())
}

// Graph prints the final transformation graph as a BFS listing, one line
// per discovered node: "depth: expr (from parent via rule)". The root's
// own line has no "via" clause.
func Graph(g *graph.Graph) {
	g.BFS(func(n *graph.Node, depth int, parent *expr.Expr) {
		if depth == 0 {
			pterm.Println(fmt.Sprintf("%d: %s", depth, n.Expr.String()))
			return
		}
		rule := ruleInto(n, parent)
		pterm.Println(fmt.Sprintf("%d: %s (from %s via %s)", depth, n.Expr.String(), parent.String(), rule))
	})
}

// ruleInto finds the edge on n leading back to parent, for labeling n's
// BFS listing line. BFS always reaches n through one of its own edges, so
// this never falls through to the zero value in practice.
func ruleInto(n *graph.Node, parent *expr.Expr) string {
	for _, e := range n.Edges() {
		if expr.Equal(e.Other, parent) {
			return e.Rule.String()
		}
	}
	return "?"
}

// Summary prints the final "min_expr with measure M is distance D away
// from root" line.
func Summary(r search.Result) {
	pterm.Info.Println(fmt.Sprintf("%s with measure %d is distance %d away from root", r.MinExpr.String(), r.MinMeasure, r.MinDepth))
}
