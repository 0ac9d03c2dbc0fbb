// Package search implements the breadth-first transformation-graph search
// that finds a small-measure expression equivalent to a given root, using
// the functional-options configuration shape also used by
// gitrdm/gokanlogic's Solver.SolveOptimal.
package search

import (
	"github.com/emirpasic/gods/queues/arrayqueue"
	"github.com/sirupsen/logrus"

	"github.com/jwalk/algex/internal/obslog"
	"github.com/jwalk/algex/pkg/expr"
	"github.com/jwalk/algex/pkg/graph"
	"github.com/jwalk/algex/pkg/rewrite"
	"github.com/jwalk/algex/pkg/rules"
)

// Result is the outcome of Run: the smallest-measure expression reachable
// from the root, its measure, its BFS depth, and the populated
// transformation graph (useful for printing a BFS listing).
type Result struct {
	MinExpr    *expr.Expr
	MinMeasure int32
	MinDepth   int
	Graph      *graph.Graph
}

type config struct {
	logger *logrus.Logger
}

// Option configures Run. See WithLogger.
type Option func(*config)

// WithLogger overrides the logger used for per-depth progress records.
// The default is the package-wide logger from internal/obslog.
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) { c.logger = l }
}

type workItem struct {
	exp   *expr.Expr
	depth int
}

// Run expands the transformation graph from root in breadth-first order,
// applying every rule in rules.Main() at every position, funneling each
// candidate through rewrite.Simplify and the 2*min+3 measure-pruning
// bound, and returning the smallest expression observed. Run always
// terminates: the pruning bound keeps the reachable graph finite despite
// expanding rules such as distributivity or reversed identities.
func Run(root *expr.Expr, opts ...Option) Result {
	cfg := &config{logger: obslog.L()}
	for _, o := range opts {
		o(cfg)
	}

	g := graph.New(root)
	minExpr := root
	minMeasure := expr.Measure(root)
	minDepth := 0

	queue := arrayqueue.New()
	queue.Enqueue(workItem{exp: root, depth: 0})
	prevDepth := 0

	main := rules.Main()
	simple := rules.SimpleForward()

	for !queue.Empty() {
		raw, _ := queue.Dequeue()
		item := raw.(workItem)

		if item.depth > prevDepth {
			prevDepth = item.depth
			cfg.logger.WithFields(logrus.Fields{
				"depth":      item.depth,
				"graph_size": g.Size(),
				"min":        minMeasure,
			}).Info("reached new search depth")
		}

		for _, rule := range main {
			for _, candidate := range rewrite.Transform(item.exp, rule) {
				simplified := rewrite.Simplify(candidate, simple)
				measure := expr.Measure(simplified)
				if measure >= 2*minMeasure+3 {
					continue
				}
				if measure < minMeasure {
					minMeasure = measure
					minExpr = simplified
					minDepth = item.depth + 1
				}
				if g.AddEdge(item.exp, simplified, rule) {
					queue.Enqueue(workItem{exp: simplified, depth: item.depth + 1})
				}
			}
		}
	}

	return Result{MinExpr: minExpr, MinMeasure: minMeasure, MinDepth: minDepth, Graph: g}
}
