package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalk/algex/pkg/expr"
	"github.com/jwalk/algex/pkg/graph"
	"github.com/jwalk/algex/pkg/rules"
)

var commutative = rules.Rule{
	Before:     expr.NewAdd(expr.NewVar("a"), expr.NewVar("b")),
	After:      expr.NewAdd(expr.NewVar("b"), expr.NewVar("a")),
	Reversible: true,
}

func TestNewGraphContainsOnlyRoot(t *testing.T) {
	root := expr.NewVar("x")
	g := graph.New(root)
	assert.Equal(t, 1, g.Size())
	assert.True(t, g.Contains(root))
	assert.False(t, g.Contains(expr.NewVar("y")))
}

func TestAddEdgeInsertsNewNodeAndReportsTrue(t *testing.T) {
	root := expr.NewAdd(expr.NewVar("x"), expr.NewVar("y"))
	g := graph.New(root)

	after := expr.NewAdd(expr.NewVar("y"), expr.NewVar("x"))
	inserted := g.AddEdge(root, after, commutative)
	assert.True(t, inserted)
	assert.Equal(t, 2, g.Size())
	assert.True(t, g.Contains(after))
}

func TestAddEdgeIsIdempotentOnDuplicateExpression(t *testing.T) {
	root := expr.NewAdd(expr.NewVar("x"), expr.NewVar("y"))
	g := graph.New(root)
	after := expr.NewAdd(expr.NewVar("y"), expr.NewVar("x"))

	first := g.AddEdge(root, after, commutative)
	second := g.AddEdge(root, after, commutative)
	require.True(t, first)
	assert.False(t, second, "re-adding the same (before, after, rule) must not create a second node")
	assert.Equal(t, 2, g.Size())
}

func TestAddEdgeRecordsMirrorEdgeOnBothEndpoints(t *testing.T) {
	root := expr.NewAdd(expr.NewVar("x"), expr.NewVar("y"))
	g := graph.New(root)
	after := expr.NewAdd(expr.NewVar("y"), expr.NewVar("x"))
	g.AddEdge(root, after, commutative)

	var rootEdges, afterEdges []graph.Edge
	g.BFS(func(n *graph.Node, depth int, parent *expr.Expr) {
		if expr.Equal(n.Expr, root) {
			rootEdges = n.Edges()
		}
		if expr.Equal(n.Expr, after) {
			afterEdges = n.Edges()
		}
	})

	require.Len(t, rootEdges, 1)
	assert.False(t, rootEdges[0].Reverse)
	assert.True(t, expr.Equal(rootEdges[0].Other, after))

	require.Len(t, afterEdges, 1)
	assert.True(t, afterEdges[0].Reverse)
	assert.True(t, expr.Equal(afterEdges[0].Other, root))
}

func TestAddEdgePanicsWhenBeforeAbsent(t *testing.T) {
	g := graph.New(expr.NewVar("x"))
	assert.Panics(t, func() {
		g.AddEdge(expr.NewVar("not-in-graph"), expr.NewVar("y"), commutative)
	})
}

func TestBFSVisitsEachNodeOnceInBreadthFirstOrder(t *testing.T) {
	root := expr.NewConst(0)
	g := graph.New(root)
	n1 := expr.NewConst(1)
	n2 := expr.NewConst(2)
	n3 := expr.NewConst(3)

	// root -> n1 -> n3, root -> n2: n3 must be visited at depth 2.
	g.AddEdge(root, n1, commutative)
	g.AddEdge(root, n2, commutative)
	g.AddEdge(n1, n3, commutative)

	var order []*expr.Expr
	depths := map[string]int{}
	g.BFS(func(n *graph.Node, depth int, parent *expr.Expr) {
		order = append(order, n.Expr)
		depths[n.Expr.Key()] = depth
	})

	require.Len(t, order, 4)
	assert.Equal(t, 0, depths[root.Key()])
	assert.Equal(t, 1, depths[n1.Key()])
	assert.Equal(t, 1, depths[n2.Key()])
	assert.Equal(t, 2, depths[n3.Key()])
}

func TestBFSRootParentIsItself(t *testing.T) {
	root := expr.NewVar("x")
	g := graph.New(root)

	var parentOfRoot *expr.Expr
	g.BFS(func(n *graph.Node, depth int, parent *expr.Expr) {
		if depth == 0 {
			parentOfRoot = parent
		}
	})
	require.NotNil(t, parentOfRoot)
	assert.True(t, expr.Equal(parentOfRoot, root))
}
