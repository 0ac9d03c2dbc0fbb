// Package graph implements the content-addressed transformation graph: a
// directed multigraph whose nodes are expressions and whose edges are
// labeled with the rule that produced them. Nodes are keyed by expression
// content rather than pointer identity, so structurally equal expressions
// discovered through different rewrite paths collapse onto one node.
package graph

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/jwalk/algex/pkg/expr"
	"github.com/jwalk/algex/pkg/rules"
)

// Edge is one incident edge of a Node: the expression on the other end, the
// rule that connects them, and whether this edge was produced by applying
// the rule in reverse.
type Edge struct {
	Other   *expr.Expr
	Rule    rules.Rule
	Reverse bool
}

// Node holds a discovered expression plus its append-only, insertion-ordered
// list of incident edges.
type Node struct {
	Expr  *expr.Expr
	edges *arraylist.List
}

func newNode(e *expr.Expr) *Node {
	return &Node{Expr: e, edges: arraylist.New()}
}

// Edges returns this node's incident edges in insertion order.
func (n *Node) Edges() []Edge {
	out := make([]Edge, 0, n.edges.Size())
	it := n.edges.Iterator()
	for it.Next() {
		out = append(out, it.Value().(Edge))
	}
	return out
}

// Graph maps expression keys to the Node discovered for that expression,
// plus a designated root. Every expression mentioned on any node's edge
// list is itself a key in the map — AddEdge is the only way to grow the
// graph, and it maintains that invariant by construction.
type Graph struct {
	nodes map[string]*Node
	Root  *expr.Expr
}

// New creates a graph containing only root, with no edges.
func New(root *expr.Expr) *Graph {
	g := &Graph{nodes: make(map[string]*Node), Root: root}
	g.nodes[root.Key()] = newNode(root)
	return g
}

// Contains reports whether e has been discovered.
func (g *Graph) Contains(e *expr.Expr) bool {
	_, ok := g.nodes[e.Key()]
	return ok
}

// Size returns the number of distinct expressions discovered so far.
func (g *Graph) Size() int { return len(g.nodes) }

// AddEdge records that applying r to before produces after. before must
// already be present — violating that precondition is a programmer error,
// not a runtime condition, so AddEdge panics rather than returning an
// error. AddEdge always appends the mirror edge records on both endpoints
// (making repeated calls with the same (before, after, rule) add edge
// records but never a second node for after), and reports whether after
// was newly inserted.
func (g *Graph) AddEdge(before, after *expr.Expr, r rules.Rule) bool {
	nodeBefore, ok := g.nodes[before.Key()]
	if !ok {
		panic("graph: AddEdge called with an expression not yet in the graph")
	}
	nodeBefore.edges.Add(Edge{Other: after, Rule: r, Reverse: false})

	nodeAfter, existed := g.nodes[after.Key()]
	if !existed {
		nodeAfter = newNode(after)
		g.nodes[after.Key()] = nodeAfter
	}
	nodeAfter.edges.Add(Edge{Other: before, Rule: r, Reverse: true})
	return !existed
}

type bfsItem struct {
	exp    *expr.Expr
	depth  int
	parent *expr.Expr
}

// BFS visits every node exactly once, starting from the root, in
// breadth-first order. visit receives the node, its BFS depth, and the
// expression through which it was first reached (the root's parent is the
// root itself). Enqueue order follows each node's edge insertion order.
func (g *Graph) BFS(visit func(n *Node, depth int, parent *expr.Expr)) {
	visited := map[string]bool{g.Root.Key(): true}
	queue := arrayqueue.New()
	queue.Enqueue(bfsItem{exp: g.Root, depth: 0, parent: g.Root})

	for !queue.Empty() {
		raw, _ := queue.Dequeue()
		item := raw.(bfsItem)
		node := g.nodes[item.exp.Key()]
		visit(node, item.depth, item.parent)

		for _, e := range node.Edges() {
			key := e.Other.Key()
			if visited[key] {
				continue
			}
			visited[key] = true
			queue.Enqueue(bfsItem{exp: e.Other, depth: item.depth + 1, parent: item.exp})
		}
	}
}
