// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Architecture:
//   - Graph: append-only arena of node records addressed by NodeID
//   - Value: lightweight handle (graph + NodeID) used to build expressions
//   - ops.Kind: closed set of operations with their local derivative rules
//   - Backward: post-order topological sort, then reverse walk accumulating
//     gradients into operands
//
// Every handle to the same NodeID reads and writes the same arena slot, so a
// node used by several consumers (fan-out) accumulates all of their
// contributions during a single backward pass.
//
// Usage:
//
//	g := autodiff.NewGraph()
//	x := g.Leaf(3.0)
//	y := x.Mul(x) // y = x²
//
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x = 6.0
package autodiff

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// NodeID is the stable index of a node inside its Graph.
type NodeID int

// NoNode marks an empty operand slot.
const NoNode NodeID = -1

// node is one arena record.
//
// Leaves have both operand slots set to NoNode; unary kinds use lhs only.
type node struct {
	value float64
	grad  float64
	op    ops.Kind
	lhs   NodeID
	rhs   NodeID
}

// Graph owns every node created through it.
//
// Nodes are only ever appended, and a node's operands always have smaller
// ids than the node itself, so the operand relation cannot contain a cycle.
// A Graph is not safe for concurrent use.
type Graph struct {
	nodes []node
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]node, 0, 64), // Pre-allocate for common case
	}
}

// Leaf creates a node holding a constant (input, weight, bias).
func (g *Graph) Leaf(value float64) Value {
	return Value{graph: g, id: g.push(node{value: value, op: ops.None, lhs: NoNode, rhs: NoNode})}
}

// Value returns a handle for an existing node.
func (g *Graph) Value(id NodeID) Value {
	g.check(id)
	return Value{graph: g, id: id}
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Truncate drops every node created after the first n.
//
// This is the arena counterpart of clearing a gradient tape: parameters
// created up front survive, while the per-iteration forward graph is
// discarded. Handles to dropped nodes become invalid.
func (g *Graph) Truncate(n int) {
	if n < 0 || n > len(g.nodes) {
		panic(fmt.Sprintf("autodiff: Truncate(%d) out of range [0, %d]", n, len(g.nodes)))
	}
	g.nodes = g.nodes[:n]
}

// ZeroGrad resets the gradient of every node in the graph.
func (g *Graph) ZeroGrad() {
	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
}

// apply evaluates kind over existing operands and appends the result.
func (g *Graph) apply(kind ops.Kind, lhs, rhs NodeID) NodeID {
	a := g.at(lhs).value
	var b float64
	if rhs != NoNode {
		b = g.at(rhs).value
	}
	return g.push(node{
		value: ops.Forward(kind, a, b),
		op:    kind,
		lhs:   lhs,
		rhs:   rhs,
	})
}

func (g *Graph) push(n node) NodeID {
	g.nodes = append(g.nodes, n)
	return NodeID(len(g.nodes) - 1)
}

func (g *Graph) check(id NodeID) {
	if id < 0 || int(id) >= len(g.nodes) {
		panic(fmt.Sprintf("autodiff: node %d out of range (graph has %d nodes)", id, len(g.nodes)))
	}
}

func (g *Graph) at(id NodeID) *node {
	g.check(id)
	return &g.nodes[id]
}
