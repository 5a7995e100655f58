// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Nodes live in a Graph arena and are addressed through Value handles.
// Operators build new nodes; Backward fills in gradients.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    x := g.Leaf(2.0)
//	    w := g.Leaf(-3.0)
//	    o := x.Mul(w).AddScalar(6.88).Tanh()
//
//	    o.Backward()
//	    fmt.Println(x.Grad(), w.Grad())
//	}
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Graph is the arena owning every node.
type Graph = autodiff.Graph

// Value is a handle to one node of a Graph.
type Value = autodiff.Value

// NodeID is the stable index of a node inside its Graph.
type NodeID = autodiff.NodeID

// NoNode marks an empty operand slot.
const NoNode = autodiff.NoNode

// NewGraph creates an empty graph.
//
// Example:
//
//	g := autodiff.NewGraph()
//	x := g.Leaf(3.0)
//	y := x.Mul(x)
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// Snapshot is a debugging dump of a subgraph.
type Snapshot = autodiff.Snapshot

// NodeRecord is the serializable form of one node.
type NodeRecord = autodiff.NodeRecord

// Op identifies the operation that produced a node.
type Op = ops.Kind

// Operation kinds.
const (
	OpNone = ops.None
	OpAdd  = ops.Add
	OpMul  = ops.Mul
	OpPow  = ops.Pow
	OpExp  = ops.Exp
	OpTanh = ops.Tanh
)
