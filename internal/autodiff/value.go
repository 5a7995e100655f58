package autodiff

import (
	"fmt"
	"math"
	"strconv"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Value is a handle to one node of a Graph.
//
// Values are passed by value; copies refer to the same node, so gradients
// written through one copy are visible through all others. Operators never
// modify their operands, they append a new node and return its handle.
//
// Example:
//
//	g := autodiff.NewGraph()
//	a := g.Leaf(2.0)
//	b := g.Leaf(-3.0)
//	c := a.Mul(b).Add(g.Leaf(10.0)) // c = a*b + 10 = 4
type Value struct {
	graph *Graph
	id    NodeID
}

// Graph returns the graph owning this value.
func (v Value) Graph() *Graph {
	return v.graph
}

// ID returns the node index inside the owning graph.
func (v Value) ID() NodeID {
	return v.id
}

// Data returns the scalar value of the node.
func (v Value) Data() float64 {
	return v.node().value
}

// SetData overwrites the node's value.
//
// Intended for parameter leaves updated by an optimizer. Nodes already
// derived from this one keep their old values.
func (v Value) SetData(data float64) {
	v.node().value = data
}

// Grad returns the accumulated gradient of the node.
func (v Value) Grad() float64 {
	return v.node().grad
}

// ZeroGrad resets the node's gradient to 0.
func (v Value) ZeroGrad() {
	v.node().grad = 0
}

// Op returns the operation that produced this node (ops.None for leaves).
func (v Value) Op() ops.Kind {
	return v.node().op
}

// IsLeaf reports whether the node has no operands.
func (v Value) IsLeaf() bool {
	return v.node().op == ops.None
}

// Operands returns handles to the node's operands in order.
// Leaves return nil, unary operations a single element.
func (v Value) Operands() []Value {
	n := v.node()
	switch {
	case n.lhs == NoNode:
		return nil
	case n.rhs == NoNode:
		return []Value{{graph: v.graph, id: n.lhs}}
	default:
		return []Value{{graph: v.graph, id: n.lhs}, {graph: v.graph, id: n.rhs}}
	}
}

// Add returns v + other.
func (v Value) Add(other Value) Value {
	return v.binary(ops.Add, other)
}

// AddScalar returns v + scalar, creating a constant leaf for scalar.
func (v Value) AddScalar(scalar float64) Value {
	return v.Add(v.graph.Leaf(scalar))
}

// Mul returns v * other.
func (v Value) Mul(other Value) Value {
	return v.binary(ops.Mul, other)
}

// MulScalar returns v * scalar, creating a constant leaf for scalar.
func (v Value) MulScalar(scalar float64) Value {
	return v.Mul(v.graph.Leaf(scalar))
}

// Pow returns v raised to exponent.
//
// Only v is differentiated through this operation: exponent is expected to
// be a constant leaf and never receives gradient.
func (v Value) Pow(exponent Value) Value {
	return v.binary(ops.Pow, exponent)
}

// PowScalar returns v raised to a constant exponent.
func (v Value) PowScalar(exponent float64) Value {
	return v.Pow(v.graph.Leaf(exponent))
}

// Exp returns e^v.
func (v Value) Exp() Value {
	return v.unary(ops.Exp)
}

// Tanh returns the hyperbolic tangent of v.
func (v Value) Tanh() Value {
	return v.unary(ops.Tanh)
}

// Neg returns -v, computed as v * -1.
func (v Value) Neg() Value {
	return v.MulScalar(-1)
}

// Sub returns v - other, computed as v + (-other).
func (v Value) Sub(other Value) Value {
	return v.Add(other.Neg())
}

// Div returns v / other, computed as v * other^-1.
func (v Value) Div(other Value) Value {
	return v.Mul(other.PowScalar(-1))
}

// Backward populates the gradient of every node reachable from v with the
// derivative of v with respect to that node.
//
// Gradients accumulate: callers zero them between independent passes.
func (v Value) Backward() {
	v.graph.Backward(v.id)
}

// String formats the value as Value(data=...), printing integral values
// with a single decimal place.
func (v Value) String() string {
	data := v.Data()
	if !math.IsInf(data, 0) && data == math.Trunc(data) {
		return fmt.Sprintf("Value(data=%.1f)", data)
	}
	return "Value(data=" + strconv.FormatFloat(data, 'f', -1, 64) + ")"
}

func (v Value) node() *node {
	if v.graph == nil {
		panic("autodiff: use of zero Value")
	}
	return v.graph.at(v.id)
}

func (v Value) binary(kind ops.Kind, other Value) Value {
	v.node()
	if other.graph != v.graph {
		panic(fmt.Sprintf("autodiff: %v operands belong to different graphs", kind))
	}
	return Value{graph: v.graph, id: v.graph.apply(kind, v.id, other.id)}
}

func (v Value) unary(kind ops.Kind) Value {
	v.node()
	return Value{graph: v.graph, id: v.graph.apply(kind, v.id, NoNode)}
}
