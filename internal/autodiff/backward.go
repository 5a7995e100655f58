package autodiff

import "github.com/born-ml/micrograd/internal/autodiff/ops"

// TopoOrder returns the nodes reachable from root in post-order: every node
// appears strictly after all of its transitive operands, and root is last.
//
// Nodes are tracked by id, never by value, so two distinct leaves holding
// the same number are both visited. The traversal uses an explicit stack and
// is O(V+E) in the size of the closure.
func (g *Graph) TopoOrder(root NodeID) []NodeID {
	g.check(root)

	type frame struct {
		id       NodeID
		expanded bool // Operands already pushed; emit on next pop
	}

	visited := make([]bool, len(g.nodes))
	order := make([]NodeID, 0, int(root)+1)
	stack := []frame{{id: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.expanded {
			order = append(order, f.id)
			continue
		}
		if visited[f.id] {
			continue
		}
		visited[f.id] = true

		stack = append(stack, frame{id: f.id, expanded: true})

		// Push rhs first so lhs is explored first.
		n := &g.nodes[f.id]
		if n.rhs != NoNode && !visited[n.rhs] {
			stack = append(stack, frame{id: n.rhs})
		}
		if n.lhs != NoNode && !visited[n.lhs] {
			stack = append(stack, frame{id: n.lhs})
		}
	}

	return order
}

// Backward computes d(root)/d(node) for every node reachable from root.
//
// Algorithm:
//  1. Build the topological order of root's operand closure
//  2. Seed root's gradient with 1.0
//  3. Walk the order in reverse, adding each node's local contributions
//     to its operands' gradients
//
// Contributions are always added, so a node feeding several consumers (or
// both slots of one consumer, as in x*x) receives their sum. Gradients left
// over from an earlier pass are not cleared.
func (g *Graph) Backward(root NodeID) {
	order := g.TopoOrder(root)

	g.nodes[root].grad = 1.0

	for i := len(order) - 1; i >= 0; i-- {
		n := g.nodes[order[i]]
		if n.op == ops.None {
			continue
		}

		a := g.nodes[n.lhs].value
		var b float64
		if n.rhs != NoNode {
			b = g.nodes[n.rhs].value
		}

		gradA, gradB := ops.Backward(n.op, a, b, n.grad)
		g.nodes[n.lhs].grad += gradA
		if n.op != ops.Pow && n.rhs != NoNode {
			g.nodes[n.rhs].grad += gradB
		}
	}
}
