package autodiff

import (
	"encoding/json"
	"fmt"
	"io"
)

// NodeRecord is the serializable form of one node.
type NodeRecord struct {
	ID       NodeID   `json:"id"`
	Op       string   `json:"op"`
	Data     float64  `json:"data"`
	Grad     float64  `json:"grad"`
	Operands []NodeID `json:"operands,omitempty"`
}

// Snapshot is a debugging dump of the subgraph reachable from Root,
// with nodes listed in topological order.
type Snapshot struct {
	Root  NodeID       `json:"root"`
	Nodes []NodeRecord `json:"nodes"`
}

// Snapshot captures the current values and gradients of root's closure.
func (g *Graph) Snapshot(root NodeID) Snapshot {
	order := g.TopoOrder(root)
	records := make([]NodeRecord, len(order))

	for i, id := range order {
		n := g.nodes[id]
		rec := NodeRecord{
			ID:   id,
			Op:   n.op.String(),
			Data: n.value,
			Grad: n.grad,
		}
		if n.lhs != NoNode {
			rec.Operands = append(rec.Operands, n.lhs)
		}
		if n.rhs != NoNode {
			rec.Operands = append(rec.Operands, n.rhs)
		}
		records[i] = rec
	}

	return Snapshot{Root: root, Nodes: records}
}

// WriteJSON writes the snapshot as indented JSON.
//
// JSON has no encoding for NaN or ±Inf, so a graph contaminated by a
// floating-point domain condition returns an error here.
func (s Snapshot) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("autodiff: encode snapshot: %w", err)
	}
	return nil
}
