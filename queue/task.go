package queue

import (
	"fmt"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/tree"
)

// Task represents a tree.Node to be developed
// on a tree.Tree.
type Task struct {
	// The node to be developed. Developing it turns it
	// into a leaf or a decision node.
	Node *tree.Node
	// The training rows satisfying the queries
	// on the path from the root to the node.
	Rows []dataset.Row
	// The number of decision nodes above the node.
	Depth int
}

// NewTask returns a task to develop a new node at the given depth
// with the given rows.
func NewTask(rows []dataset.Row, depth int) *Task {
	return &Task{Node: &tree.Node{}, Rows: rows, Depth: depth}
}

func (t *Task) String() string {
	return fmt.Sprintf("{Task depth:%d rows:%d}", t.Depth, len(t.Rows))
}
