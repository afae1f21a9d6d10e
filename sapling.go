/*
Package sapling grows binary decision trees from labeled tabular data by
choosing at every node the equality query with the highest information gain,
and estimates their accuracy with leave-one-out cross-validation.
*/
package sapling

import (
	"context"
	"fmt"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/queue"
	"github.com/pbanos/sapling/tree"
)

// BranchOut takes a task and develops its node using the task's
// rows: the node becomes a decision node on the best split of the
// rows, or a leaf if there is none. It returns the tasks to develop
// the resulting children nodes or an error.
func BranchOut(task *queue.Task) ([]*queue.Task, error) {
	split, err := BestSplit(task.Rows)
	if err != nil {
		return nil, err
	}
	if split == nil {
		*task.Node = *tree.NewLeaf(task.Rows)
		return nil, nil
	}
	trueTask := queue.NewTask(split.Matched, task.Depth+1)
	falseTask := queue.NewTask(split.Unmatched, task.Depth+1)
	*task.Node = *tree.NewDecision(split.Query, trueTask.Node, falseTask.Node)
	return []*queue.Task{trueTask, falseTask}, nil
}

/*
BuildTree takes a context and a slice of rows and grows a tree from
them, returning its root node or an error.

Nodes are developed in breadth-first order through a queue.Queue,
so the depth of the tree is not bounded by the call stack. The context
is checked between nodes, returning its error if it is done.

An error wrapping dataset.ErrMalformedDataset is returned if the
rows do not all have the same number of values.
*/
func BuildTree(ctx context.Context, rows []dataset.Row) (*tree.Node, error) {
	err := checkRows(rows)
	if err != nil {
		return nil, err
	}
	q := queue.New()
	root := queue.NewTask(rows, 0)
	err = q.Push(ctx, root)
	if err != nil {
		return nil, err
	}
	for {
		task, err := q.Pull(ctx)
		if err != nil {
			return nil, err
		}
		if task == nil {
			break
		}
		tasks, err := BranchOut(task)
		if err != nil {
			return nil, err
		}
		for _, st := range tasks {
			err = q.Push(ctx, st)
			if err != nil {
				return nil, err
			}
		}
	}
	return root.Node, nil
}

// Grow takes a context and a dataset and returns the tree grown from the
// dataset's rows or an error.
func Grow(ctx context.Context, ds *dataset.Dataset) (*tree.Tree, error) {
	if ds == nil || len(ds.Header) == 0 {
		return nil, fmt.Errorf("%w: no header", dataset.ErrMalformedDataset)
	}
	if len(ds.Rows) > 0 && len(ds.Rows[0]) != len(ds.Header) {
		return nil, fmt.Errorf("%w: rows have %d values, header has %d columns", dataset.ErrMalformedDataset, len(ds.Rows[0]), len(ds.Header))
	}
	root, err := BuildTree(ctx, ds.Rows)
	if err != nil {
		return nil, err
	}
	return tree.New(root, ds.Header), nil
}

func checkRows(rows []dataset.Row) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: no rows to learn from", dataset.ErrMalformedDataset)
	}
	width := len(rows[0])
	if width == 0 {
		return fmt.Errorf("%w: rows have no label", dataset.ErrMalformedDataset)
	}
	for i, r := range rows {
		if len(r) != width {
			return fmt.Errorf("%w: row %d has %d values, expected %d", dataset.ErrMalformedDataset, i+1, len(r), width)
		}
	}
	return nil
}
