package tree

import (
	"fmt"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
)

// NodeKind tells leaves and decision nodes apart.
type NodeKind int

const (
	// LeafNode is the kind of the terminal nodes of a tree.
	LeafNode NodeKind = iota
	// DecisionNode is the kind of the nodes that split samples between
	// two subtrees.
	DecisionNode
)

func (k NodeKind) String() string {
	switch k {
	case LeafNode:
		return "leaf"
	case DecisionNode:
		return "decision"
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

/*
Node is a node of the tree
*/
type Node struct {
	// Whether the node is a leaf or a decision node. Only the fields for
	// its kind are meaningful.
	Kind NodeKind
	// For leaves, the number of training rows reaching the node
	// for each label.
	Predictions dataset.LabelCounts
	// For decision nodes, the query samples are tested against
	// to choose a branch.
	Query feature.Query
	// For decision nodes, the subtree for samples satisfying the query.
	TrueBranch *Node
	// For decision nodes, the subtree for samples not satisfying the query.
	FalseBranch *Node
}

// NewLeaf takes the rows reaching a node and returns a leaf holding
// their label counts.
func NewLeaf(rows []dataset.Row) *Node {
	return &Node{Kind: LeafNode, Predictions: dataset.CountLabels(rows)}
}

// NewDecision returns a decision node for the given query and branches.
func NewDecision(q feature.Query, trueBranch, falseBranch *Node) *Node {
	return &Node{Kind: DecisionNode, Query: q, TrueBranch: trueBranch, FalseBranch: falseBranch}
}

/*
Classify takes a sample and descends from the node down to a leaf, choosing
on every decision node the branch for the outcome of its query on the
sample. It returns the label counts of the reached leaf or the error
performing a query.
*/
func (n *Node) Classify(s feature.Sample) (dataset.LabelCounts, error) {
	for {
		if n == nil {
			return nil, fmt.Errorf("cannot classify sample on nil node")
		}
		switch n.Kind {
		case LeafNode:
			return n.Predictions, nil
		case DecisionNode:
			ok, err := n.Query.Perform(s)
			if err != nil {
				return nil, err
			}
			if ok {
				n = n.TrueBranch
			} else {
				n = n.FalseBranch
			}
		default:
			return nil, fmt.Errorf("cannot classify sample on node of kind %v", n.Kind)
		}
	}
}

func (n *Node) String() string {
	switch n.Kind {
	case LeafNode:
		return fmt.Sprintf("{Leaf %v}", n.Predictions)
	case DecisionNode:
		return fmt.Sprintf("{Decision %v}", n.Query)
	}
	return n.Kind.String()
}
