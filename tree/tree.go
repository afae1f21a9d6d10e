package tree

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
)

// Tree represents a binary decision tree. It is composed of its
// root node and the names of the columns of the dataset it
// was grown from, the last one naming the label it predicts.
type Tree struct {
	Root   *Node
	Header []string
}

// New takes the root Node and the header of the training dataset and
// returns a tree.
func New(root *Node, header []string) *Tree {
	return &Tree{root, header}
}

// Classify takes a sample and returns the label counts of the leaf it
// reaches on the tree and an error if the classification could not be made.
func (t *Tree) Classify(s feature.Sample) (dataset.LabelCounts, error) {
	if t == nil {
		return nil, fmt.Errorf("nil tree cannot classify samples")
	}
	return t.Root.Classify(s)
}

// Label returns the name of the label the tree predicts.
func (t *Tree) Label() string {
	if len(t.Header) == 0 {
		return ""
	}
	return t.Header[len(t.Header)-1]
}

// Traverse takes a bottomup boolean and an error-returning
// function that takes a node and its depth as parameters,
// and goes through the tree running the function with every
// traversed node.
// Traverse will call the function with a parent node before
// calling it for its children if bottomup is false, and
// call it after its children if bottomup is true. The true
// branch is always traversed before the false one.
// If the call to the function returns an error, the traversing is
// aborted and the error is returned.
func (t *Tree) Traverse(bottomup bool, f func(n *Node, depth int) error) error {
	return traverse(t.Root, 0, bottomup, f)
}

func traverse(n *Node, depth int, bottomup bool, f func(*Node, int) error) error {
	if n == nil {
		return nil
	}
	var err error
	if !bottomup {
		err = f(n, depth)
		if err != nil {
			return err
		}
	}
	if n.Kind == DecisionNode {
		err = traverse(n.TrueBranch, depth+1, bottomup, f)
		if err != nil {
			return err
		}
		err = traverse(n.FalseBranch, depth+1, bottomup, f)
		if err != nil {
			return err
		}
	}
	if bottomup {
		err = f(n, depth)
	}
	return err
}

// Size returns the number of leaves and decision nodes of the tree.
func (t *Tree) Size() (leaves, decisions int) {
	t.Traverse(false, func(n *Node, _ int) error {
		if n.Kind == LeafNode {
			leaves++
		} else {
			decisions++
		}
		return nil
	})
	return
}

// Depth returns the number of decision nodes on the longest path from the
// root to a leaf.
func (t *Tree) Depth() int {
	var depth int
	t.Traverse(false, func(n *Node, d int) error {
		if d > depth {
			depth = d
		}
		return nil
	})
	return depth
}

/*
String renders the tree as text, one node per line. Decision nodes are
rendered as questions on the named feature followed by their true and false
branches indented, leaves as the confidence percentage for each label:

	Is size == small?
	|--> True:
	    Confidence(%) {yes: 100}
	|--> False:
	    Confidence(%) {no: 100}
*/
func (t *Tree) String() string {
	var b strings.Builder
	t.writeNode(&b, t.Root, "")
	return b.String()
}

func (t *Tree) writeNode(b *strings.Builder, n *Node, spacing string) {
	if n == nil {
		return
	}
	switch n.Kind {
	case LeafNode:
		fmt.Fprintf(b, "%sConfidence(%%) %s\n", spacing, FormatConfidence(Confidence(n.Predictions)))
	case DecisionNode:
		fmt.Fprintf(b, "%s%s\n", spacing, n.Query.Describe(t.Header))
		fmt.Fprintf(b, "%s|--> True:\n", spacing)
		t.writeNode(b, n.TrueBranch, spacing+"    ")
		fmt.Fprintf(b, "%s|--> False:\n", spacing)
		t.writeNode(b, n.FalseBranch, spacing+"    ")
	}
}

// FormatConfidence renders a confidence map with its labels sorted,
// e.g. "{no: 33.33, yes: 66.67}".
func FormatConfidence(confidence map[string]float64) string {
	labels := make([]string, 0, len(confidence))
	for l := range confidence {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, fmt.Sprintf("%s: %s", l, strconv.FormatFloat(confidence[l], 'f', -1, 64)))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
