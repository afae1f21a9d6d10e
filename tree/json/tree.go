/*
Package json renders trees as JSON documents.
*/
package json

import (
	"encoding/json"
	"io"

	featurejson "github.com/pbanos/sapling/feature/json"
	"github.com/pbanos/sapling/tree"
)

/*
Write takes an io.Writer and a pointer to a tree.Tree and serializes
the given tree as JSON onto the io.Writer.
A tree is serialized as a JSON object with the following fields:
  - "label": a string with the name of the label the tree predicts
  - "features": an array with the names of the columns of the training data
  - "root": the root node of the tree serialized by a NodeEncoder. Decision
    nodes hold their query on "q" and their branches on "t" and "f", leaves
    hold their label counts on "pred" and confidence percentages on "conf".

An error is returned if the tree cannot be serialized or written
onto the io.Writer.
*/
func Write(w io.Writer, t *tree.Tree) error {
	ne := NewNodeEncoder(featurejson.NewQueryEncoder(t.Header))
	root, err := ne.Encode(t.Root)
	if err != nil {
		return err
	}
	rr := json.RawMessage(root)
	jt := &struct {
		Label    string           `json:"label"`
		Features []string         `json:"features"`
		Root     *json.RawMessage `json:"root"`
	}{t.Label(), t.Header, &rr}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jt)
}
