package json

import (
	"encoding/json"
	"fmt"

	featurejson "github.com/pbanos/sapling/feature/json"
	"github.com/pbanos/sapling/tree"
)

/*
NodeEncoder is an interface for objects
that allow encoding nodes into slices of
bytes.
*/
type NodeEncoder interface {

	//Encode receives a *tree.Node
	//and returns a slice of bytes with the node
	//and its subtrees encoded or an error if the
	//encoding could not be performed for some reason.
	Encode(*tree.Node) ([]byte, error)
}

type nodeEncoder struct {
	featurejson.QueryEncoder
}

type node struct {
	Kind        string             `json:"kind"`
	Query       *json.RawMessage   `json:"q,omitempty"`
	TrueBranch  *json.RawMessage   `json:"t,omitempty"`
	FalseBranch *json.RawMessage   `json:"f,omitempty"`
	Predictions map[string]int     `json:"pred,omitempty"`
	Confidence  map[string]float64 `json:"conf,omitempty"`
}

/*
NewNodeEncoder returns a NodeEncoder that uses the
given QueryEncoder to encode the decision nodes' queries.
*/
func NewNodeEncoder(qe featurejson.QueryEncoder) NodeEncoder {
	return &nodeEncoder{qe}
}

func (ne *nodeEncoder) Encode(n *tree.Node) ([]byte, error) {
	if n == nil {
		return nil, fmt.Errorf("encoding nil node")
	}
	jn := &node{Kind: n.Kind.String()}
	switch n.Kind {
	case tree.LeafNode:
		jn.Predictions = n.Predictions
		jn.Confidence = tree.Confidence(n.Predictions)
	case tree.DecisionNode:
		q, err := ne.QueryEncoder.Encode(n.Query)
		if err != nil {
			return nil, err
		}
		rq := json.RawMessage(q)
		jn.Query = &rq
		tb, err := ne.Encode(n.TrueBranch)
		if err != nil {
			return nil, err
		}
		rtb := json.RawMessage(tb)
		jn.TrueBranch = &rtb
		fb, err := ne.Encode(n.FalseBranch)
		if err != nil {
			return nil, err
		}
		rfb := json.RawMessage(fb)
		jn.FalseBranch = &rfb
	default:
		return nil, fmt.Errorf("encoding node of unknown kind %v", n.Kind)
	}
	return json.Marshal(jn)
}
