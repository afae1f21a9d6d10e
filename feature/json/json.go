/*
Package json provides encoding of feature.Query values as JSON objects.
*/
package json

import (
	"encoding/json"
	"fmt"

	"github.com/pbanos/sapling/feature"
)

/*
QueryEncoder is an interface for objects that allow encoding
queries into slices of bytes.
*/
type QueryEncoder interface {

	//Encode receives a feature.Query
	//and returns a slice of bytes with the query
	//encoded or an error if the encoding could not
	//be performed for some reason.
	Encode(feature.Query) ([]byte, error)
}

type jsonQueryEncoder []string

type jsonQuery struct {
	Feature   string      `json:"f"`
	Column    int         `json:"c"`
	Operator  string      `json:"op"`
	Threshold interface{} `json:"v"`
}

// NewQueryEncoder takes the names of the columns of a dataset
// and returns a QueryEncoder that marshals queries as JSON.
// Specifically, queries are encoded as a JSON object with
//  * an "f" property set to the name of the queried feature
//  * a "c" property with the queried column index
//  * an "op" property with the operator ("==", "<", ">", "<=" or ">=")
//  * a "v" property with the threshold, a string or a number
func NewQueryEncoder(names []string) QueryEncoder {
	return jsonQueryEncoder(names)
}

func (jqe jsonQueryEncoder) Encode(q feature.Query) ([]byte, error) {
	if q.Column < 0 || q.Column >= len(jqe) {
		return nil, fmt.Errorf("encoding query %v: column %d has no name", q, q.Column)
	}
	switch q.Threshold.(type) {
	case string, float64, float32, int, int32, int64:
	default:
		return nil, fmt.Errorf("encoding query %v: unsupported threshold type %T", q, q.Threshold)
	}
	return json.Marshal(&jsonQuery{
		Feature:   jqe[q.Column],
		Column:    q.Column,
		Operator:  string(q.Operator),
		Threshold: q.Threshold,
	})
}
