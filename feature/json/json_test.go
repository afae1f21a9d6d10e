package json

import (
	"testing"

	"github.com/pbanos/sapling/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	qe := NewQueryEncoder([]string{"radius", "color", "label"})

	b, err := qe.Encode(feature.NewQuery(1, feature.Equal, "red"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":"color","c":1,"op":"==","v":"red"}`, string(b))

	b, err = qe.Encode(feature.NewQuery(0, feature.Less, 2.5))
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":"radius","c":0,"op":"<","v":2.5}`, string(b))

	_, err = qe.Encode(feature.NewQuery(3, feature.Equal, "red"))
	assert.Error(t, err)
	_, err = qe.Encode(feature.NewQuery(1, feature.Equal, []string{"red"}))
	assert.Error(t, err)
}
