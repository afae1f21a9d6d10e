package sqlset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnOrder(t *testing.T) {
	columns := []string{"id", "label", "radius", "color"}

	order, err := columnOrder(columns, "label")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1}, order)

	order, err = columnOrder(columns, "")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, order)

	_, err = columnOrder(columns, "class")
	assert.Error(t, err)
}

func TestToken(t *testing.T) {
	cases := []struct {
		cell     interface{}
		expected string
	}{
		{"red", "red"},
		{[]byte("blue"), "blue"},
		{int64(42), "42"},
		{7.25, "7.25"},
		{true, "true"},
	}
	for _, c := range cases {
		tk, err := token(c.cell)
		require.NoError(t, err)
		assert.Equal(t, c.expected, tk)
	}
	_, err := token(nil)
	assert.Error(t, err)
}

func TestQuotedName(t *testing.T) {
	q, err := QuotedName("balls")
	require.NoError(t, err)
	assert.Equal(t, `"balls"`, q)

	_, err = QuotedName(`balls"; DROP TABLE balls; --`)
	assert.Error(t, err)
	_, err = QuotedName("")
	assert.Error(t, err)
}
