package csv

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pbanos/sapling/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ballsCSV = `radius,color,label
7.0,green,tennis
1.5, white,golf
7.2,yellow,tennis
`

func TestRead(t *testing.T) {
	ds, err := Read(strings.NewReader(ballsCSV), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"radius", "color", "label"}, ds.Header)
	require.Len(t, ds.Rows, 3)
	assert.Equal(t, dataset.NewRow(1.5, "white", "golf"), ds.Rows[1])
}

func TestReadMalformed(t *testing.T) {
	_, err := Read(strings.NewReader("a,label\nx,y\nz\n"), nil)
	assert.True(t, errors.Is(err, dataset.ErrMalformedDataset))

	_, err = Read(strings.NewReader(""), nil)
	assert.True(t, errors.Is(err, dataset.ErrMalformedDataset))

	_, err = Read(strings.NewReader("a,label\n"), nil)
	assert.True(t, errors.Is(err, dataset.ErrMalformedDataset))
}

func TestWriteThenRead(t *testing.T) {
	ds, err := Read(strings.NewReader(ballsCSV), nil)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ds.Header, ds.Rows[:2]))
	assert.Equal(t, "radius,color,label\n7,green,tennis\n1.5,white,golf\n", buf.String())
}
