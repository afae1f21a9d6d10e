package dataset

import (
	"errors"
	"testing"

	"github.com/pbanos/sapling/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizeColorRows() []Row {
	return []Row{
		NewRow("big", "red", "yes"),
		NewRow("big", "blue", "yes"),
		NewRow("small", "red", "no"),
		NewRow("small", "blue", "no"),
	}
}

func TestNew(t *testing.T) {
	ds, err := New([]string{"size", "weight", "label"}, []Row{
		NewRow("big", 3.0, "yes"),
		NewRow("small", 1.5, "no"),
	})
	require.NoError(t, err)
	assert.Equal(t, "label", ds.Label())
	assert.Equal(t, 2, ds.Count())
	require.Len(t, ds.Features, 3)
	assert.IsType(t, &feature.DiscreteFeature{}, ds.Features[0])
	assert.IsType(t, &feature.ContinuousFeature{}, ds.Features[1])
	assert.Equal(t, []string{"yes", "no"}, ds.Features[2].(*feature.DiscreteFeature).AvailableValues())
}

func TestNewMalformed(t *testing.T) {
	cases := []struct {
		name   string
		header []string
		rows   []Row
	}{
		{"empty header", nil, sizeColorRows()},
		{"no rows", []string{"size", "color", "label"}, nil},
		{"short row", []string{"size", "color", "label"}, []Row{NewRow("big", "red", "yes"), NewRow("small", "no")}},
		{"long row", []string{"size", "label"}, []Row{NewRow("big", "red", "yes")}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.header, c.rows)
			assert.True(t, errors.Is(err, ErrMalformedDataset), "expected ErrMalformedDataset, got %v", err)
		})
	}
}

func TestFromRecords(t *testing.T) {
	header := []string{"radius", "color", "label"}
	records := [][]string{
		{"7.0", "green", "tennis"},
		{"3", "white", "golf"},
	}
	ds, err := FromRecords(header, records, nil)
	require.NoError(t, err)
	assert.Equal(t, NewRow(7.0, "green", "tennis"), ds.Rows[0])
	assert.Equal(t, NewRow(3.0, "white", "golf"), ds.Rows[1])
	assert.IsType(t, &feature.ContinuousFeature{}, ds.Features[0])
}

func TestFromRecordsWithFeatures(t *testing.T) {
	header := []string{"radius", "label"}
	records := [][]string{{"7", "1"}, {"3", "0"}}
	features := []feature.Feature{feature.NewDiscreteFeature("radius", []string{"3", "7"})}
	ds, err := FromRecords(header, records, features)
	require.NoError(t, err)
	assert.Equal(t, NewRow("7", 1.0), ds.Rows[0])
	assert.Equal(t, "1", ds.Rows[0].Label())

	features = []feature.Feature{feature.NewDiscreteFeature("radius", []string{"3"})}
	_, err = FromRecords(header, records, features)
	assert.Error(t, err)
}

func TestFromRecordsMalformed(t *testing.T) {
	_, err := FromRecords([]string{"a", "label"}, [][]string{{"x", "y"}, {"x"}}, nil)
	assert.True(t, errors.Is(err, ErrMalformedDataset))
	_, err = FromRecords([]string{"a", "label"}, nil, nil)
	assert.True(t, errors.Is(err, ErrMalformedDataset))
}

func TestRowValueAt(t *testing.T) {
	r := NewRow("big", 2.0, "yes")
	v, err := r.ValueAt(1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	_, err = r.ValueAt(3)
	assert.Error(t, err)
	assert.Equal(t, "yes", r.Label())
	assert.Equal(t, "1", NewRow("a", 1.0).Label())
}

func TestWithout(t *testing.T) {
	rows := sizeColorRows()
	rest := Without(rows, 1)
	assert.Equal(t, []Row{rows[0], rows[2], rows[3]}, rest)
	assert.Len(t, rows, 4, "input rows must not be modified")
	assert.Equal(t, NewRow("big", "blue", "yes"), rows[1])
	assert.Equal(t, rows[1:], Without(rows, 0))
	assert.Equal(t, rows[:3], Without(rows, 3))
}
