package sapling

import (
	"context"
	"errors"
	"testing"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	assert.Equal(t, 1.0, Score(dataset.LabelCounts{"yes": 3}, "yes"))
	assert.Equal(t, 0.0, Score(dataset.LabelCounts{"yes": 3}, "no"))
	assert.Equal(t, 0.25, Score(dataset.LabelCounts{"yes": 1, "no": 3}, "yes"))
	assert.Equal(t, 0.0, Score(nil, "yes"))
}

func TestLeaveOneOutSizeColor(t *testing.T) {
	rows := sizeColorRows()
	original := append([]dataset.Row(nil), rows...)
	e, err := LeaveOneOut(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 1.0, e.Accuracy)
	assert.Equal(t, []float64{1, 1, 1, 1}, e.Scores)
	assert.Equal(t, 4, e.Hits)
	assert.Equal(t, original, rows, "leave-one-out must not modify its input")
}

func TestLeaveOneOutSoftScores(t *testing.T) {
	rows := []dataset.Row{
		dataset.NewRow("a", "yes"),
		dataset.NewRow("a", "no"),
		dataset.NewRow("a", "yes"),
	}
	e, err := LeaveOneOut(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0, 0.5}, e.Scores)
	assert.InDelta(t, 1.0/3, e.Accuracy, 1e-12)
	assert.Equal(t, 0, e.Hits)
}

func TestLeaveOneOutTooFewRows(t *testing.T) {
	_, err := LeaveOneOut(context.Background(), sizeColorRows()[:1])
	assert.True(t, errors.Is(err, dataset.ErrMalformedDataset))
	_, err = LeaveOneOut(context.Background(), nil)
	assert.True(t, errors.Is(err, dataset.ErrMalformedDataset))
}

func TestLeaveOneOutCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := LeaveOneOut(ctx, weatherRows())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTest(t *testing.T) {
	root, err := BuildTree(context.Background(), sizeColorRows())
	require.NoError(t, err)
	tr := tree.New(root, []string{"size", "color", "label"})
	e, err := Test(context.Background(), tr, []dataset.Row{
		dataset.NewRow("big", "green", "yes"),
		dataset.NewRow("small", "green", "yes"),
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, e.Scores)
	assert.Equal(t, 0.5, e.Accuracy)
	assert.Equal(t, 1, e.Hits)

	_, err = Test(context.Background(), tr, nil)
	assert.True(t, errors.Is(err, dataset.ErrEmptyInput))
}
