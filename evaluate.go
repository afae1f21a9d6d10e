package sapling

import (
	"context"
	"fmt"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/tree"
	"gonum.org/v1/gonum/floats"
)

/*
Evaluation holds the result of scoring the predictions of trees on labeled
rows: the score of each row, their mean and the number of rows whose label
is the most frequent on the leaf they reached.
*/
type Evaluation struct {
	Scores   []float64
	Accuracy float64
	Hits     int
}

func (e *Evaluation) String() string {
	return fmt.Sprintf("{Evaluation rows:%d accuracy:%v hits:%d}", len(e.Scores), e.Accuracy, e.Hits)
}

/*
Score takes the label counts of a leaf and the true label of a row that
reached it and returns the share of the counts carrying the true label: 1 or
0 for leaves with a single label, a value in between otherwise.
*/
func Score(counts dataset.LabelCounts, label string) float64 {
	total := counts.Total()
	if total == 0 {
		return 0
	}
	return float64(counts[label]) / float64(total)
}

/*
LeaveOneOut takes a context and a slice of rows and estimates the accuracy
of the trees grown from them. For every row, a tree is grown from all the
other rows and the row is classified with it and scored with Score. The
given slice is never modified.

At least 2 rows are required, an error wrapping dataset.ErrMalformedDataset
is returned otherwise. The context is checked between folds.
*/
func LeaveOneOut(ctx context.Context, rows []dataset.Row) (*Evaluation, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: leave-one-out needs at least 2 rows, got %d", dataset.ErrMalformedDataset, len(rows))
	}
	err := checkRows(rows)
	if err != nil {
		return nil, err
	}
	e := &Evaluation{Scores: make([]float64, 0, len(rows))}
	for i, r := range rows {
		err = ctx.Err()
		if err != nil {
			return nil, err
		}
		root, err := BuildTree(ctx, dataset.Without(rows, i))
		if err != nil {
			return nil, fmt.Errorf("growing tree without row %d: %w", i+1, err)
		}
		counts, err := root.Classify(r)
		if err != nil {
			return nil, fmt.Errorf("classifying row %d: %w", i+1, err)
		}
		e.add(counts, r.Label())
	}
	e.Accuracy = floats.Sum(e.Scores) / float64(len(e.Scores))
	return e, nil
}

/*
Test takes a context, a tree and a slice of labeled rows not used to grow it
and returns the Evaluation of the tree's predictions for them. An error
wrapping dataset.ErrEmptyInput is returned if there are no rows, and errors
classifying a row are returned as is.
*/
func Test(ctx context.Context, t *tree.Tree, rows []dataset.Row) (*Evaluation, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows to test the tree with", dataset.ErrEmptyInput)
	}
	e := &Evaluation{Scores: make([]float64, 0, len(rows))}
	for i, r := range rows {
		err := ctx.Err()
		if err != nil {
			return nil, err
		}
		counts, err := t.Classify(r)
		if err != nil {
			return nil, fmt.Errorf("classifying row %d: %w", i+1, err)
		}
		e.add(counts, r.Label())
	}
	e.Accuracy = floats.Sum(e.Scores) / float64(len(e.Scores))
	return e, nil
}

func (e *Evaluation) add(counts dataset.LabelCounts, label string) {
	e.Scores = append(e.Scores, Score(counts, label))
	if predicted, _ := tree.PredictedValue(counts); predicted == label {
		e.Hits++
	}
}
