package dataset

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

/*
LabelCounts maps each label observed on a collection of rows to the number of
rows carrying it.
*/
type LabelCounts map[string]int

// CountLabels returns the LabelCounts of the given rows, counting each row by
// its last field.
func CountLabels(rows []Row) LabelCounts {
	counts := make(LabelCounts)
	for _, r := range rows {
		counts[r.Label()]++
	}
	return counts
}

// Total returns the number of rows counted.
func (lc LabelCounts) Total() int {
	var total int
	for _, c := range lc {
		total += c
	}
	return total
}

// Labels returns the counted labels sorted.
func (lc LabelCounts) Labels() []string {
	labels := make([]string, 0, len(lc))
	for l := range lc {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

/*
Entropy returns the Shannon entropy in bits of the labels of the given rows:
a measure of the disinformation we have on the label of a row taken from them.
It returns ErrEmptyInput for an empty slice of rows.
*/
func Entropy(rows []Row) (float64, error) {
	if len(rows) == 0 {
		return 0, fmt.Errorf("%w: entropy of zero rows", ErrEmptyInput)
	}
	counts := CountLabels(rows)
	n := float64(len(rows))
	probs := make([]float64, 0, len(counts))
	for _, l := range counts.Labels() {
		probs = append(probs, float64(counts[l])/n)
	}
	return stat.Entropy(probs) / math.Ln2, nil
}

/*
InformationGain takes the two sides of a split and the entropy of the rows
they were split from and returns the reduction in entropy achieved by the
split:

	parentEntropy - p x Entropy(left) - (1 - p) x Entropy(right)

with p being the fraction of rows on the left side. Both sides must hold
rows, ErrEmptyInput is returned otherwise.
*/
func InformationGain(left, right []Row, parentEntropy float64) (float64, error) {
	if len(left) == 0 || len(right) == 0 {
		return 0, fmt.Errorf("%w: information gain of a split with an empty side", ErrEmptyInput)
	}
	leftEntropy, err := Entropy(left)
	if err != nil {
		return 0, err
	}
	rightEntropy, err := Entropy(right)
	if err != nil {
		return 0, err
	}
	p := float64(len(left)) / float64(len(left)+len(right))
	return parentEntropy - p*leftEntropy - (1-p)*rightEntropy, nil
}
