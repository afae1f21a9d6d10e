package tree

import (
	"math"

	"github.com/pbanos/sapling/dataset"
)

/*
Confidence takes the label counts of a leaf and returns the percentage of
rows carrying each label, rounded to 2 decimals. A single label yields 100,
empty counts yield an empty map.
*/
func Confidence(counts dataset.LabelCounts) map[string]float64 {
	result := make(map[string]float64, len(counts))
	total := counts.Total()
	if total == 0 {
		return result
	}
	for l, c := range counts {
		result[l] = math.Round(float64(c)/float64(total)*100*100) / 100
	}
	return result
}

/*
PredictedValue returns the most frequent label on the given counts and its
share of the total. Ties go to the label sorting first.
*/
func PredictedValue(counts dataset.LabelCounts) (value string, prob float64) {
	total := counts.Total()
	if total == 0 {
		return "", 0
	}
	best := -1
	for _, l := range counts.Labels() {
		if counts[l] > best {
			best = counts[l]
			value = l
		}
	}
	return value, float64(best) / float64(total)
}
