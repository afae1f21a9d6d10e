package sapling

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
)

/*
Split represents a partition of a collection of rows according to a query
into the rows matching it and the rest, with the information gain it
achieves to predict the label.
*/
type Split struct {
	Query           feature.Query
	Matched         []dataset.Row
	Unmatched       []dataset.Row
	InformationGain float64
}

func (s *Split) String() string {
	return fmt.Sprintf("{Split %v gain:%v matched:%d unmatched:%d}", s.Query, s.InformationGain, len(s.Matched), len(s.Unmatched))
}

/*
BestSplit takes a slice of rows and returns the split with the highest
information gain among the equality queries on every value observed on every
column but the label, or nil if no split has a gain above 0.

Columns are evaluated in ascending order and values in the order they are
first observed. Candidates leaving one side empty are discarded. Among
candidates with the same gain the last one evaluated wins.

An error wrapping dataset.ErrEmptyInput is returned for an empty slice of
rows, and errors performing a candidate query are returned as is.
*/
func BestSplit(rows []dataset.Row) (*Split, error) {
	parentEntropy, err := dataset.Entropy(rows)
	if err != nil {
		return nil, err
	}
	var best *Split
	var bestGain float64
	for column := 0; column < len(rows[0])-1; column++ {
		for _, value := range distinctValues(rows, column) {
			q := feature.NewQuery(column, feature.Equal, value)
			matched, unmatched, err := dataset.Partition(rows, q)
			if err != nil {
				return nil, err
			}
			if len(matched) == 0 || len(unmatched) == 0 {
				continue
			}
			gain, err := dataset.InformationGain(matched, unmatched, parentEntropy)
			if err != nil {
				return nil, err
			}
			if gain >= bestGain {
				bestGain = gain
				best = &Split{Query: q, Matched: matched, Unmatched: unmatched, InformationGain: gain}
			}
		}
	}
	if bestGain <= 0 {
		return nil, nil
	}
	return best, nil
}

/*
BestQuery takes a slice of rows and returns the information gain and query
of their best split as chosen by BestSplit, or 0 and a nil query if there is
none.
*/
func BestQuery(rows []dataset.Row) (float64, *feature.Query, error) {
	s, err := BestSplit(rows)
	if err != nil || s == nil {
		return 0, nil, err
	}
	q := s.Query
	return s.InformationGain, &q, nil
}

func distinctValues(rows []dataset.Row, column int) []interface{} {
	values := linkedhashset.New()
	for _, r := range rows {
		values.Add(r[column])
	}
	return values.Values()
}
