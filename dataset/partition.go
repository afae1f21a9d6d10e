package dataset

import "github.com/pbanos/sapling/feature"

/*
Partition takes a slice of rows and a query and splits the rows into those
that satisfy the query and those that do not, preserving their relative
order. Every row ends up in exactly one of the two slices.

An error performing the query on a row is returned as is, along with nil
slices.
*/
func Partition(rows []Row, q feature.Query) (matched, unmatched []Row, err error) {
	for _, r := range rows {
		ok, err := q.Perform(r)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			matched = append(matched, r)
		} else {
			unmatched = append(unmatched, r)
		}
	}
	return matched, unmatched, nil
}
