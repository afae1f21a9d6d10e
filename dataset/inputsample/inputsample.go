/*
Package inputsample provides an implementation of feature.Sample whose values
are read from an io.Reader.
*/
package inputsample

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pbanos/sapling/feature"
)

/*
readSample represents a sample whose feature values
are retrieved from a reader. A feature value will be
requested using a FeatureValueRequester before reading it.
*/
type readSample struct {
	obtainedValues        map[int]interface{}
	scanner               *bufio.Scanner
	featureValueRequester FeatureValueRequester
	features              []feature.Feature
}

/*
FeatureValueRequester represents a way to ask
for feature values and reject the given values.
*/
type FeatureValueRequester interface {
	RequestValueFor(feature.Feature) error
	RejectValueFor(f feature.Feature, value string, reason error) error
}

/*
New takes an io.Reader, a slice of features aligned with the columns of a
dataset and a FeatureValueRequester and returns a feature.Sample.

The returned Sample ValueAt method reads the value for a column only the first
time it is asked for, first requesting it with the given FeatureValueRequester
and then parsing it from the reader with the column's feature. Queries on a
tree thus only ask for the values on the path the sample takes.

The parsing expects each value to be presented ending with the
'\n' character, that is in new lines. Lines are read until one holds a value
the feature accepts; the others are rejected with the FeatureValueRequester's
RejectValueFor method.

Attempting to obtain a value for a column without a feature, or for the last
column (the label), returns an error.
*/
func New(r io.Reader, features []feature.Feature, featureValueRequester FeatureValueRequester) feature.Sample {
	scanner := bufio.NewScanner(r)
	return &readSample{make(map[int]interface{}), scanner, featureValueRequester, features}
}

func (rs *readSample) ValueAt(column int) (interface{}, error) {
	value, ok := rs.obtainedValues[column]
	if ok {
		return value, nil
	}
	if column < 0 || column >= len(rs.features)-1 {
		return nil, fmt.Errorf("have no information about column %d, do not know how to read its value", column)
	}
	f := rs.features[column]
	err := rs.featureValueRequester.RequestValueFor(f)
	if err != nil {
		return nil, err
	}
	for rs.scanner.Scan() {
		line := strings.TrimSpace(rs.scanner.Text())
		value, perr := f.Parse(line)
		if perr == nil {
			rs.obtainedValues[column] = value
			return value, nil
		}
		err = rs.featureValueRequester.RejectValueFor(f, line, perr)
		if err != nil {
			return nil, err
		}
	}
	err = rs.scanner.Err()
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("EOF when requesting value for %s", f.Name())
}
