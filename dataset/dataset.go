package dataset

import (
	"fmt"
	"strconv"

	"github.com/pbanos/sapling/feature"
)

// DatasetError represents an error related with the contents of a dataset
// or a collection of rows.
type DatasetError string

/*
ErrMalformedDataset is the error returned when rows have unequal lengths, do
not match the header, or there are not enough rows to learn from.
*/
const ErrMalformedDataset = DatasetError("malformed dataset")

/*
ErrEmptyInput is the error returned when computing entropy, information gain
or a split over an empty collection of rows.
*/
const ErrEmptyInput = DatasetError("empty input")

func (de DatasetError) Error() string {
	return string(de)
}

/*
Dataset represents a labeled tabular dataset: a header with the name of each
column, the last one naming the label, and the rows of data.

Features holds a feature.Feature for each column, aligned with the header.
*/
type Dataset struct {
	Header   []string
	Rows     []Row
	Features []feature.Feature
}

/*
New takes a header and a slice of rows and returns a Dataset built with them
or an error wrapping ErrMalformedDataset if the header is empty, there are no
rows, or a row does not have a value for every column of the header.

Features for the columns are inferred from the values in them: a column whose
values are all numeric yields a feature.ContinuousFeature, otherwise a
feature.DiscreteFeature with the observed values is used.
*/
func New(header []string, rows []Row) (*Dataset, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("%w: empty header", ErrMalformedDataset)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows after the header", ErrMalformedDataset)
	}
	for i, r := range rows {
		if len(r) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d values, header has %d columns", ErrMalformedDataset, i+1, len(r), len(header))
		}
	}
	ds := &Dataset{Header: header, Rows: rows}
	ds.Features = inferFeatures(header, rows)
	return ds, nil
}

/*
FromRecords takes a header, a slice of records of textual tokens and a slice
of features and returns a Dataset with the tokens parsed into values or an
error.

Tokens on a column whose header name matches one of the given features are
parsed by that feature. Tokens on other columns are parsed as float64 when
every token in the column is a number, and kept as strings otherwise.
*/
func FromRecords(header []string, records [][]string, features []feature.Feature) (*Dataset, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("%w: empty header", ErrMalformedDataset)
	}
	for i, rec := range records {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("%w: record %d has %d values, header has %d columns", ErrMalformedDataset, i+1, len(rec), len(header))
		}
	}
	featuresByName := make(map[string]feature.Feature)
	for _, f := range features {
		featuresByName[f.Name()] = f
	}
	declared := make([]feature.Feature, len(header))
	for c, name := range header {
		f, ok := featuresByName[name]
		if !ok {
			f = inferTokenFeature(name, records, c)
		}
		declared[c] = f
	}
	rows := make([]Row, 0, len(records))
	for i, rec := range records {
		row := make(Row, len(rec))
		for c, token := range rec {
			v, err := declared[c].Parse(token)
			if err != nil {
				return nil, fmt.Errorf("parsing record %d: %v", i+1, err)
			}
			row[c] = v
		}
		rows = append(rows, row)
	}
	ds, err := New(header, rows)
	if err != nil {
		return nil, err
	}
	ds.Features = declared
	return ds, nil
}

// Label returns the name of the label column.
func (ds *Dataset) Label() string {
	return ds.Header[len(ds.Header)-1]
}

// Count returns the number of rows in the dataset.
func (ds *Dataset) Count() int {
	return len(ds.Rows)
}

func (ds *Dataset) String() string {
	return fmt.Sprintf("[ %d rows x %d columns ]", len(ds.Rows), len(ds.Header))
}

func inferTokenFeature(name string, records [][]string, column int) feature.Feature {
	numeric := len(records) > 0
	for _, rec := range records {
		if _, err := strconv.ParseFloat(rec[column], 64); err != nil {
			numeric = false
			break
		}
	}
	if numeric {
		return feature.NewContinuousFeature(name)
	}
	values := []string{}
	encountered := make(map[string]bool)
	for _, rec := range records {
		if !encountered[rec[column]] {
			encountered[rec[column]] = true
			values = append(values, rec[column])
		}
	}
	return feature.NewDiscreteFeature(name, values)
}

func inferFeatures(header []string, rows []Row) []feature.Feature {
	features := make([]feature.Feature, 0, len(header))
	for c, name := range header {
		numeric := true
		for _, r := range rows {
			if _, ok := r[c].(float64); !ok {
				numeric = false
				break
			}
		}
		if numeric {
			features = append(features, feature.NewContinuousFeature(name))
			continue
		}
		values := []string{}
		encountered := make(map[string]bool)
		for _, r := range rows {
			vString := fmt.Sprintf("%v", r[c])
			if !encountered[vString] {
				encountered[vString] = true
				values = append(values, vString)
			}
		}
		features = append(features, feature.NewDiscreteFeature(name, values))
	}
	return features
}
