/*
Package csv reads and writes datasets as comma-separated values.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
)

/*
Read takes an io.Reader for a CSV stream and a slice of features and returns
a dataset.Dataset with the rows parsed from the reader or an error.

The header or first row of the CSV content is expected to consist of the names
of the columns, the last one being the label. Columns named after one of the
given features are parsed with it, the rest are inferred as described on
dataset.FromRecords.
*/
func Read(reader io.Reader, features []feature.Feature) (*dataset.Dataset, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: no header", dataset.ErrMalformedDataset)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	records := [][]string{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		records = append(records, record)
	}
	return dataset.FromRecords(header, records, features)
}

/*
Write takes an io.Writer, a header and a slice of rows and dumps the rows
to the writer in CSV format preceded by the header. It returns an error if
something went wrong when writing.
*/
func Write(writer io.Writer, header []string, rows []dataset.Row) error {
	w := csv.NewWriter(writer)
	err := w.Write(header)
	if err != nil {
		return fmt.Errorf("writing CSV header: %v", err)
	}
	for i, r := range rows {
		record := make([]string, len(r))
		for j, v := range r {
			record[j] = token(v)
		}
		err = w.Write(record)
		if err != nil {
			return fmt.Errorf("writing CSV row %d: %v", i+1, err)
		}
	}
	w.Flush()
	return w.Error()
}

func token(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}
