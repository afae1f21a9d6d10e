/*
Package text reads datasets from plain text where the values of each row are
separated by whitespace, one row per line.
*/
package text

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
)

/*
Read takes an io.Reader and a slice of features and returns a dataset.Dataset
with the rows read from it or an error.

The first non-blank line is taken as the header with the names of the
columns, the last one being the label. Every following non-blank line is a
row whose values are split on whitespace. Values are parsed as described on
dataset.FromRecords.
*/
func Read(r io.Reader, features []feature.Feature) (*dataset.Dataset, error) {
	scanner := bufio.NewScanner(r)
	var header []string
	records := [][]string{}
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		if header == nil {
			header = tokens
			continue
		}
		records = append(records, tokens)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dataset: %v", err)
	}
	if header == nil {
		return nil, fmt.Errorf("%w: no header", dataset.ErrMalformedDataset)
	}
	return dataset.FromRecords(header, records, features)
}
