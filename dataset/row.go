package dataset

import (
	"fmt"
	"strings"
)

/*
Row represents a sample of a dataset: an ordered sequence of feature values,
float64 or string, terminated by its label.

Row implements feature.Sample.
*/
type Row []interface{}

/*
NewRow takes a variable number of values and returns a row with them, the
last one being the label.
*/
func NewRow(values ...interface{}) Row {
	return Row(values)
}

// ValueAt returns the value of the row on the given column.
func (r Row) ValueAt(column int) (interface{}, error) {
	if column < 0 || column >= len(r) {
		return nil, fmt.Errorf("column %d out of range for row with %d values", column, len(r))
	}
	return r[column], nil
}

/*
Label returns the textual form of the row's last value, which is how labels
are counted and compared.
*/
func (r Row) Label() string {
	if len(r) == 0 {
		return ""
	}
	if s, ok := r[len(r)-1].(string); ok {
		return s
	}
	return fmt.Sprintf("%v", r[len(r)-1])
}

func (r Row) String() string {
	values := make([]string, 0, len(r))
	for _, v := range r {
		values = append(values, fmt.Sprintf("%v", v))
	}
	return fmt.Sprintf("[%s]", strings.Join(values, " "))
}

/*
Without takes a slice of rows and an index and returns a new slice with every
row but the one at the index. The given slice is not modified.
*/
func Without(rows []Row, i int) []Row {
	if i < 0 || i >= len(rows) {
		return append([]Row(nil), rows...)
	}
	result := make([]Row, 0, len(rows)-1)
	result = append(result, rows[:i]...)
	return append(result, rows[i+1:]...)
}
