package feature

import (
	"fmt"
	"strings"
)

/*
Sample is an interface for something a Query can be performed on.

Its ValueAt method returns the value the sample holds on the given column.
*/
type Sample interface {
	ValueAt(column int) (interface{}, error)
}

// Operator is the comparison a Query applies between a sample's value and
// its threshold.
type Operator string

const (
	// Equal is satisfied by values equal to the threshold. It accepts values of
	// any type.
	Equal Operator = "=="
	// Less is satisfied by numeric values lower than the threshold.
	Less Operator = "<"
	// Greater is satisfied by numeric values greater than the threshold.
	Greater Operator = ">"
	// LessOrEqual is satisfied by numeric values lower than or equal to the threshold.
	LessOrEqual Operator = "<="
	// GreaterOrEqual is satisfied by numeric values greater than or equal to the threshold.
	GreaterOrEqual Operator = ">="
)

// ComparisonError represents an error related with comparing values
type ComparisonError string

/*
ErrInvalidComparison is the error returned when an ordering operator is applied
on values that are not totally ordered, such as textual values.
*/
const ErrInvalidComparison = ComparisonError("invalid comparison")

/*
ErrUnknownOperator is the error returned when parsing or applying an operator
that is not one of the supported ones.
*/
const ErrUnknownOperator = ComparisonError("unknown operator")

func (ce ComparisonError) Error() string {
	return string(ce)
}

/*
ParseOperator takes a string and returns the Operator it represents. Besides
the canonical forms, "=", "≤" and "≥" are accepted.
*/
func ParseOperator(s string) (Operator, error) {
	switch strings.TrimSpace(s) {
	case "==", "=":
		return Equal, nil
	case "<":
		return Less, nil
	case ">":
		return Greater, nil
	case "<=", "≤":
		return LessOrEqual, nil
	case ">=", "≥":
		return GreaterOrEqual, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownOperator, s)
}

// Ordering returns whether the operator requires totally ordered values.
func (o Operator) Ordering() bool {
	return o == Less || o == Greater || o == LessOrEqual || o == GreaterOrEqual
}

/*
Compare takes a value and a threshold and returns the result of applying the
operator to them in the form value <op> threshold.

Numeric values of different Go types are compared as float64. Ordering
operators return ErrInvalidComparison when either operand is not numeric.
*/
func (o Operator) Compare(value, threshold interface{}) (bool, error) {
	v, vNumeric := numeric(value)
	t, tNumeric := numeric(threshold)
	if o == Equal {
		if vNumeric && tNumeric {
			return v == t, nil
		}
		return value == threshold, nil
	}
	if !o.Ordering() {
		return false, fmt.Errorf("%w %q", ErrUnknownOperator, string(o))
	}
	if !vNumeric || !tNumeric {
		return false, fmt.Errorf("%w: cannot evaluate %v (%T) %s %v (%T)", ErrInvalidComparison, value, value, o, threshold, threshold)
	}
	switch o {
	case Less:
		return v < t, nil
	case Greater:
		return v > t, nil
	case LessOrEqual:
		return v <= t, nil
	default:
		return v >= t, nil
	}
}

/*
Query is a single-feature test: the comparison of the value on a column of a
sample against a threshold.
*/
type Query struct {
	Column    int
	Operator  Operator
	Threshold interface{}
}

// NewQuery returns a Query for the given column, operator and threshold.
func NewQuery(column int, op Operator, threshold interface{}) Query {
	return Query{Column: column, Operator: op, Threshold: threshold}
}

/*
Perform takes a sample and returns whether its value on the query's column
satisfies the query. Errors obtaining the value or comparing it are returned
as is.
*/
func (q Query) Perform(s Sample) (bool, error) {
	v, err := s.ValueAt(q.Column)
	if err != nil {
		return false, err
	}
	ok, err := q.Operator.Compare(v, q.Threshold)
	if err != nil {
		return false, fmt.Errorf("column %d: %w", q.Column, err)
	}
	return ok, nil
}

func (q Query) String() string {
	return fmt.Sprintf("column %d %s %v", q.Column, q.Operator, q.Threshold)
}

/*
Describe takes the names of the columns of a dataset and renders the query as
a question on the named feature, e.g. "Is color == red?".
*/
func (q Query) Describe(names []string) string {
	name := fmt.Sprintf("column %d", q.Column)
	if q.Column >= 0 && q.Column < len(names) {
		name = names[q.Column]
	}
	return fmt.Sprintf("Is %s %s %v?", name, q.Operator, q.Threshold)
}

func numeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}
