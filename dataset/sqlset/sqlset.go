package sqlset

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
)

/*
Adapter is an interface providing the methods
needed to read a dataset from a database backend.
*/
type Adapter interface {
	// ColumnName takes the name of a table or column and returns it
	// quoted for use on a statement, or an error if it is not valid.
	ColumnName(string) (string, error)
	// DB returns the database handle the adapter works on.
	DB() *sql.DB
	// Close releases the database handle.
	Close() error
}

// reservedColumn holds the name of the column identifying rows on a table.
const reservedColumn = "id"

/*
Read takes a context, an Adapter, the name of a table, the name of its label
column and a slice of features and returns a dataset.Dataset with the table's
rows or an error.

An empty label takes the last column of the table as label. A NULL value on
any cell makes the dataset malformed.
*/
func Read(ctx context.Context, a Adapter, table, label string, features []feature.Feature) (*dataset.Dataset, error) {
	tableName, err := a.ColumnName(table)
	if err != nil {
		return nil, err
	}
	rows, err := a.DB().QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s", tableName))
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %v", table, err)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("listing columns of table %s: %v", table, err)
	}
	order, err := columnOrder(columns, label)
	if err != nil {
		return nil, err
	}
	header := make([]string, len(order))
	for i, c := range order {
		header[i] = columns[c]
	}
	records := [][]string{}
	cells := make([]interface{}, len(columns))
	pointers := make([]interface{}, len(columns))
	for i := range cells {
		pointers[i] = &cells[i]
	}
	for rows.Next() {
		err = rows.Scan(pointers...)
		if err != nil {
			return nil, fmt.Errorf("scanning row %d of table %s: %v", len(records)+1, table, err)
		}
		record := make([]string, len(order))
		for i, c := range order {
			record[i], err = token(cells[c])
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %s: %v", dataset.ErrMalformedDataset, len(records)+1, columns[c], err)
			}
		}
		records = append(records, record)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("reading table %s: %v", table, err)
	}
	return dataset.FromRecords(header, records, features)
}

// columnOrder returns the indexes of the columns to read, the label's last.
func columnOrder(columns []string, label string) ([]int, error) {
	order := []int{}
	labelIndex := -1
	for i, c := range columns {
		if c == reservedColumn {
			continue
		}
		if c == label {
			labelIndex = i
			continue
		}
		order = append(order, i)
	}
	if label == "" {
		return order, nil
	}
	if labelIndex < 0 {
		return nil, fmt.Errorf("label column %s not found among %s", label, strings.Join(columns, ", "))
	}
	return append(order, labelIndex), nil
}

func token(cell interface{}) (string, error) {
	switch v := cell.(type) {
	case nil:
		return "", fmt.Errorf("NULL value")
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	}
	return fmt.Sprintf("%v", cell), nil
}

/*
QuotedName takes the name of a table or column and returns it between
double quotes, which both SQLite3 and PostgreSQL accept, or an error if
the name is empty or contains a double quote.
*/
func QuotedName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty name is not a valid identifier")
	}
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`name '%s' contains invalid character '"'`, name)
	}
	return `"` + name + `"`, nil
}
