/*
Package sqlite3adapter provides an implementation of the
Adapter interface in the sqlset package that works
over an SQLite3 database file.
*/
package sqlite3adapter

import (
	"database/sql"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/pbanos/sapling/dataset/sqlset"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file and a maximum number of
connections and returns an Adapter that works on the file's database or an
error if it fails to open as an sqlite3 database. A maxConns of 0 or less
leaves the number of connections unlimited.
*/
func New(path string, maxConns int) (sqlset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}
	return &adapter{db}, nil
}

func (a *adapter) ColumnName(name string) (string, error) {
	return sqlset.QuotedName(name)
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) Close() error {
	return a.db.Close()
}
