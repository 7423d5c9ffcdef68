/*
Package sqlite3adapter provides an implementation of the
Adapter interface in the sqltable package that works
over an SQLite3 database file.
*/
package sqlite3adapter

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/id3/dataset/sqltable"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file and a maximum number of open
connections (0 meaning no limit) and returns an Adapter that works on the
file's database or an error if it fails to open as an sqlite3 database.
*/
func New(path string, maxConns int) (sqltable.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database %s: %v", path, err)
	}
	db.SetMaxOpenConns(maxConns)
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) ColumnName(name string) (string, error) {
	if name == "id" {
		return "", fmt.Errorf(`'%s' is reserved and cannot be used as feature name`, name)
	}
	if name == "" {
		return "", fmt.Errorf("empty names cannot be used as feature name")
	}
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`feature name '%s' contains invalid character '"'`, name)
	}
	return fmt.Sprintf(`"%s"`, name), nil
}

func (a *adapter) Placeholder(int) string {
	return "?"
}

func (a *adapter) IDColumnDefinition() string {
	return "id INTEGER PRIMARY KEY AUTOINCREMENT"
}
