/*
Package pgadapter provides an implementation of the
Adapter interface in the sqltable package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/id3/dataset/sqltable"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and a maximum number of open
connections (0 meaning no limit) and returns an Adapter that works on the
database or an error if it fails to connect to it.
*/
func New(url string, maxConns int) (sqltable.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("opening postgres database: %v", err)
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

func (a *adapter) Placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

func (a *adapter) IDColumnDefinition() string {
	return "id SERIAL PRIMARY KEY"
}
