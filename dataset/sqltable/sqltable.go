package sqltable

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"

	"github.com/pbanos/id3/dataset"
)

const (
	// DefaultTableName is the table samples are read from and written to
	// when no other is given
	DefaultTableName = "samples"

	// MaxSampleInsertionsPerStatement is the maximum number
	// of rows that are added with a single insert command by
	// WriteTable. Writing more will result in making more
	// insertion commands
	MaxSampleInsertionsPerStatement = 10

	reservedColumn = "id"
)

/*
Adapter is an interface for the database-specific parts of reading and
writing tables.

Its DB method returns the database handle to run statements on.

Its ColumnName method takes a feature or table name and returns the quoted
identifier to use for it on statements, or an error if the name cannot be
used.

Its Placeholder method takes the 1-based position of an argument on a
statement and returns the placeholder for it.

Its IDColumnDefinition method returns the definition of the "id" column
created along the feature columns: an auto-incremented primary key that
keeps the order in which rows were inserted.
*/
type Adapter interface {
	DB() *sql.DB
	ColumnName(name string) (string, error)
	Placeholder(n int) string
	IDColumnDefinition() string
}

/*
ReadTable takes a context, an Adapter and a table name and returns a
dataset.Table with the header being the columns of the database table (but
"id") and a row for every database row. If the table has an "id" column
rows are read in its order, so the rows written by WriteTable are read back
in the order they were written. NULL values are not supported and make the
function return an error wrapping dataset.ErrInvalidInput.
*/
func ReadTable(ctx context.Context, a Adapter, name string) (*dataset.Table, error) {
	tn, err := a.ColumnName(name)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT * FROM %s", tn)
	hasID, err := hasIDColumn(ctx, a, query)
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %v", name, err)
	}
	if hasID {
		query += " ORDER BY " + reservedColumn
	}
	rows, err := a.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %v", name, err)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns of table %s: %v", name, err)
	}
	t := &dataset.Table{}
	var keep []int
	for i, c := range columns {
		if c == reservedColumn {
			continue
		}
		keep = append(keep, i)
		t.Header = append(t.Header, c)
	}
	values := make([]sql.NullString, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	for line := 1; rows.Next(); line++ {
		err = rows.Scan(dest...)
		if err != nil {
			return nil, fmt.Errorf("scanning row %d of table %s: %v", line, name, err)
		}
		row := make([]string, 0, len(keep))
		for _, i := range keep {
			if !values[i].Valid {
				return nil, fmt.Errorf("%w: row %d of table %s has NULL %s", dataset.ErrInvalidInput, line, name, columns[i])
			}
			row = append(row, values[i].String)
		}
		t.Rows = append(t.Rows, row)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("reading table %s: %v", name, err)
	}
	err = t.Validate()
	if err != nil {
		return nil, fmt.Errorf("reading table %s: %w", name, err)
	}
	return t, nil
}

/*
WriteTable takes a context, an Adapter, a table name and a dataset.Table,
ensures the database table exists with a TEXT column per feature and inserts
every row of the dataset.Table on it. It returns the number of rows written
and an error if not all could be.
*/
func WriteTable(ctx context.Context, a Adapter, name string, t *dataset.Table) (int, error) {
	tn, err := a.ColumnName(name)
	if err != nil {
		return 0, err
	}
	columns := make([]string, len(t.Header))
	for i, h := range t.Header {
		columns[i], err = a.ColumnName(h)
		if err != nil {
			return 0, err
		}
	}
	err = createTable(ctx, a, tn, columns)
	if err != nil {
		return 0, fmt.Errorf("creating table %s: %v", name, err)
	}
	var written int
	for written < len(t.Rows) {
		end := written + MaxSampleInsertionsPerStatement
		if end > len(t.Rows) {
			end = len(t.Rows)
		}
		err = insertRows(ctx, a, tn, columns, t.Rows[written:end])
		if err != nil {
			return written, fmt.Errorf("inserting rows %d to %d on table %s: %v", written+1, end, name, err)
		}
		written = end
	}
	return written, nil
}

func hasIDColumn(ctx context.Context, a Adapter, query string) (bool, error) {
	rows, err := a.DB().QueryContext(ctx, query+" WHERE 1 = 0")
	if err != nil {
		return false, err
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return false, err
	}
	for _, c := range columns {
		if c == reservedColumn {
			return true, nil
		}
	}
	return false, nil
}

func createTable(ctx context.Context, a Adapter, table string, columns []string) error {
	var stmt bytes.Buffer
	stmt.WriteString(fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s(%s", table, a.IDColumnDefinition()))
	for _, c := range columns {
		stmt.WriteString(fmt.Sprintf(", %s TEXT NOT NULL", c))
	}
	stmt.WriteString(")")
	_, err := a.DB().ExecContext(ctx, stmt.String())
	return err
}

func insertRows(ctx context.Context, a Adapter, table string, columns []string, rows [][]string) error {
	var stmt bytes.Buffer
	stmt.WriteString(fmt.Sprintf("INSERT INTO %s (", table))
	for i, c := range columns {
		if i > 0 {
			stmt.WriteString(", ")
		}
		stmt.WriteString(c)
	}
	stmt.WriteString(") VALUES ")
	args := make([]interface{}, 0, len(rows)*len(columns))
	for r, row := range rows {
		if r > 0 {
			stmt.WriteString(", ")
		}
		stmt.WriteString("(")
		for i, v := range row {
			if i > 0 {
				stmt.WriteString(", ")
			}
			args = append(args, v)
			stmt.WriteString(a.Placeholder(len(args)))
		}
		stmt.WriteString(")")
	}
	_, err := a.DB().ExecContext(ctx, stmt.String(), args...)
	return err
}
