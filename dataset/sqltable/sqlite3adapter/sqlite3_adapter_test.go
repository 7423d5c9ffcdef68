package sqlite3adapter

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/sqltable"
)

func TestWriteThenReadTable(t *testing.T) {
	ctx := context.Background()
	a, err := New(filepath.Join(t.TempDir(), "samples.db"), 1)
	if err != nil {
		t.Fatal(err)
	}
	defer a.DB().Close()
	table := &dataset.Table{Header: []string{"outlook", "windy", "play"}}
	for i := 0; i < 23; i++ {
		table.Rows = append(table.Rows, []string{[]string{"sunny", "rain", "overcast"}[i%3], []string{"true", "false"}[i%2], []string{"yes", "no"}[i%2]})
	}
	n, err := sqltable.WriteTable(ctx, a, sqltable.DefaultTableName, table)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(table.Rows) {
		t.Errorf("expected %d rows written but got %d", len(table.Rows), n)
	}
	read, err := sqltable.ReadTable(ctx, a, sqltable.DefaultTableName)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(read.Header, table.Header) {
		t.Errorf("expected header %v but got %v", table.Header, read.Header)
	}
	if !reflect.DeepEqual(read.Rows, table.Rows) {
		t.Errorf("expected rows %v but got %v", table.Rows, read.Rows)
	}
}

func TestReadTableSkipsIDAndRejectsNULL(t *testing.T) {
	ctx := context.Background()
	a, err := New(filepath.Join(t.TempDir(), "samples.db"), 1)
	if err != nil {
		t.Fatal(err)
	}
	defer a.DB().Close()
	stmts := []string{
		`CREATE TABLE samples (id INTEGER PRIMARY KEY AUTOINCREMENT, "a" TEXT, "class" TEXT)`,
		`INSERT INTO samples ("a", "class") VALUES ('x', 'yes'), ('y', 'no')`,
		`CREATE TABLE holes ("a" TEXT, "class" TEXT)`,
		`INSERT INTO holes ("a", "class") VALUES ('x', NULL)`,
		`CREATE TABLE empty ("a" TEXT, "class" TEXT)`,
	}
	for _, s := range stmts {
		if _, err := a.DB().ExecContext(ctx, s); err != nil {
			t.Fatalf("running %s: %v", s, err)
		}
	}
	table, err := sqltable.ReadTable(ctx, a, "samples")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(table.Header, []string{"a", "class"}) {
		t.Errorf("unexpected header %v", table.Header)
	}
	if !reflect.DeepEqual(table.Rows, [][]string{{"x", "yes"}, {"y", "no"}}) {
		t.Errorf("unexpected rows %v", table.Rows)
	}
	if _, err = sqltable.ReadTable(ctx, a, "holes"); !errors.Is(err, dataset.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for NULL value but got %v", err)
	}
	if _, err = sqltable.ReadTable(ctx, a, "empty"); !errors.Is(err, dataset.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty table but got %v", err)
	}
	if _, err = a.ColumnName("id"); err == nil {
		t.Error("expected id to be reserved")
	}
}

func TestReadTableFollowsIDOrder(t *testing.T) {
	ctx := context.Background()
	a, err := New(filepath.Join(t.TempDir(), "samples.db"), 1)
	if err != nil {
		t.Fatal(err)
	}
	defer a.DB().Close()
	stmts := []string{
		`CREATE TABLE samples ("a" TEXT, id INTEGER, "class" TEXT)`,
		`INSERT INTO samples ("a", id, "class") VALUES ('y', 2, 'no'), ('x', 1, 'yes'), ('z', 3, 'no')`,
	}
	for _, s := range stmts {
		if _, err := a.DB().ExecContext(ctx, s); err != nil {
			t.Fatalf("running %s: %v", s, err)
		}
	}
	table, err := sqltable.ReadTable(ctx, a, "samples")
	if err != nil {
		t.Fatal(err)
	}
	expected := [][]string{{"x", "yes"}, {"y", "no"}, {"z", "no"}}
	if !reflect.DeepEqual(table.Rows, expected) {
		t.Errorf("expected rows %v but got %v", expected, table.Rows)
	}
}

func TestWriteTableCreatesIDColumn(t *testing.T) {
	ctx := context.Background()
	a, err := New(filepath.Join(t.TempDir(), "samples.db"), 1)
	if err != nil {
		t.Fatal(err)
	}
	defer a.DB().Close()
	table := &dataset.Table{Header: []string{"a", "class"}, Rows: [][]string{{"y", "no"}, {"x", "yes"}}}
	if _, err := sqltable.WriteTable(ctx, a, "samples", table); err != nil {
		t.Fatal(err)
	}
	var ids []int
	rows, err := a.DB().QueryContext(ctx, `SELECT id FROM samples ORDER BY id`)
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	if !reflect.DeepEqual(ids, []int{1, 2}) {
		t.Errorf("expected ids [1 2] but got %v", ids)
	}
}
