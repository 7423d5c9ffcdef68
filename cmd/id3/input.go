package main

import (
	"context"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/csv"
	"github.com/pbanos/id3/dataset/mongotable"
	"github.com/pbanos/id3/dataset/sqltable"
	"github.com/pbanos/id3/dataset/sqltable/pgadapter"
	"github.com/pbanos/id3/dataset/sqltable/sqlite3adapter"
)

const tableFlagUsage = "name of the SQL table or MongoDB collection holding the rows"

const inputFlagUsage = "path to an input CSV file or SQLite3 (.db) file, or a PostgreSQL (postgresql://) or MongoDB (mongodb://) connection URL (defaults to STDIN, interpreted as CSV)"

// tableLocation identifies where a table is read from or written to
type tableLocation struct {
	location   string
	table      string
	maxDBConns int
}

func (tl *tableLocation) readTable(ctx context.Context, rcc *rootCmdConfig) (*dataset.Table, error) {
	switch {
	case tl.location == "":
		rcc.Logf("Reading table from STDIN...")
		return csv.ReadTableFromFilePath("")
	case strings.HasPrefix(tl.location, "postgresql://"):
		rcc.Logf("Creating PostgreSQL adapter for url %s to read table %s...", tl.location, tl.table)
		adapter, err := pgadapter.New(tl.location, tl.maxDBConns)
		if err != nil {
			return nil, err
		}
		defer adapter.DB().Close()
		return sqltable.ReadTable(ctx, adapter, tl.table)
	case strings.HasPrefix(tl.location, "mongodb://"):
		rcc.Logf("Connecting to MongoDB at %s to read collection %s...", tl.location, tl.table)
		session, err := mongotable.Open(tl.location)
		if err != nil {
			return nil, err
		}
		defer session.Close()
		return mongotable.ReadTable(ctx, session, tl.table)
	case strings.HasSuffix(tl.location, ".db"):
		rcc.Logf("Creating SQLite3 adapter for file %s to read table %s...", tl.location, tl.table)
		adapter, err := sqlite3adapter.New(tl.location, tl.maxDBConns)
		if err != nil {
			return nil, err
		}
		defer adapter.DB().Close()
		return sqltable.ReadTable(ctx, adapter, tl.table)
	}
	rcc.Logf("Reading table from CSV file %s...", tl.location)
	return csv.ReadTableFromFilePath(tl.location)
}

func (tl *tableLocation) writeTable(ctx context.Context, rcc *rootCmdConfig, t *dataset.Table) error {
	switch {
	case tl.location == "":
		rcc.Logf("Writing table onto STDOUT...")
		return csv.WriteTableToFilePath("", t)
	case strings.HasPrefix(tl.location, "postgresql://"):
		rcc.Logf("Creating PostgreSQL adapter for url %s to write table %s...", tl.location, tl.table)
		adapter, err := pgadapter.New(tl.location, tl.maxDBConns)
		if err != nil {
			return err
		}
		defer adapter.DB().Close()
		n, err := sqltable.WriteTable(ctx, adapter, tl.table, t)
		rcc.Logf("%d rows written", n)
		return err
	case strings.HasPrefix(tl.location, "mongodb://"):
		rcc.Logf("Connecting to MongoDB at %s to write collection %s...", tl.location, tl.table)
		session, err := mongotable.Open(tl.location)
		if err != nil {
			return err
		}
		defer session.Close()
		n, err := mongotable.WriteTable(ctx, session, tl.table, t)
		rcc.Logf("%d rows written", n)
		return err
	case strings.HasSuffix(tl.location, ".db"):
		rcc.Logf("Creating SQLite3 adapter for file %s to write table %s...", tl.location, tl.table)
		adapter, err := sqlite3adapter.New(tl.location, tl.maxDBConns)
		if err != nil {
			return err
		}
		defer adapter.DB().Close()
		n, err := sqltable.WriteTable(ctx, adapter, tl.table, t)
		rcc.Logf("%d rows written", n)
		return err
	}
	rcc.Logf("Writing table onto CSV file %s...", tl.location)
	return csv.WriteTableToFilePath(tl.location, t)
}
