/*
Package csv reads dataset.Tables from CSV streams and writes classification
results back as one label per line.
*/
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/id3/dataset"
)

/*
ReadTable takes an io.Reader for a CSV stream and returns the dataset.Table
parsed from it or an error.

The header or first row of the CSV content is expected to consist of the
names of the features, the class feature last. Every other row is a sample
with a value for every feature. Errors caused by the contents of the stream
wrap dataset.ErrInvalidInput.
*/
func ReadTable(reader io.Reader) (*dataset.Table, error) {
	var records [][]string
	err := ReadTableByRecord(reader, func(_ int, record []string) (bool, error) {
		records = append(records, record)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return dataset.NewTable(records)
}

/*
ReadTableByRecord takes an io.Reader for a CSV stream and a lambda function
on an integer and a record that returns a boolean value. It parses the
records from the reader, header included, and for each it calls the lambda
function with its line number and the record. If the lambda function returns
true, it will continue processing the next record, otherwise it will stop.
An error is returned if something goes wrong when reading the stream, or if
a record has a different number of fields than the header.
*/
func ReadTableByRecord(reader io.Reader, lambda func(int, []string) (bool, error)) error {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = 0
	for l := 1; ; l++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return fmt.Errorf("%w: %v", dataset.ErrInvalidInput, err)
			}
			return fmt.Errorf("reading line %d: %v", l, err)
		}
		ok, err := lambda(l, record)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

/*
ReadTableFromFilePath takes a filepath string, opens the file to which the
filepath points to (os.Stdin if the filepath is "") and uses ReadTable to
return the dataset.Table read from it or an error. It will return an error
wrapping dataset.ErrInvalidInput if the file cannot be opened for reading.
*/
func ReadTableFromFilePath(filepath string) (*dataset.Table, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("%w: opening %s: %v", dataset.ErrInvalidInput, filepath, err)
		}
		defer f.Close()
	}
	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return t, nil
}

/*
WriteLabels takes an io.Writer and a slice of label strings and writes each
label on its own line.
*/
func WriteLabels(w io.Writer, labels []string) error {
	for i, l := range labels {
		_, err := fmt.Fprintln(w, l)
		if err != nil {
			return fmt.Errorf("writing label %d: %v", i+1, err)
		}
	}
	return nil
}

/*
WriteTable takes an io.Writer and a dataset.Table and writes the table onto
the writer as CSV, header first.
*/
func WriteTable(w io.Writer, t *dataset.Table) error {
	cw := csv.NewWriter(w)
	err := cw.Write(t.Header)
	if err != nil {
		return fmt.Errorf("writing header: %v", err)
	}
	for i, row := range t.Rows {
		err = cw.Write(row)
		if err != nil {
			return fmt.Errorf("writing row %d: %v", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

/*
WriteTableToFilePath takes a filepath string and a dataset.Table and writes
the table as CSV onto the file at the filepath, creating or truncating it
(os.Stdout if the filepath is "").
*/
func WriteTableToFilePath(filepath string, t *dataset.Table) error {
	if filepath == "" {
		return WriteTable(os.Stdout, t)
	}
	f, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("creating %s: %v", filepath, err)
	}
	err = WriteTable(f, t)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
