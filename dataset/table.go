/*
Package dataset provides the tables trees are grown from and classify, and
Dataset, a subset of the rows of a training table on which impurity and
information gain can be measured.
*/
package dataset

import (
	"fmt"

	"github.com/pbanos/id3/feature"
)

// InputError represents an error on the data provided to grow or use a tree
type InputError string

/*
ErrInvalidInput is the error returned (possibly wrapped) when a table is
malformed: it has ragged rows, could not be read or has no data rows.
*/
const ErrInvalidInput = InputError("invalid input")

func (ie InputError) Error() string {
	return string(ie)
}

/*
Table is an in-memory tabular structure: a header with the name of every
column and the data rows. All rows have as many fields as the header; the
last field of a training row is the value of the class feature.
*/
type Table struct {
	Header []string
	Rows   [][]string
}

/*
NewTable takes a slice of records, the first being the header, and returns
a Table with them or an error wrapping ErrInvalidInput if there are no data
records or any record has a different number of fields than the header.
*/
func NewTable(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header", ErrInvalidInput)
	}
	t := &Table{Header: records[0], Rows: records[1:]}
	err := t.Validate()
	if err != nil {
		return nil, err
	}
	return t, nil
}

/*
Validate returns an error wrapping ErrInvalidInput if the table has no
columns, no data rows or rows with a number of fields different from the
header's.
*/
func (t *Table) Validate() error {
	if len(t.Header) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidInput)
	}
	if len(t.Rows) == 0 {
		return fmt.Errorf("%w: no data rows", ErrInvalidInput)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf("%w: line %d has %d fields, expected %d", ErrInvalidInput, i+2, len(row), len(t.Header))
		}
	}
	return nil
}

/*
Index validates the table and returns a feature.Index built from it, with
every distinct value of every column coded in first-seen order.
*/
func (t *Table) Index() (*feature.Index, error) {
	err := t.Validate()
	if err != nil {
		return nil, err
	}
	idx, err := feature.NewIndex(t.Header, t.Rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return idx, nil
}
