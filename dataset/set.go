package dataset

import (
	"fmt"

	"github.com/pbanos/id3/feature"
)

type store struct {
	index *feature.Index
	codes [][]int
}

/*
Dataset represents a collection of training rows. All subsets of a dataset
share the same encoded row store and only keep the positions of the rows
they contain, so subsetting does not copy row data.
*/
type Dataset struct {
	store *store
	rows  []int
}

/*
New takes a feature.Index and the rows of a training table and returns a
Dataset with all of them. Every value in the rows must be known to the
index.
*/
func New(idx *feature.Index, rows [][]string) (*Dataset, error) {
	s := &store{index: idx, codes: make([][]int, len(rows))}
	positions := make([]int, len(rows))
	for i, row := range rows {
		if len(row) != idx.Len() {
			return nil, fmt.Errorf("%w: row %d has %d fields, expected %d", ErrInvalidInput, i+1, len(row), idx.Len())
		}
		codes, known := idx.Encode(row)
		for j, ok := range known {
			if !ok {
				return nil, fmt.Errorf("%w: row %d has value %q not indexed for feature %s", ErrInvalidInput, i+1, row[j], idx.Feature(j).Name())
			}
		}
		s.codes[i] = codes
		positions[i] = i
	}
	return &Dataset{store: s, rows: positions}, nil
}

/*
FromTable takes a Table and returns the feature.Index built from its rows
together with a Dataset containing all of them.
*/
func FromTable(t *Table) (*feature.Index, *Dataset, error) {
	idx, err := t.Index()
	if err != nil {
		return nil, nil, err
	}
	d, err := New(idx, t.Rows)
	if err != nil {
		return nil, nil, err
	}
	return idx, d, nil
}

// Index returns the feature.Index the dataset rows are coded with.
func (d *Dataset) Index() *feature.Index {
	return d.store.index
}

// Count returns the number of rows in the dataset.
func (d *Dataset) Count() int {
	return len(d.rows)
}

/*
ClassCounts returns a slice with, for every class code, the number of rows
in the dataset with that class.
*/
func (d *Dataset) ClassCounts() []int {
	ci := d.store.index.ClassIndex()
	counts := make([]int, d.store.index.Class().Count())
	for _, r := range d.rows {
		counts[d.store.codes[r][ci]]++
	}
	return counts
}

/*
MajorityClass returns the class code with most rows in the dataset, the
lowest code among those tied. An empty dataset returns class code 0.
*/
func (d *Dataset) MajorityClass() int {
	return Mode(d.ClassCounts())
}

/*
Pure returns true if all rows in the dataset share the same class. An empty
dataset is pure.
*/
func (d *Dataset) Pure() bool {
	if len(d.rows) == 0 {
		return true
	}
	ci := d.store.index.ClassIndex()
	first := d.store.codes[d.rows[0]][ci]
	for _, r := range d.rows[1:] {
		if d.store.codes[r][ci] != first {
			return false
		}
	}
	return true
}

/*
Partition takes a feature column and returns one dataset per value code of
the feature, in code order, each with the rows having that value. Datasets
for values no row has are empty but present.
*/
func (d *Dataset) Partition(f int) []*Dataset {
	count := d.store.index.Feature(f).Count()
	subsets := make([]*Dataset, count)
	for i := range subsets {
		subsets[i] = &Dataset{store: d.store}
	}
	for _, r := range d.rows {
		s := subsets[d.store.codes[r][f]]
		s.rows = append(s.rows, r)
	}
	return subsets
}

/*
Mode takes a slice of counts and returns the position of the highest one,
the lowest position among those tied. An empty slice returns 0.
*/
func Mode(counts []int) int {
	best, top := 0, -1
	for i, c := range counts {
		if c > top {
			best, top = i, c
		}
	}
	return best
}
