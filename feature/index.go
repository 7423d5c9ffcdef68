package feature

import (
	"fmt"
)

// IndexError represents an error building an Index
type IndexError string

/*
ErrNoSamples is the error returned when trying to index the features of a
table that has a header but no rows.
*/
const ErrNoSamples = IndexError("cannot index features without samples")

func (ie IndexError) Error() string {
	return string(ie)
}

/*
Index holds the features of a table, one per column, in column order. The
last feature is the class feature a tree predicts.

Once built an Index never changes: codes are assigned only while indexing
the training rows.
*/
type Index struct {
	features []*Feature
	byName   map[string]int
}

/*
NewIndex takes a header slice with the name of every column and the rows of
a training table and returns an Index where every distinct value of every
column has been given a code, in the order the values are first found
scanning rows from top to bottom.

At least one row and one column are required, and every row must have as
many fields as the header.
*/
func NewIndex(header []string, rows [][]string) (*Index, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("cannot index features without columns")
	}
	if len(rows) == 0 {
		return nil, ErrNoSamples
	}
	features := make([]*Feature, len(header))
	for i, name := range header {
		features[i] = newEmpty(name)
	}
	for l, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d has %d fields, expected %d", l+1, len(row), len(header))
		}
		for i, v := range row {
			features[i].add(v)
		}
	}
	return NewIndexFromFeatures(features)
}

/*
NewIndexFromFeatures takes a slice of features in column order, the last one
being the class feature, and returns an Index over them. Names are only
labels: several features may share one, in which case Lookup resolves it to
the first of them.
*/
func NewIndexFromFeatures(features []*Feature) (*Index, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("cannot index features without columns")
	}
	byName := make(map[string]int, len(features))
	for i, f := range features {
		if _, ok := byName[f.Name()]; !ok {
			byName[f.Name()] = i
		}
	}
	return &Index{features: features, byName: byName}, nil
}

// Len returns the number of features including the class feature.
func (idx *Index) Len() int {
	return len(idx.features)
}

// Feature returns the feature for the given column.
func (idx *Index) Feature(i int) *Feature {
	return idx.features[i]
}

// Features returns all features in column order.
func (idx *Index) Features() []*Feature {
	return idx.features
}

// ClassIndex returns the column of the class feature.
func (idx *Index) ClassIndex() int {
	return len(idx.features) - 1
}

// Class returns the class feature.
func (idx *Index) Class() *Feature {
	return idx.features[idx.ClassIndex()]
}

/*
Lookup takes a feature name and returns the first column with that name and
true, or -1 and false if there is no feature with that name.
*/
func (idx *Index) Lookup(name string) (int, bool) {
	i, ok := idx.byName[name]
	if !ok {
		return -1, false
	}
	return i, true
}

/*
Encode takes a row of values and returns the codes for its first n values
(n being at most the number of features). The boolean slice reports, for
every returned position, whether the value was known to the index.
*/
func (idx *Index) Encode(row []string) ([]int, []bool) {
	n := len(row)
	if n > len(idx.features) {
		n = len(idx.features)
	}
	codes := make([]int, n)
	known := make([]bool, n)
	for i := 0; i < n; i++ {
		codes[i], known[i] = idx.features[i].Code(row[i])
	}
	return codes, known
}

/*
Lines returns a line per indexed value with the form
"<feature> value <code> = <value>", in column and code order.
*/
func (idx *Index) Lines() []string {
	var lines []string
	for _, f := range idx.features {
		for c, v := range f.values {
			lines = append(lines, fmt.Sprintf("%s value %d = %s", f.name, c, v))
		}
	}
	return lines
}
