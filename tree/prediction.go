package tree

import (
	"fmt"

	"github.com/pbanos/id3/dataset"
)

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrModelNotTrained is the error returned when trying to classify rows or
render a tree that has not been grown.
*/
const ErrModelNotTrained = PredictionError("model not trained: run training before classification")

func (pe PredictionError) Error() string {
	return string(pe)
}

/*
Classify takes a row of values, one per feature in column order (the class
value may be omitted), and returns the code of the class the tree predicts
for it.

At every internal node the row follows the child for its value of the split
feature. If the value was never seen for that feature during training, the
prediction is the most common class among the leaves below that node
(see SubtreeClass).

An error wrapping dataset.ErrInvalidInput is returned if the row has fewer
values than the tree has non-class features.
*/
func (t *Tree) Classify(row []string) (int, error) {
	if t == nil || t.Root == nil || t.Index == nil {
		return 0, ErrModelNotTrained
	}
	if len(row) < t.Index.ClassIndex() {
		return 0, fmt.Errorf("%w: row has %d values, expected at least %d", dataset.ErrInvalidInput, len(row), t.Index.ClassIndex())
	}
	return t.ClassifyWith(func(f int) (string, error) {
		return row[f], nil
	})
}

/*
ClassifyWith is like Classify, but takes a function returning the value of
the row for a feature column instead of the row. The function is only called
for the features split on along the path the row follows, so it can be used
to obtain values lazily, like asking for them.
*/
func (t *Tree) ClassifyWith(valueFor func(int) (string, error)) (int, error) {
	if t == nil || t.Root == nil || t.Index == nil {
		return 0, ErrModelNotTrained
	}
	n := t.Root
	for {
		switch node := n.(type) {
		case Leaf:
			return node.Class, nil
		case *Internal:
			v, err := valueFor(node.Feature)
			if err != nil {
				return 0, err
			}
			code, ok := t.Index.Feature(node.Feature).Code(v)
			if !ok || code >= len(node.Children) {
				return t.SubtreeClass(node), nil
			}
			n = node.Children[code]
		default:
			return 0, fmt.Errorf("unknown node type %T", n)
		}
	}
}

/*
ClassifyTable takes a dataset.Table and returns the predicted class label for
every row, in order. The table header is not used.
*/
func (t *Tree) ClassifyTable(table *dataset.Table) ([]string, error) {
	if t == nil || t.Root == nil || t.Index == nil {
		return nil, ErrModelNotTrained
	}
	if table == nil {
		return nil, fmt.Errorf("%w: no table to classify", dataset.ErrInvalidInput)
	}
	labels := make([]string, 0, len(table.Rows))
	for i, row := range table.Rows {
		c, err := t.Classify(row)
		if err != nil {
			return nil, fmt.Errorf("classifying row %d: %w", i+1, err)
		}
		labels = append(labels, t.Index.Class().Value(c))
	}
	return labels, nil
}

/*
Test takes a labelled dataset.Table and returns the fraction of its rows for
which the tree predicts the class in the row's last field.
*/
func (t *Tree) Test(table *dataset.Table) (float64, error) {
	if t == nil || t.Root == nil || t.Index == nil {
		return 0.0, ErrModelNotTrained
	}
	if table == nil || len(table.Rows) == 0 {
		return 0.0, fmt.Errorf("%w: no rows to test", dataset.ErrInvalidInput)
	}
	ci := t.Index.ClassIndex()
	var hits float64
	for i, row := range table.Rows {
		if len(row) <= ci {
			return 0.0, fmt.Errorf("%w: row %d has no class value", dataset.ErrInvalidInput, i+1)
		}
		c, err := t.Classify(row)
		if err != nil {
			return 0.0, fmt.Errorf("testing row %d: %w", i+1, err)
		}
		if t.Index.Class().Value(c) == row[ci] {
			hits += 1.0
		}
	}
	return hits / float64(len(table.Rows)), nil
}

/*
SubtreeClass takes a node of the tree and returns the most common class
among the leaves under it, the lowest class code among those tied.
*/
func (t *Tree) SubtreeClass(n Node) int {
	return dataset.Mode(t.LeafClassCounts(n))
}

/*
LeafClassCounts takes a node of the tree and returns, for every class code,
the number of leaves under it predicting that class.
*/
func (t *Tree) LeafClassCounts(n Node) []int {
	counts := make([]int, t.Index.Class().Count())
	countLeafClasses(n, counts)
	return counts
}

func countLeafClasses(n Node, counts []int) {
	switch node := n.(type) {
	case Leaf:
		counts[node.Class]++
	case *Internal:
		for _, c := range node.Children {
			countLeafClasses(c, counts)
		}
	}
}
