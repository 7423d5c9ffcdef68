/*
Package id3 grows decision trees from tables of categorical values with the
ID3 algorithm, selecting at every node the feature whose split reduces the
Gini impurity of the class the most.
*/
package id3

import (
	"fmt"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/tree"
	"go.uber.org/zap"
)

// TreeBuilder grows trees from datasets, logging every split it decides
type TreeBuilder struct {
	logger *zap.Logger
}

// NewTreeBuilder returns a TreeBuilder that logs its splits at debug level
// on the given logger. A nil logger disables logging.
func NewTreeBuilder(logger *zap.Logger) *TreeBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TreeBuilder{logger}
}

/*
Build takes a dataset and returns the root of the tree grown from all of its
rows with every feature available for splitting.
*/
func (tb *TreeBuilder) Build(d *dataset.Dataset) tree.Node {
	return tb.Grow(d, nil, make([]bool, d.Index().Len()))
}

/*
Grow takes the rows reaching a node, the rows reaching its parent (nil for
the root) and the features already split on from the root to the node, and
returns the subtree for the node:
  - with no rows, a leaf with the majority class of the parent rows
  - with every feature already split on, a leaf with the majority class
  - with all rows of the same class, a leaf with that class
  - otherwise, a node splitting on the best attribute with a subtree per
    value code of it, grown from the rows having that value.
*/
func (tb *TreeBuilder) Grow(d, parent *dataset.Dataset, excluded []bool) tree.Node {
	if d.Count() == 0 {
		if parent == nil {
			return tree.Leaf{Class: d.MajorityClass()}
		}
		return tree.Leaf{Class: parent.MajorityClass()}
	}
	if allExcluded(d, excluded) {
		return tree.Leaf{Class: d.MajorityClass()}
	}
	if d.Pure() {
		return tree.Leaf{Class: d.MajorityClass()}
	}
	p := NewPartition(d, BestAttribute(d, excluded))
	if ce := tb.logger.Check(zap.DebugLevel, "splitting node"); ce != nil {
		ce.Write(
			zap.String("feature", d.Index().Feature(p.Feature).Name()),
			zap.Float64("gain", p.InformationGain()),
			zap.Float64("impurity", d.Impurity()),
			zap.Int("rows", d.Count()),
		)
	}
	stExcluded := make([]bool, len(excluded))
	copy(stExcluded, excluded)
	stExcluded[p.Feature] = true
	children := make([]tree.Node, len(p.Subsets))
	for i, s := range p.Subsets {
		children[i] = tb.Grow(s, d, stExcluded)
	}
	return &tree.Internal{Feature: p.Feature, Children: children}
}

func allExcluded(d *dataset.Dataset, excluded []bool) bool {
	for f := 0; f < d.Index().ClassIndex(); f++ {
		if !isExcluded(excluded, f) {
			return false
		}
	}
	return true
}

/*
Train takes a table with training rows, indexes its values and returns the
tree grown from them. An error wrapping dataset.ErrInvalidInput is returned
if the table is not valid training data.
*/
func Train(table *dataset.Table) (*tree.Tree, error) {
	return NewTreeBuilder(nil).Train(table)
}

// Train is like the package Train function, logging on the builder's logger.
func (tb *TreeBuilder) Train(table *dataset.Table) (*tree.Tree, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: no training table", dataset.ErrInvalidInput)
	}
	idx, d, err := dataset.FromTable(table)
	if err != nil {
		return nil, fmt.Errorf("indexing training set: %w", err)
	}
	t := tree.New(tb.Build(d), idx)
	tb.logger.Info("tree grown",
		zap.Int("rows", d.Count()),
		zap.Int("features", idx.ClassIndex()),
		zap.Int("classes", idx.Class().Count()),
		zap.Int("depth", t.Depth()),
		zap.Int("leaves", t.Leaves()),
	)
	return t, nil
}
