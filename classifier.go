package id3

import (
	"sync"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/tree"
	"go.uber.org/zap"
)

// ModelError represents an error related with the state of a Classifier
type ModelError string

/*
ErrModelNotTrained is the error returned when a Classifier is asked to
classify rows or render its tree before a successful training.
*/
const ErrModelNotTrained = ModelError("model not trained: run training before classification")

func (me ModelError) Error() string {
	return string(me)
}

/*
Classifier holds at most one trained tree. Training replaces the tree it
holds; classification and rendering read it. A Classifier is safe for
concurrent use.
*/
type Classifier struct {
	builder *TreeBuilder
	lock    sync.RWMutex
	tree    *tree.Tree
}

// NewClassifier returns an untrained Classifier logging on the given logger
// (nil disables logging).
func NewClassifier(logger *zap.Logger) *Classifier {
	return &Classifier{builder: NewTreeBuilder(logger)}
}

// NewTrainedClassifier returns a Classifier holding the given tree, for
// instance one loaded from a store.
func NewTrainedClassifier(t *tree.Tree, logger *zap.Logger) *Classifier {
	c := NewClassifier(logger)
	c.tree = t
	return c
}

/*
Train grows a tree from the given table and keeps it, replacing any tree
held before. On error the previously held tree is kept.
*/
func (c *Classifier) Train(table *dataset.Table) error {
	t, err := c.builder.Train(table)
	if err != nil {
		return err
	}
	c.lock.Lock()
	c.tree = t
	c.lock.Unlock()
	return nil
}

// Tree returns the held tree or ErrModelNotTrained
func (c *Classifier) Tree() (*tree.Tree, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	if c.tree == nil {
		return nil, ErrModelNotTrained
	}
	return c.tree, nil
}

/*
Classify takes a table and returns the predicted class label of each of its
rows, in order. ErrModelNotTrained is returned if no tree is held.
*/
func (c *Classifier) Classify(table *dataset.Table) ([]string, error) {
	t, err := c.Tree()
	if err != nil {
		return nil, err
	}
	return t.ClassifyTable(table)
}

/*
ClassifyRow takes a row of values in feature column order and returns the
predicted class label.
*/
func (c *Classifier) ClassifyRow(row []string) (string, error) {
	t, err := c.Tree()
	if err != nil {
		return "", err
	}
	code, err := t.Classify(row)
	if err != nil {
		return "", err
	}
	return t.Index.Class().Value(code), nil
}

// Render returns the text rendering of the held tree or ErrModelNotTrained
func (c *Classifier) Render() (string, error) {
	t, err := c.Tree()
	if err != nil {
		return "", err
	}
	return t.String(), nil
}
