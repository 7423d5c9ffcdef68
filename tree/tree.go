/*
Package tree provides decision trees over categorical features: their nodes,
classification of rows and ways to inspect them.
*/
package tree

import (
	"fmt"
	"strings"

	"github.com/pbanos/id3/feature"
)

// Tree represents a decision tree. It is composed of its root node
// and the feature.Index whose codes the nodes refer to. A Tree is the
// whole trained model: it is not modified once grown.
type Tree struct {
	Root  Node
	Index *feature.Index
}

// New takes the root Node and a feature.Index and returns the tree
// composed of the nodes under the root.
func New(root Node, idx *feature.Index) *Tree {
	return &Tree{root, idx}
}

// Traverse takes a bottomup boolean and an error-returning function that
// takes the criteria leading from the root to a node and the node, and goes
// through the tree running the function with every node. Traverse will
// call the function with a parent node before calling it for its children
// if bottomup is false, and call it after its children if bottomup is true.
// If the call to the function returns an error, the traversing is aborted
// and the error is returned.
func (t *Tree) Traverse(bottomup bool, f func([]feature.Criterion, Node) error) error {
	if t == nil || t.Root == nil {
		return ErrModelNotTrained
	}
	return t.traverse(nil, t.Root, bottomup, f)
}

func (t *Tree) traverse(path []feature.Criterion, n Node, bottomup bool, f func([]feature.Criterion, Node) error) error {
	if !bottomup {
		if err := f(path, n); err != nil {
			return err
		}
	}
	if in, ok := n.(*Internal); ok {
		sf := t.Index.Feature(in.Feature)
		for c, child := range in.Children {
			cpath := append(path[:len(path):len(path)], feature.NewCriterion(sf, c))
			if err := t.traverse(cpath, child, bottomup, f); err != nil {
				return err
			}
		}
	}
	if bottomup {
		return f(path, n)
	}
	return nil
}

/*
Validate checks the tree is well formed and returns an error describing the
first problem found:
  - internal nodes must split on a non-class feature of the index, and have
    a child per value of it
  - no feature can be split on twice on the path from the root to a leaf
  - leaves must predict a class code of the index
*/
func (t *Tree) Validate() error {
	if t == nil || t.Index == nil {
		return ErrModelNotTrained
	}
	ci := t.Index.ClassIndex()
	return t.Traverse(false, func(path []feature.Criterion, n Node) error {
		switch node := n.(type) {
		case Leaf:
			if node.Class < 0 || node.Class >= t.Index.Class().Count() {
				return fmt.Errorf("leaf at %v predicts unknown class code %d", path, node.Class)
			}
		case *Internal:
			if node == nil {
				return fmt.Errorf("nil node at %v", path)
			}
			if node.Feature < 0 || node.Feature >= ci {
				return fmt.Errorf("node at %v splits on invalid feature %d", path, node.Feature)
			}
			f := t.Index.Feature(node.Feature)
			if len(node.Children) != f.Count() {
				return fmt.Errorf("node at %v splitting on %s has %d children, expected %d", path, f.Name(), len(node.Children), f.Count())
			}
			for _, c := range path {
				if c.Feature() == f {
					return fmt.Errorf("node at %v splits again on %s", path, f.Name())
				}
			}
			for i, c := range node.Children {
				if c == nil {
					return fmt.Errorf("node at %v has no child for %s=%s", path, f.Name(), f.Value(i))
				}
			}
		default:
			return fmt.Errorf("unknown node type %T at %v", n, path)
		}
		return nil
	})
}

// Depth returns the number of splits on the longest path from the root to
// a leaf.
func (t *Tree) Depth() int {
	var depth int
	t.Traverse(false, func(path []feature.Criterion, n Node) error {
		if len(path) > depth {
			depth = len(path)
		}
		return nil
	})
	return depth
}

// Leaves returns the number of leaves of the tree.
func (t *Tree) Leaves() int {
	var leaves int
	t.Traverse(false, func(_ []feature.Criterion, n Node) error {
		if _, ok := n.(Leaf); ok {
			leaves++
		}
		return nil
	})
	return leaves
}

/*
String returns the tree rendered as text: each branch on its own line as
feature=value, followed by its subtree indented one tab deeper, and leaves
as "Class: <label>".
*/
func (t *Tree) String() string {
	if t == nil || t.Root == nil || t.Index == nil {
		return ""
	}
	var b strings.Builder
	t.subtreeString(&b, t.Root, "")
	return b.String()
}

func (t *Tree) subtreeString(b *strings.Builder, n Node, indent string) {
	switch node := n.(type) {
	case Leaf:
		fmt.Fprintf(b, "%sClass: %s\n", indent, t.Index.Class().Value(node.Class))
	case *Internal:
		f := t.Index.Feature(node.Feature)
		for c, child := range node.Children {
			fmt.Fprintf(b, "%s%v\n", indent, feature.NewCriterion(f, c))
			t.subtreeString(b, child, indent+"\t")
		}
	}
}
