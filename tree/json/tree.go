/*
Package json serializes trees as JSON documents and reads them back.
*/
package json

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
)

type jsonTree struct {
	RootID string      `json:"rootID"`
	Label  string      `json:"label"`
	Nodes  []*jsonNode `json:"nodes"`
}

type jsonNode struct {
	ID             string   `json:"id"`
	ParentID       string   `json:"pId,omitempty"`
	SubtreeIDs     []string `json:"stIds,omitempty"`
	Value          *string  `json:"v,omitempty"`
	SubtreeFeature string   `json:"f,omitempty"`
	SubtreeColumn  *int     `json:"c,omitempty"`
	Class          *string  `json:"class,omitempty"`
}

/*
WriteJSONTree takes a pointer to a tree.Tree and an io.Writer and serializes
the given tree as JSON onto the io.Writer.
A tree is serialized as a JSON object with the following fields:
  - "rootID": a string with the ID of the node at the root of the tree
  - "label": a string with the name of the feature the tree predicts
  - "nodes": an array with every node of the tree, parents before their
    children. Each node has an "id", the "pId" of its parent, the value "v"
    of the parent's feature that leads to it, and either the name of the
    feature "f" it splits on, its column "c" and the "stIds" of its children
    (in value code order) or the "class" it predicts.

Features and values are serialized by name, so the document must be read
with the same feature.Index the tree was grown with.
An error is returned if the tree is not valid, cannot be serialized or
written onto the io.Writer.
*/
func WriteJSONTree(w io.Writer, t *tree.Tree) error {
	jt, err := Marshal(t)
	if err != nil {
		return err
	}
	_, err = w.Write(jt)
	return err
}

/*
Marshal takes a pointer to a tree.Tree and returns its JSON serialization as
described on WriteJSONTree.
*/
func Marshal(t *tree.Tree) ([]byte, error) {
	err := t.Validate()
	if err != nil {
		return nil, fmt.Errorf("serializing tree as JSON: %v", err)
	}
	jt := &jsonTree{Label: t.Index.Class().Name()}
	var nextID int
	var add func(n tree.Node, parentID string, value *string) string
	add = func(n tree.Node, parentID string, value *string) string {
		nextID++
		jn := &jsonNode{ID: strconv.Itoa(nextID), ParentID: parentID, Value: value}
		jt.Nodes = append(jt.Nodes, jn)
		switch node := n.(type) {
		case tree.Leaf:
			class := t.Index.Class().Value(node.Class)
			jn.Class = &class
		case *tree.Internal:
			f := t.Index.Feature(node.Feature)
			column := node.Feature
			jn.SubtreeFeature = f.Name()
			jn.SubtreeColumn = &column
			for c, child := range node.Children {
				v := f.Value(c)
				jn.SubtreeIDs = append(jn.SubtreeIDs, add(child, jn.ID, &v))
			}
		}
		return jn.ID
	}
	jt.RootID = add(t.Root, "", nil)
	return json.Marshal(jt)
}

/*
ReadJSONTree takes an io.Reader and the feature.Index the tree was grown
with and returns the tree.Tree unmarshalled from the contents of the reader
(see WriteJSONTree for the expected format).
An error is returned if the JSON cannot be read from the io.Reader, refers to
features or values unknown to the index, or does not describe a valid tree.
*/
func ReadJSONTree(r io.Reader, idx *feature.Index) (*tree.Tree, error) {
	jt := &jsonTree{}
	err := json.NewDecoder(r).Decode(jt)
	if err != nil {
		return nil, fmt.Errorf("decoding json tree: %v", err)
	}
	return unmarshal(jt, idx)
}

/*
Unmarshal takes a slice of bytes with a JSON document and the feature.Index
the tree was grown with and returns the tree.Tree described on it or an
error, like ReadJSONTree.
*/
func Unmarshal(data []byte, idx *feature.Index) (*tree.Tree, error) {
	jt := &jsonTree{}
	err := json.Unmarshal(data, jt)
	if err != nil {
		return nil, fmt.Errorf("decoding json tree: %v", err)
	}
	return unmarshal(jt, idx)
}

// featureColumn returns the column of the feature a node splits on, by its
// column if given and by its name otherwise.
func featureColumn(jn *jsonNode, idx *feature.Index) (int, error) {
	if jn.SubtreeColumn == nil {
		fi, ok := idx.Lookup(jn.SubtreeFeature)
		if !ok {
			return -1, fmt.Errorf("node %q splits on unknown feature %q", jn.ID, jn.SubtreeFeature)
		}
		return fi, nil
	}
	fi := *jn.SubtreeColumn
	if fi < 0 || fi >= idx.ClassIndex() || idx.Feature(fi).Name() != jn.SubtreeFeature {
		return -1, fmt.Errorf("node %q splits on unknown feature %q at column %d", jn.ID, jn.SubtreeFeature, fi)
	}
	return fi, nil
}

func unmarshal(jt *jsonTree, idx *feature.Index) (*tree.Tree, error) {
	if jt.Label != idx.Class().Name() {
		return nil, fmt.Errorf("tree predicts %q but the class feature is %q", jt.Label, idx.Class().Name())
	}
	if jt.RootID == "" {
		return nil, fmt.Errorf("no root node id available")
	}
	nodes := make(map[string]*jsonNode, len(jt.Nodes))
	for _, jn := range jt.Nodes {
		if _, ok := nodes[jn.ID]; ok {
			return nil, fmt.Errorf("duplicated node id %q", jn.ID)
		}
		nodes[jn.ID] = jn
	}
	visited := make(map[string]bool, len(nodes))
	var build func(id string) (tree.Node, error)
	build = func(id string) (tree.Node, error) {
		jn, ok := nodes[id]
		if !ok {
			return nil, fmt.Errorf("node %q not found", id)
		}
		if visited[id] {
			return nil, fmt.Errorf("node %q reached twice", id)
		}
		visited[id] = true
		if jn.SubtreeFeature == "" && jn.SubtreeColumn == nil {
			if jn.Class == nil {
				return nil, fmt.Errorf("node %q has neither feature nor class", id)
			}
			c, ok := idx.Class().Code(*jn.Class)
			if !ok {
				return nil, fmt.Errorf("node %q predicts unknown class %q", id, *jn.Class)
			}
			return tree.Leaf{Class: c}, nil
		}
		fi, err := featureColumn(jn, idx)
		if err != nil {
			return nil, err
		}
		f := idx.Feature(fi)
		children := make([]tree.Node, f.Count())
		for _, stID := range jn.SubtreeIDs {
			st, ok := nodes[stID]
			if !ok {
				return nil, fmt.Errorf("node %q not found", stID)
			}
			if st.Value == nil {
				return nil, fmt.Errorf("node %q has no value for feature %s", stID, f.Name())
			}
			c, ok := f.Code(*st.Value)
			if !ok {
				return nil, fmt.Errorf("node %q has unknown value %q for feature %s", stID, *st.Value, f.Name())
			}
			if children[c] != nil {
				return nil, fmt.Errorf("node %q has two children for %s=%s", id, f.Name(), *st.Value)
			}
			child, err := build(stID)
			if err != nil {
				return nil, err
			}
			children[c] = child
		}
		return &tree.Internal{Feature: fi, Children: children}, nil
	}
	root, err := build(jt.RootID)
	if err != nil {
		return nil, err
	}
	t := tree.New(root, idx)
	err = t.Validate()
	if err != nil {
		return nil, fmt.Errorf("decoded tree is invalid: %v", err)
	}
	return t, nil
}
