/*
Package dot renders trees as graphviz DOT digraphs.
*/
package dot

import (
	"fmt"
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pbanos/id3/tree"
)

const graphName = "G"

/*
Render takes a tree and returns it as a DOT digraph: one node per tree
node, labelled with the feature it splits on or with "Class: <label>" for
leaves, and one edge per branch labelled with the feature value.
*/
func Render(t *tree.Tree) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	ast, err := gographviz.Parse([]byte(`digraph ` + graphName + ` {}`))
	if err != nil {
		return "", err
	}
	graph := gographviz.NewGraph()
	if err := gographviz.Analyse(ast, graph); err != nil {
		return "", err
	}
	var nextID int
	var add func(n tree.Node) (string, error)
	add = func(n tree.Node) (string, error) {
		name := fmt.Sprintf("n%d", nextID)
		nextID++
		var label string
		switch node := n.(type) {
		case tree.Leaf:
			label = "Class: " + t.Index.Class().Value(node.Class)
		case *tree.Internal:
			label = t.Index.Feature(node.Feature).Name()
		}
		err := graph.AddNode(graphName, name, map[string]string{"label": strconv.Quote(label)})
		if err != nil {
			return "", err
		}
		in, ok := n.(*tree.Internal)
		if !ok {
			return name, nil
		}
		f := t.Index.Feature(in.Feature)
		for c, child := range in.Children {
			childName, err := add(child)
			if err != nil {
				return "", err
			}
			err = graph.AddEdge(name, childName, true, map[string]string{"label": strconv.Quote(f.Value(c))})
			if err != nil {
				return "", err
			}
		}
		return name, nil
	}
	if _, err := add(t.Root); err != nil {
		return "", err
	}
	return graph.String(), nil
}

// Write renders the tree as DOT onto the given io.Writer.
func Write(w io.Writer, t *tree.Tree) error {
	s, err := Render(t)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
