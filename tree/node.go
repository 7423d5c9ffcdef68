package tree

/*
Node is a node of the tree: either an *Internal node splitting rows by the
value of a feature or a Leaf predicting a class.
*/
type Node interface {
	isNode()
}

/*
Internal is a node that splits rows on a feature. It has a child per value
code of the feature, in code order: Children[c] is the subtree for rows
whose value for the feature has code c.
*/
type Internal struct {
	// Column of the feature rows are split on. It is never the class feature.
	Feature  int
	Children []Node
}

/*
Leaf is a node predicting the class with the given code for all rows
reaching it.
*/
type Leaf struct {
	Class int
}

func (*Internal) isNode() {}

func (Leaf) isNode() {}
