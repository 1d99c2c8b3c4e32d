package mock

import "github.com/fwojciec/execscout"

var _ execscout.Node = (*Node)(nil)

// Node is an in-memory execscout.Node for building synthetic trees.
// Use NewNode and Append so parent and sibling links stay consistent.
type Node struct {
	Tag     string
	OwnText string

	parent   *Node
	children []*Node
}

// NewNode returns a detached node with the given tag, own text, and children.
func NewNode(tag, text string, children ...*Node) *Node {
	n := &Node{Tag: tag, OwnText: text}
	for _, c := range children {
		n.Append(c)
	}
	return n
}

// Append adds child as the last child of n.
func (n *Node) Append(child *Node) *Node {
	child.parent = n
	n.children = append(n.children, child)
	return n
}

// Text returns the node's own text followed by its children's text.
func (n *Node) Text() string {
	s := n.OwnText
	for _, c := range n.children {
		s += c.Text()
	}
	return s
}

func (n *Node) TagName() string { return n.Tag }

func (n *Node) Parent() execscout.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) PrevSibling() execscout.Node {
	if n.parent == nil {
		return nil
	}
	for i, c := range n.parent.children {
		if c == n {
			if i == 0 {
				return nil
			}
			return n.parent.children[i-1]
		}
	}
	return nil
}

func (n *Node) Children() []execscout.Node {
	out := make([]execscout.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}
