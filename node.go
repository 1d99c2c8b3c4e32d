package execscout

// Node is an element of a parsed HTML document. Name finding depends only on
// this interface so any parser can back it.
//
// Implementations must return a nil interface value, not a typed nil, from
// Parent and PrevSibling when there is no such node.
type Node interface {
	// Text returns the concatenated text of the node and its descendants.
	Text() string

	// TagName returns the lower-case element name (e.g., "div").
	TagName() string

	// Parent returns the enclosing element, or nil at the root.
	Parent() Node

	// PrevSibling returns the nearest preceding element sibling, or nil.
	PrevSibling() Node

	// Children returns the element children in document order.
	Children() []Node
}

// Descendants returns every element below n in document order (pre-order).
func Descendants(n Node) []Node {
	var out []Node
	var walk func(Node)
	walk = func(cur Node) {
		for _, c := range cur.Children() {
			out = append(out, c)
			walk(c)
		}
	}
	walk(n)
	return out
}
