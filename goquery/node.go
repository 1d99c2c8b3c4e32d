// Package goquery implements execscout.PeopleExtractor using goquery, and
// adapts golang.org/x/net/html nodes to execscout.Node.
package goquery

import (
	"strings"

	"github.com/fwojciec/execscout"
	"golang.org/x/net/html"
)

// Ensure node implements execscout.Node at compile time.
var _ execscout.Node = (*node)(nil)

// node adapts an element *html.Node to execscout.Node.
type node struct {
	n *html.Node
}

// NewNode wraps an element node. Returns nil for nil or non-element nodes.
func NewNode(n *html.Node) execscout.Node {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return &node{n: n}
}

// Text returns the text of every descendant text node, concatenated.
func (e *node) Text() string {
	var sb strings.Builder
	collectText(e.n, &sb)
	return sb.String()
}

func collectText(n *html.Node, sb *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			sb.WriteString(c.Data)
		case html.ElementNode:
			collectText(c, sb)
		}
	}
}

func (e *node) TagName() string {
	return e.n.Data
}

// Parent returns the enclosing element; the document node counts as no parent.
func (e *node) Parent() execscout.Node {
	return NewNode(e.n.Parent)
}

// PrevSibling skips text and comment nodes.
func (e *node) PrevSibling() execscout.Node {
	for s := e.n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return &node{n: s}
		}
	}
	return nil
}

func (e *node) Children() []execscout.Node {
	var out []execscout.Node
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, &node{n: c})
		}
	}
	return out
}

// directText returns the concatenated data of n's immediate text children.
func directText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}
