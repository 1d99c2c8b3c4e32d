package execscout

import (
	"context"
	"strings"
)

// FindNameNear searches outward from titleNode for a person's name.
//
// At each step the previous element sibling of the current node is checked,
// then every descendant of that sibling in document order. The first text
// accepted by IsLikelyName is returned. Otherwise the search moves to the
// parent, for at most maxDistance steps.
//
// Returns false if no candidate is accepted within the radius. A
// non-positive maxDistance searches nothing.
func (f *NameFinder) FindNameNear(ctx context.Context, titleNode Node, maxDistance int) (string, bool) {
	current := titleNode
	for distance := 0; current != nil && distance < maxDistance; distance++ {
		if sibling := current.PrevSibling(); sibling != nil {
			if name, ok := f.checkTree(ctx, sibling); ok {
				f.logger().DebugContext(ctx, "name found near title",
					"name", name,
					"tag", sibling.TagName(),
					"distance", distance,
				)
				return name, true
			}
		}
		current = current.Parent()
	}
	return "", false
}

// checkTree checks n itself and then all of its descendants.
func (f *NameFinder) checkTree(ctx context.Context, n Node) (string, bool) {
	if name, ok := f.checkNode(ctx, n); ok {
		return name, true
	}
	for _, d := range Descendants(n) {
		if name, ok := f.checkNode(ctx, d); ok {
			return name, true
		}
	}
	return "", false
}

func (f *NameFinder) checkNode(ctx context.Context, n Node) (string, bool) {
	text := strings.TrimSpace(n.Text())
	if text == "" {
		return "", false
	}
	if f.IsLikelyName(ctx, text) {
		return text, true
	}
	return "", false
}
