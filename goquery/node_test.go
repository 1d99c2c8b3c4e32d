package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/execscout"
	"github.com/fwojciec/execscout/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// findElement returns the first element with the given tag in document order.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func parse(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func TestNode(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<div id="card">
	<h3>Jane <em>Q</em> Doe</h3>
	<!-- separator -->
	<p>CEO</p>
</div>`)

	p := goquery.NewNode(findElement(doc, "p"))
	require.NotNil(t, p)

	t.Run("reports tag name", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "p", p.TagName())
	})

	t.Run("previous sibling skips text and comments", func(t *testing.T) {
		t.Parallel()

		prev := p.PrevSibling()
		require.NotNil(t, prev)
		assert.Equal(t, "h3", prev.TagName())
		assert.Equal(t, "Jane Q Doe", prev.Text())
	})

	t.Run("first child has no previous sibling", func(t *testing.T) {
		t.Parallel()

		h3 := p.PrevSibling()
		assert.True(t, h3.PrevSibling() == nil)
	})

	t.Run("children are elements in order", func(t *testing.T) {
		t.Parallel()

		div := p.Parent()
		require.NotNil(t, div)
		children := div.Children()
		require.Len(t, children, 2)
		assert.Equal(t, "h3", children[0].TagName())
		assert.Equal(t, "p", children[1].TagName())
	})

	t.Run("parent chain ends at html element", func(t *testing.T) {
		t.Parallel()

		var tags []string
		for n := p.Parent(); n != nil; n = n.Parent() {
			tags = append(tags, n.TagName())
		}
		assert.Equal(t, []string{"div", "body", "html"}, tags)
	})

	t.Run("descendants are in document order", func(t *testing.T) {
		t.Parallel()

		var tags []string
		for _, d := range execscout.Descendants(p.Parent()) {
			tags = append(tags, d.TagName())
		}
		assert.Equal(t, []string{"h3", "em", "p"}, tags)
	})
}

func TestNewNode_NonElement(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<p>hi</p>`)

	assert.True(t, goquery.NewNode(nil) == nil)
	assert.True(t, goquery.NewNode(doc) == nil)
}
