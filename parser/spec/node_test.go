package spec

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTree(t *testing.T) (doc, div, span, text *Node) {
	t.Helper()
	doc = NewDocumentNode()
	div = doc.CreateElement("DIV")
	span = doc.CreateElement("span")
	text = doc.CreateTextNode("hi")

	_, err := doc.AppendChild(div)
	require.NoError(t, err)
	_, err = div.AppendChild(span)
	require.NoError(t, err)
	_, err = span.AppendChild(text)
	require.NoError(t, err)
	return doc, div, span, text
}

func TestAppendChildLinks(t *testing.T) {
	doc, div, span, text := newTestTree(t)

	assert.Equal(t, "div", div.NodeName)
	assert.Equal(t, doc, div.ParentNode)
	assert.Nil(t, div.ParentElement())
	assert.Equal(t, div, span.ParentElement())
	assert.Equal(t, span, text.ParentNode)
	assert.Equal(t, doc, text.OwnerDocument)
	assert.Equal(t, doc, doc.OwnerDocument)

	second := doc.CreateElement("p")
	_, err := div.AppendChild(second)
	require.NoError(t, err)
	assert.Equal(t, span, div.FirstChild)
	assert.Equal(t, second, div.LastChild)
	assert.Equal(t, second, span.NextSibling)
	assert.Equal(t, span, second.PreviousSibling)
	assert.Equal(t, NodeList{span, second}, div.ChildNodes)
}

func TestAppendChildRejects(t *testing.T) {
	doc, div, span, text := newTestTree(t)

	tests := []struct {
		name   string
		parent *Node
		child  *Node
	}{
		{"nil child", div, nil},
		{"child of a text node", text, doc.CreateElement("b")},
		{"document child", div, NewDocumentNode()},
		{"already attached", doc, span},
		{"itself", span, span},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parent.AppendChild(tt.child)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrHierarchyRequest))
			assert.Equal(t, ErrHierarchyRequest, errors.Cause(err))
		})
	}
}

func TestAppendChildRejectsAncestor(t *testing.T) {
	doc := NewDocumentNode()
	outer := doc.CreateElement("div")
	inner := doc.CreateElement("div")
	_, err := outer.AppendChild(inner)
	require.NoError(t, err)

	_, err = inner.AppendChild(outer)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHierarchyRequest))
	assert.Nil(t, outer.ParentNode)
	assert.False(t, inner.HasChildNodes())
}

func TestContains(t *testing.T) {
	doc, div, span, text := newTestTree(t)
	assert.True(t, doc.Contains(text))
	assert.True(t, div.Contains(div))
	assert.True(t, div.Contains(span))
	assert.False(t, span.Contains(div))
	assert.False(t, div.Contains(nil))
}

func TestChildren(t *testing.T) {
	doc := NewDocumentNode()
	div := doc.CreateElement("div")
	for _, c := range []*Node{
		doc.CreateTextNode("a"),
		doc.CreateElement("b"),
		doc.CreateTextNode("c"),
		doc.CreateElement("d"),
	} {
		_, err := div.AppendChild(c)
		require.NoError(t, err)
	}

	children := div.Children()
	require.Len(t, children, 2)
	assert.Equal(t, "b", children[0].NodeName)
	assert.Equal(t, "d", children[1].NodeName)
	assert.Len(t, div.ChildNodes, 4)
}

func TestTextContent(t *testing.T) {
	doc := NewDocumentNode()
	p := doc.CreateElement("p")
	b := doc.CreateElement("b")
	mustAppend(t, doc, p)
	mustAppend(t, p, doc.CreateTextNode("one "))
	mustAppend(t, p, b)
	mustAppend(t, b, doc.CreateTextNode("two"))
	mustAppend(t, p, doc.CreateTextNode(" three"))

	assert.Equal(t, "one two three", p.TextContent())
	assert.Equal(t, "one two three", doc.TextContent())
	assert.Equal(t, "two", b.TextContent())
	assert.Equal(t, "two", b.FirstChild.TextContent())
	assert.Equal(t, "", doc.CreateElement("i").TextContent())
}

func TestTextContentDeep(t *testing.T) {
	doc := NewDocumentNode()
	cur := doc
	for i := 0; i < 200000; i++ {
		e := doc.CreateElement("div")
		mustAppend(t, cur, e)
		cur = e
	}
	mustAppend(t, cur, doc.CreateTextNode("leaf"))
	assert.Equal(t, "leaf", doc.TextContent())
}

func TestDocumentElement(t *testing.T) {
	doc := NewDocumentNode()
	assert.Nil(t, doc.DocumentElement())
	mustAppend(t, doc, doc.CreateTextNode(" "))
	html := doc.CreateElement("html")
	mustAppend(t, doc, html)
	assert.Equal(t, html, doc.DocumentElement())
	assert.Nil(t, html.DocumentElement())
}

func TestString(t *testing.T) {
	doc, _, span, _ := newTestTree(t)
	span.SetAttribute("class", "x")
	span.SetAttribute("ID", "y")

	expected := strings.Join([]string{
		"#document",
		"| <div>",
		"|   <span>",
		`|     class="x"`,
		`|     id="y"`,
		`|     "hi"`,
	}, "\n")
	assert.Equal(t, expected, doc.String())
}

func TestTreeString(t *testing.T) {
	doc, _, span, _ := newTestTree(t)
	span.SetAttribute("class", "x")
	mustAppend(t, doc, doc.CreateElement("br"))

	out := doc.TreeString()
	assert.True(t, strings.HasPrefix(out, "#document\n"), out)
	assert.Contains(t, out, "<div>")
	assert.Contains(t, out, `<span class="x">`)
	assert.Contains(t, out, `"hi"`)
	assert.Contains(t, out, "<br>")
	assert.Less(t, strings.Index(out, "<div>"), strings.Index(out, `"hi"`))

	doc.URL = "page.html"
	assert.True(t, strings.HasPrefix(doc.TreeString(), "#document page.html\n"))
	assert.True(t, strings.HasPrefix(doc.String(), "#document\n"))
}

func TestNodeTypeString(t *testing.T) {
	assert.Equal(t, "element", ElementNode.String())
	assert.Equal(t, "text", TextNode.String())
	assert.Equal(t, "document", DocumentNode.String())
	assert.Equal(t, "unknown", NodeType(2).String())
}

func mustAppend(t *testing.T, parent, child *Node) {
	t.Helper()
	_, err := parent.AppendChild(child)
	require.NoError(t, err)
}
