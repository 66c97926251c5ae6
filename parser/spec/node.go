package spec

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/xlab/treeprint"
)

type NodeType uint16

const (
	ElementNode  NodeType = 1
	TextNode     NodeType = 3
	DocumentNode NodeType = 9
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case DocumentNode:
		return "document"
	}
	return "unknown"
}

// ErrHierarchyRequest is returned when an insertion would break the tree.
// https://dom.spec.whatwg.org/#concept-node-ensure-pre-insertion-validity
var ErrHierarchyRequest = errors.New("hierarchy request error")

// NewDocumentNode returns an empty document, the root of a tree.
func NewDocumentNode() *Node {
	n := &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
		Document: &Document{},
	}
	n.OwnerDocument = n
	return n
}

// NewTextNode returns a detached text node holding already decoded data.
func NewTextNode(od *Node, text string) *Node {
	return &Node{
		NodeType:      TextNode,
		NodeName:      "#text",
		OwnerDocument: od,
		Text:          NewText(text),
	}
}

// NewDOMElement returns a detached element. The name is lower-cased.
func NewDOMElement(od *Node, name string) *Node {
	name = strings.ToLower(name)
	return &Node{
		NodeType:      ElementNode,
		NodeName:      name,
		OwnerDocument: od,
		Element: &Element{
			LocalName:  name,
			Attributes: NewNamedNodeMap(nil),
		},
	}
}

// Node is one of the three node variants; NodeType tells which of the
// embedded pointers is set.
// https://dom.spec.whatwg.org/#node
type Node struct {
	NodeType                                                        NodeType
	NodeName                                                        string
	OwnerDocument                                                   *Node
	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	// Node types
	*Element
	*Text
	*Document
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

// ParentElement returns the parent if it is an element.
func (n *Node) ParentElement() *Node {
	if n.ParentNode != nil && n.ParentNode.NodeType == ElementNode {
		return n.ParentNode
	}
	return nil
}

// Children returns the element children in document order.
func (n *Node) Children() NodeList {
	var children NodeList
	for _, c := range n.ChildNodes {
		if c.NodeType == ElementNode {
			children = append(children, c)
		}
	}
	return children
}

// Contains reports whether on is n or one of its descendants.
func (n *Node) Contains(on *Node) bool {
	for i := on; i != nil; i = i.ParentNode {
		if i == n {
			return true
		}
	}
	return false
}

// AppendChild adds on as the last child of n and sets its parent in the
// same step. Nodes are never moved once attached.
// https://dom.whatwg.org/#concept-node-append
func (n *Node) AppendChild(on *Node) (*Node, error) {
	if err := n.ensurePreInsertionValidity(on); err != nil {
		return nil, err
	}
	n.appendChild(on)
	return on, nil
}

func (n *Node) ensurePreInsertionValidity(on *Node) error {
	switch {
	case on == nil:
		return errors.Wrap(ErrHierarchyRequest, "nil child")
	case n.NodeType == TextNode:
		return errors.Wrapf(ErrHierarchyRequest, "text node cannot have children")
	case on.NodeType == DocumentNode:
		return errors.Wrapf(ErrHierarchyRequest, "cannot append a document to %s", n.NodeName)
	case on.ParentNode != nil:
		return errors.Wrapf(ErrHierarchyRequest, "%s already has a parent", on.NodeName)
	case on == n:
		return errors.Wrapf(ErrHierarchyRequest, "cannot append %s to itself", n.NodeName)
	// a childless node cannot be an ancestor of n
	case on.HasChildNodes() && on.Contains(n):
		return errors.Wrapf(ErrHierarchyRequest, "%s is an ancestor of %s", on.NodeName, n.NodeName)
	}
	return nil
}

func (n *Node) appendChild(on *Node) {
	if n.LastChild != nil {
		on.PreviousSibling = n.LastChild
		n.LastChild.NextSibling = on
	} else {
		n.FirstChild = on
	}
	on.ParentNode = n
	n.LastChild = on
	n.ChildNodes = append(n.ChildNodes, on)
}

// TextContent concatenates the data of every text node in the subtree in
// document order. It is recomputed on every call.
func (n *Node) TextContent() string {
	if n.NodeType == TextNode {
		return n.Data
	}

	var b strings.Builder
	it := NewNodeIterator(n, false)
	for cur := it.NextNode(); cur != nil; cur = it.NextNode() {
		if cur.NodeType == TextNode {
			b.WriteString(cur.Data)
		}
	}
	return b.String()
}

func serializeNodeType(node *Node, ident int) string {
	switch node.NodeType {
	case ElementNode:
		e := "<" + node.NodeName + ">"
		names := node.GetAttributeNames()
		if len(names) == 0 {
			return e
		}
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		for _, name := range names {
			value, _ := node.GetAttribute(name)
			e += "\n" + spaces + name + "=\"" + value + "\""
		}
		return e
	case TextNode:
		return "\"" + node.Data + "\""
	case DocumentNode:
		return "#document"
	default:
		return ""
	}
}

func (node *Node) serialize(ident int) string {
	ser := serializeNodeType(node, ident+1) + "\n"
	if node.NodeType != DocumentNode {
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for _, child := range node.ChildNodes {
		ser += child.serialize(ident + 1)
	}

	return ser
}

// String dumps the subtree in the indented format of the html5lib tree
// construction tests.
func (node *Node) String() string {
	return strings.TrimRight(node.serialize(0), "\n")
}

// TreeString renders the subtree as a box drawing tree.
func (n *Node) TreeString() string {
	tree := treeprint.New()
	tree.SetValue(n.label())
	addTreeBranches(tree, n)
	return tree.String()
}

func addTreeBranches(tree treeprint.Tree, n *Node) {
	for _, c := range n.ChildNodes {
		if c.HasChildNodes() {
			addTreeBranches(tree.AddBranch(c.label()), c)
			continue
		}
		tree.AddNode(c.label())
	}
}

func (n *Node) label() string {
	switch n.NodeType {
	case ElementNode:
		var b strings.Builder
		b.WriteString("<" + n.NodeName)
		for _, name := range n.GetAttributeNames() {
			value, _ := n.GetAttribute(name)
			b.WriteString(" " + name + "=\"" + value + "\"")
		}
		b.WriteString(">")
		return b.String()
	case TextNode:
		return "\"" + n.Data + "\""
	case DocumentNode:
		if n.URL != "" {
			return n.NodeName + " " + n.URL
		}
	}
	return n.NodeName
}

// sortedKeys is shared by the dumps so their output is stable.
func sortedKeys(m map[string]*Attr) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
