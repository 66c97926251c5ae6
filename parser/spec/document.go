package spec

// Document is https:domspec.whatwg.org/#interface-document
type Document struct {
	// URL names where the markup came from, if anybody said so.
	URL string
}

// DocumentElement returns the first element child of a document, nil when
// there is none. Stray text around it is allowed.
func (n *Node) DocumentElement() *Node {
	if n.NodeType != DocumentNode {
		return nil
	}
	for _, c := range n.ChildNodes {
		if c.NodeType == ElementNode {
			return c
		}
	}
	return nil
}

// CreateElement returns a detached element owned by n's document.
func (n *Node) CreateElement(localName string) *Node {
	return NewDOMElement(n.ownerDocument(), localName)
}

// CreateTextNode returns a detached text node owned by n's document.
func (n *Node) CreateTextNode(data string) *Node {
	return NewTextNode(n.ownerDocument(), data)
}

func (n *Node) ownerDocument() *Node {
	if n.NodeType == DocumentNode {
		return n
	}
	return n.OwnerDocument
}
