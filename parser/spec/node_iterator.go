package spec

// NodeIterator walks a subtree in document order (depth-first, pre-order)
// with an explicit stack, so deep trees do not grow the goroutine stack.
// https:domspec.whatwg.org/#nodeiterator
type NodeIterator struct {
	stack NodeList
}

// NewNodeIterator starts at root. With includeRoot unset the first node
// returned is root's first child.
func NewNodeIterator(root *Node, includeRoot bool) *NodeIterator {
	it := &NodeIterator{}
	if includeRoot {
		it.stack = NodeList{root}
	} else {
		it.pushChildren(root)
	}
	return it
}

func (it *NodeIterator) pushChildren(n *Node) {
	for i := len(n.ChildNodes) - 1; i >= 0; i-- {
		it.stack = append(it.stack, n.ChildNodes[i])
	}
}

// NextNode returns the next node, or nil once the walk is over.
func (it *NodeIterator) NextNode() *Node {
	n := it.stack.Pop()
	if n != nil {
		it.pushChildren(n)
	}
	return n
}

// NextElement skips everything that is not an element.
func (it *NodeIterator) NextElement() *Node {
	for n := it.NextNode(); n != nil; n = it.NextNode() {
		if n.NodeType == ElementNode {
			return n
		}
	}
	return nil
}
