package spec

import "github.com/heathj/minidom/parser/selector"

// QuerySelector returns the first element below n, in document order,
// matching any group of selectors. It returns nil when nothing matches.
// https://dom.spec.whatwg.org/#dom-parentnode-queryselector
func (n *Node) QuerySelector(selectors string) *Node {
	list := selector.Compile(selectors)
	if found := query(n, false, true, func(e *Node) bool { return matchesList(e, list) }); len(found) > 0 {
		return found[0]
	}
	return nil
}

// QuerySelectorAll returns every element below n matching any group of
// selectors, in document order and without duplicates.
// https://dom.spec.whatwg.org/#dom-parentnode-queryselectorall
func (n *Node) QuerySelectorAll(selectors string) NodeList {
	list := selector.Compile(selectors)
	return query(n, false, false, func(e *Node) bool { return matchesList(e, list) })
}

// Matches reports whether n itself is an element matching selectors.
func (n *Node) Matches(selectors string) bool {
	return n.NodeType == ElementNode && matchesList(n, selector.Compile(selectors))
}

// Closest returns n or its nearest ancestor element matching selectors.
func (n *Node) Closest(selectors string) *Node {
	list := selector.Compile(selectors)
	for e := n; e != nil; e = e.ParentElement() {
		if e.NodeType == ElementNode && matchesList(e, list) {
			return e
		}
	}
	return nil
}

// query walks root's subtree in document order and collects the elements
// accepted by match. With first set the walk ends at the first hit.
func query(root *Node, includeRoot, first bool, match func(*Node) bool) NodeList {
	var found NodeList
	it := NewNodeIterator(root, includeRoot)
	for e := it.NextElement(); e != nil; e = it.NextElement() {
		if !match(e) {
			continue
		}
		found = append(found, e)
		if first {
			break
		}
	}
	return found
}

func matchesList(e *Node, list selector.List) bool {
	for _, g := range list {
		if matchesGroup(e, g) {
			return true
		}
	}
	return false
}

// matchesGroup checks e against the rightmost step, then walks the steps
// leftwards through e's ancestors. For a descendant combinator the nearest
// ancestor satisfying the step is taken and no other ancestor is tried if
// a step further left fails afterwards, so "a b c" can miss a match that a
// full CSS engine would find.
func matchesGroup(e *Node, g selector.Group) bool {
	if len(g) == 0 {
		return false
	}
	last := len(g) - 1
	if !matchesCompound(e, g[last].Compound) {
		return false
	}

	cur := e
	for i := last; i > 0; i-- {
		prev := g[i-1].Compound
		switch g[i].Combinator {
		case selector.Child:
			cur = cur.ParentElement()
			if cur == nil || !matchesCompound(cur, prev) {
				return false
			}
		default:
			cur = cur.ParentElement()
			for cur != nil && !matchesCompound(cur, prev) {
				cur = cur.ParentElement()
			}
			if cur == nil {
				return false
			}
		}
	}
	return true
}

func matchesCompound(e *Node, c selector.Compound) bool {
	if !c.AnyTag() && e.NodeName != c.Tag {
		return false
	}
	if c.ID != "" && e.ID() != c.ID {
		return false
	}
	if len(c.Classes) > 0 {
		classes := e.ClassList()
		for _, class := range c.Classes {
			if !classes.Contains(class) {
				return false
			}
		}
	}
	for _, a := range c.Attrs {
		value, ok := e.GetAttribute(a.Name)
		if !ok || (a.HasValue && value != a.Value) {
			return false
		}
	}
	return true
}
