package spec

import "strings"

// AttrMatch is the constraint Find places on one attribute.
type AttrMatch struct {
	Value string
	Exact bool
}

// Present matches any value, including the empty one.
func Present() AttrMatch {
	return AttrMatch{}
}

// Equals matches exactly value, case-sensitively.
func Equals(value string) AttrMatch {
	return AttrMatch{Value: value, Exact: true}
}

// Attrs maps attribute names to constraints. The keys "class" and "id" are
// special: class tests membership of every listed token in the class list,
// id tests the identifier.
type Attrs map[string]AttrMatch

// Find returns the first element below n with the given tag ("" for any
// tag) satisfying attrs.
func (n *Node) Find(tag string, attrs Attrs) *Node {
	if found := query(n, false, true, finder(tag, attrs)); len(found) > 0 {
		return found[0]
	}
	return nil
}

// FindAll is Find without stopping at the first element.
func (n *Node) FindAll(tag string, attrs Attrs) NodeList {
	return query(n, false, false, finder(tag, attrs))
}

// GetElementById returns the first element below n whose id is id.
func (n *Node) GetElementById(id string) *Node {
	return n.Find("", Attrs{"id": Equals(id)})
}

// GetElementsByTagName returns the elements below n named qualifiedName;
// "*" selects all of them.
func (n *Node) GetElementsByTagName(qualifiedName string) NodeList {
	if qualifiedName == "*" {
		qualifiedName = ""
	}
	return n.FindAll(qualifiedName, nil)
}

// GetElementsByClassName returns the elements below n carrying every
// class in classNames.
func (n *Node) GetElementsByClassName(classNames string) NodeList {
	if len(strings.Fields(classNames)) == 0 {
		return nil
	}
	return n.FindAll("", Attrs{"class": Equals(classNames)})
}

func finder(tag string, attrs Attrs) func(*Node) bool {
	tag = strings.ToLower(tag)
	return func(e *Node) bool {
		if tag != "" && e.NodeName != tag {
			return false
		}
		for name, m := range attrs {
			if !matchesAttr(e, strings.ToLower(name), m) {
				return false
			}
		}
		return true
	}
}

func matchesAttr(e *Node, name string, m AttrMatch) bool {
	value, ok := e.GetAttribute(name)
	if !ok {
		return false
	}
	if !m.Exact {
		return true
	}

	switch name {
	case "class":
		classes := e.ClassList()
		for _, class := range strings.Fields(m.Value) {
			if !classes.Contains(class) {
				return false
			}
		}
		return true
	case "id":
		return e.ID() == m.Value
	}
	return value == m.Value
}
