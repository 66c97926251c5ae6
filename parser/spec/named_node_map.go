package spec

import "strings"

// Attr is https:domspec.whatwg.org/#attr
type Attr struct {
	Name  string
	Value string
}

// NewAttr lower-cases the name; attribute names are case-insensitive.
func NewAttr(name, value string) *Attr {
	return &Attr{
		Name:  strings.ToLower(name),
		Value: value,
	}
}

func NewNamedNodeMap(attrs map[string]string) *NamedNodeMap {
	a := make(map[string]*Attr, len(attrs))
	for k, v := range attrs {
		attr := NewAttr(k, v)
		a[attr.Name] = attr
	}
	return &NamedNodeMap{
		Attrs: a,
	}
}

// NamedNodeMap holds the attributes of one element keyed by lower-cased
// name. Insertion order is not kept.
type NamedNodeMap struct {
	Attrs map[string]*Attr
}

func (n *NamedNodeMap) Length() int {
	if n == nil {
		return 0
	}
	return len(n.Attrs)
}

func (n *NamedNodeMap) GetNamedItem(qn string) *Attr {
	if n == nil {
		return nil
	}
	return n.Attrs[strings.ToLower(qn)]
}

// SetNamedItem stores s, replacing any attribute with the same name.
func (n *NamedNodeMap) SetNamedItem(s *Attr) *Attr {
	if s == nil {
		return nil
	}
	if n.Attrs == nil {
		n.Attrs = make(map[string]*Attr)
	}
	s.Name = strings.ToLower(s.Name)
	old := n.Attrs[s.Name]
	n.Attrs[s.Name] = s
	return old
}

func (n *NamedNodeMap) RemoveNamedItem(qn string) *Attr {
	if n == nil {
		return nil
	}
	qn = strings.ToLower(qn)
	old, ok := n.Attrs[qn]
	if !ok {
		return nil
	}
	delete(n.Attrs, qn)
	return old
}

// Names returns the attribute names sorted.
func (n *NamedNodeMap) Names() []string {
	if n == nil {
		return nil
	}
	return sortedKeys(n.Attrs)
}
