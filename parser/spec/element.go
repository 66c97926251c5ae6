package spec

import "strings"

// Element is an individual HTML element that gets added to the tree.
// Every accessor tolerates a nil receiver so they can be called on any
// node; non-elements simply have no attributes.
// https:domspec.whatwg.org/#interface-element
type Element struct {
	LocalName  string
	Attributes *NamedNodeMap
}

func (e *Element) HasAttributes() bool {
	return e != nil && e.Attributes.Length() > 0
}

// GetAttributeNames returns the attribute names in sorted order.
func (e *Element) GetAttributeNames() []string {
	if e == nil {
		return nil
	}
	return e.Attributes.Names()
}

// GetAttribute returns the raw value and whether the attribute is present.
func (e *Element) GetAttribute(qualifiedName string) (string, bool) {
	if e == nil {
		return "", false
	}
	attr := e.Attributes.GetNamedItem(qualifiedName)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}

func (e *Element) SetAttribute(qualifiedName, value string) {
	if e == nil {
		return
	}
	e.Attributes.SetNamedItem(NewAttr(qualifiedName, value))
}

func (e *Element) RemoveAttribute(qualifiedName string) {
	if e == nil {
		return
	}
	e.Attributes.RemoveNamedItem(qualifiedName)
}

func (e *Element) HasAttribute(qualifiedName string) bool {
	_, ok := e.GetAttribute(qualifiedName)
	return ok
}

// ToggleAttribute removes a present attribute or adds it with an empty
// value, unless force pins the outcome. It reports whether the attribute
// is present afterwards.
func (e *Element) ToggleAttribute(qualifiedName string, force ...bool) bool {
	if e == nil {
		return false
	}
	want := !e.HasAttribute(qualifiedName)
	if len(force) > 0 {
		want = force[0]
	}
	switch {
	case want && !e.HasAttribute(qualifiedName):
		e.SetAttribute(qualifiedName, "")
	case !want:
		e.RemoveAttribute(qualifiedName)
	}
	return want
}

// ID is the value of the id attribute.
func (e *Element) ID() string {
	id, _ := e.GetAttribute("id")
	return id
}

// ClassName is the raw value of the class attribute.
func (e *Element) ClassName() string {
	class, _ := e.GetAttribute("class")
	return class
}

// ClassList splits the class attribute on whitespace. It is derived on
// every call, so attribute changes show up immediately.
func (e *Element) ClassList() DOMTokenList {
	return DOMTokenList(strings.Fields(e.ClassName()))
}
