// Package selector compiles the supported subset of CSS selector syntax
// into a reusable structure. It knows nothing about nodes; matching lives
// next to the node model.
package selector

import "strings"

// Combinator is the relation between a step and the step to its left.
type Combinator uint8

const (
	// Descendant is written as whitespace: the left step matches any ancestor.
	Descendant Combinator = iota
	// Child is written as '>': the left step matches the immediate parent.
	Child
)

func (c Combinator) String() string {
	if c == Child {
		return " > "
	}
	return " "
}

// AttrTest is a single [name] or [name=value] test.
type AttrTest struct {
	Name     string
	Value    string
	HasValue bool
}

// Compound is the simple selector of one step. An empty Tag or "*" means
// any element.
type Compound struct {
	Tag     string
	ID      string
	Classes []string
	Attrs   []AttrTest
}

// AnyTag reports whether the compound places no constraint on the tag name.
func (c Compound) AnyTag() bool {
	return c.Tag == "" || c.Tag == "*"
}

func (c Compound) empty() bool {
	return c.Tag == "" && c.ID == "" && len(c.Classes) == 0 && len(c.Attrs) == 0
}

func (c Compound) String() string {
	var b strings.Builder
	if c.Tag != "" {
		b.WriteString(c.Tag)
	}
	if c.ID != "" {
		b.WriteString("#" + c.ID)
	}
	for _, class := range c.Classes {
		b.WriteString("." + class)
	}
	for _, a := range c.Attrs {
		b.WriteString("[" + a.Name)
		if a.HasValue {
			b.WriteString(`="` + a.Value + `"`)
		}
		b.WriteString("]")
	}
	if b.Len() == 0 {
		return "*"
	}
	return b.String()
}

// Step pairs a compound with the combinator linking it to the previous
// step. The combinator of the first step of a group is meaningless.
type Step struct {
	Combinator Combinator
	Compound
}

// Group is one comma separated alternative, steps in source order.
type Group []Step

func (g Group) String() string {
	var b strings.Builder
	for i, s := range g {
		if i > 0 {
			b.WriteString(s.Combinator.String())
		}
		b.WriteString(s.Compound.String())
	}
	return b.String()
}

// List is the compiled form of a whole selector string. An element
// satisfies the list if it satisfies any group.
type List []Group

func (l List) String() string {
	groups := make([]string, 0, len(l))
	for _, g := range l {
		groups = append(groups, g.String())
	}
	return strings.Join(groups, ", ")
}
