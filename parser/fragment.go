package parser

import "github.com/heathj/minidom/parser/spec"

// ParseHTMLFragment parses markup as the content of an element named
// context and returns the top level nodes. They hang off a detached
// element standing in for the context.
func ParseHTMLFragment(context, markup string, config Config) spec.NodeList {
	p := NewParser(markup, config)
	holder := spec.NewDOMElement(p.TreeConstructor.HTMLDocument, context)
	if rawTextElements[holder.NodeName] {
		if markup != "" {
			p.TreeConstructor.insert(holder, spec.NewTextNode(p.TreeConstructor.HTMLDocument, markup))
		}
		return holder.ChildNodes
	}

	p.TreeConstructor.stackOfOpenElements = spec.NewStackOfOpenElements(holder)
	p.Start()
	return holder.ChildNodes
}
