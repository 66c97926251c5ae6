package parser

import (
	"github.com/heathj/minidom/parser/spec"
	"github.com/sirupsen/logrus"
)

// voidElements never get children, however they are written.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// rawTextElements hold their body as one literal text node.
var rawTextElements = map[string]bool{
	"script":   true,
	"style":    true,
	"textarea": true,
}

type treeConstructionHandler func(t *Token)

// HTMLTreeConstructor turns tokens into a tree, keeping a stack of the
// containers that still accept children.
type HTMLTreeConstructor struct {
	HTMLDocument        *spec.Node
	stackOfOpenElements *spec.StackOfOpenElements
	logger              logrus.FieldLogger
	mappings            map[tokenType]treeConstructionHandler
}

// NewHTMLTreeConstructor creates an HTMLTreeConstructor around a fresh
// document.
func NewHTMLTreeConstructor(config Config) *HTMLTreeConstructor {
	doc := spec.NewDocumentNode()
	tr := HTMLTreeConstructor{
		HTMLDocument:        doc,
		stackOfOpenElements: spec.NewStackOfOpenElements(doc),
		logger:              config.logger(),
	}

	tr.createMappings()
	return &tr
}

func (c *HTMLTreeConstructor) createMappings() {
	c.mappings = map[tokenType]treeConstructionHandler{
		characterToken: c.characterHandler,
		startTagToken:  c.startTagHandler,
		endTagToken:    c.endTagHandler,
		commentToken:   c.commentHandler,
		endOfFileToken: c.endOfFileHandler,
	}
}

// ProcessToken hands t to the handler for its type.
func (c *HTMLTreeConstructor) ProcessToken(t *Token) {
	if t == nil {
		return
	}
	if handler, ok := c.mappings[t.TokenType]; ok {
		handler(t)
	}
}

func (c *HTMLTreeConstructor) getCurrentNode() *spec.Node {
	return c.stackOfOpenElements.CurrentNode()
}

func (c *HTMLTreeConstructor) log(method string) logrus.FieldLogger {
	return c.logger.WithField("method", method)
}

// insert appends n to parent. The nodes handed in are always freshly
// created, so a failure here is a bug in the constructor.
func (c *HTMLTreeConstructor) insert(parent, n *spec.Node) {
	if _, err := parent.AppendChild(n); err != nil {
		c.log("insert").WithError(err).Error("cannot insert node")
	}
}

func (c *HTMLTreeConstructor) characterHandler(t *Token) {
	if t.Data == "" {
		return
	}
	c.insert(c.getCurrentNode(), spec.NewTextNode(c.HTMLDocument, t.Data))
}

func (c *HTMLTreeConstructor) createElementForToken(t *Token) *spec.Node {
	elem := spec.NewDOMElement(c.HTMLDocument, t.TagName)
	for k, v := range t.Attributes {
		elem.SetAttribute(k, v)
	}
	return elem
}

func (c *HTMLTreeConstructor) startTagHandler(t *Token) {
	elem := c.createElementForToken(t)
	c.insert(c.getCurrentNode(), elem)

	switch {
	case voidElements[t.TagName]:
	case rawTextElements[t.TagName]:
		if t.Data != "" {
			c.insert(elem, spec.NewTextNode(c.HTMLDocument, t.Data))
		}
	default:
		c.stackOfOpenElements.Push(elem)
	}
}

// endTagHandler closes the nearest open element with the same name and
// every element opened after it. An end tag nobody opened is dropped.
func (c *HTMLTreeConstructor) endTagHandler(t *Token) {
	if !c.stackOfOpenElements.PopUntil(t.TagName) {
		c.log("endTagHandler").Debugf("ignoring </%s>, no such element is open", t.TagName)
	}
}

func (c *HTMLTreeConstructor) commentHandler(t *Token) {}

func (c *HTMLTreeConstructor) endOfFileHandler(t *Token) {
	if open := len(c.stackOfOpenElements.NodeList) - 1; open > 0 {
		c.log("endOfFileHandler").Debugf("%d element(s) left open at end of input", open)
	}
}
