// Package parser builds a node tree out of HTML-like markup. It is
// tolerant: unbalanced, truncated or otherwise broken markup never makes it
// fail, it only changes the shape of the tree.
package parser

import (
	"io"

	"github.com/heathj/minidom/parser/spec"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config tunes a parse. The zero value is ready to use.
type Config struct {
	// Logger receives debug entries about recovered markup. Defaults to the
	// logrus standard logger.
	Logger logrus.FieldLogger
}

func (c Config) logger() logrus.FieldLogger {
	if c.Logger == nil {
		return logrus.StandardLogger()
	}
	return c.Logger
}

type Parser struct {
	Tokenizer       *HTMLTokenizer
	TreeConstructor *HTMLTreeConstructor
}

func NewParser(markup string, config Config) *Parser {
	return &Parser{
		Tokenizer:       NewHTMLTokenizer(markup, config),
		TreeConstructor: NewHTMLTreeConstructor(config),
	}
}

// Start runs the tokenizer to the end and returns the document.
func (p *Parser) Start() *spec.Node {
	for p.Tokenizer.Next() {
		p.TreeConstructor.ProcessToken(p.Tokenizer.Token())
	}
	return p.TreeConstructor.HTMLDocument
}

// Parse builds the tree for markup. It never fails; the worst input yields
// an empty document.
func Parse(markup string) *spec.Node {
	return ParseWithConfig(markup, Config{})
}

func ParseWithConfig(markup string, config Config) *spec.Node {
	return NewParser(markup, config).Start()
}

// ParseReader reads all of r before parsing; only the read can fail.
func ParseReader(r io.Reader, config Config) (*spec.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading markup")
	}
	return ParseWithConfig(string(data), config), nil
}
