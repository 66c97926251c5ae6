package cmd

import (
	"fmt"
	"io"

	yaml "github.com/goccy/go-yaml"
	"github.com/heathj/minidom/internal/config"
	"github.com/heathj/minidom/parser/spec"
	"github.com/pkg/errors"
)

// match is how an element is written out in the yaml format.
type match struct {
	Tag        string            `yaml:"tag"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
	Text       string            `yaml:"text"`
}

func newMatch(n *spec.Node) match {
	m := match{Tag: n.NodeName, Text: n.TextContent()}
	for _, name := range n.GetAttributeNames() {
		if m.Attributes == nil {
			m.Attributes = make(map[string]string)
		}
		m.Attributes[name], _ = n.GetAttribute(name)
	}
	return m
}

// printNodes writes nodes in the configured format, honouring the limit.
func (o *options) printNodes(w io.Writer, nodes spec.NodeList) error {
	if o.config.Limit > 0 && len(nodes) > o.config.Limit {
		nodes = nodes[:o.config.Limit]
	}

	switch o.config.Format {
	case config.FormatYAML:
		matches := make([]match, 0, len(nodes))
		for _, n := range nodes {
			matches = append(matches, newMatch(n))
		}
		if err := yaml.NewEncoder(w).Encode(matches); err != nil {
			return errors.Wrap(err, "encoding matches")
		}
	case config.FormatTree:
		for _, n := range nodes {
			if _, err := io.WriteString(w, n.TreeString()); err != nil {
				return errors.Wrap(err, "writing tree")
			}
		}
	default:
		for _, n := range nodes {
			if _, err := fmt.Fprintln(w, n.TextContent()); err != nil {
				return errors.Wrap(err, "writing text")
			}
		}
	}
	return nil
}
