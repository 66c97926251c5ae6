package cmd

import (
	"strings"

	"github.com/heathj/minidom/parser/spec"
	"github.com/spf13/cobra"
)

func newFindCmd(opts *options) *cobra.Command {
	var attrs []string
	findCmd := &cobra.Command{
		Use:   "find [tag] [file]",
		Short: "Print the elements with a tag and attributes",
		Long: `Print the elements with a tag and attributes.

An empty tag or "*" matches any element. Each --attr is either a name,
which only has to be present, or name=value. For class the value is a
list of classes that must all be present.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tag string
			if len(args) > 0 && args[0] != "*" {
				tag = args[0]
			}

			doc, err := opts.parse(cmd, args, 1)
			if err != nil {
				return err
			}
			return opts.printNodes(cmd.OutOrStdout(), doc.FindAll(tag, parseAttrs(attrs)))
		},
	}

	findCmd.Flags().StringArrayVarP(&attrs, "attr", "a", nil, "Attribute test, name or name=value (repeatable)")
	return findCmd
}

func parseAttrs(specs []string) spec.Attrs {
	if len(specs) == 0 {
		return nil
	}
	attrs := make(spec.Attrs, len(specs))
	for _, s := range specs {
		if name, value, ok := strings.Cut(s, "="); ok {
			attrs[name] = spec.Equals(value)
		} else {
			attrs[s] = spec.Present()
		}
	}
	return attrs
}
