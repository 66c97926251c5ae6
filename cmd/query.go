package cmd

import (
	"fmt"

	"github.com/heathj/minidom/parser/selector"
	"github.com/heathj/minidom/parser/spec"
	"github.com/spf13/cobra"
)

func newQueryCmd(opts *options) *cobra.Command {
	var first, explain bool
	queryCmd := &cobra.Command{
		Use:   "query <selector> [file]",
		Short: "Print the elements matching a selector",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			list := selector.Compile(args[0])
			opts.logger.WithField("method", "query").Debugf("compiled %q as %q", args[0], list.String())
			if explain {
				for _, g := range list {
					fmt.Fprintln(cmd.OutOrStdout(), g.String())
				}
				return nil
			}

			doc, err := opts.parse(cmd, args, 1)
			if err != nil {
				return err
			}

			var nodes spec.NodeList
			if first {
				if n := doc.QuerySelector(args[0]); n != nil {
					nodes = spec.NodeList{n}
				}
			} else {
				nodes = doc.QuerySelectorAll(args[0])
			}
			return opts.printNodes(cmd.OutOrStdout(), nodes)
		},
	}

	queryCmd.Flags().BoolVar(&first, "first", false, "Only the first match in document order")
	queryCmd.Flags().BoolVar(&explain, "explain", false, "Print the compiled selector groups instead of matching")
	return queryCmd
}
