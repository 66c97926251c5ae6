package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTreeCmd(opts *options) *cobra.Command {
	var dump bool
	treeCmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the parsed document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.parse(cmd, args, 0)
			if err != nil {
				return err
			}
			if dump {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), doc.String())
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), doc.TreeString())
			return err
		},
	}

	treeCmd.Flags().BoolVar(&dump, "dump", false, "Use the indented html5lib test format")
	return treeCmd
}
