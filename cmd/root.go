package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/heathj/minidom/internal/config"
	"github.com/heathj/minidom/parser"
	"github.com/heathj/minidom/parser/spec"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// options is shared by every subcommand of one root command.
type options struct {
	configPath string
	logLevel   string
	format     string
	limit      int

	config *config.Config
	logger *logrus.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "minidom",
		Short:         "Parse HTML-like markup and query it with CSS selectors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (overrides log_level)")
	flags.StringVarP(&opts.format, "format", "f", "", "Output format: text, tree or yaml (overrides format)")
	flags.IntVarP(&opts.limit, "limit", "n", 0, "Print at most this many matches, 0 for all (overrides limit)")

	rootCmd.AddCommand(
		newQueryCmd(opts),
		newFindCmd(opts),
		newTreeCmd(opts),
	)
	return rootCmd
}

// load reads the config file and lays the flags that were set on top.
func (o *options) load(cmd *cobra.Command) error {
	c, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	overrides := []struct {
		flag, setting, value string
	}{
		{"log-level", "log_level", o.logLevel},
		{"format", "format", o.format},
		{"limit", "limit", fmt.Sprint(o.limit)},
	}
	for _, ov := range overrides {
		if !cmd.Flags().Changed(ov.flag) {
			continue
		}
		if err := c.Set(ov.setting, ov.value); err != nil {
			return errors.WithMessagef(err, "--%s", ov.flag)
		}
	}
	o.config = c

	o.logger = logrus.New()
	o.logger.SetOutput(cmd.ErrOrStderr())
	o.logger.SetLevel(c.Level())
	o.logger.WithField("method", "load").Debugf("config %+v", *c)
	return nil
}

// parse reads the document from the file named in args[i], or from the
// command's input when there is no such argument or it is "-".
func (o *options) parse(cmd *cobra.Command, args []string, i int) (*spec.Node, error) {
	var r io.Reader = cmd.InOrStdin()
	if i < len(args) && args[i] != "-" {
		f, err := os.Open(args[i])
		if err != nil {
			return nil, errors.Wrap(err, "opening markup")
		}
		defer f.Close()
		r = f
	}

	doc, err := parser.ParseReader(r, parser.Config{Logger: o.logger})
	if err != nil {
		return nil, err
	}
	if i < len(args) {
		doc.URL = args[i]
	}
	o.logger.WithFields(logrus.Fields{
		"method": "parse",
		"url":    doc.URL,
	}).Debug("parsed document")
	return doc, nil
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
