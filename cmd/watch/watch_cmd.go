package watch

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/parsemill/gramdeps/cmd/deps/formatters"
)

type watchOptions struct {
	outputDir      string
	libDir         string
	exactOutputDir bool
	listener       bool
	visitor        bool
	format         string
}

// Cmd represents the watch command.
var Cmd = NewCommand()

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <grammar files...>",
		Short: "Watch grammar files and reprint their dependency report on change",
		Long: `Watch grammar files and the library directory for changes, recompute
the build dependencies, and reprint the report whenever a grammar or
token vocabulary changes.

Examples:
  gramdeps watch T.g4
  gramdeps watch --lib grammars -f json T.g4 U.g4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "Output directory for generated files")
	cmd.Flags().StringVar(&opts.libDir, "lib", "", "Library directory for imported grammars and token vocabularies (default: current directory)")
	cmd.Flags().BoolVar(&opts.exactOutputDir, "exact-output-dir", false, "Write all output directly into the output directory, ignoring source subdirectories")
	cmd.Flags().BoolVar(&opts.listener, "listener", true, "Include parse-tree listener files")
	cmd.Flags().BoolVar(&opts.visitor, "visitor", false, "Include parse-tree visitor files")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatters.OutputFormatText.String(), "Output format (text, json, dot, mermaid)")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string, opts *watchOptions) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchAndReport(ctx, cmd, args, opts)
}
