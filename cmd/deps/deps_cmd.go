package deps

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/parsemill/gramdeps/cmd/deps/formatters"
	"github.com/parsemill/gramdeps/codegen"
	"github.com/parsemill/gramdeps/depgraph"
	"github.com/parsemill/gramdeps/grammar"
	"github.com/parsemill/gramdeps/tool"
)

type depsOptions struct {
	outputDir       string
	libDir          string
	exactOutputDir  bool
	listener        bool
	visitor         bool
	format          string
	copyToClipboard bool
}

// Cmd represents the deps command.
var Cmd = NewCommand()

// NewCommand returns a new deps command instance.
func NewCommand() *cobra.Command {
	opts := &depsOptions{}

	cmd := &cobra.Command{
		Use:   "deps <grammar files...>",
		Short: "Compute the files the code generator would read and write",
		Long: `Compute the build dependencies of grammar files: the files the code
generator would read to process each grammar (imported grammars, token
vocabularies) and the files it would write (recognizers, vocab files,
listeners, visitors). No code is generated.

Examples:
  gramdeps deps T.g4                       # make-style dependency report
  gramdeps deps -o out --lib grammars T.g4 # honor output and library dirs
  gramdeps deps --visitor -f json T.g4     # include visitor files, as JSON
  gramdeps deps -f dot T.g4                # build graph as Graphviz DOT`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeps(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "Output directory for generated files")
	cmd.Flags().StringVar(&opts.libDir, "lib", "", "Library directory for imported grammars and token vocabularies (default: current directory)")
	cmd.Flags().BoolVar(&opts.exactOutputDir, "exact-output-dir", false, "Write all output directly into the output directory, ignoring source subdirectories")
	cmd.Flags().BoolVar(&opts.listener, "listener", true, "Include parse-tree listener files")
	cmd.Flags().BoolVar(&opts.visitor, "visitor", false, "Include parse-tree visitor files")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatters.OutputFormatText.String(),
		fmt.Sprintf("Output format (%s, %s, %s, %s)",
			formatters.OutputFormatText, formatters.OutputFormatJSON,
			formatters.OutputFormatDOT, formatters.OutputFormatMermaid))
	cmd.Flags().BoolVarP(&opts.copyToClipboard, "clipboard", "b", false, "Automatically copy output to clipboard")

	return cmd
}

func runDeps(cmd *cobra.Command, args []string, opts *depsOptions) error {
	cfg := &tool.Config{
		OutputDirectory:  opts.outputDir,
		LibDirectory:     opts.libDir,
		ExactOutputDir:   opts.exactOutputDir,
		GenerateListener: opts.listener,
		GenerateVisitor:  opts.visitor,
	}

	output, err := RenderReports(args, cfg, opts.format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)

	if opts.copyToClipboard {
		if err := clipboard.WriteAll(output); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\n✅ Content copied to your clipboard.")
	}

	return nil
}

// RenderReports computes and formats the dependency report for every
// grammar file, joined in argument order. One loader serves the whole
// set, so grammars shared between files are parsed once and import
// cycles are caught across all of them.
func RenderReports(paths []string, cfg *tool.Config, format string) (string, error) {
	formatter, err := formatters.NewFormatter(format)
	if err != nil {
		return "", err
	}

	loader := grammar.NewLoader(cfg.Lib())

	var sections []string
	for _, path := range paths {
		g, err := loader.Load(path)
		if err != nil {
			return "", err
		}

		generator := depgraph.NewGenerator(g, codegen.NewGenerator(g), cfg)
		section, err := formatter.Format(generator.FileReport())
		if err != nil {
			return "", fmt.Errorf("failed to format dependencies for %s: %w", path, err)
		}
		sections = append(sections, section)
	}

	return strings.Join(sections, "\n"), nil
}
