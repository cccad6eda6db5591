package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/parsemill/gramdeps/cmd/deps"
	"github.com/parsemill/gramdeps/cmd/targets"
	"github.com/parsemill/gramdeps/cmd/watch"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gramdeps",
	Short: "Compute build dependencies for grammar files",
	Long: `Gramdeps computes the build-dependency graph of grammar files for a
multi-target code generator: which files processing a grammar reads
(imported grammars, token vocabularies) and which files generation
writes (recognizers, vocab files, listeners, visitors) — without
generating anything.

Use 'gramdeps --help' to see all available commands, or
'gramdeps <command> --help' for detailed information about a specific
command.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(deps.Cmd)
	rootCmd.AddCommand(targets.Cmd)
	rootCmd.AddCommand(watch.Cmd)

	if rootCmd.Annotations == nil {
		rootCmd.Annotations = make(map[string]string)
	}
	rootCmd.Annotations["buildDate"] = buildDate
	rootCmd.Annotations["commit"] = commit

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)
}
