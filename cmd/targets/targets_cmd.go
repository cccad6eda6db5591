package targets

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parsemill/gramdeps/codegen"
)

// Cmd represents the targets command.
var Cmd = NewCommand()

// NewCommand returns a new targets command instance.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List all supported target languages",
		Long: `List all supported code-generation target languages, their generated
source extensions, and whether they emit separate header files.

Examples:
  gramdeps targets`,
		RunE: runTargets,
	}

	return cmd
}

func runTargets(cmd *cobra.Command, _ []string) error {
	for _, name := range codegen.TargetNames() {
		target, ok := codegen.LookupTarget(name)
		if !ok {
			continue
		}

		headers := ""
		if target.NeedsHeader() {
			headers = ", headers"
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s%s)\n", target.Name(), target.CodeFileExtension(), headers); err != nil {
			return err
		}
	}

	return nil
}
