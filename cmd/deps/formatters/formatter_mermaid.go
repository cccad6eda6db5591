package formatters

import (
	"fmt"
	"strings"

	"github.com/parsemill/gramdeps/depgraph"
)

// MermaidFormatter formats dependency reports as Mermaid.js flowcharts.
type MermaidFormatter struct{}

// Format converts the dependency report to Mermaid flowchart format.
// Node ids are assigned in report order so output is deterministic.
func (f *MermaidFormatter) Format(report depgraph.FileReport) (string, error) {
	var sb strings.Builder
	sb.WriteString("flowchart LR\n")

	ids := make(map[string]string)
	nodeID := func(name string) string {
		if id, ok := ids[name]; ok {
			return id
		}
		id := fmt.Sprintf("n%d", len(ids))
		ids[name] = id
		fmt.Fprintf(&sb, "    %s[\"%s\"]\n", id, strings.ReplaceAll(name, `"`, "#quot;"))
		return id
	}

	grammarID := nodeID(report.GrammarFileName)
	for _, input := range report.Inputs {
		fmt.Fprintf(&sb, "    %s --> %s\n", nodeID(input), grammarID)
	}
	for _, output := range report.Outputs {
		fmt.Fprintf(&sb, "    %s --> %s\n", grammarID, nodeID(output))
	}

	return sb.String(), nil
}
