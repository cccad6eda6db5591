package formatters

import (
	"fmt"
	"strings"

	"github.com/parsemill/gramdeps/depgraph"
)

// DOTFormatter formats dependency reports as Graphviz DOT graphs: input
// files point at the grammar source, which points at every generated file.
type DOTFormatter struct{}

// Format converts the dependency report to DOT format.
func (f *DOTFormatter) Format(report depgraph.FileReport) (string, error) {
	var sb strings.Builder

	sb.WriteString("digraph dependencies {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n")

	grammarNode := dotQuote(report.GrammarFileName)
	fmt.Fprintf(&sb, "  %s [style=filled, fillcolor=lightyellow];\n", grammarNode)

	for _, input := range report.Inputs {
		fmt.Fprintf(&sb, "  %s -> %s;\n", dotQuote(input), grammarNode)
	}
	for _, output := range report.Outputs {
		fmt.Fprintf(&sb, "  %s -> %s;\n", grammarNode, dotQuote(output))
	}

	sb.WriteString("}\n")

	return sb.String(), nil
}

func dotQuote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `\"`) + `"`
}
