package formatters

import (
	"fmt"

	"github.com/parsemill/gramdeps/depgraph"
)

// Formatter is the interface all dependency report formatters implement.
type Formatter interface {
	// Format converts one grammar's dependency report to its textual
	// representation.
	Format(report depgraph.FileReport) (string, error)
}

// NewFormatter creates a Formatter for the specified format type.
// Supported formats: "text", "json", "dot", "mermaid"
func NewFormatter(format string) (Formatter, error) {
	switch OutputFormat(format) {
	case OutputFormatText:
		return &TextFormatter{}, nil
	case OutputFormatJSON:
		return &JSONFormatter{}, nil
	case OutputFormatDOT:
		return &DOTFormatter{}, nil
	case OutputFormatMermaid:
		return &MermaidFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (valid options: text, json, dot, mermaid)", format)
	}
}
