package formatters

import (
	"encoding/json"

	"github.com/parsemill/gramdeps/depgraph"
)

// JSONFormatter formats dependency reports as JSON.
type JSONFormatter struct{}

// Format converts the dependency report to indented JSON.
func (f *JSONFormatter) Format(report depgraph.FileReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
