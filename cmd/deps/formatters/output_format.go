package formatters

// OutputFormat represents a dependency report output format.
type OutputFormat string

const (
	OutputFormatText    OutputFormat = "text"
	OutputFormatJSON    OutputFormat = "json"
	OutputFormatDOT     OutputFormat = "dot"
	OutputFormatMermaid OutputFormat = "mermaid"
)

// String returns the string representation of the format.
func (f OutputFormat) String() string {
	return string(f)
}
