package formatters

import (
	"sync"

	"github.com/parsemill/gramdeps/codegen"
	"github.com/parsemill/gramdeps/depgraph"
)

// TextFormatter renders the make-style dependency report. The report
// template is loaded on first use and reused afterward.
type TextFormatter struct {
	once  sync.Once
	store codegen.TemplateStore
	err   error
}

// Format renders the report through the dependency report template.
func (f *TextFormatter) Format(report depgraph.FileReport) (string, error) {
	f.once.Do(func() {
		f.store, f.err = depgraph.NewReportTemplates()
	})
	if f.err != nil {
		return "", f.err
	}
	return depgraph.RenderReport(f.store, report)
}
