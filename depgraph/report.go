package depgraph

import (
	_ "embed"
	"fmt"

	"github.com/parsemill/gramdeps/codegen"
)

// reportTemplateName keys the dependency report in the template store.
const reportTemplateName = "dependencies"

//go:embed templates/depend.tmpl
var reportTemplateSource string

// FileReport pairs the computed input and output lists with the grammar
// source they belong to. It is the data every report formatter consumes.
type FileReport struct {
	GrammarFileName string   `json:"grammarFileName"`
	Inputs          []string `json:"inputs"`
	Outputs         []string `json:"outputs"`
}

// FileReport assembles the report data for the bound grammar. Absent
// lists come out as nil slices.
func (d *Generator) FileReport() FileReport {
	inputs, _ := d.Dependencies()
	outputs, _ := d.Outputs()
	return FileReport{
		GrammarFileName: d.grammar.FileName,
		Inputs:          inputs,
		Outputs:         outputs,
	}
}

// Report renders the textual dependency report: the grammar's inputs on
// one line, then one make-style line per output. The report template is
// loaded once per Generator and reused for every call.
func (d *Generator) Report() (string, error) {
	store, err := d.reportTemplates()
	if err != nil {
		return "", err
	}
	return store.Render(reportTemplateName, d.FileReport())
}

func (d *Generator) reportTemplates() (codegen.TemplateStore, error) {
	d.reportOnce.Do(func() {
		d.reportStore, d.reportErr = NewReportTemplates()
	})
	if d.reportErr != nil {
		return nil, d.reportErr
	}
	return d.reportStore, nil
}

// NewReportTemplates builds a template store holding the dependency
// report template. Failures are fatal for report rendering only; the
// list computations never touch the template resource.
func NewReportTemplates() (codegen.TemplateStore, error) {
	store, err := codegen.NewTemplateStore(map[string]string{
		reportTemplateName: reportTemplateSource,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load dependency report template: %w", err)
	}
	return store, nil
}

// RenderReport renders a FileReport through the dependency report
// template in the given store.
func RenderReport(store codegen.TemplateStore, report FileReport) (string, error) {
	return store.Render(reportTemplateName, report)
}
