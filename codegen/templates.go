package codegen

import (
	"fmt"
	"strings"
	"text/template"
)

// TemplateStore is the rendering capability a target exposes: named
// template strings that can be probed for existence and rendered with
// optional data. The dependency computation only ever renders file-name
// extensions and the dependency report through this interface.
type TemplateStore interface {
	IsDefined(name string) bool
	Render(name string, data any) (string, error)
}

type templateStore struct {
	templates map[string]*template.Template
}

// NewTemplateStore parses a set of named template strings into a
// TemplateStore backed by text/template.
func NewTemplateStore(sources map[string]string) (TemplateStore, error) {
	templates := make(map[string]*template.Template, len(sources))
	for name, src := range sources {
		tmpl, err := template.New(name).Funcs(templateFuncs).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return &templateStore{templates: templates}, nil
}

func mustTemplateStore(sources map[string]string) TemplateStore {
	store, err := NewTemplateStore(sources)
	if err != nil {
		panic(err)
	}
	return store
}

func (s *templateStore) IsDefined(name string) bool {
	_, ok := s.templates[name]
	return ok
}

func (s *templateStore) Render(name string, data any) (string, error) {
	tmpl, ok := s.templates[name]
	if !ok {
		return "", fmt.Errorf("template %s is not defined", name)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return sb.String(), nil
}

var templateFuncs = template.FuncMap{
	"join": strings.Join,
}
