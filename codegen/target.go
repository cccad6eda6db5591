package codegen

import (
	"sort"
	"strings"
)

// Target describes one code-generation backend: its naming conventions,
// whether it splits declarations into header files, and its template
// store. The dependency computation never generates code, so the stores
// registered here carry only the naming templates; the headerFile entry
// is a presence marker for targets that emit headers.
type Target struct {
	name        string
	needsHeader bool
	templates   TemplateStore
}

// Name returns the target language name as registered.
func (t *Target) Name() string {
	return t.name
}

// NeedsHeader reports whether the target writes a separate header file
// for every generated recognizer, listener, and visitor.
func (t *Target) NeedsHeader() bool {
	return t.needsHeader
}

// Templates returns the target's template store.
func (t *Target) Templates() TemplateStore {
	return t.templates
}

// CodeFileExtension renders the target's generated-source extension.
func (t *Target) CodeFileExtension() string {
	ext, err := t.templates.Render("codeFileExtension", nil)
	if err != nil {
		return ""
	}
	return ext
}

func sourceOnlyTarget(name, codeExt string) *Target {
	return &Target{
		name: name,
		templates: mustTemplateStore(map[string]string{
			"codeFileExtension": codeExt,
		}),
	}
}

var targets = map[string]*Target{}

func registerTarget(t *Target) {
	targets[strings.ToLower(t.name)] = t
}

func init() {
	registerTarget(sourceOnlyTarget("Java", ".java"))
	registerTarget(sourceOnlyTarget("CSharp", ".cs"))
	registerTarget(sourceOnlyTarget("Python3", ".py"))
	registerTarget(sourceOnlyTarget("JavaScript", ".js"))
	registerTarget(sourceOnlyTarget("TypeScript", ".ts"))
	registerTarget(sourceOnlyTarget("Go", ".go"))
	registerTarget(sourceOnlyTarget("Swift", ".swift"))
	registerTarget(sourceOnlyTarget("PHP", ".php"))
	registerTarget(sourceOnlyTarget("Dart", ".dart"))
	registerTarget(&Target{
		name:        "Cpp",
		needsHeader: true,
		templates: mustTemplateStore(map[string]string{
			"codeFileExtension":   ".cpp",
			"headerFileExtension": ".h",
			"headerFile":          "",
		}),
	})
}

// LookupTarget finds a registered target by language name,
// case-insensitively. An unknown language yields (nil, false), never an
// error; callers treat a missing target as "no codegen available".
func LookupTarget(language string) (*Target, bool) {
	t, ok := targets[strings.ToLower(language)]
	return t, ok
}

// TargetNames lists the registered target language names, sorted.
func TargetNames() []string {
	names := make([]string, 0, len(targets))
	for _, t := range targets {
		names = append(names, t.name)
	}
	sort.Strings(names)
	return names
}
