package codegen

import (
	"github.com/parsemill/gramdeps/grammar"
)

// VocabFileExtension is the extension of generated token-vocabulary files,
// mapping token names to their numeric ids.
const VocabFileExtension = ".tokens"

// DefaultLanguage is the target used when a grammar declares no language
// option.
const DefaultLanguage = "Java"

// Generator predicts the file names a code-generation backend would use
// for one grammar. It is bound to exactly one grammar and one target for
// its whole lifetime.
type Generator struct {
	grammar *grammar.Grammar
	target  *Target
}

// NewGenerator binds a grammar to the target named by its language option,
// or the default language when none is declared. An unknown language
// leaves the generator without a target; every file-name query then
// returns the bare name with no extension and Target() returns nil.
func NewGenerator(g *grammar.Grammar) *Generator {
	language := g.Option("language")
	if language == "" {
		language = DefaultLanguage
	}
	target, _ := LookupTarget(language)
	return &Generator{grammar: g, target: target}
}

// Target returns the bound target, or nil when the grammar's language
// option named no registered target.
func (c *Generator) Target() *Target {
	return c.target
}

// Grammar returns the grammar this generator is bound to.
func (c *Generator) Grammar() *grammar.Grammar {
	return c.grammar
}

// RecognizerFileName names the primary generated recognizer source, or
// its header when header is true.
func (c *Generator) RecognizerFileName(header bool) string {
	return c.grammar.RecognizerName() + c.fileExtension(header)
}

// VocabFileName names the generated token-vocabulary file, e.g. T.tokens.
func (c *Generator) VocabFileName() string {
	return c.grammar.Name + VocabFileExtension
}

// ListenerFileName names the generated parse-tree listener source.
func (c *Generator) ListenerFileName(header bool) string {
	return c.grammar.Name + "Listener" + c.fileExtension(header)
}

// BaseListenerFileName names the generated no-op listener base class.
func (c *Generator) BaseListenerFileName(header bool) string {
	return c.grammar.Name + "BaseListener" + c.fileExtension(header)
}

// VisitorFileName names the generated parse-tree visitor source.
func (c *Generator) VisitorFileName(header bool) string {
	return c.grammar.Name + "Visitor" + c.fileExtension(header)
}

// BaseVisitorFileName names the generated no-op visitor base class.
func (c *Generator) BaseVisitorFileName(header bool) string {
	return c.grammar.Name + "BaseVisitor" + c.fileExtension(header)
}

func (c *Generator) fileExtension(header bool) string {
	if c.target == nil {
		return ""
	}

	name := "codeFileExtension"
	if header {
		name = "headerFileExtension"
	}

	ext, err := c.target.Templates().Render(name, nil)
	if err != nil {
		return ""
	}
	return ext
}
