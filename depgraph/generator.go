package depgraph

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/parsemill/gramdeps/codegen"
	"github.com/parsemill/gramdeps/grammar"
	"github.com/parsemill/gramdeps/tool"
)

// Generator computes the build-dependency lists for one grammar: the
// files the code generator would read to process it and the files it
// would write. It never generates anything itself.
//
// A Generator is bound to one grammar and one code generator for its
// lifetime and is not safe for concurrent use; independent instances may
// run in parallel as long as the shared Config and target template
// stores are not mutated.
type Generator struct {
	grammar *grammar.Grammar
	gen     *codegen.Generator
	cfg     *tool.Config

	reportOnce  sync.Once
	reportStore codegen.TemplateStore
	reportErr   error
}

// NewGenerator binds a dependency generator to a grammar, its code
// generator, and the tool configuration.
func NewGenerator(g *grammar.Grammar, gen *codegen.Generator, cfg *tool.Config) *Generator {
	return &Generator{grammar: g, gen: gen, cfg: cfg}
}

// Outputs lists every file the code generator would write for the
// grammar, in generation order. The second result is false when there is
// nothing to report: either the grammar's language names no usable
// target, or no file applies.
func (d *Generator) Outputs() ([]string, bool) {
	target := d.gen.Target()
	if target == nil {
		return nil, false
	}

	var files []string
	add := func(name string) {
		files = append(files, d.outputPath(name))
	}

	if target.NeedsHeader() {
		add(d.gen.RecognizerFileName(true))
	}
	add(d.gen.RecognizerFileName(false))

	// the vocab file is always written, whatever the target
	add(d.gen.VocabFileName())

	headerExt := ""
	hasHeaderTemplate := target.Templates().IsDefined("headerFile")
	if hasHeaderTemplate {
		headerExt, _ = target.Templates().Render("headerFileExtension", nil)
		add(d.grammar.Name + grammar.TypeSuffix(d.grammar.Type) + headerExt)
	}

	if d.grammar.IsCombined() {
		// the implicitly generated lexer: source, vocab, and header
		lexer := d.grammar.Name + grammar.TypeSuffix(grammar.TypeLexer)
		add(lexer + target.CodeFileExtension())
		add(lexer + codegen.VocabFileExtension)
		if hasHeaderTemplate {
			add(lexer + headerExt)
		}
	}

	if d.cfg.GenerateListener {
		if target.NeedsHeader() {
			add(d.gen.ListenerFileName(true))
		}
		add(d.gen.ListenerFileName(false))
		if target.NeedsHeader() {
			add(d.gen.BaseListenerFileName(true))
		}
		add(d.gen.BaseListenerFileName(false))
	}

	if d.cfg.GenerateVisitor {
		if target.NeedsHeader() {
			add(d.gen.VisitorFileName(true))
		}
		add(d.gen.VisitorFileName(false))
		if target.NeedsHeader() {
			add(d.gen.BaseVisitorFileName(true))
		}
		add(d.gen.BaseVisitorFileName(false))
	}

	// imported grammars belong to the same build unit the generator
	// touches, so their sources count as outputs of this build
	for _, imported := range d.grammar.AllImports() {
		add(imported.FileName)
	}

	if len(files) == 0 {
		return nil, false
	}
	return files, true
}

// Inputs lists the non-import files processing the grammar reads,
// excluding the grammar source itself: today that is only an externally
// supplied token vocabulary.
func (d *Generator) Inputs() ([]string, bool) {
	var files []string

	if vocab := d.grammar.Option("tokenVocab"); vocab != "" {
		fileName := vocab + codegen.VocabFileExtension
		if lib := d.cfg.Lib(); lib != tool.CurrentDirSentinel {
			fileName = filepath.Join(lib, fileName)
		}
		files = append(files, fileName)
	}

	if len(files) == 0 {
		return nil, false
	}
	return files, true
}

// Dependencies lists everything processing the grammar reads: the
// token-vocabulary input first, then every transitively imported grammar
// qualified against the library directory, in import order.
func (d *Generator) Dependencies() ([]string, bool) {
	files, _ := d.Inputs()

	for _, imported := range d.grammar.AllImports() {
		files = append(files, qualify(d.cfg.Lib(), imported.FileName))
	}

	if len(files) == 0 {
		return nil, false
	}
	return files, true
}

// outputPath resolves the final path of one output file. Directory
// resolution is keyed on the grammar's source file first; when that falls
// back to the current directory, the output file name itself is tried, so
// an output override keyed on the produced file still wins.
func (d *Generator) outputPath(fileName string) string {
	dir := d.cfg.ResolveOutputDirectory(d.grammar.FileName)
	if dir == tool.CurrentDirSentinel {
		dir = d.cfg.ResolveOutputDirectory(fileName)
	}
	return qualify(dir, fileName)
}

// qualify joins a directory and file name after grooming the directory:
// the current-directory sentinel is elided, a trailing dot segment is
// stripped, and spaces are escaped so the report stays consumable by
// whitespace-delimited build tools. Grooming is idempotent.
func qualify(dir, fileName string) string {
	dir = groomDirectory(dir)
	if dir == "" || dir == tool.CurrentDirSentinel {
		return fileName
	}
	return filepath.Join(dir, fileName)
}

func groomDirectory(dir string) string {
	// a directory derived with a trailing dot segment, e.g. "out/." or
	// "build.", loses everything from the last dot onward
	if strings.HasSuffix(lastPathComponent(dir), ".") {
		if i := strings.LastIndexByte(dir, '.'); i >= 0 {
			dir = strings.TrimSuffix(dir[:i], string(filepath.Separator))
		}
	}

	if strings.Contains(lastPathComponent(dir), " ") {
		dir = escapeSpaces(dir)
	}
	return dir
}

func lastPathComponent(dir string) string {
	if i := strings.LastIndexByte(dir, filepath.Separator); i >= 0 {
		return dir[i+1:]
	}
	return dir
}

// escapeSpaces backslash-escapes every space not already escaped, so
// grooming an already groomed directory is a no-op.
func escapeSpaces(dir string) string {
	var sb strings.Builder
	for i := 0; i < len(dir); i++ {
		if dir[i] == ' ' && (i == 0 || dir[i-1] != '\\') {
			sb.WriteString(`\ `)
			continue
		}
		sb.WriteByte(dir[i])
	}
	return sb.String()
}
