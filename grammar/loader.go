package grammar

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	graphlib "github.com/dominikbraun/graph"
)

// FileExtension is the extension of grammar source files.
const FileExtension = ".g4"

// Loader reads grammar sources and resolves their import chains against a
// library directory. A grammar must not import itself, directly or
// transitively; the loader rejects any import that would close a cycle.
type Loader struct {
	libDir  string
	cache   map[string]*Grammar
	imports graphlib.Graph[string, string]
}

// NewLoader creates a Loader that resolves imported grammars in libDir.
// An empty libDir means the current directory.
func NewLoader(libDir string) *Loader {
	if libDir == "" {
		libDir = "."
	}
	return &Loader{
		libDir:  libDir,
		cache:   make(map[string]*Grammar),
		imports: graphlib.New(graphlib.StringHash, graphlib.Directed(), graphlib.PreventCycles()),
	}
}

// Load parses the grammar header in fileName and recursively loads every
// imported grammar from the library directory.
func (l *Loader) Load(fileName string) (*Grammar, error) {
	src, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read grammar %s: %w", fileName, err)
	}

	g, importNames, err := parseHeader(fileName, string(src))
	if err != nil {
		return nil, err
	}

	if err := l.resolveImports(g, importNames); err != nil {
		return nil, err
	}

	l.cache[g.Name] = g
	return g, nil
}

func (l *Loader) resolveImports(g *Grammar, importNames []string) error {
	if err := l.addVertex(g.Name); err != nil {
		return err
	}

	for _, name := range importNames {
		if err := l.addVertex(name); err != nil {
			return err
		}
		if err := l.imports.AddEdge(g.Name, name); err != nil {
			if errors.Is(err, graphlib.ErrEdgeCreatesCycle) {
				return fmt.Errorf("grammar %s: import of %s creates an import cycle", g.Name, name)
			}
			if !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
				return fmt.Errorf("grammar %s: failed to record import of %s: %w", g.Name, name, err)
			}
		}

		imported, err := l.loadImported(name)
		if err != nil {
			return fmt.Errorf("grammar %s: %w", g.Name, err)
		}
		g.Imports = append(g.Imports, imported)
	}

	return nil
}

func (l *Loader) loadImported(name string) (*Grammar, error) {
	if g, ok := l.cache[name]; ok {
		return g, nil
	}

	fileName := name + FileExtension
	path := fileName
	if l.libDir != "." {
		path = filepath.Join(l.libDir, fileName)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read imported grammar %s: %w", path, err)
	}

	g, importNames, err := parseHeader(fileName, string(src))
	if err != nil {
		return nil, err
	}
	if g.Name != name {
		return nil, fmt.Errorf("imported grammar %s declares name %s", path, g.Name)
	}

	if err := l.resolveImports(g, importNames); err != nil {
		return nil, err
	}

	l.cache[g.Name] = g
	return g, nil
}

func (l *Loader) addVertex(name string) error {
	err := l.imports.AddVertex(name)
	if err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
		return fmt.Errorf("failed to record grammar %s: %w", name, err)
	}
	return nil
}

// parseHeader extracts the declaration, options, and imports from a grammar
// source. Scanning stops at the first rule definition; rule bodies carry no
// dependency information.
func parseHeader(fileName, src string) (*Grammar, []string, error) {
	s := newScanner(src)

	g := &Grammar{
		FileName: fileName,
		Type:     TypeCombined,
		Options:  make(map[string]string),
	}

	tok, err := s.next()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", fileName, err)
	}

	switch {
	case tok.kind == tokenIdent && tok.text == "lexer":
		g.Type = TypeLexer
		tok, err = s.next()
	case tok.kind == tokenIdent && tok.text == "parser":
		g.Type = TypeParser
		tok, err = s.next()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", fileName, err)
	}
	if tok.kind != tokenIdent || tok.text != "grammar" {
		return nil, nil, fmt.Errorf("%s: expected grammar declaration, found %q at line %d", fileName, tok.text, tok.line)
	}

	tok, err = s.next()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", fileName, err)
	}
	if tok.kind != tokenIdent {
		return nil, nil, fmt.Errorf("%s: expected grammar name at line %d", fileName, tok.line)
	}
	g.Name = tok.text

	if err := expectSymbol(s, ";", fileName); err != nil {
		return nil, nil, err
	}

	var importNames []string
	for {
		tok, err = s.next()
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", fileName, err)
		}
		if tok.kind == tokenEOF {
			break
		}

		switch {
		case tok.kind == tokenIdent && tok.text == "options":
			if err := parseOptions(s, g, fileName); err != nil {
				return nil, nil, err
			}
		case tok.kind == tokenIdent && tok.text == "import":
			names, err := parseImports(s, fileName)
			if err != nil {
				return nil, nil, err
			}
			importNames = append(importNames, names...)
		case tok.kind == tokenSymbol && tok.text == "@":
			// named action, e.g. @header { ... }
			if err := skipAction(s, fileName); err != nil {
				return nil, nil, err
			}
		case tok.kind == tokenIdent && (tok.text == "tokens" || tok.text == "channels"):
			if err := skipBraceBlock(s, fileName); err != nil {
				return nil, nil, err
			}
		default:
			// first rule reached; the header is complete
			return g, importNames, nil
		}
	}

	return g, importNames, nil
}

func parseOptions(s *scanner, g *Grammar, fileName string) error {
	if err := expectSymbol(s, "{", fileName); err != nil {
		return err
	}

	for {
		tok, err := s.next()
		if err != nil {
			return fmt.Errorf("%s: %w", fileName, err)
		}
		if tok.kind == tokenSymbol && tok.text == "}" {
			return nil
		}
		if tok.kind != tokenIdent {
			return fmt.Errorf("%s: expected option name at line %d", fileName, tok.line)
		}
		name := tok.text

		if err := expectSymbol(s, "=", fileName); err != nil {
			return err
		}

		tok, err = s.next()
		if err != nil {
			return fmt.Errorf("%s: %w", fileName, err)
		}
		if tok.kind != tokenIdent && tok.kind != tokenString {
			return fmt.Errorf("%s: expected option value at line %d", fileName, tok.line)
		}
		g.Options[name] = tok.text

		if err := expectSymbol(s, ";", fileName); err != nil {
			return err
		}
	}
}

func parseImports(s *scanner, fileName string) ([]string, error) {
	var names []string
	for {
		tok, err := s.next()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fileName, err)
		}
		if tok.kind != tokenIdent {
			return nil, fmt.Errorf("%s: expected imported grammar name at line %d", fileName, tok.line)
		}
		names = append(names, tok.text)

		tok, err = s.next()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fileName, err)
		}
		if tok.kind == tokenSymbol && tok.text == ";" {
			return names, nil
		}
		if tok.kind != tokenSymbol || tok.text != "," {
			return nil, fmt.Errorf("%s: expected , or ; in import statement at line %d", fileName, tok.line)
		}
	}
}

func skipAction(s *scanner, fileName string) error {
	// action name, possibly scoped like parser::members
	for {
		tok, err := s.next()
		if err != nil {
			return fmt.Errorf("%s: %w", fileName, err)
		}
		if tok.kind == tokenEOF {
			return fmt.Errorf("%s: unterminated action", fileName)
		}
		if tok.kind == tokenSymbol && tok.text == "{" {
			return skipToClosingBrace(s, fileName, 1)
		}
	}
}

func skipBraceBlock(s *scanner, fileName string) error {
	if err := expectSymbol(s, "{", fileName); err != nil {
		return err
	}
	return skipToClosingBrace(s, fileName, 1)
}

func skipToClosingBrace(s *scanner, fileName string, depth int) error {
	for depth > 0 {
		tok, err := s.next()
		if err != nil {
			return fmt.Errorf("%s: %w", fileName, err)
		}
		if tok.kind == tokenEOF {
			return fmt.Errorf("%s: unterminated block", fileName)
		}
		if tok.kind != tokenSymbol {
			continue
		}
		switch tok.text {
		case "{":
			depth++
		case "}":
			depth--
		}
	}
	return nil
}

func expectSymbol(s *scanner, symbol, fileName string) error {
	tok, err := s.next()
	if err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}
	if tok.kind != tokenSymbol || tok.text != symbol {
		return fmt.Errorf("%s: expected %q at line %d, found %q", fileName, symbol, tok.line, tok.text)
	}
	return nil
}
