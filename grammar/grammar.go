package grammar

// Type classifies a grammar by the kind of rules it declares.
type Type int

const (
	// TypeCombined is a single grammar source declaring both lexer and
	// parser rules, from which two recognizers are generated.
	TypeCombined Type = iota
	TypeLexer
	TypeParser
)

func (t Type) String() string {
	switch t {
	case TypeLexer:
		return "lexer"
	case TypeParser:
		return "parser"
	default:
		return "combined"
	}
}

// typeSuffixes maps a grammar type to the suffix appended to the grammar
// name when forming generated recognizer file names. A combined grammar
// names its primary recognizer like a parser grammar does.
var typeSuffixes = map[Type]string{
	TypeLexer:    "Lexer",
	TypeParser:   "Parser",
	TypeCombined: "Parser",
}

// TypeSuffix returns the recognizer file-name suffix for a grammar type.
func TypeSuffix(t Type) string {
	return typeSuffixes[t]
}

// Grammar is the metadata the dependency computation needs about one
// grammar source file: its identity, declared options, and resolved
// imports. It carries no rule bodies.
type Grammar struct {
	// Name is the identifier declared in the grammar statement.
	Name string
	// FileName is the grammar source path as supplied by the caller.
	FileName string
	Type     Type
	// Options holds declared string options, notably tokenVocab and language.
	Options map[string]string
	// Imports are the directly imported grammars, in declaration order.
	Imports []*Grammar
}

// IsCombined reports whether the grammar declares both lexer and parser
// rules in one source.
func (g *Grammar) IsCombined() bool {
	return g.Type == TypeCombined
}

// Option returns the declared value for an option name, or "" when absent.
func (g *Grammar) Option(name string) string {
	if g.Options == nil {
		return ""
	}
	return g.Options[name]
}

// RecognizerName is the base name of the primary generated recognizer.
// Explicit lexer and parser grammars keep their declared name; a combined
// grammar gets the parser suffix because its lexer is generated separately.
func (g *Grammar) RecognizerName() string {
	if g.IsCombined() {
		return g.Name + TypeSuffix(TypeCombined)
	}
	return g.Name
}

// AllImports returns every grammar reachable through import statements,
// in declaration order, each grammar listed once.
func (g *Grammar) AllImports() []*Grammar {
	var all []*Grammar
	seen := map[string]bool{g.Name: true}

	var walk func(from *Grammar)
	walk = func(from *Grammar) {
		for _, imp := range from.Imports {
			if seen[imp.Name] {
				continue
			}
			seen[imp.Name] = true
			all = append(all, imp)
			walk(imp)
		}
	}
	walk(g)

	return all
}
