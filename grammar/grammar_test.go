package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeSuffix_CombinedNamesItsParser(t *testing.T) {
	assert.Equal(t, "Lexer", TypeSuffix(TypeLexer))
	assert.Equal(t, "Parser", TypeSuffix(TypeParser))
	assert.Equal(t, "Parser", TypeSuffix(TypeCombined))
}

func TestRecognizerName_ExplicitGrammarsKeepTheirName(t *testing.T) {
	lexer := &Grammar{Name: "TLex", Type: TypeLexer}
	parser := &Grammar{Name: "TParse", Type: TypeParser}

	assert.Equal(t, "TLex", lexer.RecognizerName())
	assert.Equal(t, "TParse", parser.RecognizerName())
}

func TestRecognizerName_CombinedGrammarGetsParserSuffix(t *testing.T) {
	combined := &Grammar{Name: "T", Type: TypeCombined}

	assert.Equal(t, "TParser", combined.RecognizerName())
}

func TestAllImports_TransitiveInDeclarationOrder(t *testing.T) {
	d := &Grammar{Name: "D"}
	b := &Grammar{Name: "B", Imports: []*Grammar{d}}
	c := &Grammar{Name: "C"}
	g := &Grammar{Name: "T", Imports: []*Grammar{b, c}}

	var names []string
	for _, imp := range g.AllImports() {
		names = append(names, imp.Name)
	}

	assert.Equal(t, []string{"B", "D", "C"}, names)
}

func TestAllImports_SharedImportListedOnce(t *testing.T) {
	shared := &Grammar{Name: "Common"}
	b := &Grammar{Name: "B", Imports: []*Grammar{shared}}
	c := &Grammar{Name: "C", Imports: []*Grammar{shared}}
	g := &Grammar{Name: "T", Imports: []*Grammar{b, c}}

	var names []string
	for _, imp := range g.AllImports() {
		names = append(names, imp.Name)
	}

	assert.Equal(t, []string{"B", "Common", "C"}, names)
}

func TestOption_MissingOptionsMapIsEmptyValue(t *testing.T) {
	g := &Grammar{Name: "T"}

	assert.Equal(t, "", g.Option("tokenVocab"))
}
