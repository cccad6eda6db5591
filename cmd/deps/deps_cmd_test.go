package deps

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsemill/gramdeps/depgraph"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		if chdirErr := os.Chdir(originalDir); chdirErr != nil {
			t.Fatalf("os.Chdir() cleanup error = %v", chdirErr)
		}
	})
	require.NoError(t, os.Chdir(dir))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func setupProject(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "T.g4"), `
grammar T;
options { tokenVocab = A; }
import B;
r : 'a' ;
`)
	writeFile(t, filepath.Join(dir, "libs", "B.g4"), "parser grammar B;\ns : 'b' ;\n")
	chdir(t, dir)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand()
	cmd.SetArgs(args)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestDepsCommand_TextReport(t *testing.T) {
	setupProject(t)

	output, err := execute(t, "T.g4", "--lib", "libs")
	require.NoError(t, err)

	assert.Contains(t, output, "T.g4: libs/A.tokens, libs/B.g4\n")
	assert.Contains(t, output, "TParser.java : T.g4\n")
	assert.Contains(t, output, "TLexer.tokens : T.g4\n")
	// listeners are on by default, visitors are not
	assert.Contains(t, output, "TBaseListener.java : T.g4\n")
	assert.NotContains(t, output, "TVisitor.java")
}

func TestDepsCommand_VisitorFlag(t *testing.T) {
	setupProject(t)

	output, err := execute(t, "T.g4", "--lib", "libs", "--visitor")
	require.NoError(t, err)

	assert.Contains(t, output, "TVisitor.java : T.g4\n")
	assert.Contains(t, output, "TBaseVisitor.java : T.g4\n")
}

func TestDepsCommand_ListenerDisabled(t *testing.T) {
	setupProject(t)

	output, err := execute(t, "T.g4", "--lib", "libs", "--listener=false")
	require.NoError(t, err)

	assert.NotContains(t, output, "TListener.java")
}

func TestDepsCommand_OutputDirectoryPrefixesOutputs(t *testing.T) {
	setupProject(t)

	output, err := execute(t, "T.g4", "--lib", "libs", "-o", "out")
	require.NoError(t, err)

	assert.Contains(t, output, "out/TParser.java : T.g4\n")
	// inputs stay relative to the library directory
	assert.Contains(t, output, "T.g4: libs/A.tokens, libs/B.g4\n")
}

func TestDepsCommand_JSONFormat(t *testing.T) {
	setupProject(t)

	output, err := execute(t, "T.g4", "--lib", "libs", "-f", "json")
	require.NoError(t, err)

	var report depgraph.FileReport
	require.NoError(t, json.Unmarshal([]byte(output), &report))
	assert.Equal(t, "T.g4", report.GrammarFileName)
	assert.Equal(t, []string{"libs/A.tokens", "libs/B.g4"}, report.Inputs)
	assert.Contains(t, report.Outputs, "TParser.java")
}

func TestDepsCommand_UnknownFormatFails(t *testing.T) {
	setupProject(t)

	_, err := execute(t, "T.g4", "-f", "yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestDepsCommand_MissingGrammarFileFails(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "Nope.g4")

	assert.Error(t, err)
}

func TestDepsCommand_MultipleGrammars(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "A.g4"), "lexer grammar A;\nX : 'x' ;\n")
	writeFile(t, filepath.Join(dir, "B.g4"), "parser grammar B;\noptions { tokenVocab = A; }\nr : X ;\n")
	chdir(t, dir)

	output, err := execute(t, "A.g4", "B.g4")
	require.NoError(t, err)

	assert.Contains(t, output, "A.java : A.g4\n")
	assert.Contains(t, output, "B.g4: A.tokens\n")
	assert.Contains(t, output, "B.java : B.g4\n")
}
