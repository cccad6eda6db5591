package formatters_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsemill/gramdeps/cmd/deps/formatters"
	"github.com/parsemill/gramdeps/depgraph"
)

func testReport() depgraph.FileReport {
	return depgraph.FileReport{
		GrammarFileName: "T.g4",
		Inputs:          []string{"libs/A.tokens", "libs/B.g4"},
		Outputs:         []string{"TParser.java", "T.tokens"},
	}
}

func TestNewFormatter_KnownFormats(t *testing.T) {
	for _, format := range []string{"text", "json", "dot", "mermaid"} {
		formatter, err := formatters.NewFormatter(format)
		require.NoError(t, err, "format %s", format)
		assert.NotNil(t, formatter)
	}
}

func TestNewFormatter_UnknownFormatFails(t *testing.T) {
	_, err := formatters.NewFormatter("yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestTextFormatter_RendersReportTemplate(t *testing.T) {
	formatter := &formatters.TextFormatter{}

	output, err := formatter.Format(testReport())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, t.Name(), []byte(output))
}

func TestTextFormatter_NoInputsOmitsDependencyLine(t *testing.T) {
	formatter := &formatters.TextFormatter{}

	output, err := formatter.Format(depgraph.FileReport{
		GrammarFileName: "T.g4",
		Outputs:         []string{"T.java", "T.tokens"},
	})
	require.NoError(t, err)

	assert.Equal(t, "T.java : T.g4\nT.tokens : T.g4\n", output)
}

func TestJSONFormatter_IncludesAllFields(t *testing.T) {
	formatter := &formatters.JSONFormatter{}

	output, err := formatter.Format(testReport())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"grammarFileName": "T.g4",
		"inputs": ["libs/A.tokens", "libs/B.g4"],
		"outputs": ["TParser.java", "T.tokens"]
	}`, output)
}

func TestDOTFormatter_EdgesThroughGrammarNode(t *testing.T) {
	formatter := &formatters.DOTFormatter{}

	output, err := formatter.Format(testReport())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, t.Name(), []byte(output))
}

func TestMermaidFormatter_DeterministicNodeIDs(t *testing.T) {
	formatter := &formatters.MermaidFormatter{}

	output, err := formatter.Format(testReport())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, t.Name(), []byte(output))
}
