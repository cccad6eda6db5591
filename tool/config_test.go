package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLib_DefaultsToCurrentDirSentinel(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, ".", cfg.Lib())

	cfg.LibDirectory = "/libs"
	assert.Equal(t, "/libs", cfg.Lib())
}

func TestResolveOutputDirectory_NoOverride_UsesSourceDirectory(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, ".", cfg.ResolveOutputDirectory("T.g4"))
	assert.Equal(t, "src", cfg.ResolveOutputDirectory("src/T.g4"))
	assert.Equal(t, "/abs/src", cfg.ResolveOutputDirectory("/abs/src/T.g4"))
}

func TestResolveOutputDirectory_Override_KeepsRelativeSubdirectory(t *testing.T) {
	cfg := &Config{OutputDirectory: "out"}

	assert.Equal(t, "out/src", cfg.ResolveOutputDirectory("src/T.g4"))
}

func TestResolveOutputDirectory_Override_BareFileNameYieldsDotSegment(t *testing.T) {
	cfg := &Config{OutputDirectory: "out"}

	// the trailing dot segment is deliberate; path grooming strips it
	assert.Equal(t, "out/.", cfg.ResolveOutputDirectory("T.g4"))
}

func TestResolveOutputDirectory_Override_AbsoluteSourceCollapsesToOverride(t *testing.T) {
	cfg := &Config{OutputDirectory: "out"}

	assert.Equal(t, "out", cfg.ResolveOutputDirectory("/abs/src/T.g4"))
	assert.Equal(t, "out", cfg.ResolveOutputDirectory("~/src/T.g4"))
}

func TestResolveOutputDirectory_ExactOutputDir_AlwaysWins(t *testing.T) {
	cfg := &Config{OutputDirectory: "out", ExactOutputDir: true}

	assert.Equal(t, "out", cfg.ResolveOutputDirectory("src/T.g4"))
	assert.Equal(t, "out", cfg.ResolveOutputDirectory("T.g4"))
}
