package tool

import (
	"path/filepath"
	"strings"
)

// CurrentDirSentinel is the directory value meaning "current directory";
// it is elided from final paths rather than emitted as a literal prefix.
const CurrentDirSentinel = "."

// Config carries the tool-level generation settings the dependency
// computation consults: output and library directories and the
// listener/visitor switches. It is passed explicitly so resolver
// instances stay independently testable.
type Config struct {
	// OutputDirectory is the -o flag value; empty means no override.
	OutputDirectory string
	// LibDirectory is the search path for imported grammars and token
	// vocabulary files; empty means the current directory.
	LibDirectory string
	// ExactOutputDir writes all output directly into OutputDirectory
	// instead of re-rooting the source file's subdirectory under it.
	ExactOutputDir   bool
	GenerateListener bool
	GenerateVisitor  bool
}

// Lib returns the library directory, defaulting to the current-directory
// sentinel.
func (c *Config) Lib() string {
	if c.LibDirectory == "" {
		return CurrentDirSentinel
	}
	return c.LibDirectory
}

// ResolveOutputDirectory maps a source file name to the directory its
// generated files belong in. Without an output override the source file's
// own directory wins, with "." standing for a bare file name. With an
// override, a source file in a relative subdirectory keeps that
// subdirectory under the override; absolute and home-relative source
// paths collapse to the override itself.
//
// The result is intentionally not cleaned: a bare file name combined with
// an override yields a trailing "/." segment, which the path-grooming
// step strips. Callers treat resolution as deterministic and total.
func (c *Config) ResolveOutputDirectory(fileName string) string {
	if c.OutputDirectory != "" && c.ExactOutputDir {
		return c.OutputDirectory
	}

	fileDir := CurrentDirSentinel
	if i := strings.LastIndexByte(fileName, filepath.Separator); i >= 0 {
		fileDir = fileName[:i]
	}

	if c.OutputDirectory == "" {
		return fileDir
	}
	if filepath.IsAbs(fileDir) || strings.HasPrefix(fileDir, "~") {
		return c.OutputDirectory
	}
	return c.OutputDirectory + string(filepath.Separator) + fileDir
}
