package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/parsemill/gramdeps/cmd/deps"
	"github.com/parsemill/gramdeps/codegen"
	"github.com/parsemill/gramdeps/grammar"
	"github.com/parsemill/gramdeps/tool"
)

const debounceInterval = 300 * time.Millisecond

func watchAndReport(ctx context.Context, cmd *cobra.Command, paths []string, opts *watchOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, paths, opts.libDir); err != nil {
		return fmt.Errorf("failed to watch directories: %w", err)
	}

	cfg := &tool.Config{
		OutputDirectory:  opts.outputDir,
		LibDirectory:     opts.libDir,
		ExactOutputDir:   opts.exactOutputDir,
		GenerateListener: opts.listener,
		GenerateVisitor:  opts.visitor,
	}

	report := func() {
		output, err := deps.RenderReports(paths, cfg, opts.format)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), output)
	}
	report()

	var debounceTimer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRelevantChange(event) {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceInterval, report)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
		}
	}
}

// addWatchDirs watches each grammar's directory plus the library
// directory; fsnotify delivers events per directory, not per file.
func addWatchDirs(watcher *fsnotify.Watcher, paths []string, libDir string) error {
	dirs := map[string]bool{}
	for _, path := range paths {
		dirs[filepath.Dir(path)] = true
	}
	if libDir == "" {
		libDir = "."
	}
	dirs[libDir] = true

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	return nil
}

func isRelevantChange(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
		!event.Op.Has(fsnotify.Rename) && !event.Op.Has(fsnotify.Remove) {
		return false
	}

	switch filepath.Ext(event.Name) {
	case grammar.FileExtension, codegen.VocabFileExtension:
		return true
	default:
		return false
	}
}
