package internal

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	tt "github.com/jlint-dev/jlint/internal/types"
)

// StartWatching re-lints Java files in the given directories whenever they
// change. It returns once the watcher goroutine is running.
func (e *Engine) StartWatching(dirs []string) error {
	if e.isWatching.Load() {
		return fmt.Errorf("already watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	e.watcher = watcher
	e.watchDirs = dirs

	for _, dir := range e.watchDirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return e.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	e.isWatching.Store(true)
	go e.watchLoop()
	return nil
}

// StopWatching stops the watch loop and releases the watcher. The watch loop
// reads the flag concurrently, so Swap makes a second Stop a no-op.
func (e *Engine) StopWatching() error {
	if !e.isWatching.Swap(false) {
		return nil
	}
	return e.watcher.Close()
}

func (e *Engine) watchLoop() {
	for e.isWatching.Load() {
		select {
		case event, ok := <-e.watcher.Events:
			if !ok {
				return
			}
			e.handleFileEvent(event)
		case err, ok := <-e.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch error: %v", err)
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !strings.HasSuffix(event.Name, ".java") {
		return
	}
	// Editors often fire several writes for one save; let them settle.
	time.Sleep(100 * time.Millisecond)
	issues, err := e.Run(event.Name)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	e.reportIssues(event.Name, issues)
}

func (e *Engine) reportIssues(filename string, issues []tt.Issue) {
	if len(issues) == 0 {
		log.Printf("no issues found in %s", filename)
		return
	}

	log.Printf("found %d issue(s) in %s", len(issues), filename)
	for _, issue := range issues {
		log.Printf("- %s:%d:%d: %s: %s", filename, issue.Line, issue.Column, issue.Rule, issue.Message)
	}
}
