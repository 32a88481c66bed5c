package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/uixlang/uix/internal/uixgen"
)

// watchAndGenerate recompiles .uix files as they change. It watches the
// directories holding the initial file set, so files added to those
// directories later are picked up too.
func watchAndGenerate(files []string, cfg *uixgen.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	dirs := make(map[string]bool)
	for _, f := range files {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	fmt.Printf("watching %d director(ies) for .uix changes, Ctrl-C to stop\n", len(dirs))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".uix") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if err := generateFile(event.Name, cfg); err != nil {
				fmt.Fprintln(os.Stderr, renderFileError(event.Name, err))
				continue
			}
			fmt.Printf("%s -> %s\n", event.Name, outputFileName(event.Name))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, renderError(err))
		}
	}
}
