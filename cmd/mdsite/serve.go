package main

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce window for filesystem events: editors fire several writes per save.
const watchDebounce = time.Second

// runServe implements the serve command: build, serve the output directory
// over HTTP, and optionally rebuild on content changes.
func runServe(args []string) error {
	flags, _, err := parseServeFlags(args)
	if err != nil {
		return err
	}

	ctx := context.Background()
	s, err := buildOnce(ctx, &flags.build)
	if err != nil {
		return err
	}

	if flags.watch {
		watched := []string{s.ContentDir(), s.TemplatesDir(), s.PublicDir()}
		go watchDirs(watched, func() {
			if _, err := buildOnce(ctx, &flags.build); err != nil {
				fmt.Fprintf(os.Stderr, "rebuild failed: %v\n", err)
			}
		})
	}

	if !flags.build.common.quiet {
		fmt.Fprintf(os.Stderr, "Listening on http://%s\n", flags.addr)
	}
	return http.ListenAndServe(flags.addr, http.FileServer(http.Dir(s.OutputDir())))
}

// watchDirs rebuilds via cb when files under dirs change.
// Events are debounced; directories that do not exist are skipped.
func watchDirs(dirs []string, cb func()) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating watcher: %v\n", err)
		return
	}
	defer watcher.Close()

	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || !d.IsDir() {
				return nil
			}
			return watcher.Add(path)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error watching %s: %v\n", dir, err)
		}
	}

	triggered := time.Now().Add(-watchDebounce)
	for event := range watcher.Events {
		// Directories created after startup join the watch set.
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
				_ = watcher.Add(event.Name)
			}
		}

		if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
			continue
		}
		if time.Since(triggered) > watchDebounce {
			time.Sleep(100 * time.Millisecond)
			triggered = time.Now()
			cb()
		}
	}
}
