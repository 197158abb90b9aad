package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the burst of events a single editor save produces.
const watchDebounce = 100 * time.Millisecond

// watchOps are the events that can change a watched file's content.
// Rename and Create cover editors that save by replacing the file.
const watchOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename

// watchTargets returns the absolute paths whose changes trigger a conversion:
// the input and every extra stylesheet and script.
func watchTargets(cc *convertConfig) (map[string]bool, error) {
	paths := make([]string, 0, 1+len(cc.Stylesheets)+len(cc.Scripts))
	paths = append(paths, cc.InputPath)
	paths = append(paths, cc.Stylesheets...)
	paths = append(paths, cc.Scripts...)

	targets := make(map[string]bool, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		targets[abs] = true
	}
	return targets, nil
}

// runWatch converts once, then converts again after every debounced change
// to a watch target until ctx is cancelled. Directories are watched rather
// than files so replaced files keep being observed.
// The first conversion's error is returned; later errors are reported on
// stderr and watching continues.
func runWatch(ctx context.Context, cc *convertConfig, env *Environment, convert func(context.Context) error) error {
	if err := convert(ctx); err != nil {
		return err
	}

	targets, err := watchTargets(cc)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dirs := make(map[string]bool)
	for target := range targets {
		dir := filepath.Dir(target)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	fmt.Fprintf(env.Stderr, "Watching %d file(s) for changes, press Ctrl+C to stop\n", len(targets))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&watchOps == 0 || !targets[filepath.Clean(event.Name)] {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(env.Stderr, "watch error: %v\n", err)

		case <-fire:
			fire = nil
			if err := convert(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				fmt.Fprintf(env.Stderr, "error: %v\n", err)
				continue
			}
			fmt.Fprintf(env.Stderr, "Updated %s\n", cc.OutputPath)
		}
	}
}
