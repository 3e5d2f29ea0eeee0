package find

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/karrick/godirwalk"
	"go.uber.org/zap"
)

// WatchEvent names a filesystem event class selectable with --events.
type WatchEvent string

const (
	EventCreate WatchEvent = "create"
	EventModify WatchEvent = "modify"
	EventRename WatchEvent = "rename"
	EventChmod  WatchEvent = "chmod"
)

// WatchOptions configures watch mode.
type WatchOptions struct {
	// Events selects which event classes are evaluated. Empty means
	// create and modify.
	Events []WatchEvent

	// FollowSymlinks matches the walker's -L semantics when inspecting
	// event paths.
	FollowSymlinks bool

	// Timeout bounds the watch; zero watches until the context ends.
	Timeout time.Duration

	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

// Watch monitors the tree under root and evaluates expr against every
// selected event's path, running the expression's actions on matches. It is
// a live variant of the walker: the same predicates and actions, driven by
// fsnotify events instead of a traversal. Directories created while watching
// are added to the watch set.
func Watch(ctx context.Context, root string, expr *Expression, opts WatchOptions) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	expr.Normalize()

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchTree(watcher, root); err != nil {
		return fmt.Errorf("watching %s: %w", root, err)
	}

	wanted := make(map[fsnotify.Op]bool)
	events := opts.Events
	if len(events) == 0 {
		events = []WatchEvent{EventCreate, EventModify}
	}
	for _, e := range events {
		switch e {
		case EventCreate:
			wanted[fsnotify.Create] = true
		case EventModify:
			wanted[fsnotify.Write] = true
		case EventRename:
			wanted[fsnotify.Rename] = true
		case EventChmod:
			wanted[fsnotify.Chmod] = true
		}
	}

	executor := Executor{Stdout: opts.Stdout, Stderr: opts.Stderr, Logger: opts.Logger}
	now := time.Now()

	for {
		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return nil
			}
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !matchesOp(event, wanted) {
				continue
			}
			opts.Logger.Debug("event",
				zap.String("op", event.Op.String()),
				zap.String("path", event.Name),
			)

			meta, ierr := Inspect(event.Name, opts.FollowSymlinks)
			if !meta.Valid() {
				// The entry may already be gone; events are
				// advisory in watch mode, so stay quiet.
				continue
			}

			if meta.Type == TypeDir && event.Has(fsnotify.Create) {
				if err := watcher.Add(event.Name); err != nil {
					fmt.Fprintln(opts.Stderr, classify(event.Name, err).Error())
				}
			}

			if ierr != nil {
				fmt.Fprintln(opts.Stderr, classify(event.Name, ierr).Error())
			}
			if _, err := expr.Evaluate(&executor, event.Name, filepath.Base(event.Name), meta, now); err != nil {
				fmt.Fprintln(opts.Stderr, classify(event.Name, err).Error())
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			opts.Logger.Warn("watcher error", zap.Error(werr))
		}
	}
}

// addWatchTree registers root and every directory under it.
func addWatchTree(watcher *fsnotify.Watcher, root string) error {
	if err := watcher.Add(root); err != nil {
		return err
	}
	names, err := godirwalk.ReadDirnames(root, nil)
	if err != nil {
		return err
	}
	for _, name := range names {
		child := joinPath(root, name)
		meta, err := Inspect(child, false)
		if err != nil || meta.Type != TypeDir {
			continue
		}
		if err := addWatchTree(watcher, child); err != nil {
			return err
		}
	}
	return nil
}

func matchesOp(event fsnotify.Event, wanted map[fsnotify.Op]bool) bool {
	for op := range wanted {
		if event.Has(op) {
			return true
		}
	}
	return false
}
