package find

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// Watch applies the expression to live events: a created .txt file prints,
// a .log file does not, and the timeout ends the watch cleanly.
func TestWatchFiltersEvents(t *testing.T) {
	root := t.TempDir()

	var out, errw bytes.Buffer
	expr := &Expression{Predicates: []Predicate{NamePredicate("*.txt")}}

	done := make(chan error, 1)
	go func() {
		done <- Watch(context.Background(), root, expr, WatchOptions{
			Timeout: 2 * time.Second,
			Stdout:  &out,
			Stderr:  &errw,
		})
	}()

	// Give the watcher time to register before generating events.
	time.Sleep(300 * time.Millisecond)
	matched := filepath.Join(root, "a.txt")
	ignored := filepath.Join(root, "b.log")
	if err := os.WriteFile(matched, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ignored, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := <-done; err != nil {
		t.Fatalf("watch: %v", err)
	}

	if !strings.Contains(out.String(), matched+"\n") {
		t.Errorf("expected %q in watch output %q", matched, out.String())
	}
	if strings.Contains(out.String(), ignored) {
		t.Errorf("unexpected %q in watch output %q", ignored, out.String())
	}
}

func TestWatchCancellation(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, root, &Expression{}, WatchOptions{
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		})
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("watch returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}
