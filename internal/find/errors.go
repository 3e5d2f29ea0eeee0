package find

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrTraversal is returned by Walker.Run when per-entry diagnostics were
// emitted during the walk. The messages have already been written to the
// error stream; callers map this to find's non-zero exit code without
// printing anything further.
var ErrTraversal = errors.New("traversal errors occurred")

// DiagKind classifies a per-entry diagnostic.
type DiagKind int

const (
	DiagNotFound DiagKind = iota
	DiagPermission
	DiagLoop
	DiagExecLaunch
	DiagIO
)

// Diagnostic is one per-entry error rendered in find's message format.
// Every diagnostic is non-fatal to the traversal: it is written to the error
// stream in visit order and the walk continues with the next entry.
type Diagnostic struct {
	Kind DiagKind
	Path string
	Loop string // DiagLoop: the ancestor the entry loops back to
	Err  error
}

func (d *Diagnostic) Error() string {
	switch d.Kind {
	case DiagLoop:
		return fmt.Sprintf("find: File system loop detected; ‘%s’ is part of the same file system loop as ‘%s’.", d.Path, d.Loop)
	case DiagNotFound, DiagExecLaunch:
		return fmt.Sprintf("find: ‘%s’: No such file or directory", d.Path)
	case DiagPermission:
		return fmt.Sprintf("find: ‘%s’: Permission denied", d.Path)
	default:
		return fmt.Sprintf("find: ‘%s’: %s", d.Path, underlying(d.Err))
	}
}

func (d *Diagnostic) Unwrap() error { return d.Err }

// classify maps a syscall failure on path to the diagnostic find would print
// for it.
func classify(path string, err error) *Diagnostic {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d
	}
	kind := DiagIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = DiagNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = DiagPermission
	}
	return &Diagnostic{Kind: kind, Path: path, Err: err}
}

// underlying strips os.PathError wrapping so the message carries only the
// errno text.
func underlying(err error) string {
	var perr *fs.PathError
	if errors.As(err, &perr) {
		return perr.Err.Error()
	}
	if err == nil {
		return "input/output error"
	}
	return err.Error()
}
