// Package find implements the traversal and expression-evaluation core of a
// Unix find reimplementation: a sequential depth-first walker, the -name,
// -mtime and -type predicate set, and the -print and -exec actions, with
// output and diagnostics matching the reference tool.
package find

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/karrick/godirwalk"
	"go.uber.org/zap"
)

// Options configures one run of the walker.
type Options struct {
	// FollowSymlinks enables -L mode: symlinks are resolved for both
	// metadata reporting and descent, with filesystem-loop detection.
	FollowSymlinks bool

	// Canonicalize resolves the start path before walking (-C).
	Canonicalize bool

	// Stdout receives matched paths and exec child output; Stderr
	// receives diagnostics. Both default to the process streams.
	Stdout io.Writer
	Stderr io.Writer

	// Logger receives operational debug logging. Defaults to a no-op
	// logger so the output streams stay byte-identical to find's.
	Logger *zap.Logger
}

// Walker drives the depth-first traversal and owns all run-scoped state: the
// reference timestamp shared by every -mtime comparison, the active ancestor
// chain used for loop detection under -L, and the run statistics. A Walker
// is not safe for concurrent use; the walk is strictly sequential because
// output order must match the reference tool.
type Walker struct {
	expr   *Expression
	opts   Options
	exec   Executor
	logger *zap.Logger

	now     time.Time
	active  map[Identity]string // dev/ino of each directory on the ancestor chain
	scratch []byte              // reusable dirent buffer
	stats   Stats
	sawErr  bool
}

// NewWalker prepares a walker for expr. The expression is normalized here,
// once: the implicit -print is attached iff no explicit action was given.
func NewWalker(expr *Expression, opts Options) *Walker {
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

	return &Walker{
		expr:    expr,
		opts:    opts,
		logger:  opts.Logger,
		scratch: make([]byte, godirwalk.MinimumScratchBufferSize),
		exec: Executor{
			Stdout: opts.Stdout,
			Stderr: opts.Stderr,
			Logger: opts.Logger,
		},
	}
}

// Stats returns the counters accumulated by the last run.
func (w *Walker) Stats() Stats { return w.stats }

// Run walks root depth-first, evaluating the expression against every entry
// reachable from it. The root itself is visited first, before any children.
//
// The returned error is ErrTraversal when any per-entry diagnostic was
// written during the run (find's exit-code rule); an uninspectable root is
// the only fatal condition and also yields ErrTraversal, after its own
// diagnostic.
func (w *Walker) Run(root string) error {
	w.now = time.Now()
	w.active = make(map[Identity]string)
	w.stats = Stats{}
	w.sawErr = false

	if w.opts.Canonicalize {
		resolved, err := filepath.EvalSymlinks(root)
		if err != nil {
			w.diagnose(root, err)
			return ErrTraversal
		}
		root = resolved
	}

	w.logger.Debug("walk starting",
		zap.String("root", root),
		zap.Bool("follow_symlinks", w.opts.FollowSymlinks),
	)

	meta, err := Inspect(root, w.opts.FollowSymlinks)
	if !meta.Valid() {
		w.diagnose(root, err)
		return ErrTraversal
	}
	w.visit(root, meta, err)

	w.logger.Debug("walk finished", w.stats.Fields()...)
	if w.sawErr {
		return ErrTraversal
	}
	return nil
}

// visit evaluates one entry and, for directories, recurses into its children
// after the entry's own visit completes (pre-order). meta is the metadata
// Inspect produced for path; inspectErr carries a dangling-symlink error in
// follow mode, diagnosed here so stderr interleaves in visit order while the
// entry is still evaluated with the link's own metadata.
func (w *Walker) visit(path string, meta EntryMeta, inspectErr error) {
	if inspectErr != nil {
		w.diagnose(path, inspectErr)
	}
	w.stats.Visited++

	res, err := w.expr.Evaluate(&w.exec, path, filepath.Base(path), meta, w.now)
	if err != nil {
		w.diagnose(path, err)
	}
	if res.Matched {
		w.stats.Matched++
	}

	if meta.Type != TypeDir {
		return
	}
	w.descend(path, meta)
}

// descend lists path's children in directory read order (never sorted, to
// match the reference tool's output order) and visits each in turn.
func (w *Walker) descend(path string, meta EntryMeta) {
	if w.opts.FollowSymlinks {
		if ancestor, ok := w.active[meta.ID]; ok {
			w.diag(&Diagnostic{Kind: DiagLoop, Path: path, Loop: ancestor})
			return
		}
		w.active[meta.ID] = path
		defer delete(w.active, meta.ID)
	}

	names, err := godirwalk.ReadDirnames(path, w.scratch)
	if err != nil {
		w.diagnose(path, err)
		return
	}

	for _, name := range names {
		child := joinPath(path, name)
		cmeta, cerr := Inspect(child, w.opts.FollowSymlinks)
		if !cmeta.Valid() {
			w.diagnose(child, cerr)
			continue
		}
		w.visit(child, cmeta, cerr)
	}
}

// diagnose classifies err and emits it for path.
func (w *Walker) diagnose(path string, err error) {
	w.diag(classify(path, err))
}

// diag writes one diagnostic line, unbuffered, in visit order.
func (w *Walker) diag(d *Diagnostic) {
	io.WriteString(w.exec.Stderr, d.Error()+"\n")
	w.logger.Debug("diagnostic", zap.String("path", d.Path), zap.Error(d.Err))
	w.stats.Errors++
	w.sawErr = true
}

// joinPath keeps find's path rendering: no cleaning, a single separator
// between parent and child, so a run rooted at "." prints "./a.txt".
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}
