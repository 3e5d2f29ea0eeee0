package find

import (
	"context"

	"go.uber.org/zap"

	internal "gofind.dev/gofind/internal/find"
)

// Re-export the engine types from the internal package.
type (
	// Expression is the full match-and-act specification for one run.
	Expression = internal.Expression

	// Predicate is one boolean test over an entry's metadata.
	Predicate = internal.Predicate

	// Action is a side effect performed on a matched entry.
	Action = internal.Action

	// Options configures one run of the walker.
	Options = internal.Options

	// Walker drives the depth-first traversal.
	Walker = internal.Walker

	// EntryMeta is a per-visit snapshot of one entry's metadata.
	EntryMeta = internal.EntryMeta

	// Identity is the (device, inode) pair naming a filesystem object.
	Identity = internal.Identity

	// TypeLetter identifies an entry's filesystem type (-type codes).
	TypeLetter = internal.TypeLetter

	// VisitResult records the outcome of evaluating one entry.
	VisitResult = internal.VisitResult

	// Stats holds the counters accumulated over one run.
	Stats = internal.Stats

	// Diagnostic is one per-entry error in find's message format.
	Diagnostic = internal.Diagnostic

	// LogLevel defines the verbosity of operational logging.
	LogLevel = internal.LogLevel

	// WatchOptions configures watch mode.
	WatchOptions = internal.WatchOptions

	// WatchEvent names a filesystem event class.
	WatchEvent = internal.WatchEvent
)

// Type letters accepted by TypePredicate.
const (
	TypeBlock   = internal.TypeBlock
	TypeChar    = internal.TypeChar
	TypeDir     = internal.TypeDir
	TypeFIFO    = internal.TypeFIFO
	TypeFile    = internal.TypeFile
	TypeSymlink = internal.TypeSymlink
	TypeSocket  = internal.TypeSocket
)

// Log levels for NewLogger.
const (
	LogLevelSilent = internal.LogLevelSilent
	LogLevelError  = internal.LogLevelError
	LogLevelInfo   = internal.LogLevelInfo
	LogLevelDebug  = internal.LogLevelDebug
)

// Watch event classes.
const (
	EventCreate = internal.EventCreate
	EventModify = internal.EventModify
	EventRename = internal.EventRename
	EventChmod  = internal.EventChmod
)

// PathToken is the exec template placeholder substituted with the current
// path.
const PathToken = internal.PathToken

// ErrTraversal reports that per-entry diagnostics were emitted during a run.
var ErrTraversal = internal.ErrTraversal

// NewWalker prepares a walker for expr, normalizing the expression once.
func NewWalker(expr *Expression, opts Options) *Walker {
	return internal.NewWalker(expr, opts)
}

// NamePredicate matches entries whose basename matches the glob pattern.
func NamePredicate(pattern string) Predicate { return internal.NamePredicate(pattern) }

// MTimePredicate matches entries whose age in whole 24-hour periods equals
// days.
func MTimePredicate(days int) Predicate { return internal.MTimePredicate(days) }

// TypePredicate matches entries of the given filesystem type.
func TypePredicate(t TypeLetter) Predicate { return internal.TypePredicate(t) }

// PrintAction writes the entry's path followed by a newline.
func PrintAction() Action { return internal.PrintAction() }

// ExecAction spawns the template argv with every "{}" occurrence replaced by
// the entry's path.
func ExecAction(template []string) Action { return internal.ExecAction(template) }

// ValidTypeLetter reports whether c is one of the supported -type codes.
func ValidTypeLetter(c byte) bool { return internal.ValidTypeLetter(c) }

// Match reports whether name matches the glob pattern (fnmatch subset).
func Match(pattern, name string) bool { return internal.Match(pattern, name) }

// NewLogger builds the zap logger for a run.
func NewLogger(level LogLevel) *zap.Logger { return internal.NewLogger(level) }

// Watch monitors the tree under root and evaluates expr against filesystem
// events.
func Watch(ctx context.Context, root string, expr *Expression, opts WatchOptions) error {
	return internal.Watch(ctx, root, expr, opts)
}
