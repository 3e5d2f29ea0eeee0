package find

import (
	"time"
)

// Expression is the full match-and-act specification for one run: an
// implicit-AND chain of predicates plus the actions to run, in declared
// order, on every matching entry.
type Expression struct {
	Predicates []Predicate
	Actions    []Action
}

// Normalize applies find's default-print rule: an expression with no
// explicit action prints every match. It runs once after parsing, never per
// visit, and is idempotent.
func (e *Expression) Normalize() {
	if len(e.Actions) == 0 {
		e.Actions = []Action{PrintAction()}
	}
}

// HasExec reports whether any configured action spawns a command.
func (e *Expression) HasExec() bool {
	for _, a := range e.Actions {
		if a.IsExec() {
			return true
		}
	}
	return false
}

// VisitResult records the outcome of evaluating one entry.
type VisitResult struct {
	Matched    bool
	ExecStatus int // exit status of the last exec child, 0 otherwise
}

// Evaluate runs the predicate chain over one entry and, on a full match,
// every action in declared order. The chain short-circuits left to right on
// the first failing predicate, so action side effects (notably exec) happen
// only for entries every predicate accepted, exactly once per visit.
//
// The returned error is a per-action failure (a command that never
// launched); remaining actions for the entry are skipped, but the result
// still reports the match.
func (e *Expression) Evaluate(x *Executor, path, base string, meta EntryMeta, now time.Time) (VisitResult, error) {
	for _, p := range e.Predicates {
		if !p.Match(base, meta, now) {
			return VisitResult{}, nil
		}
	}

	res := VisitResult{Matched: true}
	for _, a := range e.Actions {
		status, err := x.Run(a, path)
		if err != nil {
			return res, err
		}
		res.ExecStatus = status
	}
	return res, nil
}
