package find

import (
	"fmt"
	"time"
)

// predKind discriminates the Predicate variants.
type predKind int

const (
	predName predKind = iota
	predMTime
	predType
)

// Predicate is one boolean test from the command line. Predicates are
// immutable after construction and safe to share across visits; they never
// mutate shared state.
type Predicate struct {
	kind    predKind
	pattern string     // predName
	days    int        // predMTime
	typ     TypeLetter // predType
}

// NamePredicate matches entries whose basename matches the glob pattern.
func NamePredicate(pattern string) Predicate {
	return Predicate{kind: predName, pattern: pattern}
}

// MTimePredicate matches entries whose age in whole 24-hour periods equals
// days.
func MTimePredicate(days int) Predicate {
	return Predicate{kind: predMTime, days: days}
}

// TypePredicate matches entries of the given filesystem type.
func TypePredicate(t TypeLetter) Predicate {
	return Predicate{kind: predType, typ: t}
}

// Match evaluates the predicate against one visited entry. base is the
// entry's basename; now is the reference timestamp captured once at run
// start, so every comparison within one run is consistent.
func (p Predicate) Match(base string, meta EntryMeta, now time.Time) bool {
	switch p.kind {
	case predName:
		return Match(p.pattern, base)
	case predMTime:
		// find's rule: trunc((now - mtime) / 24h) == n. Ages under a
		// full day truncate to zero, as do future mtimes less than a
		// day ahead (negative ages truncate toward zero).
		days := int(now.Sub(meta.ModTime) / (24 * time.Hour))
		return days == p.days
	case predType:
		return meta.Type == p.typ
	}
	return false
}

func (p Predicate) String() string {
	switch p.kind {
	case predName:
		return fmt.Sprintf("-name %q", p.pattern)
	case predMTime:
		return fmt.Sprintf("-mtime %d", p.days)
	case predType:
		return fmt.Sprintf("-type %c", p.typ)
	}
	return "unknown"
}
