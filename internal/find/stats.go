package find

import "go.uber.org/zap"

// Stats accumulates counters over one run. The walk is strictly sequential,
// so plain increments suffice; the struct exists so the walker, watch mode,
// and debug logging share one accounting shape.
type Stats struct {
	Visited int64 // entries inspected, whether or not they matched
	Matched int64 // entries every predicate accepted
	Errors  int64 // diagnostics written to the error stream
}

// Fields renders the counters as structured log fields.
func (s Stats) Fields() []zap.Field {
	return []zap.Field{
		zap.Int64("visited", s.Visited),
		zap.Int64("matched", s.Matched),
		zap.Int64("errors", s.Errors),
	}
}
