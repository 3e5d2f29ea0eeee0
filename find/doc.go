// Package find exposes the gofind engine for embedding: a sequential,
// order-preserving reimplementation of Unix find's traversal and expression
// evaluation.
//
// The engine walks a tree depth-first, visits each directory before its
// contents, and evaluates an implicit-AND chain of predicates against every
// entry, running the configured actions on matches:
//
//	expr := &find.Expression{
//		Predicates: []find.Predicate{find.NamePredicate("*.txt")},
//	}
//	w := find.NewWalker(expr, find.Options{})
//	err := w.Run(".")
//
// With no explicit action the expression prints every match, exactly like
// find's default -print. Exec actions substitute "{}" with the current path
// and block until the child exits:
//
//	expr := &find.Expression{
//		Actions: []find.Action{find.ExecAction([]string{"echo", "{}"})},
//	}
//
// Watch mode applies the same expression to live fsnotify events instead of
// a traversal:
//
//	err := find.Watch(ctx, ".", expr, find.WatchOptions{})
package find
