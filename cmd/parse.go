package cmd

import (
	"fmt"
	"strconv"
	"strings"

	find "gofind.dev/gofind/internal/find"
)

// parseResult is the validated outcome of parsing a find-style command line:
// a start path, the traversal flags, and the expression the engine will
// evaluate. The engine is never invoked on invalid input.
type parseResult struct {
	root      string
	follow    bool
	canonical bool
	expr      find.Expression
}

// parseArgs turns find-style argv (everything after the program name) into a
// parseResult. The grammar is
//
//	[-L] [-C] [path] [expression...]
//
// where the expression tokens are -name PATTERN, -mtime N, -type T, -print,
// and -exec cmd args... ;. Predicates and actions keep their argv order, so
// short-circuiting and exec side-effect timing match the command line.
func parseArgs(args []string) (*parseResult, error) {
	res := &parseResult{root: "."}
	seenRoot := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-L":
			res.follow = true

		case "-C":
			res.canonical = true

		case "-name":
			pattern, err := argValue(args, &i, arg)
			if err != nil {
				return nil, err
			}
			res.expr.Predicates = append(res.expr.Predicates, find.NamePredicate(pattern))

		case "-mtime":
			value, err := argValue(args, &i, arg)
			if err != nil {
				return nil, err
			}
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("invalid argument ‘%s’ to ‘-mtime’", value)
			}
			if n != 0 {
				return nil, fmt.Errorf("invalid argument ‘%s’ to ‘-mtime’: only 0 is supported", value)
			}
			res.expr.Predicates = append(res.expr.Predicates, find.MTimePredicate(n))

		case "-type":
			value, err := argValue(args, &i, arg)
			if err != nil {
				return nil, err
			}
			// A comma-delimited list adds one predicate per letter.
			for _, letter := range strings.Split(value, ",") {
				if len(letter) != 1 || !find.ValidTypeLetter(letter[0]) {
					return nil, fmt.Errorf("invalid argument ‘%s’ to ‘-type’", value)
				}
				res.expr.Predicates = append(res.expr.Predicates, find.TypePredicate(find.TypeLetter(letter[0])))
			}

		case "-print":
			res.expr.Actions = append(res.expr.Actions, find.PrintAction())

		case "-exec":
			template, next, err := collectExec(args, i+1)
			if err != nil {
				return nil, err
			}
			res.expr.Actions = append(res.expr.Actions, find.ExecAction(template))
			i = next

		default:
			if strings.HasPrefix(arg, "-") {
				return nil, fmt.Errorf("unknown predicate ‘%s’", arg)
			}
			if seenRoot {
				return nil, fmt.Errorf("paths must precede expression: ‘%s’", arg)
			}
			res.root = arg
			seenRoot = true
		}
	}

	return res, nil
}

// collectExec swallows the tokens of one -exec action up to the terminating
// lone ";", returning the argv template and the index of the terminator.
func collectExec(args []string, start int) ([]string, int, error) {
	for i := start; i < len(args); i++ {
		if args[i] == ";" {
			if i == start {
				return nil, 0, fmt.Errorf("missing argument to ‘-exec’")
			}
			template := make([]string, i-start)
			copy(template, args[start:i])
			return template, i, nil
		}
	}
	return nil, 0, fmt.Errorf("missing argument to ‘-exec’")
}

// argValue returns the value token following the flag at *i, advancing *i.
func argValue(args []string, i *int, flag string) (string, error) {
	if *i+1 >= len(args) {
		return "", fmt.Errorf("missing argument to ‘%s’", flag)
	}
	*i++
	return args[*i], nil
}
