package find

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// PathToken is the template placeholder substituted with the current path.
const PathToken = "{}"

// actionKind discriminates the Action variants.
type actionKind int

const (
	actionPrint actionKind = iota
	actionExec
)

// Action is a side effect performed on a matched entry: printing its path or
// spawning a command built from an argv template.
type Action struct {
	kind     actionKind
	template []string
}

// PrintAction writes the entry's path followed by a newline.
func PrintAction() Action {
	return Action{kind: actionPrint}
}

// ExecAction spawns the template argv with every PathToken occurrence
// replaced by the entry's path.
func ExecAction(template []string) Action {
	return Action{kind: actionExec, template: template}
}

// IsExec reports whether the action spawns a command.
func (a Action) IsExec() bool { return a.kind == actionExec }

func (a Action) String() string {
	if a.kind == actionPrint {
		return "-print"
	}
	return fmt.Sprintf("-exec %s ;", strings.Join(a.template, " "))
}

// Executor performs actions for matched entries. Print output goes to
// Stdout; exec children inherit the executor's streams and block the walk
// until they exit, keeping output interleaved in traversal order.
type Executor struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

// Run performs the action for path. For exec actions the child's exit status
// is returned; a non-nil error means the command never launched.
func (e *Executor) Run(a Action, path string) (int, error) {
	switch a.kind {
	case actionPrint:
		fmt.Fprintln(e.Stdout, path)
		return 0, nil
	case actionExec:
		return e.runExec(a.template, path)
	}
	return 0, fmt.Errorf("unknown action kind %d", a.kind)
}

func (e *Executor) runExec(template []string, path string) (int, error) {
	argv := substitute(template, path)
	if len(argv) == 0 {
		return -1, errors.New("empty exec template")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Start(); err != nil {
		return -1, classifyLaunch(argv[0], err)
	}
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("exec started", zap.Strings("argv", argv))

	// No timeout: the run waits indefinitely for the child.
	err := cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// A non-zero child status is recorded but never aborts the
		// walk or changes the run's exit code.
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, classifyLaunch(argv[0], err)
	}
	return 0, nil
}

// substitute expands the argv template for one path. Every placeholder
// occurrence is replaced independently, token by token.
func substitute(template []string, path string) []string {
	argv := make([]string, len(template))
	for i, t := range template {
		argv[i] = strings.ReplaceAll(t, PathToken, path)
	}
	return argv
}

// classifyLaunch maps a launch failure to the diagnostic find prints for a
// command it could not start.
func classifyLaunch(name string, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return &Diagnostic{Kind: DiagExecLaunch, Path: name, Err: err}
	}
	return classify(name, err)
}
