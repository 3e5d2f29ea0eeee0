package find

import (
	"bytes"
	"testing"
	"time"

	"go.uber.org/zap"
)

func testExecutor(out, errw *bytes.Buffer) *Executor {
	return &Executor{Stdout: out, Stderr: errw, Logger: zap.NewNop()}
}

func TestNormalizeDefaultPrint(t *testing.T) {
	var e Expression
	e.Normalize()
	if len(e.Actions) != 1 {
		t.Fatalf("expected implicit print, got %d actions", len(e.Actions))
	}

	// Normalizing again must not stack a second print.
	e.Normalize()
	if len(e.Actions) != 1 {
		t.Fatalf("Normalize is not idempotent: %d actions", len(e.Actions))
	}
}

func TestNormalizeKeepsExplicitActions(t *testing.T) {
	e := Expression{Actions: []Action{ExecAction([]string{"echo", "{}"})}}
	e.Normalize()
	if len(e.Actions) != 1 || !e.Actions[0].IsExec() {
		t.Fatal("explicit action list was rewritten")
	}
	if !e.HasExec() {
		t.Error("HasExec() = false, want true")
	}
}

func TestEvaluateAndChain(t *testing.T) {
	var out, errw bytes.Buffer
	now := time.Now()
	expr := Expression{
		Predicates: []Predicate{
			NamePredicate("*.txt"),
			TypePredicate(TypeFile),
		},
	}
	expr.Normalize()

	meta := EntryMeta{Type: TypeFile, ModTime: now}
	res, err := expr.Evaluate(testExecutor(&out, &errw), "d/a.txt", "a.txt", meta, now)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !res.Matched {
		t.Error("expected match when every predicate passes")
	}
	if out.String() != "d/a.txt\n" {
		t.Errorf("output = %q, want %q", out.String(), "d/a.txt\n")
	}

	// One failing predicate rejects the entry and suppresses all actions.
	out.Reset()
	metaDir := EntryMeta{Type: TypeDir, ModTime: now}
	res, err = expr.Evaluate(testExecutor(&out, &errw), "d/b.txt", "b.txt", metaDir, now)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Matched {
		t.Error("expected rejection when a predicate fails")
	}
	if out.Len() != 0 {
		t.Errorf("rejected entry produced output %q", out.String())
	}
}

func TestEvaluateActionOrder(t *testing.T) {
	var out, errw bytes.Buffer
	now := time.Now()
	expr := Expression{
		Actions: []Action{
			PrintAction(),
			ExecAction([]string{"echo", "ran", "{}"}),
		},
	}

	meta := EntryMeta{Type: TypeFile, ModTime: now}
	res, err := expr.Evaluate(testExecutor(&out, &errw), "p", "p", meta, now)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !res.Matched {
		t.Fatal("expected match with no predicates")
	}
	if want := "p\nran p\n"; out.String() != want {
		t.Errorf("output = %q, want %q (actions must run in declared order)", out.String(), want)
	}
}

func TestEvaluateRecordsExecStatus(t *testing.T) {
	var out, errw bytes.Buffer
	now := time.Now()
	expr := Expression{
		Actions: []Action{ExecAction([]string{"sh", "-c", "exit 3"})},
	}

	meta := EntryMeta{Type: TypeFile, ModTime: now}
	res, err := expr.Evaluate(testExecutor(&out, &errw), "p", "p", meta, now)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !res.Matched {
		t.Fatal("expected match")
	}
	if res.ExecStatus != 3 {
		t.Errorf("ExecStatus = %d, want 3", res.ExecStatus)
	}
}

func TestEvaluateStopsActionsOnLaunchFailure(t *testing.T) {
	var out, errw bytes.Buffer
	now := time.Now()
	expr := Expression{
		Actions: []Action{
			ExecAction([]string{"gofind-no-such-command"}),
			PrintAction(),
		},
	}

	meta := EntryMeta{Type: TypeFile, ModTime: now}
	res, err := expr.Evaluate(testExecutor(&out, &errw), "p", "p", meta, now)
	if err == nil {
		t.Fatal("expected launch failure")
	}
	if !res.Matched {
		t.Error("launch failure must not unmatch the entry")
	}
	if out.Len() != 0 {
		t.Errorf("actions after the failed one still ran: %q", out.String())
	}
}
