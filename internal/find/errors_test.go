package find

import (
	"os"
	"syscall"
	"testing"
)

func TestDiagnosticMessages(t *testing.T) {
	tests := []struct {
		diag *Diagnostic
		want string
	}{
		{
			&Diagnostic{Kind: DiagNotFound, Path: "./missing"},
			"find: ‘./missing’: No such file or directory",
		},
		{
			&Diagnostic{Kind: DiagPermission, Path: "./locked"},
			"find: ‘./locked’: Permission denied",
		},
		{
			&Diagnostic{Kind: DiagLoop, Path: "./sub/loop", Loop: "."},
			"find: File system loop detected; ‘./sub/loop’ is part of the same file system loop as ‘.’.",
		},
		{
			&Diagnostic{Kind: DiagExecLaunch, Path: "nocmd"},
			"find: ‘nocmd’: No such file or directory",
		},
	}

	for _, tt := range tests {
		if got := tt.diag.Error(); got != tt.want {
			t.Errorf("diagnostic = %q, want %q", got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	notFound := &os.PathError{Op: "lstat", Path: "x", Err: syscall.ENOENT}
	if d := classify("x", notFound); d.Kind != DiagNotFound {
		t.Errorf("ENOENT classified as %d, want DiagNotFound", d.Kind)
	}

	denied := &os.PathError{Op: "open", Path: "x", Err: syscall.EACCES}
	if d := classify("x", denied); d.Kind != DiagPermission {
		t.Errorf("EACCES classified as %d, want DiagPermission", d.Kind)
	}

	other := &os.PathError{Op: "lstat", Path: "x", Err: syscall.EIO}
	if d := classify("x", other); d.Kind != DiagIO {
		t.Errorf("EIO classified as %d, want DiagIO", d.Kind)
	}

	// An already-built diagnostic passes through untouched.
	loop := &Diagnostic{Kind: DiagLoop, Path: "p", Loop: "a"}
	if d := classify("other", loop); d != loop {
		t.Error("classify rebuilt an existing diagnostic")
	}
}
