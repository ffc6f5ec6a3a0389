package langserver

import (
	"testing"
)

func TestDiagnosticsCleanSource(t *testing.T) {
	diags := Diagnostics("def f(x) x\nextern g()\nf(g())")
	if len(diags) != 0 {
		t.Errorf("got %d diagnostics, want 0", len(diags))
	}
	if diags == nil {
		t.Error("diagnostics must be non-nil so clients clear stale errors")
	}
}

func TestDiagnosticsSyntaxError(t *testing.T) {
	diags := Diagnostics("foo(1 2)")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}

	d := diags[0]
	if d.Message != "Expected ')' or ',' in argument list" {
		t.Errorf("Message = %q", d.Message)
	}
	// parser reports 1:7; LSP positions are zero-based
	if d.Range.Start.Line != 0 || d.Range.Start.Character != 6 {
		t.Errorf("Range.Start = %+v, want line 0 char 6", d.Range.Start)
	}
}

func TestDiagnosticsNoCascade(t *testing.T) {
	// One broken construct yields one diagnostic; the tokens it leaves
	// behind are skipped, and the next construct is still checked.
	diags := Diagnostics("foo(1 2) * 3\ndef f(x x")
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(diags))
	}
	if diags[0].Message != "Expected ')' or ',' in argument list" {
		t.Errorf("first Message = %q", diags[0].Message)
	}
	if diags[1].Message != "Expected ')' in prototype" {
		t.Errorf("second Message = %q", diags[1].Message)
	}
}

func TestDiagnosticsMultipleErrors(t *testing.T) {
	diags := Diagnostics("(1+2\ndef f(x) x\n)")
	if len(diags) < 2 {
		t.Fatalf("got %d diagnostics, want at least 2", len(diags))
	}
}
