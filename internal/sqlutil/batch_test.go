package sqlutil_test

import (
	"testing"

	"dbcli/internal/sqlutil"
)

func TestSplitBatches_Basic(t *testing.T) {
	script := "SELECT 1\nGO\nSELECT 2\n GO \nSELECT 3"
	got := sqlutil.SplitBatches(script)

	want := []string{"SELECT 1", "SELECT 2", "SELECT 3"}
	if len(got) != len(want) {
		t.Fatalf("got %d batches, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("batch %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitBatches_SeparatorVariants(t *testing.T) {
	for _, sep := range []string{"GO", "go", "Go", "GO;", "  go ;  "} {
		got := sqlutil.SplitBatches("SELECT 1\n" + sep + "\nSELECT 2")
		if len(got) != 2 {
			t.Errorf("separator %q: got %d batches, want 2", sep, len(got))
		}
	}
}

func TestSplitBatches_GoInsideStatementNotASeparator(t *testing.T) {
	script := "SELECT 'GO' AS word FROM t\nGO\nUPDATE t SET GoCount = GoCount + 1"
	got := sqlutil.SplitBatches(script)
	if len(got) != 2 {
		t.Fatalf("got %d batches, want 2: %v", len(got), got)
	}
	if got[0] != "SELECT 'GO' AS word FROM t" {
		t.Errorf("first batch mangled: %q", got[0])
	}
}

func TestSplitBatches_EmptyBatchesDropped(t *testing.T) {
	got := sqlutil.SplitBatches("GO\n\nSELECT 1\nGO\nGO\n")
	if len(got) != 1 || got[0] != "SELECT 1" {
		t.Errorf("got %v, want only SELECT 1", got)
	}
}

func TestSplitBatches_NoSeparator(t *testing.T) {
	got := sqlutil.SplitBatches("SELECT 1;\nSELECT 2;")
	if len(got) != 1 {
		t.Errorf("script without GO should stay whole, got %v", got)
	}
}
