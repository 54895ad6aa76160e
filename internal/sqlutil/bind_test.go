package sqlutil_test

import (
	"database/sql"
	"testing"

	"dbcli/internal/sqlutil"
)

func TestBindNamed_AtStyleKeepsPlaceholders(t *testing.T) {
	bound, args, err := sqlutil.BindNamed(
		"SELECT * FROM t WHERE a = @A AND b = @B AND a2 = @A",
		sqlutil.Params{"A": 1, "B": "x"},
		sqlutil.StyleNamedAt,
	)
	if err != nil {
		t.Fatal(err)
	}
	if bound != "SELECT * FROM t WHERE a = @A AND b = @B AND a2 = @A" {
		t.Errorf("bound = %q", bound)
	}
	// one sql.Named per distinct name, not per occurrence
	if len(args) != 2 {
		t.Fatalf("got %d args, want 2", len(args))
	}
	na, ok := args[0].(sql.NamedArg)
	if !ok || na.Name != "A" || na.Value != 1 {
		t.Errorf("args[0] = %#v", args[0])
	}
}

func TestBindNamed_ColonStyle(t *testing.T) {
	bound, args, err := sqlutil.BindNamed(
		"UPDATE t SET v = @Val WHERE id = @Id",
		sqlutil.Params{"Val": "x", "Id": 9},
		sqlutil.StyleNamedColon,
	)
	if err != nil {
		t.Fatal(err)
	}
	if bound != "UPDATE t SET v = :Val WHERE id = :Id" {
		t.Errorf("bound = %q", bound)
	}
	if len(args) != 2 {
		t.Errorf("got %d args, want 2", len(args))
	}
}

func TestBindNamed_DollarStyleDedupsPerName(t *testing.T) {
	bound, args, err := sqlutil.BindNamed(
		"SELECT * FROM t WHERE a = @A AND b = @B AND a2 = @a",
		sqlutil.Params{"A": 1, "B": 2},
		sqlutil.StyleDollar,
	)
	if err != nil {
		t.Fatal(err)
	}
	if bound != "SELECT * FROM t WHERE a = $1 AND b = $2 AND a2 = $1" {
		t.Errorf("bound = %q", bound)
	}
	if len(args) != 2 || args[0] != 1 || args[1] != 2 {
		t.Errorf("args = %v", args)
	}
}

func TestBindNamed_QuestionStyleRepeatsPerOccurrence(t *testing.T) {
	bound, args, err := sqlutil.BindNamed(
		"SELECT * FROM t WHERE a = @A OR a2 = @A",
		sqlutil.Params{"A": 7},
		sqlutil.StyleQuestion,
	)
	if err != nil {
		t.Fatal(err)
	}
	if bound != "SELECT * FROM t WHERE a = ? OR a2 = ?" {
		t.Errorf("bound = %q", bound)
	}
	if len(args) != 2 || args[0] != 7 || args[1] != 7 {
		t.Errorf("args = %v", args)
	}
}

func TestBindNamed_MissingParameter(t *testing.T) {
	_, _, err := sqlutil.BindNamed(
		"SELECT * FROM t WHERE a = @Missing",
		sqlutil.Params{"Other": 1},
		sqlutil.StyleQuestion,
	)
	if err == nil {
		t.Fatal("expected an error for the unbound placeholder")
	}
}

func TestBindNamed_LiteralPlaceholderIgnored(t *testing.T) {
	bound, args, err := sqlutil.BindNamed(
		"SELECT 'mail@example.com' WHERE a = @A",
		sqlutil.Params{"A": 1},
		sqlutil.StyleQuestion,
	)
	if err != nil {
		t.Fatal(err)
	}
	if bound != "SELECT 'mail@example.com' WHERE a = ?" {
		t.Errorf("bound = %q", bound)
	}
	if len(args) != 1 {
		t.Errorf("args = %v", args)
	}
}
