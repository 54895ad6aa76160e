package sqlutil_test

import (
	"testing"

	"dbcli/internal/sqlutil"
)

func TestRewrite_ScalarsPassThrough(t *testing.T) {
	sql := "SELECT * FROM Users WHERE Id = @Id"
	params := sqlutil.Params{"Id": 3}

	got, gotParams := sqlutil.Rewrite(sql, params)

	if got != sql {
		t.Errorf("SQL changed without array parameters: %q", got)
	}
	if v, _ := gotParams.Get("Id"); v != 3 {
		t.Errorf("Id binding lost, got %v", v)
	}
}

func TestRewrite_ExpandsArray(t *testing.T) {
	sql := "SELECT * FROM Users WHERE Id IN (@Ids)"
	params := sqlutil.Params{"Ids": []int{10, 20, 30}}

	got, gotParams := sqlutil.Rewrite(sql, params)

	want := "SELECT * FROM Users WHERE Id IN (@Ids_0, @Ids_1, @Ids_2)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if gotParams.Has("Ids") {
		t.Error("array binding Ids survived the rewrite")
	}
	for i, want := range []int{10, 20, 30} {
		name := []string{"Ids_0", "Ids_1", "Ids_2"}[i]
		if v, ok := gotParams.Get(name); !ok || v != want {
			t.Errorf("%s = %v, want %d", name, v, want)
		}
	}
}

func TestRewrite_EmptyArrayBecomesNull(t *testing.T) {
	got, gotParams := sqlutil.Rewrite(
		"DELETE FROM Users WHERE Id IN (@Ids)",
		sqlutil.Params{"Ids": []int{}},
	)

	if got != "DELETE FROM Users WHERE Id IN (NULL)" {
		t.Errorf("got %q", got)
	}
	if len(gotParams) != 0 {
		t.Errorf("empty array still produced bindings: %v", gotParams)
	}
}

func TestRewrite_MixedScalarAndArray(t *testing.T) {
	sql := "SELECT * FROM Orders WHERE Status = @Status AND Id IN (@Ids)"
	got, gotParams := sqlutil.Rewrite(sql, sqlutil.Params{
		"Status": "open",
		"Ids":    []int64{1, 2},
	})

	want := "SELECT * FROM Orders WHERE Status = @Status AND Id IN (@Ids_0, @Ids_1)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if v, _ := gotParams.Get("Status"); v != "open" {
		t.Errorf("scalar Status disturbed: %v", v)
	}
}

func TestRewrite_CaseInsensitiveNames(t *testing.T) {
	got, _ := sqlutil.Rewrite(
		"SELECT 1 WHERE x IN (@IDS)",
		sqlutil.Params{"ids": []int{7}},
	)
	if got != "SELECT 1 WHERE x IN (@IDS_0)" {
		t.Errorf("got %q", got)
	}
}

func TestRewrite_PlaceholderInsideLiteralUntouched(t *testing.T) {
	sql := "SELECT '@Ids isn''t a placeholder' WHERE Id IN (@Ids)"
	got, _ := sqlutil.Rewrite(sql, sqlutil.Params{"Ids": []int{1}})

	want := "SELECT '@Ids isn''t a placeholder' WHERE Id IN (@Ids_0)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRewrite_Idempotent(t *testing.T) {
	sql := "SELECT * FROM T WHERE Id IN (@Ids)"
	once, onceParams := sqlutil.Rewrite(sql, sqlutil.Params{"Ids": []int{1, 2}})
	twice, twiceParams := sqlutil.Rewrite(once, onceParams)

	if twice != once {
		t.Errorf("second rewrite changed SQL: %q -> %q", once, twice)
	}
	if len(twiceParams) != len(onceParams) {
		t.Errorf("second rewrite changed bindings: %v -> %v", onceParams, twiceParams)
	}
}

func TestRewrite_UnreferencedArrayStillExpanded(t *testing.T) {
	_, gotParams := sqlutil.Rewrite("SELECT 1", sqlutil.Params{"Ids": []int{5}})

	if gotParams.Has("Ids") {
		t.Error("unreferenced array binding survived")
	}
	if v, ok := gotParams.Get("Ids_0"); !ok || v != 5 {
		t.Errorf("Ids_0 = %v", v)
	}
}

func TestIsArrayValue(t *testing.T) {
	cases := []struct {
		v    interface{}
		want bool
	}{
		{nil, false},
		{"text", false},
		{[]byte("blob"), false},
		{42, false},
		{map[string]int{"a": 1}, false},
		{[]int{1}, true},
		{[]string{}, true},
		{[2]float64{1, 2}, true},
	}
	for _, c := range cases {
		if got := sqlutil.IsArrayValue(c.v); got != c.want {
			t.Errorf("IsArrayValue(%#v) = %v, want %v", c.v, got, c.want)
		}
	}
}
