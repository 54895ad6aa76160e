package engine_test

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"dbcli/internal/config"
	"dbcli/internal/dberr"
	"dbcli/internal/dialect"
	"dbcli/internal/engine"
)

func newMockSession(t *testing.T, dialectName string, mutate func(*config.ConnectionConfig)) (*engine.Session, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatal(err)
	}
	cfg := &config.ConnectionConfig{
		ConnectionString: "mock",
		Dialect:          dialect.Lookup(dialectName),
	}
	if cfg.Dialect == nil {
		t.Fatalf("no such dialect %q", dialectName)
	}
	if mutate != nil {
		mutate(cfg)
	}
	sess := engine.NewSession(db, cfg)
	t.Cleanup(func() { _ = sess.Close() })
	return sess, mock
}

func expectMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestQuery_RowSetShape(t *testing.T) {
	sess, mock := newMockSession(t, "sqlite", nil)
	mock.ExpectQuery("SELECT id, name FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "alice").
			AddRow(2, nil))

	rs, err := sess.Query("SELECT id, name FROM users", nil)
	if err != nil {
		t.Fatal(err)
	}
	if rs.Len() != 2 {
		t.Fatalf("got %d rows", rs.Len())
	}
	if rs.Columns[0] != "id" || rs.Columns[1] != "name" {
		t.Errorf("columns = %v", rs.Columns)
	}
	if rs.Rows[0]["name"] != "alice" {
		t.Errorf("row 0 name = %v", rs.Rows[0]["name"])
	}
	if rs.Rows[1]["name"] != nil {
		t.Errorf("NULL should scan to nil, got %v", rs.Rows[1]["name"])
	}
	expectMet(t, mock)
}

func TestQuery_QuestionStyleBinding(t *testing.T) {
	sess, mock := newMockSession(t, "mysql", nil)
	mock.ExpectQuery("SELECT * FROM t WHERE id = ?").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	rs, err := sess.Query("SELECT * FROM t WHERE id = @Id", map[string]interface{}{"Id": 5})
	if err != nil {
		t.Fatal(err)
	}
	if rs.Len() != 1 {
		t.Errorf("got %d rows", rs.Len())
	}
	expectMet(t, mock)
}

func TestQuery_DollarStyleArrayExpansion(t *testing.T) {
	sess, mock := newMockSession(t, "postgres", nil)
	mock.ExpectQuery("SELECT * FROM t WHERE id IN ($1, $2, $3)").
		WithArgs(1, 2, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2).AddRow(3))

	rs, err := sess.Query(
		"SELECT * FROM t WHERE id IN (@Ids)",
		map[string]interface{}{"Ids": []int{1, 2, 3}},
	)
	if err != nil {
		t.Fatal(err)
	}
	if rs.Len() != 3 {
		t.Errorf("got %d rows", rs.Len())
	}
	expectMet(t, mock)
}

func TestQuery_ParametersUnsupported(t *testing.T) {
	sess, _ := newMockSession(t, "redis", nil)
	_, err := sess.Query("GET @Key", map[string]interface{}{"Key": "x"})
	if !errors.Is(err, dberr.ErrUnsupportedOperation) {
		t.Errorf("want ErrUnsupportedOperation, got %v", err)
	}
}

func TestQuery_BatchScriptWithParameters(t *testing.T) {
	sess, _ := newMockSession(t, "sqlserver", nil)
	_, err := sess.Query(
		"SELECT @A\nGO\nSELECT @A",
		map[string]interface{}{"A": 1},
	)
	if !errors.Is(err, dberr.ErrBatchWithParameters) {
		t.Errorf("want ErrBatchWithParameters, got %v", err)
	}
}

func TestExecute_AffectedCount(t *testing.T) {
	sess, mock := newMockSession(t, "mysql", nil)
	mock.ExpectExec("UPDATE t SET v = ? WHERE id = ?").
		WithArgs("x", 2).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := sess.Execute(
		"UPDATE t SET v = @V WHERE id = @Id",
		map[string]interface{}{"V": "x", "Id": 2},
	)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("affected = %d, want 3", n)
	}
	expectMet(t, mock)
}

func TestExecute_MissingParameter(t *testing.T) {
	sess, _ := newMockSession(t, "mysql", nil)
	_, err := sess.Execute("UPDATE t SET v = @V", map[string]interface{}{"Other": 1})
	if err == nil {
		t.Fatal("expected an error for the unbound placeholder")
	}
}

func TestScalar(t *testing.T) {
	sess, mock := newMockSession(t, "sqlite", nil)
	mock.ExpectQuery("SELECT COUNT(*) FROM t").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))
	mock.ExpectQuery("SELECT id FROM t WHERE 1=0").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	v, err := sess.Scalar("SELECT COUNT(*) FROM t", nil)
	if err != nil {
		t.Fatal(err)
	}
	if v != int64(42) {
		t.Errorf("scalar = %v", v)
	}

	v, err = sess.Scalar("SELECT id FROM t WHERE 1=0", nil)
	if err != nil {
		t.Fatal(err)
	}
	if v != nil {
		t.Errorf("empty result should yield nil, got %v", v)
	}
	expectMet(t, mock)
}

func TestExecuteBatched_SumsAffectedCounts(t *testing.T) {
	sess, mock := newMockSession(t, "sqlserver", nil)
	mock.ExpectExec("UPDATE a SET x = 1").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE b SET x = 1").WillReturnResult(sqlmock.NewResult(0, 5))

	n, err := sess.ExecuteBatched("UPDATE a SET x = 1\nGO\nUPDATE b SET x = 1\nGO")
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Errorf("total affected = %d, want 7", n)
	}
	expectMet(t, mock)
}

func TestExecuteBatched_FailureCarriesBatchIndex(t *testing.T) {
	sess, mock := newMockSession(t, "sqlserver", nil)
	mock.ExpectExec("SELECT 1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("BROKEN").WillReturnError(errors.New("syntax error"))

	_, err := sess.ExecuteBatched("SELECT 1\nGO\nBROKEN\nGO\nSELECT 2")
	var be *dberr.BatchError
	if !errors.As(err, &be) {
		t.Fatalf("want BatchError, got %v", err)
	}
	if be.Index != 1 {
		t.Errorf("failing batch index = %d, want 1", be.Index)
	}
	expectMet(t, mock)
}

func TestExecuteBatched_UnsupportedDialect(t *testing.T) {
	sess, _ := newMockSession(t, "postgres", nil)
	_, err := sess.ExecuteBatched("SELECT 1\nGO\nSELECT 2")
	if !errors.Is(err, dberr.ErrUnsupportedOperation) {
		t.Errorf("want ErrUnsupportedOperation, got %v", err)
	}
}

func TestCallProcedure_MySQLSyntax(t *testing.T) {
	sess, mock := newMockSession(t, "mysql", nil)
	mock.ExpectExec("CALL refresh_totals(?, ?)").
		WithArgs(7, "2024").
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Parameter names are sorted, so Period binds before Year.
	n, err := sess.CallProcedure("refresh_totals", map[string]interface{}{
		"Period": 7,
		"Year":   "2024",
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("affected = %d", n)
	}
	expectMet(t, mock)
}

func TestQueryProcedure_NoCallSyntax(t *testing.T) {
	sess, _ := newMockSession(t, "redis", nil)
	_, err := sess.QueryProcedure("anything", nil)
	if !errors.Is(err, dberr.ErrUnsupportedOperation) {
		t.Errorf("want ErrUnsupportedOperation, got %v", err)
	}
}

func TestStatementCacheReusesPrepared(t *testing.T) {
	sess, mock := newMockSession(t, "mysql", func(cfg *config.ConnectionConfig) {
		cfg.DisableClearParameters = true
	})
	// One Prepare, two executions against the same handle.
	prep := mock.ExpectPrepare("SELECT * FROM t WHERE id = ?")
	prep.ExpectQuery().WithArgs(1).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	prep.ExpectQuery().WithArgs(2).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	for _, id := range []int{1, 2} {
		if _, err := sess.Query("SELECT * FROM t WHERE id = @Id", map[string]interface{}{"Id": id}); err != nil {
			t.Fatal(err)
		}
	}
	expectMet(t, mock)
}

func TestQuery_DriverErrorIsRedacted(t *testing.T) {
	sess, mock := newMockSession(t, "sqlite", nil)
	mock.ExpectQuery("SELECT 1").
		WillReturnError(errors.New("login failed for Password=hunter2;"))

	_, err := sess.Query("SELECT 1", nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	var se *dberr.SQLError
	if !errors.As(err, &se) {
		t.Fatalf("want SQLError, got %T", err)
	}
	if se.Message != "login failed for Password=***;" {
		t.Errorf("message not redacted: %q", se.Message)
	}
}
