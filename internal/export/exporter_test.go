package export_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbcli/internal/config"
	"dbcli/internal/dialect"
	"dbcli/internal/engine"
	"dbcli/internal/export"
)

const (
	sqliteTriggerList = "SELECT name FROM sqlite_master WHERE type = 'trigger' AND name LIKE ? ORDER BY name"
	sqliteTriggerDef  = "SELECT sql FROM sqlite_master WHERE type = 'trigger' AND name = ?"
)

func newMockSession(t *testing.T, dialectName string) (*engine.Session, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	sess := engine.NewSession(db, &config.ConnectionConfig{
		ConnectionString: "mock",
		Dialect:          dialect.Lookup(dialectName),
	})
	t.Cleanup(func() { _ = sess.Close() })
	return sess, mock
}

func TestExportObjects_SingleScript(t *testing.T) {
	sess, mock := newMockSession(t, "sqlite")
	mock.ExpectQuery(sqliteTriggerList).
		WithArgs("%%").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("trg_audit"))
	mock.ExpectQuery(sqliteTriggerDef).
		WithArgs("trg_audit").
		WillReturnRows(sqlmock.NewRows([]string{"sql"}).
			AddRow("CREATE TRIGGER trg_audit AFTER INSERT ON t BEGIN SELECT 1; END"))

	res, err := export.ExportObjects(sess, export.Request{Kind: "trigger"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Contains(t, res.Script, "-- Dialect: sqlite")
	assert.Contains(t, res.Script, "-- ===== triggers =====")
	assert.Contains(t, res.Script, "-- Name: trg_audit")
	assert.Contains(t, res.Script, "CREATE TRIGGER trg_audit AFTER INSERT ON t BEGIN SELECT 1; END\n;")
}

func TestExportObjects_NameFilter(t *testing.T) {
	sess, mock := newMockSession(t, "sqlite")
	mock.ExpectQuery(sqliteTriggerList).
		WithArgs("%audit%").
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	res, err := export.ExportObjects(sess, export.Request{Kind: "trigger", NameFilter: "audit"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.NotContains(t, res.Script, "-- Name:")
}

func TestExportObjects_PerObjectErrorIsInline(t *testing.T) {
	sess, mock := newMockSession(t, "sqlite")
	mock.ExpectQuery(sqliteTriggerList).
		WithArgs("%%").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("trg_broken").AddRow("trg_fine"))
	mock.ExpectQuery(sqliteTriggerDef).
		WithArgs("trg_broken").
		WillReturnError(errors.New("no permission; Password=abc"))
	mock.ExpectQuery(sqliteTriggerDef).
		WithArgs("trg_fine").
		WillReturnRows(sqlmock.NewRows([]string{"sql"}).AddRow("CREATE TRIGGER trg_fine ..."))

	res, err := export.ExportObjects(sess, export.Request{Kind: "trigger"})
	require.NoError(t, err, "one broken object must not abort the export")
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Contains(t, res.Script, "-- ERROR exporting trigger trg_broken")
	assert.Contains(t, res.Script, "Password=***", "error comments must be redacted")
	assert.NotContains(t, res.Script, "Password=abc")
	assert.Contains(t, res.Script, "CREATE TRIGGER trg_fine ...")
}

func TestExportObjects_IndexReconstruction(t *testing.T) {
	sess, mock := newMockSession(t, "sqlite")
	p := dialect.Lookup("sqlite")
	mock.ExpectQuery(p.TableListQuery).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("orders").AddRow("plain"))

	boundIndexQ := strings.ReplaceAll(p.IndexListQuery, "@table", "?")
	mock.ExpectQuery(boundIndexQ).
		WithArgs("orders").
		WillReturnRows(sqlmock.NewRows([]string{"name", "unique", "column"}).
			AddRow("ux_orders_no", 1, "order_no").
			AddRow("ix_orders_cust", 0, "customer_id").
			AddRow("ix_orders_cust", 0, "order_date"))
	mock.ExpectQuery(boundIndexQ).
		WithArgs("plain").
		WillReturnRows(sqlmock.NewRows([]string{"name", "unique", "column"}))

	res, err := export.ExportObjects(sess, export.Request{Kind: "index"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Contains(t, res.Script, "CREATE UNIQUE INDEX ux_orders_no ON orders (order_no)")
	assert.Contains(t, res.Script, "CREATE INDEX ix_orders_cust ON orders (customer_id, order_date)")
	assert.NotContains(t, res.Script, "-- Name: plain", "tables without secondary indexes are skipped")
}

func TestExportObjects_PerObjectFiles(t *testing.T) {
	sess, mock := newMockSession(t, "sqlite")
	mock.ExpectQuery(sqliteTriggerList).
		WithArgs("%%").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("trg one"))
	mock.ExpectQuery(sqliteTriggerDef).
		WithArgs("trg one").
		WillReturnRows(sqlmock.NewRows([]string{"sql"}).AddRow("CREATE TRIGGER ..."))

	dir := t.TempDir()
	res, err := export.ExportObjects(sess, export.Request{Kind: "trigger", OutDir: dir})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	require.Equal(t, 1, res.FilesWritten)

	data, err := os.ReadFile(filepath.Join(res.Dir, "trigger__trg_one.sql"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "-- Name: trg one")
	assert.Contains(t, string(data), "CREATE TRIGGER ...")
}

func TestExportObjects_UnknownKind(t *testing.T) {
	sess, _ := newMockSession(t, "sqlite")
	_, err := export.ExportObjects(sess, export.Request{Kind: "sequence"})
	require.Error(t, err)
}
