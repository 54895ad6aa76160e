package backup

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"dbcli/internal/engine"
	"dbcli/internal/sqlutil"
)

// dropTable removes a (possibly partial) backup table. Best effort:
// "doesn't exist" failures are expected between fallback attempts.
func dropTable(s *engine.Session, table string) {
	_, _ = s.Execute("DROP TABLE "+table, nil)
}

// Backup copies sourceTable into backupTable, trying strategies fastest
// first. A missing source is reported as method None, not an error; an
// error return means the existence check itself could not run.
func Backup(s *engine.Session, sourceTable, backupTable string) (*Record, error) {
	exists, err := tableExists(s, sourceTable)
	if err != nil {
		return nil, err
	}
	if !exists {
		return failure(MethodNone, fmt.Sprintf("table %s does not exist", sourceTable)), nil
	}

	if s.Dialect().NoCreateTableAsSelect {
		return selectIntoBackup(s, sourceTable, backupTable), nil
	}

	var attempts *multierror.Error

	// Fastest: one server-side statement.
	if _, err := s.Execute(fmt.Sprintf("CREATE TABLE %s AS SELECT * FROM %s", backupTable, sourceTable), nil); err == nil {
		n, cerr := countRows(s, backupTable)
		if cerr == nil {
			return success(MethodCreateTableAsSelect, n, fmt.Sprintf("copied %d rows to %s", n, backupTable)), nil
		}
		attempts = multierror.Append(attempts, fmt.Errorf("CreateTableAsSelect count: %s", sqlutil.RedactErr(cerr)))
	} else {
		attempts = multierror.Append(attempts, fmt.Errorf("CreateTableAsSelect: %s", sqlutil.RedactErr(err)))
	}

	// Next: empty shell plus the driver's bulk-copy primitive.
	if n, err := bulkBackup(s, sourceTable, backupTable); err == nil {
		return success(MethodBulkCopy, n, fmt.Sprintf("bulk-copied %d rows to %s", n, backupTable)), nil
	} else {
		attempts = multierror.Append(attempts, fmt.Errorf("Fastest.BulkCopy: %s", sqlutil.RedactErr(err)))
	}

	// Slowest, guaranteed-correct: synthesized DDL plus literal inserts.
	if n, err := manualBackup(s, sourceTable, backupTable); err == nil {
		return success(MethodManualInsert, n, fmt.Sprintf("manually copied %d rows to %s", n, backupTable)), nil
	} else {
		attempts = multierror.Append(attempts, fmt.Errorf("ManualInsert: %s", sqlutil.RedactErr(err)))
	}

	return failure(MethodFailed, attempts.Error()), nil
}

// selectIntoBackup handles the family without CTAS. Failure here is
// terminal: SELECT INTO is that family's one supported shape.
func selectIntoBackup(s *engine.Session, sourceTable, backupTable string) *Record {
	dropTable(s, backupTable)
	if _, err := s.Execute(fmt.Sprintf("SELECT * INTO %s FROM %s", backupTable, sourceTable), nil); err != nil {
		return failure(MethodSelectInto, sqlutil.RedactErr(err))
	}
	n, err := countRows(s, backupTable)
	if err != nil {
		return failure(MethodSelectInto, sqlutil.RedactErr(err))
	}
	return success(MethodSelectInto, n, fmt.Sprintf("copied %d rows to %s", n, backupTable))
}

// bulkBackup creates an empty copy via WHERE 1=0, buffers the source in
// memory and bulk-loads it. An empty source is success with zero rows.
func bulkBackup(s *engine.Session, sourceTable, backupTable string) (int64, error) {
	dropTable(s, backupTable)
	if _, err := s.Execute(fmt.Sprintf("CREATE TABLE %s AS SELECT * FROM %s WHERE 1=0", backupTable, sourceTable), nil); err != nil {
		return 0, err
	}
	rs, err := s.Query("SELECT * FROM "+sourceTable, nil)
	if err != nil {
		return 0, err
	}
	return bulkLoad(s, backupTable, rs)
}

// manualBackup synthesizes the DDL from catalog metadata and inserts
// row by row with escaped literals.
func manualBackup(s *engine.Session, sourceTable, backupTable string) (int64, error) {
	dropTable(s, backupTable)

	cols, err := tableColumns(s, sourceTable)
	if err != nil {
		return 0, err
	}
	if _, err := s.Execute(buildCreateTable(backupTable, cols), nil); err != nil {
		return 0, err
	}

	rs, err := s.Query("SELECT * FROM "+sourceTable, nil)
	if err != nil {
		return 0, err
	}
	colList := strings.Join(rs.Columns, ", ")
	for i := 0; i < rs.Len(); i++ {
		stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			backupTable, colList, sqlutil.FormatLiteralRow(rs.Values(i)))
		if _, err := s.Execute(stmt, nil); err != nil {
			return int64(i), err
		}
	}
	return int64(rs.Len()), nil
}
