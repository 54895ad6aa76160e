package backup

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"dbcli/internal/engine"
	"dbcli/internal/sqlutil"
)

// Restore copies backupTable back into targetTable. A missing backup is
// reported as method None. deleteExistingFirst issues a DELETE FROM
// before restoring.
func Restore(s *engine.Session, targetTable, backupTable string, deleteExistingFirst bool) (*Record, error) {
	exists, err := tableExists(s, backupTable)
	if err != nil {
		return nil, err
	}
	if !exists {
		return failure(MethodNone, fmt.Sprintf("backup table %s does not exist", backupTable)), nil
	}

	if deleteExistingFirst {
		if _, err := s.Execute("DELETE FROM "+targetTable, nil); err != nil {
			return failure(MethodFailed, fmt.Sprintf("clearing %s: %s", targetTable, sqlutil.RedactErr(err))), nil
		}
	}

	if s.Dialect().RequiresIdentityInsertToggle {
		return identityRestore(s, targetTable, backupTable), nil
	}

	var attempts *multierror.Error

	if n, err := s.Execute(fmt.Sprintf("INSERT INTO %s SELECT * FROM %s", targetTable, backupTable), nil); err == nil {
		return success(MethodInsertIntoSelect, n, fmt.Sprintf("restored %d rows into %s", n, targetTable)), nil
	} else {
		attempts = multierror.Append(attempts, fmt.Errorf("InsertIntoSelect: %s", sqlutil.RedactErr(err)))
	}

	if rs, err := s.Query("SELECT * FROM "+backupTable, nil); err != nil {
		attempts = multierror.Append(attempts, fmt.Errorf("Fastest.BulkCopy: %s", sqlutil.RedactErr(err)))
	} else if n, err := bulkLoad(s, targetTable, rs); err == nil {
		return success(MethodBulkCopy, n, fmt.Sprintf("bulk-restored %d rows into %s", n, targetTable)), nil
	} else {
		attempts = multierror.Append(attempts, fmt.Errorf("Fastest.BulkCopy: %s", sqlutil.RedactErr(err)))
	}

	if n, err := manualRestore(s, targetTable, backupTable); err == nil {
		return success(MethodManualInsert, n, fmt.Sprintf("manually restored %d rows into %s", n, targetTable)), nil
	} else {
		attempts = multierror.Append(attempts, fmt.Errorf("ManualInsert: %s", sqlutil.RedactErr(err)))
	}

	return failure(MethodFailed, attempts.Error()), nil
}

// identityRestore is the toggle-dialect path. SET IDENTITY_INSERT is
// session-scoped on the server, so the toggle and the insert run inside
// one transaction on one pinned connection; issued as independent pooled
// statements the toggle could land on a different session than the
// insert.
func identityRestore(s *engine.Session, targetTable, backupTable string) *Record {
	cols, err := tableColumns(s, targetTable)
	if err != nil {
		return failure(MethodSQLServerRestore, sqlutil.RedactErr(err))
	}
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	colList := strings.Join(names, ", ")
	insert := fmt.Sprintf("INSERT INTO %s (%s) SELECT %s FROM %s", targetTable, colList, colList, backupTable)

	// Tables without an identity column skip the toggle entirely. The
	// catalog lookup can miss (permissions), in which case the toggle
	// attempt below still catches it through the driver's error text.
	if idCol, err := identityColumn(s, targetTable); err == nil && idCol == "" {
		n, err := s.Execute(insert, nil)
		if err != nil {
			return failure(MethodInsertSelectColumns, sqlutil.RedactErr(err))
		}
		return success(MethodInsertSelectColumns, n, fmt.Sprintf("restored %d rows into %s", n, targetTable))
	}

	ctx := context.Background()
	conn, err := s.SingleConn(ctx)
	if err != nil {
		return failure(MethodSQLServerRestore, sqlutil.RedactErr(err))
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return failure(MethodSQLServerRestore, sqlutil.RedactErr(err))
	}

	runToggled := func() (int64, error) {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("SET IDENTITY_INSERT %s ON", targetTable)); err != nil {
			return 0, err
		}
		res, err := tx.ExecContext(ctx, insert)
		if err != nil {
			return 0, err
		}
		n, _ := res.RowsAffected()
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("SET IDENTITY_INSERT %s OFF", targetTable)); err != nil {
			return n, err
		}
		return n, nil
	}

	n, err := runToggled()
	if err == nil {
		if err := tx.Commit(); err != nil {
			return failure(MethodSQLServerRestore, sqlutil.RedactErr(err))
		}
		return success(MethodSQLServerRestore, n, fmt.Sprintf("restored %d rows into %s with identity values preserved", n, targetTable))
	}
	_ = tx.Rollback()

	// Tables without an identity column reject the toggle; retry as a
	// plain column-list insert.
	if isNoIdentityError(err) {
		n, err := s.Execute(insert, nil)
		if err != nil {
			return failure(MethodInsertSelectColumns, sqlutil.RedactErr(err))
		}
		return success(MethodInsertSelectColumns, n, fmt.Sprintf("restored %d rows into %s", n, targetTable))
	}

	return failure(MethodSQLServerRestore, sqlutil.RedactErr(err))
}

// isNoIdentityError matches the driver messages for toggling identity
// insert on a table that has no identity column.
func isNoIdentityError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "does not have the identity property") ||
		strings.Contains(msg, "identity_insert") && strings.Contains(msg, "cannot") ||
		strings.Contains(msg, "no identity")
}

// manualRestore inserts row by row with escaped literals; the backup
// table defines the column order.
func manualRestore(s *engine.Session, targetTable, backupTable string) (int64, error) {
	rs, err := s.Query("SELECT * FROM "+backupTable, nil)
	if err != nil {
		return 0, err
	}
	colList := strings.Join(rs.Columns, ", ")
	for i := 0; i < rs.Len(); i++ {
		stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			targetTable, colList, sqlutil.FormatLiteralRow(rs.Values(i)))
		if _, err := s.Execute(stmt, nil); err != nil {
			return int64(i), err
		}
	}
	return int64(rs.Len()), nil
}
