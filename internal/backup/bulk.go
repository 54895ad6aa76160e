package backup

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	mssql "github.com/microsoft/go-mssqldb"

	"dbcli/internal/dialect"
	"dbcli/internal/engine"
	"dbcli/internal/sqlutil"
)

// insertBatchSize bounds parameters per statement in the portable path;
// the tightest common driver limit is well above 500 values.
const insertBatchSize = 100

// bulkLoad pushes a buffered RowSet into table using the fastest
// primitive the driver offers: COPY for postgres, TDS bulk copy for
// sqlserver, multi-row prepared inserts everywhere else.
func bulkLoad(s *engine.Session, table string, rs *engine.RowSet) (int64, error) {
	if rs.Len() == 0 {
		return 0, nil
	}
	switch s.Dialect().BulkCopy {
	case dialect.BulkCopyPostgres:
		return copyLoad(s, pq.CopyIn(table, rs.Columns...), rs)
	case dialect.BulkCopyMSSQL:
		return copyLoad(s, mssql.CopyIn(table, mssql.BulkOptions{}, rs.Columns...), rs)
	default:
		return batchInsert(s, table, rs)
	}
}

// copyLoad drives the pq/mssql copy protocol: one prepared statement,
// one Exec per row, a final empty Exec to flush, all inside one tx.
func copyLoad(s *engine.Session, copyStmt string, rs *engine.RowSet) (int64, error) {
	tx, err := s.DB().Begin()
	if err != nil {
		return 0, err
	}
	st, err := tx.Prepare(copyStmt)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	for i := 0; i < rs.Len(); i++ {
		if _, err := st.Exec(rs.Values(i)...); err != nil {
			_ = st.Close()
			_ = tx.Rollback()
			return 0, err
		}
	}
	if _, err := st.Exec(); err != nil {
		_ = st.Close()
		_ = tx.Rollback()
		return 0, err
	}
	if err := st.Close(); err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int64(rs.Len()), nil
}

// batchInsert is the portable bulk path: chunked multi-row INSERTs built
// with named placeholders and routed through the engine's normal
// binding, so each dialect gets its native placeholder style.
func batchInsert(s *engine.Session, table string, rs *engine.RowSet) (int64, error) {
	var loaded int64
	for start := 0; start < rs.Len(); start += insertBatchSize {
		end := start + insertBatchSize
		if end > rs.Len() {
			end = rs.Len()
		}

		params := sqlutil.Params{}
		var tuples []string
		for i := start; i < end; i++ {
			vals := rs.Values(i)
			names := make([]string, len(vals))
			for j, v := range vals {
				name := fmt.Sprintf("r%d_%d", i, j)
				params[name] = v
				names[j] = "@" + name
			}
			tuples = append(tuples, "("+strings.Join(names, ", ")+")")
		}

		stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
			table, strings.Join(rs.Columns, ", "), strings.Join(tuples, ", "))
		if _, err := s.Execute(stmt, params); err != nil {
			return loaded, err
		}
		loaded += int64(end - start)
	}
	return loaded, nil
}
