package engine

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	mssql "github.com/microsoft/go-mssqldb"

	"dbcli/internal/dberr"
	"dbcli/internal/sqlutil"
)

// sqlErr wraps a driver error with its message redacted for display.
func sqlErr(err error) error {
	return &dberr.SQLError{Message: sqlutil.RedactErr(err), Err: err}
}

// prepare applies the full parameter pipeline: support gate, batch
// guard, array rewrite, placeholder binding, driver workarounds.
func (s *Session) prepare(sqlText string, params sqlutil.Params) (string, []interface{}, error) {
	if len(params) == 0 {
		return sqlText, nil, nil
	}
	p := s.Dialect()
	if !p.SupportsParameters {
		return "", nil, fmt.Errorf("%w: %s takes no bound parameters", dberr.ErrUnsupportedOperation, p.Name)
	}
	// Per-batch parameter rebinding is undefined; a script that would
	// split cannot carry parameters.
	if p.SupportsBatchSeparator && len(sqlutil.SplitBatches(sqlText)) > 1 {
		return "", nil, dberr.ErrBatchWithParameters
	}

	rewritten, rewrittenParams := sqlutil.Rewrite(sqlText, params)
	bound, args, err := sqlutil.BindNamed(rewritten, rewrittenParams, p.Placeholder)
	if err != nil {
		return "", nil, err
	}

	if s.cfg.DisableNvarchar && p.Placeholder == sqlutil.StyleNamedAt {
		args = forceVarChar(args)
	}
	return bound, args, nil
}

// forceVarChar downgrades string arguments from NVARCHAR to VARCHAR on
// the TDS driver.
func forceVarChar(args []interface{}) []interface{} {
	out := make([]interface{}, len(args))
	for i, a := range args {
		if na, ok := a.(sql.NamedArg); ok {
			if str, ok := na.Value.(string); ok {
				out[i] = sql.Named(na.Name, mssql.VarChar(str))
				continue
			}
		}
		out[i] = a
	}
	return out
}

func (s *Session) queryRows(query string, args []interface{}) (*sql.Rows, error) {
	if s.stmts != nil {
		st, err := s.cachedStmt(query)
		if err != nil {
			return nil, err
		}
		return st.Query(args...)
	}
	return s.db.Query(query, args...)
}

func (s *Session) execStmt(query string, args []interface{}) (sql.Result, error) {
	if s.stmts != nil {
		st, err := s.cachedStmt(query)
		if err != nil {
			return nil, err
		}
		return st.Exec(args...)
	}
	return s.db.Exec(query, args...)
}

func (s *Session) cachedStmt(query string) (*sql.Stmt, error) {
	if st, ok := s.stmts[query]; ok {
		return st, nil
	}
	st, err := s.db.Prepare(query)
	if err != nil {
		return nil, err
	}
	s.stmts[query] = st
	return st, nil
}

// Query runs a read statement and returns the uniform RowSet.
func (s *Session) Query(sqlText string, params sqlutil.Params) (*RowSet, error) {
	bound, args, err := s.prepare(sqlText, params)
	if err != nil {
		return nil, err
	}
	rows, err := s.queryRows(bound, args)
	if err != nil {
		return nil, sqlErr(err)
	}
	defer rows.Close()

	rs, err := scanRowSet(rows)
	if err != nil {
		return nil, sqlErr(err)
	}
	return rs, nil
}

// Execute runs a write or DDL statement and returns the affected count.
// Drivers that cannot report a count return 0.
func (s *Session) Execute(sqlText string, params sqlutil.Params) (int64, error) {
	bound, args, err := s.prepare(sqlText, params)
	if err != nil {
		return 0, err
	}
	res, err := s.execStmt(bound, args)
	if err != nil {
		return 0, sqlErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return n, nil
}

// Scalar returns the first column of the first row, or nil for an empty
// result.
func (s *Session) Scalar(sqlText string, params sqlutil.Params) (interface{}, error) {
	rs, err := s.Query(sqlText, params)
	if err != nil {
		return nil, err
	}
	if rs.Len() == 0 || len(rs.Columns) == 0 {
		return nil, nil
	}
	return rs.Rows[0][rs.Columns[0]], nil
}

// ExecuteBatched splits a GO-separated script and executes each batch in
// order, summing affected counts. The first failing batch aborts the
// rest; its 0-based index is carried in the returned BatchError.
func (s *Session) ExecuteBatched(script string) (int64, error) {
	if !s.Dialect().SupportsBatchSeparator {
		return 0, fmt.Errorf("%w: %s has no batch separator", dberr.ErrUnsupportedOperation, s.Dialect().Name)
	}
	var total int64
	for i, stmt := range sqlutil.SplitBatches(script) {
		res, err := s.db.Exec(stmt)
		if err != nil {
			return total, &dberr.BatchError{Index: i, Err: sqlErr(err)}
		}
		if n, err := res.RowsAffected(); err == nil {
			total += n
		}
	}
	return total, nil
}

// buildCall frames a stored-procedure invocation per the dialect's call
// syntax. Input parameters only; output parameters and multiple result
// sets are out of scope by design.
func (s *Session) buildCall(name string, params sqlutil.Params) (string, error) {
	syntax := s.Dialect().CallSyntax
	if syntax == "" {
		return "", fmt.Errorf("%w: %s has no stored procedures", dberr.ErrUnsupportedOperation, s.Dialect().Name)
	}
	names := make([]string, 0, len(params))
	for k := range params {
		names = append(names, k)
	}
	sort.Strings(names)
	for i, n := range names {
		names[i] = "@" + n
	}
	return fmt.Sprintf(syntax, name, strings.Join(names, ", ")), nil
}

// CallProcedure invokes a stored routine in execute mode.
func (s *Session) CallProcedure(name string, params sqlutil.Params) (int64, error) {
	call, err := s.buildCall(name, params)
	if err != nil {
		return 0, err
	}
	return s.Execute(call, params)
}

// QueryProcedure invokes a stored routine and captures its (single)
// result set.
func (s *Session) QueryProcedure(name string, params sqlutil.Params) (*RowSet, error) {
	call, err := s.buildCall(name, params)
	if err != nil {
		return nil, err
	}
	return s.Query(call, params)
}
