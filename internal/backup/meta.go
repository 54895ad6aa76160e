package backup

import (
	"fmt"
	"strings"

	"dbcli/internal/dberr"
	"dbcli/internal/engine"
	"dbcli/internal/sqlutil"
)

// Column is one entry of a table's catalog description, enough to
// synthesize a CREATE TABLE for the manual fallback.
type Column struct {
	Name         string
	TypeName     string
	Nullable     bool
	IsPrimaryKey bool
	Default      string // raw catalog text, empty when absent
}

// tableExists checks through the dialect's table-list query; matching is
// case-insensitive because several catalogs store identifiers folded.
func tableExists(s *engine.Session, table string) (bool, error) {
	q := s.Dialect().TableListQuery
	if q == "" {
		return false, fmt.Errorf("%w: %s has no table catalog", dberr.ErrUnsupportedOperation, s.Dialect().Name)
	}
	rs, err := s.Query(q, nil)
	if err != nil {
		return false, err
	}
	for i := 0; i < rs.Len(); i++ {
		if name, ok := rs.Values(i)[0].(string); ok && strings.EqualFold(name, table) {
			return true, nil
		}
	}
	return false, nil
}

// tableColumns reads the column catalog for table. Result columns are
// positional per the template contract: name, type, nullable, pk, default.
func tableColumns(s *engine.Session, table string) ([]Column, error) {
	q := s.Dialect().ColumnListQuery
	if q == "" {
		return nil, fmt.Errorf("%w: %s has no column catalog", dberr.ErrUnsupportedOperation, s.Dialect().Name)
	}
	rs, err := s.Query(q, sqlutil.Params{"table": table})
	if err != nil {
		return nil, err
	}
	cols := make([]Column, 0, rs.Len())
	for i := 0; i < rs.Len(); i++ {
		v := rs.Values(i)
		if len(v) < 5 {
			return nil, fmt.Errorf("column catalog for %s returned %d columns, want 5", table, len(v))
		}
		cols = append(cols, Column{
			Name:         asString(v[0]),
			TypeName:     asString(v[1]),
			Nullable:     truthy(v[2]),
			IsPrimaryKey: truthy(v[3]),
			Default:      asString(v[4]),
		})
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("no column metadata for table %s", table)
	}
	return cols, nil
}

// identityColumn returns the table's identity column name, or "" when
// the dialect has no identity concept or the table none.
func identityColumn(s *engine.Session, table string) (string, error) {
	q := s.Dialect().IdentityColumnQuery
	if q == "" {
		return "", nil
	}
	rs, err := s.Query(q, sqlutil.Params{"table": table})
	if err != nil {
		return "", err
	}
	if rs.Len() == 0 {
		return "", nil
	}
	return asString(rs.Values(0)[0]), nil
}

// countRows counts a table, tolerating drivers that return counts as
// strings or smaller integer types.
func countRows(s *engine.Session, table string) (int64, error) {
	v, err := s.Scalar("SELECT COUNT(*) FROM "+table, nil)
	if err != nil {
		return 0, err
	}
	return toInt64(v), nil
}

func asString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// truthy interprets the catalog's nullable/pk markers: YES/Y/TRUE/1 in
// any casing, or any non-zero number.
func truthy(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case int64:
		return x != 0
	case int:
		return x != 0
	case float64:
		return x != 0
	case string:
		switch strings.ToUpper(strings.TrimSpace(x)) {
		case "1", "Y", "YES", "TRUE", "T":
			return true
		}
		return false
	default:
		return false
	}
}

func toInt64(v interface{}) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case float64:
		return int64(x)
	case string:
		var n int64
		_, _ = fmt.Sscanf(x, "%d", &n)
		return n
	default:
		return 0
	}
}

// buildCreateTable synthesizes DDL from catalog metadata for the manual
// fallback: per-column name, native type, nullability, default clause,
// plus a PRIMARY KEY constraint when the source had one.
func buildCreateTable(table string, cols []Column) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (", table)
	var pks []string
	for i, c := range cols {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.Name)
		b.WriteString(" ")
		b.WriteString(c.TypeName)
		if c.Default != "" {
			fmt.Fprintf(&b, " DEFAULT %s", c.Default)
		}
		if !c.Nullable {
			b.WriteString(" NOT NULL")
		}
		if c.IsPrimaryKey {
			pks = append(pks, c.Name)
		}
	}
	if len(pks) > 0 {
		fmt.Fprintf(&b, ", PRIMARY KEY (%s)", strings.Join(pks, ", "))
	}
	b.WriteString(")")
	return b.String()
}
