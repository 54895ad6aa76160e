package engine

import "database/sql"

// RowSet is the uniform in-memory query result: an ordered column list
// plus ordered rows, each mapping column name to a value or nil.
// Immutable once built; the caller owns it.
type RowSet struct {
	Columns []string
	Rows    []map[string]interface{}
}

// Len returns the row count.
func (rs *RowSet) Len() int { return len(rs.Rows) }

// Values returns one row's values in column order, convenient for the
// manual-insert fallbacks and CSV-style rendering.
func (rs *RowSet) Values(i int) []interface{} {
	vals := make([]interface{}, len(rs.Columns))
	for j, c := range rs.Columns {
		vals[j] = rs.Rows[i][c]
	}
	return vals
}

// scanRowSet drains rows into a RowSet, normalizing driver NULLs to nil
// and []byte text to string.
func scanRowSet(rows *sql.Rows) (*RowSet, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	rs := &RowSet{Columns: cols}
	for rows.Next() {
		raw := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(map[string]interface{}, len(cols))
		for i, c := range cols {
			row[c] = normalizeValue(raw[i])
		}
		rs.Rows = append(rs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rs, nil
}

// normalizeValue maps driver raw values to the shapes the rest of the
// tool works with. MySQL and SQLite hand text back as []byte.
func normalizeValue(v interface{}) interface{} {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
