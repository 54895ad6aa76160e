package export

import (
	"fmt"
	"strings"

	"dbcli/internal/engine"
	"dbcli/internal/sqlutil"
)

// indexDef is one index reconstructed from catalog metadata. Most
// dialects expose no ready-made "index DDL text" function, so CREATE
// INDEX statements are rebuilt from name, uniqueness and column order.
type indexDef struct {
	Name    string
	Unique  bool
	Columns []string
}

// tableIndexes lists a table's non-primary-key indexes. Rows arrive
// one per index column, ordered by index then position; they are grouped
// here preserving both orders.
func tableIndexes(s *engine.Session, table string) ([]indexDef, error) {
	q := s.Dialect().IndexListQuery
	if q == "" {
		return nil, nil
	}
	rs, err := s.Query(q, sqlutil.Params{"table": table})
	if err != nil {
		return nil, err
	}

	var defs []indexDef
	byName := map[string]int{}
	for i := 0; i < rs.Len(); i++ {
		v := rs.Values(i)
		if len(v) < 3 {
			return nil, fmt.Errorf("index catalog for %s returned %d columns, want 3", table, len(v))
		}
		name := asString(v[0])
		pos, ok := byName[name]
		if !ok {
			defs = append(defs, indexDef{Name: name, Unique: truthy(v[1])})
			pos = len(defs) - 1
			byName[name] = pos
		}
		defs[pos].Columns = append(defs[pos].Columns, asString(v[2]))
	}
	return defs, nil
}

// renderIndex rebuilds the CREATE INDEX statement.
func renderIndex(table string, d indexDef) string {
	unique := ""
	if d.Unique {
		unique = "UNIQUE "
	}
	return fmt.Sprintf("CREATE %sINDEX %s ON %s (%s)", unique, d.Name, table, strings.Join(d.Columns, ", "))
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

func truthy(v interface{}) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int64:
		return x != 0
	case int:
		return x != 0
	case float64:
		return x != 0
	case string:
		t := strings.ToUpper(strings.TrimSpace(x))
		return t == "1" || t == "Y" || t == "YES" || t == "TRUE" || t == "T"
	default:
		return false
	}
}
