package sqlutil

import (
	"database/sql"
	"fmt"
	"strings"
)

// PlaceholderStyle describes how the underlying driver expects bound
// parameters to be written.
type PlaceholderStyle int

const (
	// StyleNamedAt passes @name through unchanged (go-mssqldb).
	StyleNamedAt PlaceholderStyle = iota
	// StyleNamedColon rewrites @name to :name (go-ora).
	StyleNamedColon
	// StyleDollar rewrites to $1, $2, ... with one ordinal per distinct
	// name (lib/pq, pgx).
	StyleDollar
	// StyleQuestion rewrites every occurrence to ? (mysql, sqlite,
	// clickhouse, hdb).
	StyleQuestion
)

// BindNamed converts SQL using @name placeholders plus a parameter set
// into the driver-native placeholder style and argument list. Array
// values must already have been expanded via Rewrite. Referencing a name
// with no binding is an error; bindings never referenced are dropped.
func BindNamed(sqlText string, params Params, style PlaceholderStyle) (string, []interface{}, error) {
	var args []interface{}
	ordinals := map[string]int{} // lower-cased name -> $n ordinal
	var missing []string

	bound := replacePlaceholders(sqlText, func(name string) string {
		v, ok := params.Get(name)
		if !ok {
			missing = append(missing, name)
			return "@" + name
		}
		switch style {
		case StyleNamedAt:
			if !hasNamedArg(args, name) {
				args = append(args, sql.Named(name, v))
			}
			return "@" + name
		case StyleNamedColon:
			if !hasNamedArg(args, name) {
				args = append(args, sql.Named(name, v))
			}
			return ":" + name
		case StyleDollar:
			key := strings.ToLower(name)
			n, seen := ordinals[key]
			if !seen {
				args = append(args, v)
				n = len(args)
				ordinals[key] = n
			}
			return fmt.Sprintf("$%d", n)
		default: // StyleQuestion
			args = append(args, v)
			return "?"
		}
	})

	if len(missing) > 0 {
		return "", nil, fmt.Errorf("no value supplied for parameter @%s", missing[0])
	}
	return bound, args, nil
}

func hasNamedArg(args []interface{}, name string) bool {
	for _, a := range args {
		if na, ok := a.(sql.NamedArg); ok && strings.EqualFold(na.Name, name) {
			return true
		}
	}
	return false
}
