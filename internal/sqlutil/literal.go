package sqlutil

import (
	"fmt"
	"strings"
	"time"
)

// FormatLiteral renders a row value as a SQL literal for the manual
// insert fallbacks. It targets the same dialect the value was read from,
// so a fixed datetime format and numeric pass-through are sufficient;
// this is not a general-purpose serializer.
func FormatLiteral(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(x, "'", "''") + "'"
	case []byte:
		return "'" + strings.ReplaceAll(string(x), "'", "''") + "'"
	case time.Time:
		return "'" + x.Format("2006-01-02 15:04:05") + "'"
	case bool:
		if x {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatLiteralRow renders a full row as a comma-joined VALUES body.
func FormatLiteralRow(values []interface{}) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatLiteral(v)
	}
	return strings.Join(parts, ", ")
}
