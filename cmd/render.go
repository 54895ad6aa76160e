package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"dbcli/internal/engine"
	"dbcli/internal/sqlutil"
)

// parseParams decodes the --params JSON object into a parameter set.
func parseParams(raw string) (sqlutil.Params, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("invalid --params JSON: %w", err)
	}
	return sqlutil.Params(m), nil
}

// renderRowSet serializes a query result in the selected output format.
func renderRowSet(rs *engine.RowSet, format string) error {
	switch strings.ToLower(format) {
	case "json":
		return renderJSON(rs)
	case "csv":
		return renderCSV(rs)
	default:
		renderTable(rs)
		return nil
	}
}

func renderJSON(rs *engine.RowSet) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	rows := rs.Rows
	if rows == nil {
		rows = []map[string]interface{}{}
	}
	return enc.Encode(rows)
}

func renderCSV(rs *engine.RowSet) error {
	w := csv.NewWriter(os.Stdout)
	if err := w.Write(rs.Columns); err != nil {
		return err
	}
	for i := 0; i < rs.Len(); i++ {
		rec := make([]string, len(rs.Columns))
		for j, v := range rs.Values(i) {
			rec[j] = cellString(v)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// renderTable prints an aligned text table sized to the widest cell of
// each column.
func renderTable(rs *engine.RowSet) {
	widths := make([]int, len(rs.Columns))
	for i, c := range rs.Columns {
		widths[i] = len(c)
	}
	cells := make([][]string, rs.Len())
	for i := 0; i < rs.Len(); i++ {
		row := make([]string, len(rs.Columns))
		for j, v := range rs.Values(i) {
			row[j] = cellString(v)
			if len(row[j]) > widths[j] {
				widths[j] = len(row[j])
			}
		}
		cells[i] = row
	}

	printRow := func(vals []string) {
		parts := make([]string, len(vals))
		for i, v := range vals {
			parts[i] = fmt.Sprintf("%-*s", widths[i], v)
		}
		fmt.Println(strings.Join(parts, " | "))
	}

	printRow(rs.Columns)
	rules := make([]string, len(rs.Columns))
	for i, w := range widths {
		rules[i] = strings.Repeat("-", w)
	}
	fmt.Println(strings.Join(rules, "-+-"))
	for _, row := range cells {
		printRow(row)
	}
	fmt.Printf("(%d rows)\n", rs.Len())
}

func cellString(v interface{}) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}
