// Package backup copies a table's data to a sibling table and back,
// falling through a chain of strategies ordered fastest-first until one
// succeeds. "Doesn't exist" is an expected outcome reported in the
// record, not an error.
package backup

// Method names the strategy that produced a backup or restore outcome.
type Method string

const (
	MethodNone                Method = "None"
	MethodSelectInto          Method = "SelectInto"
	MethodCreateTableAsSelect Method = "CreateTableAsSelect"
	MethodBulkCopy            Method = "Fastest.BulkCopy"
	MethodManualInsert        Method = "ManualInsert"
	MethodInsertIntoSelect    Method = "InsertIntoSelect"
	MethodInsertSelectColumns Method = "InsertSelectColumns"
	MethodSQLServerRestore    Method = "SqlServerRestore"
	MethodFailed              Method = "Failed"
)

// Record is the outcome of one backup or restore attempt.
type Record struct {
	Success  bool
	Method   Method
	RowCount int64
	Message  string
}

func success(m Method, rows int64, msg string) *Record {
	return &Record{Success: true, Method: m, RowCount: rows, Message: msg}
}

func failure(m Method, msg string) *Record {
	return &Record{Method: m, Message: msg}
}
