package dialect

import "dbcli/internal/sqlutil"

// SQLite keeps full DDL text in sqlite_master, so trigger, view and
// index definitions come back ready-made. There are no stored routines;
// those kinds are absent from the template table and the exporter lists
// nothing for them.
var sqlite = &Profile{
	Name:    "sqlite",
	Aliases: []string{"sqlite3"},
	Driver:  "sqlite3",

	Placeholder:            sqlutil.StyleQuestion,
	SupportsParameters:     true,
	SupportsBatchSeparator: false,
	ExceptOperator:         "EXCEPT",
	BulkCopy:               BulkInsertBatch,
	CallSyntax:             "",

	TableListQuery: `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`,
	ColumnListQuery: `SELECT name,
       type,
       CASE WHEN "notnull" = 1 THEN 'NO' ELSE 'YES' END,
       CASE WHEN pk > 0 THEN 1 ELSE 0 END,
       dflt_value
FROM pragma_table_info(@table)
ORDER BY cid`,
	IndexListQuery: `SELECT il.name,
       il."unique",
       ii.name
FROM pragma_index_list(@table) il
JOIN pragma_index_info(il.name) ii
WHERE il.origin = 'c'
ORDER BY il.name, ii.seqno`,

	Objects: map[ObjectKind]ObjectQueries{
		Trigger: {
			List:       `SELECT name FROM sqlite_master WHERE type = 'trigger' AND name LIKE @pattern ORDER BY name`,
			Definition: `SELECT sql FROM sqlite_master WHERE type = 'trigger' AND name = @name`,
			Mode:       DefSingleRow,
		},
		View: {
			List:       `SELECT name FROM sqlite_master WHERE type = 'view' AND name LIKE @pattern ORDER BY name`,
			Definition: `SELECT sql FROM sqlite_master WHERE type = 'view' AND name = @name`,
			Mode:       DefSingleRow,
		},
	},
}

// DuckDB speaks the sqlite surface closely enough for this tool's
// catalog needs when accessed through a file; it has its own
// information_schema but no wired Go driver in this build.
var duckdb = &Profile{
	Name:    "duckdb",
	Aliases: []string{"duck"},

	Placeholder:            sqlutil.StyleQuestion,
	SupportsParameters:     true,
	SupportsBatchSeparator: false,
	ExceptOperator:         "EXCEPT",
	BulkCopy:               BulkInsertBatch,

	TableListQuery: `SELECT table_name FROM information_schema.tables WHERE table_schema = 'main' AND table_type = 'BASE TABLE'`,
	ColumnListQuery: `SELECT column_name, data_type, is_nullable, 0, column_default
FROM information_schema.columns
WHERE table_schema = 'main' AND table_name = @table
ORDER BY ordinal_position`,

	Objects: map[ObjectKind]ObjectQueries{
		View: {
			List:       `SELECT table_name FROM information_schema.tables WHERE table_schema = 'main' AND table_type = 'VIEW' AND table_name LIKE @pattern ORDER BY table_name`,
			Definition: `SELECT sql FROM duckdb_views() WHERE view_name = @name`,
			Mode:       DefSingleRow,
		},
	},
}
