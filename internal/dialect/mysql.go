package dialect

import "dbcli/internal/sqlutil"

// The MySQL family lists routines and views from information_schema
// (where @pattern can be bound) and fetches bodies with SHOW CREATE,
// since ROUTINE_DEFINITION drops the CREATE header and parameter list.
var mysql = &Profile{
	Name:    "mysql",
	Aliases: []string{"my-sql"},
	Driver:  "mysql",

	Placeholder:            sqlutil.StyleQuestion,
	SupportsParameters:     true,
	SupportsBatchSeparator: false,
	ExceptOperator:         "EXCEPT",
	BulkCopy:               BulkInsertBatch,
	CallSyntax:             "CALL %s(%s)",

	TableListQuery: `SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = DATABASE() AND TABLE_TYPE = 'BASE TABLE'`,
	ColumnListQuery: `SELECT COLUMN_NAME,
       COLUMN_TYPE,
       IS_NULLABLE,
       CASE WHEN COLUMN_KEY = 'PRI' THEN 1 ELSE 0 END,
       COLUMN_DEFAULT
FROM INFORMATION_SCHEMA.COLUMNS
WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = @table
ORDER BY ORDINAL_POSITION`,
	IdentityColumnQuery: `SELECT COLUMN_NAME
FROM INFORMATION_SCHEMA.COLUMNS
WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = @table AND EXTRA LIKE '%auto_increment%'`,
	IndexListQuery: `SELECT INDEX_NAME,
       CASE WHEN NON_UNIQUE = 0 THEN 1 ELSE 0 END,
       COLUMN_NAME
FROM INFORMATION_SCHEMA.STATISTICS
WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = @table AND INDEX_NAME <> 'PRIMARY'
ORDER BY INDEX_NAME, SEQ_IN_INDEX`,

	Objects: map[ObjectKind]ObjectQueries{
		Procedure: {
			List:       `SELECT ROUTINE_NAME FROM INFORMATION_SCHEMA.ROUTINES WHERE ROUTINE_SCHEMA = DATABASE() AND ROUTINE_TYPE = 'PROCEDURE' AND ROUTINE_NAME LIKE @pattern ORDER BY ROUTINE_NAME`,
			Definition: "SHOW CREATE PROCEDURE `%s`",
			Mode:       DefShowCreate,
			DefColumn:  2,
		},
		Function: {
			List:       `SELECT ROUTINE_NAME FROM INFORMATION_SCHEMA.ROUTINES WHERE ROUTINE_SCHEMA = DATABASE() AND ROUTINE_TYPE = 'FUNCTION' AND ROUTINE_NAME LIKE @pattern ORDER BY ROUTINE_NAME`,
			Definition: "SHOW CREATE FUNCTION `%s`",
			Mode:       DefShowCreate,
			DefColumn:  2,
		},
		Trigger: {
			List:       `SELECT TRIGGER_NAME FROM INFORMATION_SCHEMA.TRIGGERS WHERE TRIGGER_SCHEMA = DATABASE() AND TRIGGER_NAME LIKE @pattern ORDER BY TRIGGER_NAME`,
			Definition: "SHOW CREATE TRIGGER `%s`",
			Mode:       DefShowCreate,
			DefColumn:  2,
		},
		View: {
			List:       `SELECT TABLE_NAME FROM INFORMATION_SCHEMA.VIEWS WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME LIKE @pattern ORDER BY TABLE_NAME`,
			Definition: "SHOW CREATE VIEW `%s`",
			Mode:       DefShowCreate,
			DefColumn:  1,
		},
	},
}

var (
	mariadb = derive(mysql, "mariadb", []string{"maria"}, "mysql")
	tidb    = derive(mysql, "tidb", nil, "mysql")
	percona = derive(mysql, "percona", nil, "mysql")
)

// derive clones a family profile under a new name and driver. The
// template tables are shared; the catalogs are identical.
func derive(base *Profile, name string, aliases []string, driver string) *Profile {
	p := *base
	p.Name = name
	p.Aliases = aliases
	p.Driver = driver
	return &p
}
