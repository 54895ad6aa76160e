package dialect

import "dbcli/internal/sqlutil"

// Kinds in this file have no Go driver wired in this build; sessions
// against them fail at open with a clear message. Their profiles still
// carry capability flags and whatever catalog templates the family has,
// so driver wiring later is a one-field change.

var db2 = &Profile{
	Name:    "db2",
	Aliases: []string{"ibmdb2", "db2luw"},

	Placeholder:            sqlutil.StyleQuestion,
	SupportsParameters:     true,
	SupportsBatchSeparator: false,
	ExceptOperator:         "EXCEPT",
	BulkCopy:               BulkInsertBatch,
	CallSyntax:             "CALL %s(%s)",

	TableListQuery: `SELECT TABNAME FROM SYSCAT.TABLES WHERE TABSCHEMA = CURRENT_SCHEMA AND TYPE = 'T'`,
	ColumnListQuery: `SELECT COLNAME, TYPENAME, CASE WHEN NULLS = 'Y' THEN 'YES' ELSE 'NO' END,
       CASE WHEN KEYSEQ IS NOT NULL THEN 1 ELSE 0 END, DEFAULT
FROM SYSCAT.COLUMNS
WHERE TABSCHEMA = CURRENT_SCHEMA AND TABNAME = UPPER(@table)
ORDER BY COLNO`,
	IdentityColumnQuery: `SELECT COLNAME FROM SYSCAT.COLUMNS WHERE TABSCHEMA = CURRENT_SCHEMA AND TABNAME = UPPER(@table) AND IDENTITY = 'Y'`,

	Objects: map[ObjectKind]ObjectQueries{
		Procedure: {
			List:       `SELECT ROUTINENAME FROM SYSCAT.ROUTINES WHERE ROUTINESCHEMA = CURRENT_SCHEMA AND ROUTINETYPE = 'P' AND ROUTINENAME LIKE UPPER(@pattern) ORDER BY ROUTINENAME`,
			Definition: `SELECT TEXT FROM SYSCAT.ROUTINES WHERE ROUTINESCHEMA = CURRENT_SCHEMA AND ROUTINENAME = UPPER(@name)`,
			Mode:       DefSingleRow,
		},
		Function: {
			List:       `SELECT ROUTINENAME FROM SYSCAT.ROUTINES WHERE ROUTINESCHEMA = CURRENT_SCHEMA AND ROUTINETYPE = 'F' AND ROUTINENAME LIKE UPPER(@pattern) ORDER BY ROUTINENAME`,
			Definition: `SELECT TEXT FROM SYSCAT.ROUTINES WHERE ROUTINESCHEMA = CURRENT_SCHEMA AND ROUTINENAME = UPPER(@name)`,
			Mode:       DefSingleRow,
		},
		Trigger: {
			List:       `SELECT TRIGNAME FROM SYSCAT.TRIGGERS WHERE TRIGSCHEMA = CURRENT_SCHEMA AND TRIGNAME LIKE UPPER(@pattern) ORDER BY TRIGNAME`,
			Definition: `SELECT TEXT FROM SYSCAT.TRIGGERS WHERE TRIGSCHEMA = CURRENT_SCHEMA AND TRIGNAME = UPPER(@name)`,
			Mode:       DefSingleRow,
		},
		View: {
			List:       `SELECT VIEWNAME FROM SYSCAT.VIEWS WHERE VIEWSCHEMA = CURRENT_SCHEMA AND VIEWNAME LIKE UPPER(@pattern) ORDER BY VIEWNAME`,
			Definition: `SELECT TEXT FROM SYSCAT.VIEWS WHERE VIEWSCHEMA = CURRENT_SCHEMA AND VIEWNAME = UPPER(@name)`,
			Mode:       DefSingleRow,
		},
	},
}

var firebird = &Profile{
	Name:    "firebird",
	Aliases: []string{"interbase", "fb"},

	Placeholder:            sqlutil.StyleQuestion,
	SupportsParameters:     true,
	SupportsBatchSeparator: false,
	ExceptOperator:         "EXCEPT",
	BulkCopy:               BulkInsertBatch,

	TableListQuery: `SELECT TRIM(RDB$RELATION_NAME) FROM RDB$RELATIONS WHERE RDB$VIEW_BLR IS NULL AND RDB$SYSTEM_FLAG = 0`,

	Objects: map[ObjectKind]ObjectQueries{
		Procedure: {
			List:       `SELECT TRIM(RDB$PROCEDURE_NAME) FROM RDB$PROCEDURES WHERE RDB$PROCEDURE_NAME LIKE UPPER(@pattern)`,
			Definition: `SELECT RDB$PROCEDURE_SOURCE FROM RDB$PROCEDURES WHERE RDB$PROCEDURE_NAME = UPPER(@name)`,
			Mode:       DefSingleRow,
		},
		Trigger: {
			List:       `SELECT TRIM(RDB$TRIGGER_NAME) FROM RDB$TRIGGERS WHERE RDB$SYSTEM_FLAG = 0 AND RDB$TRIGGER_NAME LIKE UPPER(@pattern)`,
			Definition: `SELECT RDB$TRIGGER_SOURCE FROM RDB$TRIGGERS WHERE RDB$TRIGGER_NAME = UPPER(@name)`,
			Mode:       DefSingleRow,
		},
		View: {
			List:       `SELECT TRIM(RDB$RELATION_NAME) FROM RDB$RELATIONS WHERE RDB$VIEW_BLR IS NOT NULL AND RDB$SYSTEM_FLAG = 0 AND RDB$RELATION_NAME LIKE UPPER(@pattern)`,
			Definition: `SELECT RDB$VIEW_SOURCE FROM RDB$RELATIONS WHERE RDB$RELATION_NAME = UPPER(@name)`,
			Mode:       DefSingleRow,
		},
	},
}

var informix = &Profile{
	Name: "informix",

	Placeholder:            sqlutil.StyleQuestion,
	SupportsParameters:     true,
	ExceptOperator:         "EXCEPT",
	BulkCopy:               BulkInsertBatch,
	TableListQuery:         `SELECT tabname FROM systables WHERE tabtype = 'T' AND tabid > 99`,
	Objects: map[ObjectKind]ObjectQueries{
		Procedure: {
			List:       `SELECT procname FROM sysprocedures WHERE isproc = 't' AND procname LIKE @pattern`,
			Definition: `SELECT b.data FROM sysprocbody b JOIN sysprocedures p ON b.procid = p.procid WHERE p.procname = @name AND b.datakey = 'T' ORDER BY b.seqno`,
			Mode:       DefConcatRows,
		},
	},
}

var snowflake = &Profile{
	Name:    "snowflake",
	Aliases: []string{"snow"},

	Placeholder:        sqlutil.StyleQuestion,
	SupportsParameters: true,
	ExceptOperator:     "MINUS",
	BulkCopy:           BulkInsertBatch,
	CallSyntax:         "CALL %s(%s)",

	TableListQuery: `SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = CURRENT_SCHEMA() AND TABLE_TYPE = 'BASE TABLE'`,
	ColumnListQuery: `SELECT COLUMN_NAME, DATA_TYPE, IS_NULLABLE, 0, COLUMN_DEFAULT
FROM INFORMATION_SCHEMA.COLUMNS
WHERE TABLE_SCHEMA = CURRENT_SCHEMA() AND TABLE_NAME = UPPER(@table)
ORDER BY ORDINAL_POSITION`,

	Objects: map[ObjectKind]ObjectQueries{
		Procedure: {
			List:       `SELECT PROCEDURE_NAME FROM INFORMATION_SCHEMA.PROCEDURES WHERE PROCEDURE_SCHEMA = CURRENT_SCHEMA() AND PROCEDURE_NAME LIKE UPPER(@pattern) ORDER BY PROCEDURE_NAME`,
			Definition: `SELECT PROCEDURE_DEFINITION FROM INFORMATION_SCHEMA.PROCEDURES WHERE PROCEDURE_SCHEMA = CURRENT_SCHEMA() AND PROCEDURE_NAME = UPPER(@name)`,
			Mode:       DefSingleRow,
		},
		Function: {
			List:       `SELECT FUNCTION_NAME FROM INFORMATION_SCHEMA.FUNCTIONS WHERE FUNCTION_SCHEMA = CURRENT_SCHEMA() AND FUNCTION_NAME LIKE UPPER(@pattern) ORDER BY FUNCTION_NAME`,
			Definition: `SELECT FUNCTION_DEFINITION FROM INFORMATION_SCHEMA.FUNCTIONS WHERE FUNCTION_SCHEMA = CURRENT_SCHEMA() AND FUNCTION_NAME = UPPER(@name)`,
			Mode:       DefSingleRow,
		},
		View: {
			List:       `SELECT TABLE_NAME FROM INFORMATION_SCHEMA.VIEWS WHERE TABLE_SCHEMA = CURRENT_SCHEMA() AND TABLE_NAME LIKE UPPER(@pattern) ORDER BY TABLE_NAME`,
			Definition: `SELECT VIEW_DEFINITION FROM INFORMATION_SCHEMA.VIEWS WHERE TABLE_SCHEMA = CURRENT_SCHEMA() AND TABLE_NAME = UPPER(@name)`,
			Mode:       DefSingleRow,
		},
	},
}

var bigquery = &Profile{
	Name:               "bigquery",
	Aliases:            []string{"bq"},
	Placeholder:        sqlutil.StyleQuestion,
	SupportsParameters: true,
	ExceptOperator:     "EXCEPT",
	BulkCopy:           BulkInsertBatch,
	TableListQuery:     `SELECT table_name FROM INFORMATION_SCHEMA.TABLES WHERE table_type = 'BASE TABLE'`,
}

var teradata = &Profile{
	Name:               "teradata",
	Placeholder:        sqlutil.StyleQuestion,
	SupportsParameters: true,
	ExceptOperator:     "MINUS",
	BulkCopy:           BulkInsertBatch,
	TableListQuery:     `SELECT TableName FROM DBC.TablesV WHERE DatabaseName = DATABASE AND TableKind = 'T'`,
	Objects: map[ObjectKind]ObjectQueries{
		View: {
			List:       `SELECT TableName FROM DBC.TablesV WHERE DatabaseName = DATABASE AND TableKind = 'V' AND TableName LIKE @pattern`,
			Definition: `SELECT RequestText FROM DBC.TablesV WHERE DatabaseName = DATABASE AND TableName = @name`,
			Mode:       DefSingleRow,
		},
	},
}

var vertica = &Profile{
	Name:               "vertica",
	Placeholder:        sqlutil.StyleQuestion,
	SupportsParameters: true,
	ExceptOperator:     "EXCEPT",
	BulkCopy:           BulkInsertBatch,
	TableListQuery:     `SELECT table_name FROM v_catalog.tables WHERE is_system_table = false`,
	Objects: map[ObjectKind]ObjectQueries{
		View: {
			List:       `SELECT table_name FROM v_catalog.views WHERE table_name LIKE @pattern`,
			Definition: `SELECT view_definition FROM v_catalog.views WHERE table_name = @name`,
			Mode:       DefSingleRow,
		},
	},
}

var exasol = &Profile{
	Name:               "exasol",
	Placeholder:        sqlutil.StyleQuestion,
	SupportsParameters: true,
	ExceptOperator:     "MINUS",
	BulkCopy:           BulkInsertBatch,
	TableListQuery:     `SELECT TABLE_NAME FROM EXA_USER_TABLES`,
}

var h2 = &Profile{
	Name:               "h2",
	Placeholder:        sqlutil.StyleQuestion,
	SupportsParameters: true,
	ExceptOperator:     "EXCEPT",
	BulkCopy:           BulkInsertBatch,
	TableListQuery:     `SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = 'PUBLIC' AND TABLE_TYPE = 'BASE TABLE'`,
}

var derby = &Profile{
	Name:               "derby",
	Aliases:            []string{"javadb"},
	Placeholder:        sqlutil.StyleQuestion,
	SupportsParameters: true,
	ExceptOperator:     "EXCEPT",
	BulkCopy:           BulkInsertBatch,
	TableListQuery:     `SELECT TABLENAME FROM SYS.SYSTABLES WHERE TABLETYPE = 'T'`,
}

// Access is the second SELECT-INTO dialect; Jet SQL has no CTAS and no
// DDL introspection vocabulary at all.
var access = &Profile{
	Name:    "access",
	Aliases: []string{"msaccess", "jet"},

	Placeholder:           sqlutil.StyleQuestion,
	SupportsParameters:    true,
	ExceptOperator:        "EXCEPT",
	NoCreateTableAsSelect: true,
	BulkCopy:              BulkInsertBatch,
}
