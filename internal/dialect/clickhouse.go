package dialect

import "dbcli/internal/sqlutil"

// ClickHouse exposes full CREATE statements in system.tables; there are
// no stored procedures or triggers, and secondary (skipping) indexes are
// part of the table DDL rather than standalone objects, so only views
// and UDFs are exportable.
var clickhouse = &Profile{
	Name:    "clickhouse",
	Aliases: []string{"ch"},
	Driver:  "clickhouse",

	Placeholder:            sqlutil.StyleQuestion,
	SupportsParameters:     true,
	SupportsBatchSeparator: false,
	ExceptOperator:         "EXCEPT",
	BulkCopy:               BulkInsertBatch,

	TableListQuery: `SELECT name FROM system.tables WHERE database = currentDatabase() AND engine NOT IN ('View', 'MaterializedView')`,
	ColumnListQuery: `SELECT name,
       type,
       CASE WHEN startsWith(type, 'Nullable') THEN 'YES' ELSE 'NO' END,
       CAST(is_in_primary_key AS Int32),
       default_expression
FROM system.columns
WHERE database = currentDatabase() AND table = @table
ORDER BY position`,

	Objects: map[ObjectKind]ObjectQueries{
		Function: {
			List:       `SELECT name FROM system.functions WHERE origin = 'SQLUserDefined' AND name LIKE @pattern ORDER BY name`,
			Definition: `SELECT create_query FROM system.functions WHERE origin = 'SQLUserDefined' AND name = @name`,
			Mode:       DefSingleRow,
		},
		View: {
			List:       `SELECT name FROM system.tables WHERE database = currentDatabase() AND engine IN ('View', 'MaterializedView') AND name LIKE @pattern ORDER BY name`,
			Definition: `SELECT create_table_query FROM system.tables WHERE database = currentDatabase() AND name = @name`,
			Mode:       DefSingleRow,
		},
	},
}

// SAP HANA keeps routine sources inline in its catalog views.
var hana = &Profile{
	Name:    "hana",
	Aliases: []string{"saphana", "hdb"},
	Driver:  "hdb",

	Placeholder:            sqlutil.StyleQuestion,
	SupportsParameters:     true,
	SupportsBatchSeparator: false,
	ExceptOperator:         "EXCEPT",
	BulkCopy:               BulkInsertBatch,
	CallSyntax:             "CALL %s(%s)",

	TableListQuery: `SELECT TABLE_NAME FROM TABLES WHERE SCHEMA_NAME = CURRENT_SCHEMA`,
	ColumnListQuery: `SELECT COLUMN_NAME,
       DATA_TYPE_NAME,
       IS_NULLABLE,
       0,
       DEFAULT_VALUE
FROM TABLE_COLUMNS
WHERE SCHEMA_NAME = CURRENT_SCHEMA AND TABLE_NAME = @table
ORDER BY POSITION`,
	IndexListQuery: `SELECT i.INDEX_NAME,
       CASE WHEN i.CONSTRAINT = 'UNIQUE' THEN 1 ELSE 0 END,
       c.COLUMN_NAME
FROM INDEXES i
JOIN INDEX_COLUMNS c ON i.INDEX_OID = c.INDEX_OID
WHERE i.SCHEMA_NAME = CURRENT_SCHEMA AND i.TABLE_NAME = @table
  AND (i.CONSTRAINT IS NULL OR i.CONSTRAINT <> 'PRIMARY KEY')
ORDER BY i.INDEX_NAME, c.POSITION`,

	Objects: map[ObjectKind]ObjectQueries{
		Procedure: {
			List:       `SELECT PROCEDURE_NAME FROM PROCEDURES WHERE SCHEMA_NAME = CURRENT_SCHEMA AND PROCEDURE_NAME LIKE @pattern ORDER BY PROCEDURE_NAME`,
			Definition: `SELECT DEFINITION FROM PROCEDURES WHERE SCHEMA_NAME = CURRENT_SCHEMA AND PROCEDURE_NAME = @name`,
			Mode:       DefSingleRow,
		},
		Function: {
			List:       `SELECT FUNCTION_NAME FROM FUNCTIONS WHERE SCHEMA_NAME = CURRENT_SCHEMA AND FUNCTION_NAME LIKE @pattern ORDER BY FUNCTION_NAME`,
			Definition: `SELECT DEFINITION FROM FUNCTIONS WHERE SCHEMA_NAME = CURRENT_SCHEMA AND FUNCTION_NAME = @name`,
			Mode:       DefSingleRow,
		},
		Trigger: {
			List:       `SELECT TRIGGER_NAME FROM TRIGGERS WHERE SCHEMA_NAME = CURRENT_SCHEMA AND TRIGGER_NAME LIKE @pattern ORDER BY TRIGGER_NAME`,
			Definition: `SELECT DEFINITION FROM TRIGGERS WHERE SCHEMA_NAME = CURRENT_SCHEMA AND TRIGGER_NAME = @name`,
			Mode:       DefSingleRow,
		},
		View: {
			List:       `SELECT VIEW_NAME FROM VIEWS WHERE SCHEMA_NAME = CURRENT_SCHEMA AND VIEW_NAME LIKE @pattern ORDER BY VIEW_NAME`,
			Definition: `SELECT DEFINITION FROM VIEWS WHERE SCHEMA_NAME = CURRENT_SCHEMA AND VIEW_NAME = @name`,
			Mode:       DefSingleRow,
		},
	},
}
