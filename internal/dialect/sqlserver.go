package dialect

import "dbcli/internal/sqlutil"

// SQL Server is the batch-separator family: scripts split on GO, EXCEPT
// for set difference, SELECT INTO instead of CTAS, and explicit identity
// values require SET IDENTITY_INSERT on the same session.
var sqlServer = &Profile{
	Name:    "sqlserver",
	Aliases: []string{"mssql", "sql-server", "azuresql", "localdb"},
	Driver:  "sqlserver",

	Placeholder:                  sqlutil.StyleNamedAt,
	SupportsParameters:           true,
	SupportsBatchSeparator:       true,
	ExceptOperator:               "EXCEPT",
	RequiresIdentityInsertToggle: true,
	NoCreateTableAsSelect:        true,
	BulkCopy:                     BulkCopyMSSQL,
	CallSyntax:                   "EXEC %s %s",

	TableListQuery: `SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_TYPE = 'BASE TABLE'`,
	ColumnListQuery: `SELECT c.COLUMN_NAME,
       c.DATA_TYPE + ISNULL('(' + CAST(c.CHARACTER_MAXIMUM_LENGTH AS VARCHAR(10)) + ')', ''),
       c.IS_NULLABLE,
       CASE WHEN pk.COLUMN_NAME IS NOT NULL THEN 1 ELSE 0 END,
       c.COLUMN_DEFAULT
FROM INFORMATION_SCHEMA.COLUMNS c
LEFT JOIN (
    SELECT kcu.TABLE_NAME, kcu.COLUMN_NAME
    FROM INFORMATION_SCHEMA.TABLE_CONSTRAINTS tc
    JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE kcu
        ON tc.CONSTRAINT_NAME = kcu.CONSTRAINT_NAME
    WHERE tc.CONSTRAINT_TYPE = 'PRIMARY KEY'
) pk ON c.TABLE_NAME = pk.TABLE_NAME AND c.COLUMN_NAME = pk.COLUMN_NAME
WHERE c.TABLE_NAME = @table
ORDER BY c.ORDINAL_POSITION`,
	IdentityColumnQuery: `SELECT c.name
FROM sys.identity_columns c
JOIN sys.tables t ON c.object_id = t.object_id
WHERE t.name = @table`,
	IndexListQuery: `SELECT i.name,
       CAST(i.is_unique AS INT),
       c.name
FROM sys.indexes i
JOIN sys.tables t ON i.object_id = t.object_id
JOIN sys.index_columns ic ON i.object_id = ic.object_id AND i.index_id = ic.index_id
JOIN sys.columns c ON ic.object_id = c.object_id AND ic.column_id = c.column_id
WHERE t.name = @table AND i.is_primary_key = 0 AND i.type > 0
ORDER BY i.name, ic.key_ordinal`,

	Objects: map[ObjectKind]ObjectQueries{
		Procedure: {
			List:       `SELECT name FROM sys.procedures WHERE name LIKE @pattern ORDER BY name`,
			Definition: `SELECT m.definition FROM sys.sql_modules m JOIN sys.objects o ON m.object_id = o.object_id WHERE o.name = @name`,
			Mode:       DefSingleRow,
		},
		Function: {
			List:       `SELECT name FROM sys.objects WHERE type IN ('FN', 'IF', 'TF') AND name LIKE @pattern ORDER BY name`,
			Definition: `SELECT m.definition FROM sys.sql_modules m JOIN sys.objects o ON m.object_id = o.object_id WHERE o.name = @name`,
			Mode:       DefSingleRow,
		},
		Trigger: {
			List:       `SELECT name FROM sys.triggers WHERE is_ms_shipped = 0 AND name LIKE @pattern ORDER BY name`,
			Definition: `SELECT m.definition FROM sys.sql_modules m JOIN sys.triggers t ON m.object_id = t.object_id WHERE t.name = @name`,
			Mode:       DefSingleRow,
		},
		View: {
			List:       `SELECT name FROM sys.views WHERE name LIKE @pattern ORDER BY name`,
			Definition: `SELECT m.definition FROM sys.sql_modules m JOIN sys.views v ON m.object_id = v.object_id WHERE v.name = @name`,
			Mode:       DefSingleRow,
		},
	},
}

// Sybase ASE shares the T-SQL surface but has no Go driver wired here.
var sybase = &Profile{
	Name:    "sybase",
	Aliases: []string{"ase", "sybase-ase"},

	Placeholder:                  sqlutil.StyleQuestion,
	SupportsParameters:           true,
	SupportsBatchSeparator:       true,
	ExceptOperator:               "EXCEPT",
	RequiresIdentityInsertToggle: true,
	NoCreateTableAsSelect:        true,
	BulkCopy:                     BulkInsertBatch,
	CallSyntax:                   "EXEC %s %s",

	TableListQuery: `SELECT name FROM sysobjects WHERE type = 'U'`,
	ColumnListQuery: `SELECT c.name, t.name, CASE WHEN c.status & 8 = 8 THEN 'YES' ELSE 'NO' END, 0, NULL
FROM syscolumns c
JOIN sysobjects o ON c.id = o.id
JOIN systypes t ON c.usertype = t.usertype
WHERE o.name = @table
ORDER BY c.colid`,

	Objects: map[ObjectKind]ObjectQueries{
		Procedure: {
			List:       `SELECT name FROM sysobjects WHERE type = 'P' AND name LIKE @pattern ORDER BY name`,
			Definition: `SELECT c.text FROM syscomments c JOIN sysobjects o ON c.id = o.id WHERE o.name = @name ORDER BY c.colid`,
			Mode:       DefConcatRows,
		},
		Trigger: {
			List:       `SELECT name FROM sysobjects WHERE type = 'TR' AND name LIKE @pattern ORDER BY name`,
			Definition: `SELECT c.text FROM syscomments c JOIN sysobjects o ON c.id = o.id WHERE o.name = @name ORDER BY c.colid`,
			Mode:       DefConcatRows,
		},
		View: {
			List:       `SELECT name FROM sysobjects WHERE type = 'V' AND name LIKE @pattern ORDER BY name`,
			Definition: `SELECT c.text FROM syscomments c JOIN sysobjects o ON c.id = o.id WHERE o.name = @name ORDER BY c.colid`,
			Mode:       DefConcatRows,
		},
	},
}
