package dialect

import "dbcli/internal/sqlutil"

// Oracle is the MINUS family and the line-numbered source family:
// routine and trigger bodies come from USER_SOURCE one row per line,
// concatenated in LINE order. Catalog identifiers are stored upper-case,
// hence the UPPER() around bound names.
var oracle = &Profile{
	Name:    "oracle",
	Aliases: []string{"ora", "oracledb"},
	Driver:  "oracle",

	Placeholder:            sqlutil.StyleNamedColon,
	SupportsParameters:     true,
	SupportsBatchSeparator: false,
	ExceptOperator:         "MINUS",
	BulkCopy:               BulkInsertBatch,
	CallSyntax:             "BEGIN %s(%s); END;",

	TableListQuery: `SELECT TABLE_NAME FROM USER_TABLES`,
	ColumnListQuery: `SELECT t.COLUMN_NAME,
       t.DATA_TYPE || CASE WHEN t.DATA_TYPE = 'VARCHAR2' THEN '(' || t.DATA_LENGTH || ')' ELSE '' END,
       CASE WHEN t.NULLABLE = 'Y' THEN 'YES' ELSE 'NO' END,
       CASE WHEN p.CONSTRAINT_NAME IS NOT NULL THEN 1 ELSE 0 END,
       t.DATA_DEFAULT
FROM USER_TAB_COLUMNS t
LEFT JOIN (
    SELECT cc.TABLE_NAME, cc.COLUMN_NAME, cc.CONSTRAINT_NAME
    FROM USER_CONS_COLUMNS cc
    JOIN USER_CONSTRAINTS uc ON cc.CONSTRAINT_NAME = uc.CONSTRAINT_NAME
    WHERE uc.CONSTRAINT_TYPE = 'P'
) p ON t.TABLE_NAME = p.TABLE_NAME AND t.COLUMN_NAME = p.COLUMN_NAME
WHERE t.TABLE_NAME = UPPER(@table)
ORDER BY t.COLUMN_ID`,
	IdentityColumnQuery: `SELECT COLUMN_NAME FROM USER_TAB_COLUMNS WHERE TABLE_NAME = UPPER(@table) AND IDENTITY_COLUMN = 'YES'`,
	IndexListQuery: `SELECT i.INDEX_NAME,
       CASE WHEN i.UNIQUENESS = 'UNIQUE' THEN 1 ELSE 0 END,
       c.COLUMN_NAME
FROM USER_INDEXES i
JOIN USER_IND_COLUMNS c ON i.INDEX_NAME = c.INDEX_NAME
WHERE i.TABLE_NAME = UPPER(@table)
  AND i.INDEX_NAME NOT IN (
      SELECT CONSTRAINT_NAME FROM USER_CONSTRAINTS
      WHERE CONSTRAINT_TYPE = 'P' AND TABLE_NAME = UPPER(@table)
  )
ORDER BY i.INDEX_NAME, c.COLUMN_POSITION`,

	Objects: map[ObjectKind]ObjectQueries{
		Procedure: {
			List:       `SELECT OBJECT_NAME FROM USER_OBJECTS WHERE OBJECT_TYPE = 'PROCEDURE' AND OBJECT_NAME LIKE UPPER(@pattern) ORDER BY OBJECT_NAME`,
			Definition: `SELECT TEXT FROM USER_SOURCE WHERE NAME = UPPER(@name) AND TYPE = 'PROCEDURE' ORDER BY LINE`,
			Mode:       DefConcatRows,
		},
		Function: {
			List:       `SELECT OBJECT_NAME FROM USER_OBJECTS WHERE OBJECT_TYPE = 'FUNCTION' AND OBJECT_NAME LIKE UPPER(@pattern) ORDER BY OBJECT_NAME`,
			Definition: `SELECT TEXT FROM USER_SOURCE WHERE NAME = UPPER(@name) AND TYPE = 'FUNCTION' ORDER BY LINE`,
			Mode:       DefConcatRows,
		},
		Trigger: {
			List:       `SELECT TRIGGER_NAME FROM USER_TRIGGERS WHERE TRIGGER_NAME LIKE UPPER(@pattern) ORDER BY TRIGGER_NAME`,
			Definition: `SELECT TEXT FROM USER_SOURCE WHERE NAME = UPPER(@name) AND TYPE = 'TRIGGER' ORDER BY LINE`,
			Mode:       DefConcatRows,
		},
		View: {
			List:       `SELECT VIEW_NAME FROM USER_VIEWS WHERE VIEW_NAME LIKE UPPER(@pattern) ORDER BY VIEW_NAME`,
			Definition: `SELECT TEXT FROM USER_VIEWS WHERE VIEW_NAME = UPPER(@name)`,
			Mode:       DefSingleRow,
		},
	},
}
