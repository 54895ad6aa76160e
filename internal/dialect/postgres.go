package dialect

import "dbcli/internal/sqlutil"

// The Postgres family reads pg_catalog. pg_get_functiondef yields the
// complete CREATE statement in one row for procedures and functions.
var postgres = &Profile{
	Name:    "postgres",
	Aliases: []string{"postgresql", "pgsql", "pg"},
	Driver:  "postgres",

	Placeholder:            sqlutil.StyleDollar,
	SupportsParameters:     true,
	SupportsBatchSeparator: false,
	ExceptOperator:         "EXCEPT",
	BulkCopy:               BulkCopyPostgres,
	CallSyntax:             "CALL %s(%s)",

	TableListQuery: `SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' AND table_type = 'BASE TABLE'`,
	ColumnListQuery: `SELECT c.column_name,
       c.data_type,
       c.is_nullable,
       CASE WHEN pk.column_name IS NOT NULL THEN 1 ELSE 0 END,
       c.column_default
FROM information_schema.columns c
LEFT JOIN (
    SELECT kcu.table_name, kcu.column_name
    FROM information_schema.table_constraints tc
    JOIN information_schema.key_column_usage kcu
        ON tc.constraint_name = kcu.constraint_name
    WHERE tc.constraint_type = 'PRIMARY KEY' AND tc.table_schema = 'public'
) pk ON c.table_name = pk.table_name AND c.column_name = pk.column_name
WHERE c.table_schema = 'public' AND c.table_name = @table
ORDER BY c.ordinal_position`,
	IdentityColumnQuery: `SELECT column_name
FROM information_schema.columns
WHERE table_schema = 'public' AND table_name = @table
  AND (is_identity = 'YES' OR column_default LIKE 'nextval%')`,
	IndexListQuery: `SELECT i.relname,
       CASE WHEN ix.indisunique THEN 1 ELSE 0 END,
       a.attname
FROM pg_index ix
JOIN pg_class i ON i.oid = ix.indexrelid
JOIN pg_class t ON t.oid = ix.indrelid
JOIN pg_attribute a ON a.attrelid = t.oid AND a.attnum = ANY(ix.indkey)
WHERE t.relname = @table AND NOT ix.indisprimary
ORDER BY i.relname, a.attnum`,

	Objects: map[ObjectKind]ObjectQueries{
		Procedure: {
			List:       `SELECT p.proname FROM pg_proc p JOIN pg_namespace n ON p.pronamespace = n.oid WHERE n.nspname = 'public' AND p.prokind = 'p' AND p.proname LIKE @pattern ORDER BY p.proname`,
			Definition: `SELECT pg_get_functiondef(p.oid) FROM pg_proc p JOIN pg_namespace n ON p.pronamespace = n.oid WHERE n.nspname = 'public' AND p.proname = @name`,
			Mode:       DefSingleRow,
		},
		Function: {
			List:       `SELECT p.proname FROM pg_proc p JOIN pg_namespace n ON p.pronamespace = n.oid WHERE n.nspname = 'public' AND p.prokind = 'f' AND p.proname LIKE @pattern ORDER BY p.proname`,
			Definition: `SELECT pg_get_functiondef(p.oid) FROM pg_proc p JOIN pg_namespace n ON p.pronamespace = n.oid WHERE n.nspname = 'public' AND p.proname = @name`,
			Mode:       DefSingleRow,
		},
		Trigger: {
			List:       `SELECT t.tgname FROM pg_trigger t JOIN pg_class c ON t.tgrelid = c.oid WHERE NOT t.tgisinternal AND t.tgname LIKE @pattern ORDER BY t.tgname`,
			Definition: `SELECT pg_get_triggerdef(t.oid, true) FROM pg_trigger t WHERE NOT t.tgisinternal AND t.tgname = @name`,
			Mode:       DefSingleRow,
		},
		View: {
			List:       `SELECT viewname FROM pg_views WHERE schemaname = 'public' AND viewname LIKE @pattern ORDER BY viewname`,
			Definition: `SELECT definition FROM pg_views WHERE schemaname = 'public' AND viewname = @name`,
			Mode:       DefSingleRow,
		},
	},
}

// Wire-compatible forks and derivatives share the catalog shape. They
// ride the pgx stdlib driver so both Postgres drivers in the build stay
// exercised.
var (
	cockroach = derive(postgres, "cockroachdb", []string{"cockroach", "crdb"}, "pgx")
	redshift  = derive(postgres, "redshift", nil, "pgx")
	greenplum = derive(postgres, "greenplum", nil, "pgx")
	timescale = derive(postgres, "timescaledb", []string{"timescale"}, "pgx")
	yugabyte  = derive(postgres, "yugabyte", []string{"yugabytedb", "ysql"}, "pgx")
)
