package dialect_test

import (
	"errors"
	"testing"

	"dbcli/internal/dberr"
	"dbcli/internal/dialect"
	"dbcli/internal/sqlutil"
)

func TestResolve_NamesAndAliases(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"sqlserver", "sqlserver"},
		{"MSSQL", "sqlserver"},
		{"sql-server", "sqlserver"},
		{"postgres", "postgres"},
		{"postgresql", "postgres"},
		{"pg", "postgres"},
		{"MariaDB", "mariadb"},
		{"cockroach", "cockroachdb"},
		{"  oracle  ", "oracle"},
	}
	for _, c := range cases {
		p, err := dialect.Resolve(c.in)
		if err != nil {
			t.Errorf("Resolve(%q): %v", c.in, err)
			continue
		}
		if p.Name != c.want {
			t.Errorf("Resolve(%q) = %s, want %s", c.in, p.Name, c.want)
		}
	}
}

func TestResolve_Unknown(t *testing.T) {
	_, err := dialect.Resolve("fancydb")
	if !errors.Is(err, dberr.ErrUnknownDialect) {
		t.Errorf("want ErrUnknownDialect, got %v", err)
	}
}

func TestRegistry_EveryNameResolves(t *testing.T) {
	names := dialect.Names()
	if len(names) < 30 {
		t.Fatalf("registry holds %d dialects, want at least 30", len(names))
	}
	for _, name := range names {
		p := dialect.Lookup(name)
		if p == nil {
			t.Errorf("Lookup(%q) returned nil", name)
			continue
		}
		if r, err := dialect.Resolve(name); err != nil || r != p {
			t.Errorf("Resolve(%q) did not round-trip", name)
		}
	}
}

func TestCapabilityFlags(t *testing.T) {
	ss := dialect.Lookup("sqlserver")
	if !ss.SupportsBatchSeparator || !ss.RequiresIdentityInsertToggle || !ss.NoCreateTableAsSelect {
		t.Error("sqlserver capability flags wrong")
	}
	if ss.ExceptOperator != "EXCEPT" {
		t.Errorf("sqlserver except operator = %q", ss.ExceptOperator)
	}
	if ss.Placeholder != sqlutil.StyleNamedAt {
		t.Error("sqlserver placeholder style wrong")
	}

	pg := dialect.Lookup("postgres")
	if pg.SupportsBatchSeparator || pg.NoCreateTableAsSelect {
		t.Error("postgres capability flags wrong")
	}
	if pg.Placeholder != sqlutil.StyleDollar || pg.BulkCopy != dialect.BulkCopyPostgres {
		t.Error("postgres driver wiring wrong")
	}

	ora := dialect.Lookup("oracle")
	if ora.ExceptOperator != "MINUS" || ora.Placeholder != sqlutil.StyleNamedColon {
		t.Error("oracle profile wrong")
	}

	my := dialect.Lookup("mysql")
	if my.Placeholder != sqlutil.StyleQuestion || my.SupportsBatchSeparator {
		t.Error("mysql profile wrong")
	}
}

func TestDriverlessProfilesRejectNothingStatically(t *testing.T) {
	for _, name := range []string{"db2", "snowflake", "teradata", "access"} {
		p := dialect.Lookup(name)
		if p == nil {
			t.Fatalf("missing profile %s", name)
		}
		if p.HasDriver() {
			t.Errorf("%s should have no wired driver", name)
		}
	}
}

func TestNoSQLProfilesHaveNoParameterSupport(t *testing.T) {
	for _, name := range []string{"mongodb", "redis", "cassandra", "dynamodb", "elasticsearch"} {
		p, err := dialect.Resolve(name)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", name, err)
		}
		if p.SupportsParameters {
			t.Errorf("%s should not advertise parameter support", name)
		}
		if p.SupportsBatchSeparator {
			t.Errorf("%s should not advertise batch support", name)
		}
	}
}

func TestPostgresFamilySharesTemplates(t *testing.T) {
	pg := dialect.Lookup("postgres")
	for _, name := range []string{"cockroachdb", "redshift", "greenplum", "timescaledb", "yugabyte"} {
		d := dialect.Lookup(name)
		if d == nil {
			t.Fatalf("missing profile %s", name)
		}
		if d.Driver != "pgx" {
			t.Errorf("%s driver = %q, want pgx", name, d.Driver)
		}
		if d.TableListQuery != pg.TableListQuery {
			t.Errorf("%s does not share the postgres table catalog query", name)
		}
	}
}

func TestObjectQueriesFor(t *testing.T) {
	my := dialect.Lookup("mysql")
	q, ok := my.ObjectQueriesFor(dialect.Procedure)
	if !ok || q.Mode != dialect.DefShowCreate {
		t.Error("mysql procedure definition should use SHOW CREATE")
	}
	if _, ok := dialect.Lookup("redis").ObjectQueriesFor(dialect.View); ok {
		t.Error("redis should have no view vocabulary")
	}
}
