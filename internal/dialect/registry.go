package dialect

import (
	"fmt"
	"sort"
	"strings"

	"dbcli/internal/dberr"
)

// profiles is the full registry. Adding a database kind means appending
// an entry here (usually in its family's file); orchestration code never
// changes.
var profiles = []*Profile{
	sqlServer,
	sybase,
	mysql,
	mariadb,
	tidb,
	percona,
	postgres,
	cockroach,
	redshift,
	greenplum,
	timescale,
	yugabyte,
	oracle,
	sqlite,
	duckdb,
	clickhouse,
	hana,
	db2,
	firebird,
	informix,
	snowflake,
	bigquery,
	teradata,
	vertica,
	exasol,
	h2,
	derby,
	access,
	mongodb,
	redisKV,
	cassandra,
	dynamodb,
	elasticsearch,
}

// Resolve maps a user-supplied name or alias, case-insensitively, to its
// profile. Unknown input yields dberr.ErrUnknownDialect.
func Resolve(aliasOrName string) (*Profile, error) {
	needle := strings.TrimSpace(aliasOrName)
	for _, p := range profiles {
		if strings.EqualFold(p.Name, needle) {
			return p, nil
		}
		for _, a := range p.Aliases {
			if strings.EqualFold(a, needle) {
				return p, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", dberr.ErrUnknownDialect, aliasOrName)
}

// Lookup returns the profile for a canonical name. It is total over the
// registry; a miss is a programming error and returns nil.
func Lookup(canonicalName string) *Profile {
	for _, p := range profiles {
		if p.Name == canonicalName {
			return p
		}
	}
	return nil
}

// Names returns all canonical dialect names, sorted.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}
