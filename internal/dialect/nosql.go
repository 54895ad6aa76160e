package dialect

import "dbcli/internal/sqlutil"

// Document and key-value kinds are registered so that alias resolution
// and capability checks work uniformly, but they take no bound
// parameters and have no DDL vocabulary: object listings come back empty
// instead of erroring, definitions render as unsupported placeholders.

func nosqlProfile(name string, aliases ...string) *Profile {
	return &Profile{
		Name:               name,
		Aliases:            aliases,
		Placeholder:        sqlutil.StyleQuestion,
		SupportsParameters: false,
		BulkCopy:           BulkInsertBatch,
	}
}

var (
	mongodb       = nosqlProfile("mongodb", "mongo")
	redisKV       = nosqlProfile("redis")
	cassandra     = nosqlProfile("cassandra", "cql")
	dynamodb      = nosqlProfile("dynamodb", "dynamo")
	elasticsearch = nosqlProfile("elasticsearch", "elastic", "es")
)
