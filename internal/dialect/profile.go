// Package dialect holds the static registry of supported database kinds.
// Everything dialect-specific in the rest of the tool routes through
// Profile fields and query templates; no other package branches on a
// dialect name.
package dialect

import "dbcli/internal/sqlutil"

// ObjectKind names a schema object category handled by the exporter.
type ObjectKind string

const (
	Procedure ObjectKind = "procedure"
	Function  ObjectKind = "function"
	Trigger   ObjectKind = "trigger"
	View      ObjectKind = "view"
	Index     ObjectKind = "index"
)

// ObjectKinds returns the exportable kinds in rendering order.
func ObjectKinds() []ObjectKind {
	return []ObjectKind{Procedure, Function, Trigger, View, Index}
}

// DefinitionMode describes how an object's source text is fetched.
type DefinitionMode int

const (
	// DefNone: the dialect has no introspection for this kind; the
	// exporter emits a "not supported" placeholder instead of failing.
	DefNone DefinitionMode = iota
	// DefSingleRow: one row, column DefColumn holds the full source.
	DefSingleRow
	// DefConcatRows: source is split across rows ordered by line number;
	// column DefColumn of every row is concatenated.
	DefConcatRows
	// DefShowCreate: a SHOW CREATE-style statement; the object name is
	// interpolated into the template (identifiers cannot be bound) and
	// column DefColumn of the single result row holds the DDL.
	DefShowCreate
)

// ObjectQueries is the template pair for one object kind. List takes
// @pattern (a LIKE pattern, "%" when unfiltered) and yields object names;
// Definition takes @name (or a %s identifier for DefShowCreate).
type ObjectQueries struct {
	List       string
	Definition string
	Mode       DefinitionMode
	DefColumn  int
}

// BulkStyle selects the fastest bulk-load primitive the driver offers.
type BulkStyle int

const (
	// BulkInsertBatch: multi-row prepared INSERT, the portable fallback.
	BulkInsertBatch BulkStyle = iota
	// BulkCopyPostgres: pq.CopyIn / COPY FROM STDIN.
	BulkCopyPostgres
	// BulkCopyMSSQL: mssql.CopyIn / TDS bulk copy.
	BulkCopyMSSQL
)

// Profile is the static description of one database kind. Profiles are
// built once at init and never mutated.
type Profile struct {
	Name    string
	Aliases []string

	// Driver is the database/sql driver name, empty when no Go driver is
	// wired for this kind in this build.
	Driver string

	Placeholder sqlutil.PlaceholderStyle

	SupportsParameters     bool
	SupportsBatchSeparator bool
	// ExceptOperator is the set-difference keyword: EXCEPT or MINUS.
	ExceptOperator string
	// RequiresIdentityInsertToggle marks the family that refuses explicit
	// identity values without SET IDENTITY_INSERT.
	RequiresIdentityInsertToggle bool
	// NoCreateTableAsSelect marks the family that needs SELECT ... INTO
	// instead of CREATE TABLE ... AS SELECT.
	NoCreateTableAsSelect bool

	BulkCopy BulkStyle

	// CallSyntax frames a stored-procedure invocation: first %s is the
	// routine name, second the comma-joined parameter placeholders.
	CallSyntax string

	// Catalog queries used by backup/restore and the index exporter.
	// TableListQuery yields table names. ColumnListQuery takes @table and
	// yields (name, native type, nullable YES/NO, pk 1/0, default).
	// IdentityColumnQuery takes @table and yields the identity column, if
	// any. IndexListQuery takes @table and yields (index name, unique
	// 1/0, column name) ordered by index then column position.
	TableListQuery      string
	ColumnListQuery     string
	IdentityColumnQuery string
	IndexListQuery      string

	Objects map[ObjectKind]ObjectQueries
}

// HasDriver reports whether a Go driver is wired for this kind.
func (p *Profile) HasDriver() bool { return p.Driver != "" }

// ObjectQueriesFor returns the template pair for kind; ok is false when
// the dialect has no vocabulary for it at all.
func (p *Profile) ObjectQueriesFor(kind ObjectKind) (ObjectQueries, bool) {
	if p.Objects == nil {
		return ObjectQueries{}, false
	}
	q, ok := p.Objects[kind]
	return q, ok
}
