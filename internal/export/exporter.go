// Package export enumerates and renders DDL for procedures, functions,
// triggers, views and indexes. Per-object failures become inline SQL
// comments rather than aborting the run; partial output is strictly
// better than none for a documentation tool.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"dbcli/internal/dialect"
	"dbcli/internal/engine"
	"dbcli/internal/sqlutil"
)

// Request selects what to export and where it goes. Kind is "all" or a
// single object kind; an empty OutDir means one concatenated script.
type Request struct {
	Kind       string
	NameFilter string
	OutDir     string
}

// Result carries either the single script or the per-object file count
// and resolved output directory.
type Result struct {
	Script       string
	FilesWritten int
	Dir          string
}

// object is one rendered schema object ready for either output mode.
type object struct {
	Kind dialect.ObjectKind
	Name string // file-name grouping key; the owning table for indexes
	DDL  string
}

// kindsFor expands a request kind into export order.
func kindsFor(kind string) ([]dialect.ObjectKind, error) {
	if strings.EqualFold(kind, "all") || kind == "" {
		return dialect.ObjectKinds(), nil
	}
	for _, k := range dialect.ObjectKinds() {
		if strings.EqualFold(string(k), kind) {
			return []dialect.ObjectKind{k}, nil
		}
	}
	return nil, errors.Errorf("unknown object type %q (expected all, procedure, function, trigger, view or index)", kind)
}

// ExportObjects runs the export described by req against the session.
func ExportObjects(s *engine.Session, req Request) (*Result, error) {
	kinds, err := kindsFor(req.Kind)
	if err != nil {
		return nil, err
	}

	var objects []object
	for _, kind := range kinds {
		if kind == dialect.Index {
			idx, err := collectIndexes(s)
			if err != nil {
				return nil, err
			}
			objects = append(objects, idx...)
			continue
		}
		objs, err := collectKind(s, kind, req.NameFilter)
		if err != nil {
			return nil, err
		}
		objects = append(objects, objs...)
	}

	if req.OutDir == "" {
		return &Result{Script: renderScript(s, req, kinds, objects)}, nil
	}
	return writeFiles(req.OutDir, objects)
}

// collectKind lists one object kind and fetches each definition.
// A dialect with no vocabulary for the kind yields nothing; a failing
// definition yields an inline error comment for that object only.
func collectKind(s *engine.Session, kind dialect.ObjectKind, filter string) ([]object, error) {
	q, ok := s.Dialect().ObjectQueriesFor(kind)
	if !ok || q.List == "" {
		return nil, nil
	}

	rs, err := s.Query(q.List, sqlutil.Params{"pattern": "%" + filter + "%"})
	if err != nil {
		return nil, errors.Wrapf(err, "listing %ss", kind)
	}

	var objects []object
	for i := 0; i < rs.Len(); i++ {
		name := asString(rs.Values(i)[0])
		ddl, err := fetchDefinition(s, q, name)
		if err != nil {
			ddl = fmt.Sprintf("-- ERROR exporting %s %s: %s", kind, name, sqlutil.RedactErr(err))
		}
		objects = append(objects, object{Kind: kind, Name: name, DDL: ddl})
	}
	return objects, nil
}

// fetchDefinition retrieves one object's source text per the dialect's
// definition mode.
func fetchDefinition(s *engine.Session, q dialect.ObjectQueries, name string) (string, error) {
	switch q.Mode {
	case dialect.DefNone:
		return fmt.Sprintf("-- definition text not supported for this dialect (%s)", name), nil

	case dialect.DefShowCreate:
		// Identifiers cannot be bound; the name is interpolated.
		rs, err := s.Query(fmt.Sprintf(q.Definition, name), nil)
		if err != nil {
			return "", err
		}
		return definitionColumn(rs, q.DefColumn, name, false)

	case dialect.DefConcatRows:
		rs, err := s.Query(q.Definition, sqlutil.Params{"name": name})
		if err != nil {
			return "", err
		}
		return definitionColumn(rs, q.DefColumn, name, true)

	default: // DefSingleRow
		rs, err := s.Query(q.Definition, sqlutil.Params{"name": name})
		if err != nil {
			return "", err
		}
		return definitionColumn(rs, q.DefColumn, name, false)
	}
}

// definitionColumn extracts column col of the result: the first row's
// value, or every row's value concatenated for line-numbered catalogs.
func definitionColumn(rs *engine.RowSet, col int, name string, concat bool) (string, error) {
	if rs.Len() == 0 {
		return "", errors.Errorf("no definition rows returned for %s", name)
	}
	if col >= len(rs.Columns) {
		return "", errors.Errorf("definition result for %s has %d columns, need index %d", name, len(rs.Columns), col)
	}
	if !concat {
		return asString(rs.Values(0)[col]), nil
	}
	var b strings.Builder
	for i := 0; i < rs.Len(); i++ {
		b.WriteString(asString(rs.Values(i)[col]))
	}
	return b.String(), nil
}

// collectIndexes walks every table; index catalogs are table-scoped in
// all dialects. Tables with only primary-key indexes are skipped.
func collectIndexes(s *engine.Session) ([]object, error) {
	listQ := s.Dialect().TableListQuery
	if listQ == "" || s.Dialect().IndexListQuery == "" {
		return nil, nil
	}
	rs, err := s.Query(listQ, nil)
	if err != nil {
		return nil, errors.Wrap(err, "listing tables for index export")
	}

	var objects []object
	for i := 0; i < rs.Len(); i++ {
		table := asString(rs.Values(i)[0])
		defs, err := tableIndexes(s, table)
		if err != nil {
			objects = append(objects, object{
				Kind: dialect.Index,
				Name: table,
				DDL:  fmt.Sprintf("-- ERROR exporting indexes of %s: %s", table, sqlutil.RedactErr(err)),
			})
			continue
		}
		if len(defs) == 0 {
			continue
		}
		var stmts []string
		for _, d := range defs {
			stmts = append(stmts, renderIndex(table, d))
		}
		objects = append(objects, object{Kind: dialect.Index, Name: table, DDL: strings.Join(stmts, ";\n")})
	}
	return objects, nil
}

// renderScript builds the single-script output: header comment, one
// section per kind, each object introduced by a -- Name comment and
// terminated so the script round-trips through ExecuteBatched.
func renderScript(s *engine.Session, req Request, kinds []dialect.ObjectKind, objects []object) string {
	sep := ";"
	if s.Dialect().SupportsBatchSeparator {
		sep = "GO"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "-- Schema export\n-- Dialect: %s\n-- Generated: %s\n-- Objects: %s\n",
		s.Dialect().Name, time.Now().Format("2006-01-02 15:04:05"), req.Kind)

	for _, kind := range kinds {
		var section []object
		for _, o := range objects {
			if o.Kind == kind {
				section = append(section, o)
			}
		}
		if len(section) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n-- ===== %ss =====\n", kind)
		for _, o := range section {
			fmt.Fprintf(&b, "\n-- Name: %s\n%s\n%s\n", o.Name, strings.TrimRight(o.DDL, "\n"), sep)
		}
	}
	return b.String()
}

// writeFiles emits one file per object (one per table for indexes) under
// dir, creating it if absent.
func writeFiles(dir string, objects []object) (*Result, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating output directory %s", abs)
	}

	written := 0
	for _, o := range objects {
		var base string
		if o.Kind == dialect.Index {
			base = fmt.Sprintf("indexes__%s.sql", sanitizeFileName(o.Name))
		} else {
			base = fmt.Sprintf("%s__%s.sql", o.Kind, sanitizeFileName(o.Name))
		}
		content := fmt.Sprintf("-- Name: %s\n%s\n", o.Name, strings.TrimRight(o.DDL, "\n"))
		if err := os.WriteFile(filepath.Join(abs, base), []byte(content), 0o644); err != nil {
			return nil, errors.Wrapf(err, "writing %s", base)
		}
		written++
	}
	return &Result{FilesWritten: written, Dir: abs}, nil
}
