package engine

import (
	"context"
	"database/sql"
	"fmt"

	"dbcli/internal/config"
	"dbcli/internal/dberr"
	"dbcli/internal/dialect"
	"dbcli/internal/sqlutil"
)

// Session wraps one open database connection and its configuration.
// One Session per CLI invocation (or per open REPL); Close must run on
// every exit path.
type Session struct {
	db    *sql.DB
	cfg   *config.ConnectionConfig
	stmts map[string]*sql.Stmt
}

// Open connects and pings. Dialects without a wired driver fail here
// with dberr.ErrNoDriver rather than deep inside sql.Open.
func Open(cfg *config.ConnectionConfig) (*Session, error) {
	p := cfg.Dialect
	if !p.HasDriver() {
		return nil, fmt.Errorf("%w: %s", dberr.ErrNoDriver, p.Name)
	}

	db, err := sql.Open(p.Driver, cfg.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", dberr.ErrConnectionFailed, sqlutil.RedactErr(err))
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %s", dberr.ErrConnectionFailed, sqlutil.RedactErr(err))
	}

	s := &Session{db: db, cfg: cfg}
	if cfg.DisableClearParameters {
		s.stmts = make(map[string]*sql.Stmt)
	}
	return s, nil
}

// NewSession wraps an already-open *sql.DB (tests use this with sqlmock).
func NewSession(db *sql.DB, cfg *config.ConnectionConfig) *Session {
	s := &Session{db: db, cfg: cfg}
	if cfg.DisableClearParameters {
		s.stmts = make(map[string]*sql.Stmt)
	}
	return s
}

// Close releases cached statements and the connection.
func (s *Session) Close() error {
	for _, st := range s.stmts {
		_ = st.Close()
	}
	s.stmts = nil
	return s.db.Close()
}

// DB exposes the underlying handle for the bulk-copy paths.
func (s *Session) DB() *sql.DB { return s.db }

// Dialect returns the active profile.
func (s *Session) Dialect() *dialect.Profile { return s.cfg.Dialect }

// Config returns the session's connection configuration.
func (s *Session) Config() *config.ConnectionConfig { return s.cfg }

// SingleConn pins one physical connection. The identity-insert toggle is
// session-scoped on the server, so the toggle and the insert must share
// a connection; pooled *sql.DB calls do not guarantee that.
func (s *Session) SingleConn(ctx context.Context) (*sql.Conn, error) {
	return s.db.Conn(ctx)
}
