package panel

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nerrad567/gray-access-core/internal/infrastructure/database"
	"github.com/nerrad567/gray-access-core/internal/infrastructure/logging"
	"github.com/nerrad567/gray-access-core/internal/tables"
)

// Op distinguishes the two kinds of committed sessions.
type Op string

const (
	OpWrite  Op = "write"
	OpDelete Op = "delete"
)

// CommitEvent describes one successfully committed session. It is
// handed to the commit hook after the database transaction completes.
type CommitEvent struct {
	Op    Op
	Table string
	Row   map[string]string
}

// Store is the SQLite-backed mirror of the panel's device data tables.
// Rows travel as raw string-keyed maps and are stored as JSON in the
// panel_rows table; typed interpretation stays in the tables package.
//
// Store implements tables.Conn, so records loaded through Query can
// Save and Delete themselves.
type Store struct {
	db       *database.DB
	registry *tables.Registry
	logger   *logging.Logger
	onCommit func(CommitEvent)
}

// NewStore creates a store over an open database. The registry decides
// which tables exist; pass tables.DefaultRegistry() for the built-in
// set.
func NewStore(db *database.DB, registry *tables.Registry, logger *logging.Logger) *Store {
	return &Store{
		db:       db,
		registry: registry,
		logger:   logger.With("component", "panel"),
	}
}

// SetOnCommit installs a hook invoked synchronously after every
// successful Commit. Used by the event monitor to fan committed rows
// out to MQTT and InfluxDB. Must be set before the store is shared
// between goroutines.
func (s *Store) SetOnCommit(fn func(CommitEvent)) {
	s.onCommit = fn
}

// BeginWrite opens a single-use write session for one row of the named
// table. Implements tables.Conn.
func (s *Store) BeginWrite(ctx context.Context, tableName string) (tables.Session, error) {
	return s.begin(ctx, tableName, OpWrite)
}

// BeginDelete opens a single-use delete session for one row of the
// named table. Implements tables.Conn.
func (s *Store) BeginDelete(ctx context.Context, tableName string) (tables.Session, error) {
	return s.begin(ctx, tableName, OpDelete)
}

func (s *Store) begin(ctx context.Context, tableName string, op Op) (tables.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, ok := s.registry.Lookup(tableName); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, tableName)
	}
	return &session{store: s, table: tableName, op: op}, nil
}

// Query loads every stored row of the named table as typed records.
// Records come back clean and attached to the store, so mutating and
// saving them round-trips through the same connection.
func (s *Store) Query(ctx context.Context, tableName string) ([]*tables.Record, error) {
	schema, ok := s.registry.Lookup(tableName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, tableName)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT row FROM panel_rows WHERE tbl = ? ORDER BY id", tableName,
	)
	if err != nil {
		return nil, fmt.Errorf("querying %s rows: %w", tableName, err)
	}
	defer rows.Close() //nolint:errcheck

	var records []*tables.Record
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", tableName, err)
		}

		raw := make(map[string]string)
		if err := json.Unmarshal([]byte(payload), &raw); err != nil {
			return nil, fmt.Errorf("decoding %s row: %w", tableName, err)
		}

		record, err := tables.FromRaw(schema, raw, false)
		if err != nil {
			return nil, fmt.Errorf("building %s record: %w", tableName, err)
		}
		records = append(records, record.WithConn(s))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", tableName, err)
	}
	return records, nil
}

// Count returns the number of stored rows for the named table.
func (s *Store) Count(ctx context.Context, tableName string) (int, error) {
	if _, ok := s.registry.Lookup(tableName); !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTable, tableName)
	}

	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM panel_rows WHERE tbl = ?", tableName,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting %s rows: %w", tableName, err)
	}
	return count, nil
}

// session is one in-flight write or delete handshake. It is spent
// after Commit; further calls fail with ErrSessionSpent.
type session struct {
	store   *Store
	table   string
	op      Op
	payload map[string]string
	spent   bool
}

// Send stages the row payload. Implements tables.Session.
func (se *session) Send(ctx context.Context, row map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if se.spent {
		return ErrSessionSpent
	}

	payload := make(map[string]string, len(row))
	for k, v := range row {
		payload[k] = v
	}
	se.payload = payload
	return nil
}

// Commit applies the staged payload and spends the session. Implements
// tables.Session.
func (se *session) Commit(ctx context.Context) error {
	if se.spent {
		return ErrSessionSpent
	}
	if se.payload == nil {
		return ErrNoPayload
	}
	se.spent = true

	var err error
	switch se.op {
	case OpDelete:
		err = se.store.deleteRows(ctx, se.table, se.payload)
	default:
		err = se.store.insertRow(ctx, se.table, se.payload)
	}
	if err != nil {
		return err
	}

	se.store.logger.Debug("session committed",
		"op", string(se.op),
		"table", se.table,
		"fields", len(se.payload),
	)

	if se.store.onCommit != nil {
		se.store.onCommit(CommitEvent{Op: se.op, Table: se.table, Row: se.payload})
	}
	return nil
}

func (s *Store) insertRow(ctx context.Context, tableName string, row map[string]string) error {
	payload, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("encoding %s row: %w", tableName, err)
	}

	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO panel_rows (tbl, row) VALUES (?, ?)", tableName, string(payload),
	); err != nil {
		return fmt.Errorf("inserting %s row: %w", tableName, err)
	}
	return nil
}

// deleteRows removes every stored row whose fields include all of the
// given key/value pairs. Deleting with a payload that matches nothing
// is not an error, mirroring how the panel treats deletes of absent
// rows.
func (s *Store) deleteRows(ctx context.Context, tableName string, match map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // Rollback is no-op after commit

	rows, err := tx.QueryContext(ctx,
		"SELECT id, row FROM panel_rows WHERE tbl = ?", tableName,
	)
	if err != nil {
		return fmt.Errorf("querying %s rows: %w", tableName, err)
	}

	var victims []int64
	for rows.Next() {
		var id int64
		var payload string
		if err := rows.Scan(&id, &payload); err != nil {
			rows.Close() //nolint:errcheck
			return fmt.Errorf("scanning %s row: %w", tableName, err)
		}

		stored := make(map[string]string)
		if err := json.Unmarshal([]byte(payload), &stored); err != nil {
			rows.Close() //nolint:errcheck
			return fmt.Errorf("decoding %s row: %w", tableName, err)
		}
		if rowMatches(stored, match) {
			victims = append(victims, id)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close() //nolint:errcheck
		return fmt.Errorf("iterating %s rows: %w", tableName, err)
	}
	rows.Close() //nolint:errcheck // Must close before writing on the same connection

	for _, id := range victims {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM panel_rows WHERE id = ?", id,
		); err != nil {
			return fmt.Errorf("deleting %s row %d: %w", tableName, id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s delete: %w", tableName, err)
	}
	return nil
}

// rowMatches reports whether stored contains every key/value pair of
// match.
func rowMatches(stored, match map[string]string) bool {
	for k, v := range match {
		if stored[k] != v {
			return false
		}
	}
	return true
}

var _ tables.Conn = (*Store)(nil)
