package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/closealead/internal/platform/storage/sqlitemigrate"
	webstorage "github.com/louisbranch/closealead/internal/services/web/storage"
	"github.com/louisbranch/closealead/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// dsnPragmas are applied by the driver to every pooled connection so foreign
// key cascades hold regardless of which connection runs a statement.
const dsnPragmas = "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

var errNotConfigured = errors.New("storage is not configured")

// Store provides SQLite-backed persistence for web sessions and drafts.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens and migrates a web session SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	sqlDB, err := sql.Open("sqlite", filepath.Clean(path)+dsnPragmas)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, now: time.Now}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return errNotConfigured
	}
	return s.sqlDB.PingContext(ctx)
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutSession upserts a session row and prunes expired sessions.
func (s *Store) PutSession(ctx context.Context, record webstorage.SessionRecord) error {
	if s == nil || s.sqlDB == nil {
		return errNotConfigured
	}
	record.ID = strings.TrimSpace(record.ID)
	if record.ID == "" {
		return fmt.Errorf("session id is required")
	}
	if strings.TrimSpace(record.Token) == "" {
		return fmt.Errorf("session token is required")
	}
	if record.ExpiresAt.IsZero() {
		return fmt.Errorf("session expiry is required")
	}
	now := s.now().UTC()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}

	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM web_sessions WHERE expires_at <= ?`, now.UnixMilli()); err != nil {
		return fmt.Errorf("prune expired sessions: %w", err)
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO web_sessions (
		    id, user_id, name, email, plan, offer_count, token, created_at, expires_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		    user_id = excluded.user_id,
		    name = excluded.name,
		    email = excluded.email,
		    plan = excluded.plan,
		    offer_count = excluded.offer_count,
		    token = excluded.token,
		    expires_at = excluded.expires_at`,
		record.ID,
		strings.TrimSpace(record.UserID),
		record.Name,
		strings.TrimSpace(record.Email),
		strings.TrimSpace(record.Plan),
		record.OfferCount,
		record.Token,
		timeToUnixMillis(record.CreatedAt),
		timeToUnixMillis(record.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// GetSession loads an unexpired session by id.
func (s *Store) GetSession(ctx context.Context, id string) (webstorage.SessionRecord, bool, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.SessionRecord{}, false, errNotConfigured
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return webstorage.SessionRecord{}, false, nil
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, user_id, name, email, plan, offer_count, token, created_at, expires_at
		 FROM web_sessions
		 WHERE id = ? AND expires_at > ?`,
		id,
		s.now().UTC().UnixMilli(),
	)
	var record webstorage.SessionRecord
	var createdAt, expiresAt int64
	if err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.Name,
		&record.Email,
		&record.Plan,
		&record.OfferCount,
		&record.Token,
		&createdAt,
		&expiresAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return webstorage.SessionRecord{}, false, nil
		}
		return webstorage.SessionRecord{}, false, fmt.Errorf("get session: %w", err)
	}
	record.CreatedAt = unixMillisToTime(createdAt)
	record.ExpiresAt = unixMillisToTime(expiresAt)
	return record, true, nil
}

// DeleteSession removes a session; its wizard states cascade.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	if s == nil || s.sqlDB == nil {
		return errNotConfigured
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM web_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// UpdateSessionOfferCount refreshes the cached offer count of a session.
func (s *Store) UpdateSessionOfferCount(ctx context.Context, id string, count int) error {
	if s == nil || s.sqlDB == nil {
		return errNotConfigured
	}
	if count < 0 {
		count = 0
	}
	if _, err := s.sqlDB.ExecContext(ctx, `UPDATE web_sessions SET offer_count = ? WHERE id = ?`, count, strings.TrimSpace(id)); err != nil {
		return fmt.Errorf("update session offer count: %w", err)
	}
	return nil
}

// PutWizardState upserts the serialized wizard of one draft.
func (s *Store) PutWizardState(ctx context.Context, record webstorage.WizardRecord) error {
	if s == nil || s.sqlDB == nil {
		return errNotConfigured
	}
	record.SessionID = strings.TrimSpace(record.SessionID)
	record.DraftKey = strings.TrimSpace(record.DraftKey)
	if record.SessionID == "" || record.DraftKey == "" {
		return fmt.Errorf("session id and draft key are required")
	}
	if len(record.Payload) == 0 {
		return fmt.Errorf("wizard payload is required")
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = s.now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO wizard_states (session_id, draft_key, payload_json, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(session_id, draft_key) DO UPDATE SET
		    payload_json = excluded.payload_json,
		    updated_at = excluded.updated_at`,
		record.SessionID,
		record.DraftKey,
		record.Payload,
		timeToUnixMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put wizard state: %w", err)
	}
	return nil
}

// GetWizardState loads the serialized wizard of one draft.
func (s *Store) GetWizardState(ctx context.Context, sessionID, draftKey string) (webstorage.WizardRecord, bool, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.WizardRecord{}, false, errNotConfigured
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT session_id, draft_key, payload_json, updated_at
		 FROM wizard_states
		 WHERE session_id = ? AND draft_key = ?`,
		strings.TrimSpace(sessionID),
		strings.TrimSpace(draftKey),
	)
	var record webstorage.WizardRecord
	var updatedAt int64
	if err := row.Scan(&record.SessionID, &record.DraftKey, &record.Payload, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return webstorage.WizardRecord{}, false, nil
		}
		return webstorage.WizardRecord{}, false, fmt.Errorf("get wizard state: %w", err)
	}
	record.UpdatedAt = unixMillisToTime(updatedAt)
	return record, true, nil
}

// DeleteWizardState removes the serialized wizard of one draft.
func (s *Store) DeleteWizardState(ctx context.Context, sessionID, draftKey string) error {
	if s == nil || s.sqlDB == nil {
		return errNotConfigured
	}
	if _, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM wizard_states WHERE session_id = ? AND draft_key = ?`,
		strings.TrimSpace(sessionID),
		strings.TrimSpace(draftKey),
	); err != nil {
		return fmt.Errorf("delete wizard state: %w", err)
	}
	return nil
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var _ webstorage.Store = (*Store)(nil)
