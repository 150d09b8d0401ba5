package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gotd/td/session"
)

// SessionStorage keeps gotd session blobs in Postgres, one row per session
// name. It is an alternative to the session file for deployments without a
// persistent disk.
type SessionStorage struct {
	db   DB
	name string
}

func NewSessionStorage(db DB, name string) *SessionStorage {
	return &SessionStorage{db: db, name: name}
}

var _ session.Storage = (*SessionStorage)(nil)

const createSessionsTableSQL = `
CREATE TABLE IF NOT EXISTS telegram_sessions (
    name       TEXT PRIMARY KEY,
    data       BYTEA NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

const selectSessionSQL = `
SELECT data FROM telegram_sessions WHERE name = $1;
`

const upsertSessionSQL = `
INSERT INTO telegram_sessions (name, data, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE
SET data = EXCLUDED.data,
    updated_at = now();
`

// Migrate creates the sessions table when it does not exist yet.
func (s *SessionStorage) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createSessionsTableSQL); err != nil {
		return fmt.Errorf("create telegram_sessions: %w", err)
	}
	return nil
}

// LoadSession returns session.ErrNotFound when no row exists, which gotd
// treats as "start with an empty session".
func (s *SessionStorage) LoadSession(ctx context.Context) ([]byte, error) {
	rows, err := s.db.QueryContext(ctx, selectSessionSQL, s.name)
	if err != nil {
		return nil, fmt.Errorf("load session %q: %w", s.name, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("load session %q: %w", s.name, err)
		}
		return nil, session.ErrNotFound
	}

	var data []byte
	if err := rows.Scan(&data); err != nil {
		return nil, fmt.Errorf("scan session %q: %w", s.name, err)
	}
	if len(data) == 0 {
		return nil, session.ErrNotFound
	}

	return data, nil
}

func (s *SessionStorage) StoreSession(ctx context.Context, data []byte) error {
	if len(data) == 0 {
		return errors.New("refusing to store empty session")
	}

	res, err := s.db.ExecContext(ctx, upsertSessionSQL, s.name, data)
	if err != nil {
		return fmt.Errorf("store session %q: %w", s.name, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	// rows == 1 -> inserted or updated
	if rows == 0 {
		return fmt.Errorf("store session %q: no rows affected", s.name)
	}
	return nil
}
