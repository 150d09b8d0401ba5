package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	tdsession "github.com/gotd/td/session"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"zyra-views/internal/config"
	sessionPg "zyra-views/internal/session/adapters/postgres"
)

// OpenStorage returns the session storage selected by cfg: the Postgres
// table when SessionDSN is set, the session file otherwise. The returned
// close func releases the underlying resources.
func OpenStorage(ctx context.Context, cfg config.TelegramConfig) (tdsession.Storage, func() error, error) {
	if cfg.SessionDSN == "" {
		log.Info().Str("path", cfg.SessionFile).Msg("using file session storage")
		return &tdsession.FileStorage{Path: cfg.SessionFile}, func() error { return nil }, nil
	}

	db, err := sql.Open("postgres", cfg.SessionDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping postgres: %w", err)
	}

	storage := sessionPg.NewSessionStorage(sessionPg.NewSQLDB(db), cfg.SessionName)
	if err := storage.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	log.Info().Str("name", cfg.SessionName).Msg("using postgres session storage")
	return storage, db.Close, nil
}
