package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/agent-portal/internal/config"
	"github.com/MKhiriev/agent-portal/internal/logger"
)

// MemoryDSN selects the in-process backend.
const MemoryDSN = "memory"

// Storages bundles the repositories the service layer depends on together
// with the connection that backs them.
type Storages struct {
	CharacterRepository CharacterRepository

	db *DB
}

// NewStorages picks a backend from cfg.DSN, connects, applies migrations
// when enabled and builds the repositories.
//
//   - "memory" selects the in-process store;
//   - "postgres://" and "postgresql://" URLs select PostgreSQL through pgx;
//   - anything else is treated as a SQLite database file.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, fmt.Errorf("%w: empty dsn", ErrUnsupportedDSN)
	}

	if dsn == MemoryDSN {
		log.Info().Str("func", "NewStorages").Msg("using in-memory character store")
		return &Storages{CharacterRepository: NewMemoryCharacterRepository()}, nil
	}

	var (
		db  *DB
		err error
	)
	if isPostgresDSN(dsn) {
		db, err = NewConnectPostgres(ctx, cfg, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if cfg.ShouldMigrate() {
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			return nil, err
		}
		log.Debug().Str("func", "NewStorages").Str("dialect", db.Dialect()).Msg("migrations applied")
	}

	return newStoragesFromDB(db, log), nil
}

func newStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		CharacterRepository: NewCharacterRepository(db, log),
		db:                  db,
	}
}

// Close releases the underlying connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

func isPostgresDSN(dsn string) bool {
	lower := strings.ToLower(dsn)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}
