package storage

import (
	"context"
	"fmt"

	"github.com/pocket-ledger/backend/internal/config"
	"github.com/pocket-ledger/backend/internal/database"
	"github.com/rs/zerolog/log"
)

// CleanupFunc releases the resources of a backend.
type CleanupFunc func() error

// Open creates the backend selected by the configuration.
//
// The memory backend is seeded with the default data when c.Seed is set.
// The database backend is never seeded. Its schema is migrated when
// c.AutoMigrate is set, otherwise it must have been provisioned before.
func Open(ctx context.Context, c config.Storage) (Storage, CleanupFunc, error) {
	switch c.Backend {
	case config.BackendMemory:
		m := NewMemory()
		if c.Seed {
			err := Seed(ctx, m)
			if err != nil {
				return nil, nil, err
			}
		}

		log.Info().Str("backend", string(c.Backend)).Bool("seeded", c.Seed).Msg("Storage")
		return m, func() error { return nil }, nil

	case config.BackendDatabase:
		db, err := database.Connect(c.Dialect, c.DSN)
		if err != nil {
			return nil, nil, err
		}

		d := NewDatabase(db)
		if c.AutoMigrate {
			err = database.Migrate(db)
			if err != nil {
				_ = d.Close()
				return nil, nil, err
			}
		}

		log.Info().Str("backend", string(c.Backend)).Str("dialect", c.Dialect).Bool("migrated", c.AutoMigrate).Msg("Storage")
		return d, d.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported storage backend: %q", c.Backend)
	}
}
