package v1_test

import (
	"testing"

	"github.com/pocket-ledger/backend/internal/config"
	"github.com/pocket-ledger/backend/test"
)

func testDatabaseConfig(t *testing.T) config.Storage {
	return config.Storage{
		Backend:     config.BackendDatabase,
		Dialect:     "sqlite",
		DSN:         test.TmpFile(t),
		AutoMigrate: true,
	}
}
