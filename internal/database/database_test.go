package database_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/database"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func connect(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.DialectSQLite, test.TmpFile(t))
	require.Nil(t, err)
	require.Nil(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func TestConnectUnknownDialect(t *testing.T) {
	_, err := database.Connect("mysql", "ledger")
	assert.ErrorIs(t, err, database.ErrUnknownDialect)
}

func TestConnectCreatesDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "ledger.db")

	db, err := database.Connect(database.DialectSQLite, path+"?_pragma=busy_timeout(5000)")
	require.Nil(t, err)
	require.Nil(t, database.Migrate(db))
	assert.FileExists(t, path)
}

func TestConnectInMemory(t *testing.T) {
	db, err := database.Connect(database.DialectSQLite, ":memory:")
	require.Nil(t, err)
	require.Nil(t, database.Migrate(db))

	// The single connection keeps the in-memory database alive
	require.Nil(t, db.Create(&models.GlossaryTerm{GlossaryTermCreate: models.GlossaryTermCreate{Term: "APR", Definition: "Annual Percentage Rate"}}).Error)

	var count int64
	require.Nil(t, db.Model(&models.GlossaryTerm{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMigrate(t *testing.T) {
	db := connect(t)

	for _, table := range []string{"accounts", "categories", "transactions", "glossary_terms"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s is missing", table)
	}

	// Migrating twice is a no-op
	assert.Nil(t, database.Migrate(db))
}

func TestNotFound(t *testing.T) {
	db := connect(t)

	var account models.Account
	err := db.First(&account, "id = ?", uuid.New()).Error
	assert.ErrorIs(t, err, models.ErrResourceNotFound)
	assert.Equal(t, "there is no account matching your query", err.Error())

	var term models.GlossaryTerm
	err = db.First(&term, "id = ?", uuid.New()).Error
	assert.Equal(t, "there is no glossary term matching your query", err.Error())
}

func TestClosedDatabase(t *testing.T) {
	db := connect(t)

	sqlDB, err := db.DB()
	require.Nil(t, err)
	require.Nil(t, sqlDB.Close())

	err = db.Create(&models.Category{CategoryCreate: models.CategoryCreate{Name: "Rent", Type: models.TransactionTypeExpense}}).Error
	assert.ErrorIs(t, err, models.ErrGeneral)

	var categories []models.Category
	err = db.Find(&categories).Error
	assert.ErrorIs(t, err, models.ErrGeneral)
}

func TestIsBackendError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errors.New("sql: database is closed"), true},
		{fmt.Errorf("%w: already marked", models.ErrGeneral), false},
		{models.ErrNameEmpty, false},
		{models.NotFound("account"), false},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, database.IsBackendError(tt.err))
		})
	}
}
