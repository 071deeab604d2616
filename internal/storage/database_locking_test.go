package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/database"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRun returns a postgres connection that only builds statements and the
// list the SQL of every query is recorded in.
func dryRun(t *testing.T) (*gorm.DB, *[]string) {
	db, err := gorm.Open(postgres.Open("host=localhost user=ledger dbname=ledger sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.Nil(t, err)

	var statements []string
	err = db.Callback().Query().After("gorm:query").Register("ledger:record", func(tx *gorm.DB) {
		statements = append(statements, tx.Statement.SQL.String())
	})
	require.Nil(t, err)

	return db, &statements
}

func TestForUpdatePostgres(t *testing.T) {
	db, statements := dryRun(t)
	id := uuid.New()

	_, _, err := gormLedger{tx: db}.balance(context.Background(), id)
	require.Nil(t, err)

	_, _, err = first[models.Transaction](db, id)
	require.Nil(t, err)

	require.Len(t, *statements, 2)
	assert.Contains(t, (*statements)[0], `FROM "accounts"`)
	assert.Contains(t, (*statements)[1], `FROM "transactions"`)
	for _, statement := range *statements {
		assert.Contains(t, statement, "FOR UPDATE")
	}
}

func TestForUpdateSQLite(t *testing.T) {
	db, err := database.Connect(database.DialectSQLite, ":memory:")
	require.Nil(t, err)

	statement := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var transaction models.Transaction
		return forUpdate(tx).First(&transaction, "id = ?", uuid.New())
	})

	assert.Contains(t, statement, "transactions")
	assert.NotContains(t, statement, "FOR UPDATE")
}

func TestSaveAccountBalanceColumn(t *testing.T) {
	db, _ := dryRun(t)

	account := models.Account{AccountCreate: models.AccountCreate{Name: "Checking", Type: models.AccountTypeChecking}}
	account.ID = uuid.New()

	name := "Main"
	statement := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return saveAccount(tx, &account, models.AccountPatch{Name: &name})
	})
	assert.Contains(t, statement, `"name"=`)
	assert.NotContains(t, statement, `"balance"`, "balance must not be written when the patch does not set it")

	balance := decimal.NewFromInt(10)
	statement = db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return saveAccount(tx, &account, models.AccountPatch{Balance: &balance})
	})
	assert.Contains(t, statement, `"balance"=`)
}
