package models_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionDelta(t *testing.T) {
	income := models.Transaction{TransactionCreate: models.TransactionCreate{Amount: decimal.RequireFromString("25.00"), Type: models.TransactionTypeIncome}}
	expense := models.Transaction{TransactionCreate: models.TransactionCreate{Amount: decimal.RequireFromString("25.00"), Type: models.TransactionTypeExpense}}

	assert.Equal(t, "25.00", models.FormatMoney(income.Delta()))
	assert.Equal(t, "-25.00", models.FormatMoney(expense.Delta()))
	assert.True(t, income.Delta().Add(expense.Delta()).IsZero())
}

func TestTransactionApply(t *testing.T) {
	account := uuid.New()
	original := models.Transaction{TransactionCreate: models.TransactionCreate{
		Amount:      decimal.RequireFromString("10.00"),
		Description: "Coffee",
		Type:        models.TransactionTypeExpense,
		AccountID:   uuid.New(),
	}}

	amount := decimal.RequireFromString("12.50")
	patched := original.Apply(models.TransactionPatch{Amount: &amount, AccountID: &account})

	assert.Equal(t, "12.50", models.FormatMoney(patched.Amount))
	assert.Equal(t, account, patched.AccountID)
	assert.Equal(t, "Coffee", patched.Description)
	assert.Equal(t, models.TransactionTypeExpense, patched.Type)
	assert.Equal(t, "10.00", models.FormatMoney(original.Amount), "Apply modified the original")
}

func TestTransactionClean(t *testing.T) {
	berlin := time.FixedZone("CET", 60*60)
	date := time.Date(2024, 3, 1, 9, 0, 0, 0, berlin)

	transaction := models.Transaction{TransactionCreate: models.TransactionCreate{
		Amount:      decimal.RequireFromString("3.456"),
		Description: "  Bakery \n",
		Date:        date,
	}}
	transaction.Clean()

	assert.Equal(t, "3.46", models.FormatMoney(transaction.Amount))
	assert.Equal(t, "Bakery", transaction.Description)
	assert.Equal(t, time.UTC, transaction.Date.Location())
	assert.True(t, date.Equal(transaction.Date))

	transaction.Date = time.Time{}
	transaction.Clean()
	assert.WithinDuration(t, time.Now(), transaction.Date, time.Minute)
}

func TestTransactionValidate(t *testing.T) {
	valid := models.TransactionCreate{
		Amount:     decimal.RequireFromString("1.00"),
		Type:       models.TransactionTypeIncome,
		CategoryID: uuid.New(),
		AccountID:  uuid.New(),
	}

	tests := []struct {
		name   string
		modify func(*models.TransactionCreate)
		err    error
	}{
		{"Valid", func(*models.TransactionCreate) {}, nil},
		{"Type", func(c *models.TransactionCreate) { c.Type = "transfer" }, models.ErrTransactionTypeInvalid},
		{"Account", func(c *models.TransactionCreate) { c.AccountID = uuid.Nil }, models.ErrAccountIDMissing},
		{"Category", func(c *models.TransactionCreate) { c.CategoryID = uuid.Nil }, models.ErrCategoryIDMissing},
		{"Amount", func(c *models.TransactionCreate) { c.Amount = decimal.RequireFromString("12345678901") }, models.ErrMoneyOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			create := valid
			tt.modify(&create)

			err := models.Transaction{TransactionCreate: create}.Validate()
			if tt.err == nil {
				assert.Nil(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, models.ErrInvalid)
		})
	}
}
