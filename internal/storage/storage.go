// Package storage persists accounts, categories, transactions and glossary
// terms and keeps account balances consistent with the transactions that
// reference them.
//
// Two backends implement Storage: Memory keeps everything in process memory,
// Database persists to sqlite or postgres with gorm. Both run the same
// balance adjustment for every transaction mutation.
package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/models"
)

// Storage is the contract implemented by all backends.
//
// Get, Update and Delete report a missing record with ok == false and a nil
// error. Errors are reserved for invalid input (wrapping models.ErrInvalid),
// policy violations and backend failures (wrapping models.ErrGeneral).
//
// Create, Update and Delete of transactions adjust the balance of the
// referenced account in the same atomic unit as the transaction write.
// If the account does not exist, the adjustment is skipped.
type Storage interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (models.Account, bool, error)
	CreateAccount(ctx context.Context, create models.AccountCreate) (models.Account, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, patch models.AccountPatch) (models.Account, bool, error)
	// DeleteAccount fails with models.ErrAccountInUse while transactions reference the account.
	DeleteAccount(ctx context.Context, id uuid.UUID) (bool, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (models.Category, bool, error)
	CreateCategory(ctx context.Context, create models.CategoryCreate) (models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, patch models.CategoryPatch) (models.Category, bool, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) (bool, error)

	// ListTransactions returns transactions with the latest date first.
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (models.Transaction, bool, error)
	CreateTransaction(ctx context.Context, create models.TransactionCreate) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, id uuid.UUID, patch models.TransactionPatch) (models.Transaction, bool, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) (bool, error)

	// ListGlossaryTerms returns glossary terms sorted by term.
	ListGlossaryTerms(ctx context.Context) ([]models.GlossaryTerm, error)
	GetGlossaryTerm(ctx context.Context, id uuid.UUID) (models.GlossaryTerm, bool, error)
	CreateGlossaryTerm(ctx context.Context, create models.GlossaryTermCreate) (models.GlossaryTerm, error)
	UpdateGlossaryTerm(ctx context.Context, id uuid.UUID, patch models.GlossaryTermPatch) (models.GlossaryTerm, bool, error)
	DeleteGlossaryTerm(ctx context.Context, id uuid.UUID) (bool, error)
}

// Pinger is implemented by backends that depend on an external system.
type Pinger interface {
	Ping(ctx context.Context) error
}
