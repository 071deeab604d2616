package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/database"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Database is a Storage backed by a relational database through gorm.
//
// Every transaction mutation runs in one database transaction together with
// the balance adjustment it causes.
type Database struct {
	db *gorm.DB
}

var (
	_ Storage = (*Database)(nil)
	_ Pinger  = (*Database)(nil)
)

// NewDatabase returns a Database using db. The schema must already exist,
// see database.Migrate and the migrations package.
func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

// Ping verifies that the database is reachable.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return backendError(err)
	}

	return backendError(sqlDB.PingContext(ctx))
}

// Close closes the underlying connection pool.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// backendError passes through errors about the request and marks everything
// else as a failure of the backend.
func backendError(err error) error {
	if err == nil ||
		errors.Is(err, models.ErrGeneral) ||
		errors.Is(err, models.ErrInvalid) ||
		errors.Is(err, models.ErrAccountInUse) {
		return err
	}

	log.Error().Msgf("%T: %v", err, err.Error())
	return fmt.Errorf("%w: %w", models.ErrGeneral, err)
}

// found converts the result of a single record query to the
// (record, ok, error) form of Storage.
func found[M any](record M, err error) (M, bool, error) {
	var zero M
	if errors.Is(err, models.ErrResourceNotFound) {
		return zero, false, nil
	}

	if err != nil {
		return zero, false, backendError(err)
	}

	return record, true, nil
}

// forUpdate locks the rows read by the query until the database transaction
// ends. sqlite serializes all writes on a single connection instead.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == database.DialectPostgres {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// first loads the record with the given ID inside a database transaction and
// locks it for the rest of that transaction.
func first[M any](tx *gorm.DB, id uuid.UUID) (M, bool, error) {
	var record M
	err := forUpdate(tx).First(&record, "id = ?", id).Error
	return found(record, err)
}

// saveAccount writes the account. The balance column is only written when the
// patch sets it so that adjustments made by transactions are never overwritten.
func saveAccount(tx *gorm.DB, account *models.Account, patch models.AccountPatch) *gorm.DB {
	if patch.Balance == nil {
		tx = tx.Omit("balance")
	}
	return tx.Save(account)
}

// gormLedger reads and writes balances inside a database transaction.
type gormLedger struct {
	tx *gorm.DB
}

func (l gormLedger) balance(_ context.Context, id uuid.UUID) (decimal.Decimal, bool, error) {
	account, ok, err := first[models.Account](l.tx, id)
	return account.Balance, ok, err
}

func (l gormLedger) setBalance(_ context.Context, id uuid.UUID, balance decimal.Decimal) error {
	return l.tx.Model(&models.Account{}).Where("id = ?", id).Update("balance", balance).Error
}

/*
 * Accounts
 */

func (d *Database) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	err := d.db.WithContext(ctx).Order("name ASC").Order("created_at ASC").Find(&accounts).Error
	if err != nil {
		return nil, backendError(err)
	}
	return accounts, nil
}

func (d *Database) GetAccount(ctx context.Context, id uuid.UUID) (models.Account, bool, error) {
	var account models.Account
	err := d.db.WithContext(ctx).First(&account, "id = ?", id).Error
	return found(account, err)
}

func (d *Database) CreateAccount(ctx context.Context, create models.AccountCreate) (models.Account, error) {
	account := models.Account{AccountCreate: create}
	account.Clean()
	err := account.Validate()
	if err != nil {
		return models.Account{}, err
	}

	err = d.db.WithContext(ctx).Create(&account).Error
	if err != nil {
		return models.Account{}, backendError(err)
	}
	return account, nil
}

func (d *Database) UpdateAccount(ctx context.Context, id uuid.UUID, patch models.AccountPatch) (account models.Account, ok bool, err error) {
	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account, ok, err = first[models.Account](tx, id)
		if err != nil || !ok {
			return err
		}

		account = account.Apply(patch)
		account.Clean()
		err = account.Validate()
		if err != nil {
			return err
		}

		return saveAccount(tx, &account, patch).Error
	})
	if err != nil {
		return models.Account{}, ok, backendError(err)
	}
	return account, ok, nil
}

func (d *Database) DeleteAccount(ctx context.Context, id uuid.UUID) (ok bool, err error) {
	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, ok, err = first[models.Account](tx, id)
		if err != nil || !ok {
			return err
		}

		var references int64
		err = tx.Model(&models.Transaction{}).Where("account_id = ?", id).Count(&references).Error
		if err != nil {
			return err
		}

		if references > 0 {
			ok = false
			return models.ErrAccountInUse
		}

		return tx.Delete(&models.Account{}, "id = ?", id).Error
	})
	if err != nil {
		return false, backendError(err)
	}
	return ok, nil
}

/*
 * Categories
 */

func (d *Database) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := d.db.WithContext(ctx).Order("name ASC").Order("created_at ASC").Find(&categories).Error
	if err != nil {
		return nil, backendError(err)
	}
	return categories, nil
}

func (d *Database) GetCategory(ctx context.Context, id uuid.UUID) (models.Category, bool, error) {
	var category models.Category
	err := d.db.WithContext(ctx).First(&category, "id = ?", id).Error
	return found(category, err)
}

func (d *Database) CreateCategory(ctx context.Context, create models.CategoryCreate) (models.Category, error) {
	category := models.Category{CategoryCreate: create}
	category.Clean()
	err := category.Validate()
	if err != nil {
		return models.Category{}, err
	}

	err = d.db.WithContext(ctx).Create(&category).Error
	if err != nil {
		return models.Category{}, backendError(err)
	}
	return category, nil
}

func (d *Database) UpdateCategory(ctx context.Context, id uuid.UUID, patch models.CategoryPatch) (category models.Category, ok bool, err error) {
	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&category, "id = ?", id).Error
		category, ok, err = found(category, err)
		if err != nil || !ok {
			return err
		}

		category = category.Apply(patch)
		category.Clean()
		err = category.Validate()
		if err != nil {
			return err
		}

		return tx.Save(&category).Error
	})
	if err != nil {
		return models.Category{}, ok, backendError(err)
	}
	return category, ok, nil
}

func (d *Database) DeleteCategory(ctx context.Context, id uuid.UUID) (bool, error) {
	result := d.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return false, backendError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

/*
 * Transactions
 */

func (d *Database) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := d.db.WithContext(ctx).Order("date DESC").Order("created_at DESC").Find(&transactions).Error
	if err != nil {
		return nil, backendError(err)
	}
	return transactions, nil
}

func (d *Database) GetTransaction(ctx context.Context, id uuid.UUID) (models.Transaction, bool, error) {
	var transaction models.Transaction
	err := d.db.WithContext(ctx).First(&transaction, "id = ?", id).Error
	return found(transaction, err)
}

func (d *Database) CreateTransaction(ctx context.Context, create models.TransactionCreate) (models.Transaction, error) {
	transaction := models.Transaction{TransactionCreate: create}
	transaction.Clean()
	err := transaction.Validate()
	if err != nil {
		return models.Transaction{}, err
	}

	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&transaction).Error
		if err != nil {
			return err
		}

		return apply(ctx, gormLedger{tx: tx}, transaction)
	})
	if err != nil {
		return models.Transaction{}, backendError(err)
	}
	return transaction, nil
}

func (d *Database) UpdateTransaction(ctx context.Context, id uuid.UUID, patch models.TransactionPatch) (transaction models.Transaction, ok bool, err error) {
	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old models.Transaction
		old, ok, err = first[models.Transaction](tx, id)
		if err != nil || !ok {
			return err
		}

		transaction = old.Apply(patch)
		transaction.Clean()
		err = transaction.Validate()
		if err != nil {
			return err
		}

		l := gormLedger{tx: tx}
		err = revert(ctx, l, old)
		if err != nil {
			return err
		}

		err = tx.Save(&transaction).Error
		if err != nil {
			return err
		}

		return apply(ctx, l, transaction)
	})
	if err != nil {
		return models.Transaction{}, ok, backendError(err)
	}
	return transaction, ok, nil
}

func (d *Database) DeleteTransaction(ctx context.Context, id uuid.UUID) (ok bool, err error) {
	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var transaction models.Transaction
		transaction, ok, err = first[models.Transaction](tx, id)
		if err != nil || !ok {
			return err
		}

		err = revert(ctx, gormLedger{tx: tx}, transaction)
		if err != nil {
			return err
		}

		return tx.Delete(&models.Transaction{}, "id = ?", id).Error
	})
	if err != nil {
		return ok, backendError(err)
	}
	return ok, nil
}

/*
 * Glossary terms
 */

func (d *Database) ListGlossaryTerms(ctx context.Context) ([]models.GlossaryTerm, error) {
	var terms []models.GlossaryTerm
	err := d.db.WithContext(ctx).Order("term ASC").Find(&terms).Error
	if err != nil {
		return nil, backendError(err)
	}
	return terms, nil
}

func (d *Database) GetGlossaryTerm(ctx context.Context, id uuid.UUID) (models.GlossaryTerm, bool, error) {
	var term models.GlossaryTerm
	err := d.db.WithContext(ctx).First(&term, "id = ?", id).Error
	return found(term, err)
}

func (d *Database) CreateGlossaryTerm(ctx context.Context, create models.GlossaryTermCreate) (models.GlossaryTerm, error) {
	term := models.GlossaryTerm{GlossaryTermCreate: create}
	term.Clean()
	err := term.Validate()
	if err != nil {
		return models.GlossaryTerm{}, err
	}

	err = d.db.WithContext(ctx).Create(&term).Error
	if err != nil {
		return models.GlossaryTerm{}, backendError(err)
	}
	return term, nil
}

func (d *Database) UpdateGlossaryTerm(ctx context.Context, id uuid.UUID, patch models.GlossaryTermPatch) (term models.GlossaryTerm, ok bool, err error) {
	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&term, "id = ?", id).Error
		term, ok, err = found(term, err)
		if err != nil || !ok {
			return err
		}

		term = term.Apply(patch)
		term.Clean()
		err = term.Validate()
		if err != nil {
			return err
		}

		return tx.Save(&term).Error
	})
	if err != nil {
		return models.GlossaryTerm{}, ok, backendError(err)
	}
	return term, ok, nil
}

func (d *Database) DeleteGlossaryTerm(ctx context.Context, id uuid.UUID) (bool, error) {
	result := d.db.WithContext(ctx).Delete(&models.GlossaryTerm{}, "id = ?", id)
	if result.Error != nil {
		return false, backendError(result.Error)
	}
	return result.RowsAffected > 0, nil
}
