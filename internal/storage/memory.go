package storage

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Memory is a Storage that keeps all data in process memory.
//
// A single lock guards all records. Transaction mutations hold it for the
// whole balance adjustment, so concurrent callers cannot interleave their
// account writes.
type Memory struct {
	mu            sync.RWMutex
	accounts      map[uuid.UUID]models.Account
	categories    map[uuid.UUID]models.Category
	transactions  map[uuid.UUID]models.Transaction
	glossaryTerms map[uuid.UUID]models.GlossaryTerm
}

var _ Storage = (*Memory)(nil)

// NewMemory returns an empty Memory. Use Seed to add the default data.
func NewMemory() *Memory {
	return &Memory{
		accounts:      make(map[uuid.UUID]models.Account),
		categories:    make(map[uuid.UUID]models.Category),
		transactions:  make(map[uuid.UUID]models.Transaction),
		glossaryTerms: make(map[uuid.UUID]models.GlossaryTerm),
	}
}

// memoryLedger stages balance changes until commit is called.
// This makes a failing adjustment leave all accounts untouched.
type memoryLedger struct {
	accounts map[uuid.UUID]models.Account
	staged   map[uuid.UUID]decimal.Decimal
}

// ledger must be called with the write lock held.
func (m *Memory) ledger() *memoryLedger {
	return &memoryLedger{
		accounts: m.accounts,
		staged:   make(map[uuid.UUID]decimal.Decimal),
	}
}

func (l *memoryLedger) balance(_ context.Context, id uuid.UUID) (decimal.Decimal, bool, error) {
	if balance, ok := l.staged[id]; ok {
		return balance, true, nil
	}

	account, ok := l.accounts[id]
	return account.Balance, ok, nil
}

func (l *memoryLedger) setBalance(_ context.Context, id uuid.UUID, balance decimal.Decimal) error {
	l.staged[id] = balance
	return nil
}

func (l *memoryLedger) commit() {
	now := time.Now().In(time.UTC)
	for id, balance := range l.staged {
		account := l.accounts[id]
		account.Balance = balance
		account.UpdatedAt = now
		l.accounts[id] = account
	}
}

// sorted returns the values of the map sorted with compare.
func sorted[M any](records map[uuid.UUID]M, compare func(a, b M) int) []M {
	list := slices.Collect(maps.Values(records))
	slices.SortStableFunc(list, compare)
	return list
}

func touch(m *models.DefaultModel) {
	m.UpdatedAt = time.Now().In(time.UTC)
}

/*
 * Accounts
 */

func (m *Memory) ListAccounts(_ context.Context) ([]models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return sorted(m.accounts, func(a, b models.Account) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), a.CreatedAt.Compare(b.CreatedAt))
	}), nil
}

func (m *Memory) GetAccount(_ context.Context, id uuid.UUID) (models.Account, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.accounts[id]
	return account, ok, nil
}

func (m *Memory) CreateAccount(_ context.Context, create models.AccountCreate) (models.Account, error) {
	account := models.Account{
		DefaultModel:  models.NewDefaultModel(),
		AccountCreate: create,
	}

	account.Clean()
	err := account.Validate()
	if err != nil {
		return models.Account{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.accounts[account.ID] = account
	return account, nil
}

func (m *Memory) UpdateAccount(_ context.Context, id uuid.UUID, patch models.AccountPatch) (models.Account, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[id]
	if !ok {
		return models.Account{}, false, nil
	}

	account = account.Apply(patch)
	account.Clean()
	err := account.Validate()
	if err != nil {
		return models.Account{}, true, err
	}

	touch(&account.DefaultModel)
	m.accounts[id] = account
	return account, true, nil
}

func (m *Memory) DeleteAccount(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[id]; !ok {
		return false, nil
	}

	for _, t := range m.transactions {
		if t.AccountID == id {
			return false, models.ErrAccountInUse
		}
	}

	delete(m.accounts, id)
	return true, nil
}

/*
 * Categories
 */

func (m *Memory) ListCategories(_ context.Context) ([]models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return sorted(m.categories, func(a, b models.Category) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), a.CreatedAt.Compare(b.CreatedAt))
	}), nil
}

func (m *Memory) GetCategory(_ context.Context, id uuid.UUID) (models.Category, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	category, ok := m.categories[id]
	return category, ok, nil
}

func (m *Memory) CreateCategory(_ context.Context, create models.CategoryCreate) (models.Category, error) {
	category := models.Category{
		DefaultModel:   models.NewDefaultModel(),
		CategoryCreate: create,
	}

	category.Clean()
	err := category.Validate()
	if err != nil {
		return models.Category{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.categories[category.ID] = category
	return category, nil
}

func (m *Memory) UpdateCategory(_ context.Context, id uuid.UUID, patch models.CategoryPatch) (models.Category, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	category, ok := m.categories[id]
	if !ok {
		return models.Category{}, false, nil
	}

	category = category.Apply(patch)
	category.Clean()
	err := category.Validate()
	if err != nil {
		return models.Category{}, true, err
	}

	touch(&category.DefaultModel)
	m.categories[id] = category
	return category, true, nil
}

func (m *Memory) DeleteCategory(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.categories[id]; !ok {
		return false, nil
	}

	delete(m.categories, id)
	return true, nil
}

/*
 * Transactions
 */

func (m *Memory) ListTransactions(_ context.Context) ([]models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return sorted(m.transactions, func(a, b models.Transaction) int {
		return cmp.Or(b.Date.Compare(a.Date), b.CreatedAt.Compare(a.CreatedAt))
	}), nil
}

func (m *Memory) GetTransaction(_ context.Context, id uuid.UUID) (models.Transaction, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	transaction, ok := m.transactions[id]
	return transaction, ok, nil
}

func (m *Memory) CreateTransaction(ctx context.Context, create models.TransactionCreate) (models.Transaction, error) {
	transaction := models.Transaction{
		DefaultModel:      models.NewDefaultModel(),
		TransactionCreate: create,
	}

	transaction.Clean()
	err := transaction.Validate()
	if err != nil {
		return models.Transaction{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	l := m.ledger()
	err = apply(ctx, l, transaction)
	if err != nil {
		return models.Transaction{}, err
	}

	m.transactions[transaction.ID] = transaction
	l.commit()

	return transaction, nil
}

func (m *Memory) UpdateTransaction(ctx context.Context, id uuid.UUID, patch models.TransactionPatch) (models.Transaction, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	old, ok := m.transactions[id]
	if !ok {
		return models.Transaction{}, false, nil
	}

	transaction := old.Apply(patch)
	transaction.Clean()
	err := transaction.Validate()
	if err != nil {
		return models.Transaction{}, true, err
	}

	l := m.ledger()
	err = revert(ctx, l, old)
	if err != nil {
		return models.Transaction{}, true, err
	}

	touch(&transaction.DefaultModel)

	err = apply(ctx, l, transaction)
	if err != nil {
		return models.Transaction{}, true, err
	}

	m.transactions[id] = transaction
	l.commit()

	return transaction, true, nil
}

func (m *Memory) DeleteTransaction(ctx context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	transaction, ok := m.transactions[id]
	if !ok {
		return false, nil
	}

	l := m.ledger()
	err := revert(ctx, l, transaction)
	if err != nil {
		return true, err
	}

	delete(m.transactions, id)
	l.commit()

	return true, nil
}

/*
 * Glossary terms
 */

func (m *Memory) ListGlossaryTerms(_ context.Context) ([]models.GlossaryTerm, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return sorted(m.glossaryTerms, func(a, b models.GlossaryTerm) int {
		return strings.Compare(a.Term, b.Term)
	}), nil
}

func (m *Memory) GetGlossaryTerm(_ context.Context, id uuid.UUID) (models.GlossaryTerm, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	term, ok := m.glossaryTerms[id]
	return term, ok, nil
}

func (m *Memory) CreateGlossaryTerm(_ context.Context, create models.GlossaryTermCreate) (models.GlossaryTerm, error) {
	term := models.GlossaryTerm{
		DefaultModel:       models.NewDefaultModel(),
		GlossaryTermCreate: create,
	}

	term.Clean()
	err := term.Validate()
	if err != nil {
		return models.GlossaryTerm{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.glossaryTerms[term.ID] = term
	return term, nil
}

func (m *Memory) UpdateGlossaryTerm(_ context.Context, id uuid.UUID, patch models.GlossaryTermPatch) (models.GlossaryTerm, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	term, ok := m.glossaryTerms[id]
	if !ok {
		return models.GlossaryTerm{}, false, nil
	}

	term = term.Apply(patch)
	term.Clean()
	err := term.Validate()
	if err != nil {
		return models.GlossaryTerm{}, true, err
	}

	touch(&term.DefaultModel)
	m.glossaryTerms[id] = term
	return term, true, nil
}

func (m *Memory) DeleteGlossaryTerm(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.glossaryTerms[id]; !ok {
		return false, nil
	}

	delete(m.glossaryTerms, id)
	return true, nil
}
