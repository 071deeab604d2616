package storage

import (
	"context"
	"fmt"

	"github.com/pocket-ledger/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var defaultAccounts = []models.AccountCreate{
	{Name: "Main Checking", Type: models.AccountTypeChecking, Balance: decimal.RequireFromString("2500.00"), IsDefault: true},
	{Name: "Emergency Savings", Type: models.AccountTypeSavings, Balance: decimal.RequireFromString("10000.00")},
	{Name: "Credit Card", Type: models.AccountTypeCredit, Balance: decimal.RequireFromString("-450.00")},
	{Name: "Brokerage", Type: models.AccountTypeInvestment, Balance: decimal.RequireFromString("15000.00")},
}

var defaultCategories = []models.CategoryCreate{
	{Name: "Groceries", Type: models.TransactionTypeExpense, Color: "#22c55e", Icon: "shopping-cart", IsDefault: true},
	{Name: "Rent", Type: models.TransactionTypeExpense, Color: "#ef4444", Icon: "home", IsDefault: true},
	{Name: "Utilities", Type: models.TransactionTypeExpense, Color: "#f59e0b", Icon: "zap", IsDefault: true},
	{Name: "Transportation", Type: models.TransactionTypeExpense, Color: "#3b82f6", Icon: "car", IsDefault: true},
	{Name: "Dining Out", Type: models.TransactionTypeExpense, Color: "#ec4899", Icon: "utensils", IsDefault: true},
	{Name: "Entertainment", Type: models.TransactionTypeExpense, Color: "#8b5cf6", Icon: "film", IsDefault: true},
	{Name: "Salary", Type: models.TransactionTypeIncome, Color: "#10b981", Icon: "briefcase", IsDefault: true},
	{Name: "Freelance", Type: models.TransactionTypeIncome, Color: "#06b6d4", Icon: "laptop", IsDefault: true},
	{Name: "Investments", Type: models.TransactionTypeIncome, Color: "#84cc16", Icon: "trending-up", IsDefault: true},
}

var defaultGlossaryTerms = []models.GlossaryTermCreate{
	{Term: "APR", Definition: "Annual Percentage Rate. The yearly cost of borrowing money, including interest and fees."},
	{Term: "Asset", Definition: "Anything you own that has monetary value, such as cash, investments or property."},
	{Term: "Budget", Definition: "A plan for how you will spend and save your income over a period of time."},
	{Term: "Compound Interest", Definition: "Interest calculated on the initial amount and on the interest already earned."},
	{Term: "Credit Score", Definition: "A number that summarizes how reliably you have repaid borrowed money."},
	{Term: "Diversification", Definition: "Spreading investments across different assets to reduce risk."},
	{Term: "Emergency Fund", Definition: "Savings set aside to cover unexpected expenses or loss of income."},
	{Term: "Liability", Definition: "Money you owe to others, such as loans or credit card balances."},
	{Term: "Liquidity", Definition: "How quickly an asset can be turned into cash without losing value."},
	{Term: "Net Worth", Definition: "The value of everything you own minus everything you owe."},
}

// Seed creates the default accounts, categories and glossary terms.
//
// Records are created through s like any other data.
func Seed(ctx context.Context, s Storage) error {
	for _, create := range defaultAccounts {
		_, err := s.CreateAccount(ctx, create)
		if err != nil {
			return fmt.Errorf("could not seed account %q: %w", create.Name, err)
		}
	}

	for _, create := range defaultCategories {
		_, err := s.CreateCategory(ctx, create)
		if err != nil {
			return fmt.Errorf("could not seed category %q: %w", create.Name, err)
		}
	}

	for _, create := range defaultGlossaryTerms {
		_, err := s.CreateGlossaryTerm(ctx, create)
		if err != nil {
			return fmt.Errorf("could not seed glossary term %q: %w", create.Term, err)
		}
	}

	log.Info().
		Int("accounts", len(defaultAccounts)).
		Int("categories", len(defaultCategories)).
		Int("glossaryTerms", len(defaultGlossaryTerms)).
		Msg("Seeded default data")
	return nil
}
