package models

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// AccountType is the kind of an account.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeInvestment AccountType = "investment"
)

var accountTypes = []AccountType{AccountTypeChecking, AccountTypeSavings, AccountTypeCredit, AccountTypeInvestment}

func (t AccountType) Valid() bool {
	return slices.Contains(accountTypes, t)
}

// TransactionType is the direction of money for a transaction. Categories
// use the same type to declare which transactions they classify.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// cleanText trims surrounding whitespace and normalizes to NFC so that
// visually identical names compare and sort the same.
func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
