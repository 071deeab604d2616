package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account represents an account money is held in, e.g. a bank account.
//
// Balance is a cached value. Apart from direct edits, it is only changed by
// the balance adjustment that runs with every transaction mutation.
type Account struct {
	DefaultModel
	AccountCreate
}

type AccountCreate struct {
	Name      string          `json:"name" example:"Main Checking"`
	Type      AccountType     `json:"type" example:"checking"`
	Balance   decimal.Decimal `json:"balance" gorm:"type:decimal(12,2)" example:"2735.17"`
	IsDefault bool            `json:"isDefault" example:"true"` // Used for new transactions that do not specify an account
}

// AccountPatch holds the fields to change on an account. Nil fields are left as they are.
type AccountPatch struct {
	Name      *string
	Type      *AccountType
	Balance   *decimal.Decimal
	IsDefault *bool
}

// Apply returns a copy of the account with the patch merged in.
func (a Account) Apply(p AccountPatch) Account {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Balance != nil {
		a.Balance = *p.Balance
	}
	if p.IsDefault != nil {
		a.IsDefault = *p.IsDefault
	}
	return a
}

// Clean trims whitespace and rounds the balance.
func (a *Account) Clean() {
	a.Name = cleanText(a.Name)
	a.Balance = RoundMoney(a.Balance)
}

func (a Account) Validate() error {
	if a.Name == "" {
		return ErrNameEmpty
	}

	if !a.Type.Valid() {
		return ErrAccountTypeInvalid
	}

	return CheckMoney(a.Balance)
}

func (a *Account) BeforeSave(_ *gorm.DB) (err error) {
	a.Clean()
	return nil
}

func (a *Account) AfterFind(tx *gorm.DB) (err error) {
	err = a.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	a.Balance = RoundMoney(a.Balance)
	return nil
}
