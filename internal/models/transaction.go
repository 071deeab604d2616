package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents money coming into or going out of an account.
//
// Amount is always a magnitude, the direction is carried by Type.
type Transaction struct {
	DefaultModel
	TransactionCreate
}

type TransactionCreate struct {
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2)" example:"14.03"`
	Description string          `json:"description" example:"Weekly groceries"`
	Type        TransactionType `json:"type" example:"expense"`
	CategoryID  uuid.UUID       `json:"categoryId" gorm:"type:uuid;index" example:"0b2c7b39-9c4c-4b49-b4b0-4cf0b9dc0b57"`
	AccountID   uuid.UUID       `json:"accountId" gorm:"type:uuid;index" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`
	Date        time.Time       `json:"date" gorm:"index" example:"1815-12-10T18:43:00.271152Z"` // Time of day is only used for sorting
}

// TransactionPatch holds the fields to change on a transaction. Nil fields are left as they are.
type TransactionPatch struct {
	Amount      *decimal.Decimal
	Description *string
	Type        *TransactionType
	CategoryID  *uuid.UUID
	AccountID   *uuid.UUID
	Date        *time.Time
}

func (t Transaction) Apply(p TransactionPatch) Transaction {
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.CategoryID != nil {
		t.CategoryID = *p.CategoryID
	}
	if p.AccountID != nil {
		t.AccountID = *p.AccountID
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	return t
}

// Delta is the signed effect of the transaction on its account's balance.
// Income adds to the balance, expenses subtract from it.
func (t Transaction) Delta() decimal.Decimal {
	if t.Type == TransactionTypeIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Clean
//   - trims whitespace from the description
//   - rounds the amount
//   - sets the date to now if it is not set and forces it to UTC
func (t *Transaction) Clean() {
	t.Description = cleanText(t.Description)
	t.Amount = RoundMoney(t.Amount)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if t.AccountID == uuid.Nil {
		return ErrAccountIDMissing
	}

	if t.CategoryID == uuid.Nil {
		return ErrCategoryIDMissing
	}

	return CheckMoney(t.Amount)
}

func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Clean()
	return nil
}

// AfterFind enforces UTC for the date and the scale for the amount.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	t.Amount = RoundMoney(t.Amount)
	return
}
