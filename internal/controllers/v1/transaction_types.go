package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Amount      decimal.Decimal        `json:"amount" swaggertype:"string" example:"14.03" minimum:"0"`                      // The amount, always positive. The type sets the direction
	Description string                 `json:"description" example:"Weekly groceries" default:""`                            // A description of the transaction
	Type        models.TransactionType `json:"type" binding:"required,oneof=income expense" example:"expense"`               // Income adds to the account balance, expenses subtract from it
	CategoryID  uuid.UUID              `json:"categoryId" binding:"required" example:"0b2c7b39-9c4c-4b49-b4b0-4cf0b9dc0b57"` // ID of the category. Its type must match the type of the transaction
	AccountID   uuid.UUID              `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                     // ID of the account. Defaults to the default account
	Date        time.Time              `json:"date" example:"1815-12-10T18:43:00.271152Z"`                                   // Date of the transaction. Defaults to now
}

func (editable TransactionEditable) model() models.TransactionCreate {
	return models.TransactionCreate{
		Amount:      editable.Amount,
		Description: editable.Description,
		Type:        editable.Type,
		CategoryID:  editable.CategoryID,
		AccountID:   editable.AccountID,
		Date:        editable.Date,
	}
}

// TransactionPatch contains the fields to update. Fields that are not set are not changed.
type TransactionPatch struct {
	Amount      *decimal.Decimal        `json:"amount" swaggertype:"string" example:"14.03"`
	Description *string                 `json:"description" example:"Weekly groceries"`
	Type        *models.TransactionType `json:"type" binding:"omitempty,oneof=income expense" example:"expense"`
	CategoryID  *uuid.UUID              `json:"categoryId" example:"0b2c7b39-9c4c-4b49-b4b0-4cf0b9dc0b57"`
	AccountID   *uuid.UUID              `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`
	Date        *time.Time              `json:"date" example:"1815-12-10T18:43:00.271152Z"`
}

func (p TransactionPatch) model() models.TransactionPatch {
	return models.TransactionPatch{
		Amount:      p.Amount,
		Description: p.Description,
		Type:        p.Type,
		CategoryID:  p.CategoryID,
		AccountID:   p.AccountID,
		Date:        p.Date,
	}
}

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`   // The transaction itself
	Account  string `json:"account" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`    // The account the transaction is booked to
	Category string `json:"category" example:"https://example.com/api/v1/categories/0b2c7b39-9c4c-4b49-b4b0-4cf0b9dc0b57"` // The category of the transaction
}

// Transaction is the API representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	Amount      string                 `json:"amount" example:"14.03"` // The amount with exactly two decimal places
	Description string                 `json:"description" example:"Weekly groceries"`
	Type        models.TransactionType `json:"type" example:"expense"`
	CategoryID  uuid.UUID              `json:"categoryId" example:"0b2c7b39-9c4c-4b49-b4b0-4cf0b9dc0b57"`
	AccountID   uuid.UUID              `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`
	Date        time.Time              `json:"date" example:"1815-12-10T18:43:00.271152Z"`
	Links       TransactionLinks       `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := httputil.BaseURL(c)

	return Transaction{
		DefaultModel: model.DefaultModel,
		Amount:       models.FormatMoney(model.Amount),
		Description:  model.Description,
		Type:         model.Type,
		CategoryID:   model.CategoryID,
		AccountID:    model.AccountID,
		Date:         model.Date,
		Links: TransactionLinks{
			Self:     fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Account:  fmt.Sprintf("%s/v1/accounts/%s", url, model.AccountID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	AccountID   string                 `form:"account"`                                         // ID of the account
	CategoryID  string                 `form:"category"`                                        // ID of the category
	Type        models.TransactionType `form:"type" binding:"omitempty,oneof=income expense"`   // Type of the transaction
	Description string                 `form:"description"`                                     // Glob pattern for the description, e.g. "*coffee*"
	FromDate    time.Time              `form:"fromDate" time_format:"2006-01-02" time_utc:"1"`  // From this date
	UntilDate   time.Time              `form:"untilDate" time_format:"2006-01-02" time_utc:"1"` // Until this date, inclusive
	Offset      uint                   `form:"offset"`                                          // The offset of the first Transaction returned. Defaults to 0.
	Limit       int                    `form:"limit"`                                           // Maximum number of transactions to return. Defaults to 50, -1 for all.
}

// transactionFilter is a parsed TransactionQueryFilter.
type transactionFilter struct {
	accountID   uuid.UUID
	categoryID  uuid.UUID
	typ         models.TransactionType
	description string
	from        time.Time
	until       time.Time // exclusive
}

func (f TransactionQueryFilter) parse() (transactionFilter, error) {
	accountID, err := httputil.UUIDFromString(f.AccountID)
	if err != nil {
		return transactionFilter{}, err
	}

	categoryID, err := httputil.UUIDFromString(f.CategoryID)
	if err != nil {
		return transactionFilter{}, err
	}

	var until time.Time
	if !f.UntilDate.IsZero() {
		until = f.UntilDate.AddDate(0, 0, 1)
	}

	if !f.FromDate.IsZero() && !until.IsZero() && !until.After(f.FromDate) {
		return transactionFilter{}, errDateRange
	}

	// Without wildcards, the pattern matches anywhere in the description
	description := strings.ToLower(f.Description)
	if description != "" && !strings.Contains(description, glob.GLOB) {
		description = glob.GLOB + description + glob.GLOB
	}

	return transactionFilter{
		accountID:   accountID,
		categoryID:  categoryID,
		typ:         f.Type,
		description: description,
		from:        f.FromDate,
		until:       until,
	}, nil
}

func (f transactionFilter) matches(t models.Transaction) bool {
	if f.accountID != uuid.Nil && t.AccountID != f.accountID {
		return false
	}

	if f.categoryID != uuid.Nil && t.CategoryID != f.categoryID {
		return false
	}

	if f.typ != "" && t.Type != f.typ {
		return false
	}

	if f.description != "" && !glob.Glob(f.description, strings.ToLower(t.Description)) {
		return false
	}

	if !f.from.IsZero() && t.Date.Before(f.from) {
		return false
	}

	if !f.until.IsZero() && !t.Date.Before(f.until) {
		return false
	}

	return true
}
