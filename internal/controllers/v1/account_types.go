package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

type AccountEditable struct {
	Name      string             `json:"name" binding:"required" example:"Main Checking"`                                     // Name of the account
	Type      models.AccountType `json:"type" binding:"required,oneof=checking savings credit investment" example:"checking"` // Kind of the account
	Balance   decimal.Decimal    `json:"balance" swaggertype:"string" example:"2500.00"`                                      // Initial balance. Changes with every transaction afterwards
	IsDefault bool               `json:"isDefault" example:"true" default:"false"`                                            // Transactions without an account are booked to the default account
}

func (editable AccountEditable) model() models.AccountCreate {
	return models.AccountCreate{
		Name:      editable.Name,
		Type:      editable.Type,
		Balance:   editable.Balance,
		IsDefault: editable.IsDefault,
	}
}

// AccountPatch contains the fields to update. Fields that are not set are not changed.
type AccountPatch struct {
	Name      *string             `json:"name" binding:"omitempty,min=1" example:"Main Checking"`
	Type      *models.AccountType `json:"type" binding:"omitempty,oneof=checking savings credit investment" example:"savings"`
	Balance   *decimal.Decimal    `json:"balance" swaggertype:"string" example:"2735.17"`
	IsDefault *bool               `json:"isDefault" example:"false"`
}

func (p AccountPatch) model() models.AccountPatch {
	return models.AccountPatch{
		Name:      p.Name,
		Type:      p.Type,
		Balance:   p.Balance,
		IsDefault: p.IsDefault,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                     // The account itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions booked to the account
}

// Account is the API representation of an Account.
type Account struct {
	models.DefaultModel
	Name      string             `json:"name" example:"Main Checking"`
	Type      models.AccountType `json:"type" example:"checking"`
	Balance   string             `json:"balance" example:"2735.17"` // Current balance with exactly two decimal places
	IsDefault bool               `json:"isDefault" example:"true"`
	Links     AccountLinks       `json:"links"`
}

func newAccount(c *gin.Context, model models.Account) Account {
	url := httputil.BaseURL(c)

	return Account{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Type:         model.Type,
		Balance:      models.FormatMoney(model.Balance),
		IsDefault:    model.IsDefault,
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
		},
	}
}

type AccountListResponse struct {
	Data  []Account `json:"data"`                                                          // List of accounts
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                          // Data for the account
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
