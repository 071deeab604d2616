package v1_test

import (
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/pocket-ledger/backend/internal/controllers/v1"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/test"
)

func (suite *ControllerSuite) TestAccountCreate() {
	account := suite.createAccount(map[string]any{"name": "Main Checking", "type": "checking", "balance": "2500", "isDefault": true})

	suite.Assert().Equal("Main Checking", account.Name)
	suite.Assert().Equal(models.AccountTypeChecking, account.Type)
	suite.Assert().Equal("2500.00", account.Balance)
	suite.Assert().True(account.IsDefault)
	suite.Assert().Equal(baseURL+"/v1/accounts/"+account.ID.String(), account.Links.Self)
	suite.Assert().Equal(baseURL+"/v1/transactions?account="+account.ID.String(), account.Links.Transactions)

	// Numbers are accepted as well as strings
	account = suite.createAccount(map[string]any{"name": "Credit Card", "type": "credit", "balance": -450.5})
	suite.Assert().Equal("-450.50", account.Balance)
}

func (suite *ControllerSuite) TestAccountCreateInvalid() {
	tests := []struct {
		name   string
		body   any
		status int
		msg    string
	}{
		{"No body", nil, http.StatusBadRequest, "the request body must not be empty"},
		{"Broken JSON", `{"name": "Cash"`, http.StatusBadRequest, "un-parseable data"},
		{"No name", map[string]any{"type": "checking"}, http.StatusBadRequest, "name must be set"},
		{"Blank name", map[string]any{"name": "   ", "type": "checking"}, http.StatusBadRequest, "the name must not be empty"},
		{"Unknown type", map[string]any{"name": "Cash", "type": "wallet"}, http.StatusBadRequest, "type must be one of checking, savings, credit, investment"},
		{"Balance too large", map[string]any{"name": "Cash", "type": "savings", "balance": "12345678901.00"}, http.StatusBadRequest, "at most 10 digits"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, "/v1/accounts", tt.body)
			suite.assertError(r, tt.status, tt.msg)
		})
	}
}

func (suite *ControllerSuite) TestAccountList() {
	r := suite.request(http.MethodGet, "/v1/accounts", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"data": [], "error": null}`, r.Body.String())

	for _, name := range []string{"Savings", "Brokerage", "Checking"} {
		suite.createAccount(map[string]any{"name": name, "type": "savings"})
	}

	r = suite.request(http.MethodGet, "/v1/accounts", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal("Brokerage", response.Data[0].Name)
	suite.Assert().Equal("Savings", response.Data[2].Name)
}

func (suite *ControllerSuite) TestAccountGet() {
	account := suite.createAccount(map[string]any{"name": "Cash", "type": "checking", "balance": "10.5"})

	got := suite.getAccount(account.ID)
	suite.Assert().Equal(account, got)

	r := suite.request(http.MethodGet, "/v1/accounts/"+uuid.NewString(), nil)
	suite.assertError(r, http.StatusNotFound, "there is no account matching your query")

	r = suite.request(http.MethodGet, "/v1/accounts/Cash", nil)
	suite.assertError(r, http.StatusBadRequest, "the specified resource ID is not a valid UUID")
}

func (suite *ControllerSuite) TestAccountUpdate() {
	account := suite.createAccount(map[string]any{"name": "Cash", "type": "checking", "balance": "10"})

	r := suite.request(http.MethodPatch, "/v1/accounts/"+account.ID.String(), map[string]any{"name": "Wallet", "balance": "12.34"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Wallet", response.Data.Name)
	suite.Assert().Equal("12.34", response.Data.Balance)
	suite.Assert().Equal(models.AccountTypeChecking, response.Data.Type)

	r = suite.request(http.MethodPatch, "/v1/accounts/"+account.ID.String(), map[string]any{"type": "loan"})
	suite.assertError(r, http.StatusBadRequest, "type must be one of")

	r = suite.request(http.MethodPatch, "/v1/accounts/"+account.ID.String(), map[string]any{"name": ""})
	suite.assertError(r, http.StatusBadRequest, "name must be at least 1 characters long")

	r = suite.request(http.MethodPatch, "/v1/accounts/"+uuid.NewString(), map[string]any{"name": "Wallet"})
	suite.assertError(r, http.StatusNotFound, "there is no account matching your query")
}

func (suite *ControllerSuite) TestAccountDelete() {
	account := suite.createAccount(map[string]any{"name": "Cash", "type": "checking", "isDefault": true})
	category := suite.createCategory("Groceries", models.TransactionTypeExpense)
	transaction := suite.createTransaction(map[string]any{"amount": "5", "type": "expense", "categoryId": category.ID})

	r := suite.request(http.MethodDelete, "/v1/accounts/"+account.ID.String(), nil)
	suite.assertError(r, http.StatusConflict, "the account is referenced by transactions")

	r = suite.request(http.MethodDelete, "/v1/transactions/"+transaction.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodDelete, "/v1/accounts/"+account.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodDelete, "/v1/accounts/"+account.ID.String(), nil)
	suite.assertError(r, http.StatusNotFound, "there is no account matching your query")
}
