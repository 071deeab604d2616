package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/pocket-ledger/backend/internal/controllers/v1"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/test"
)

// fixtures creates a default account and one category per type.
func (suite *ControllerSuite) fixtures() (account v1.Account, income, expense v1.Category) {
	account = suite.createAccount(map[string]any{"name": "Checking", "type": "checking", "balance": "100", "isDefault": true})
	income = suite.createCategory("Salary", models.TransactionTypeIncome)
	expense = suite.createCategory("Groceries", models.TransactionTypeExpense)
	return
}

func (suite *ControllerSuite) listTransactions(query string) v1.TransactionListResponse {
	r := suite.request(http.MethodGet, "/v1/transactions"+query, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *ControllerSuite) TestTransactionScenario() {
	account, income, _ := suite.fixtures()

	transaction := suite.createTransaction(map[string]any{
		"amount":     "25.00",
		"type":       "income",
		"categoryId": income.ID,
		"accountId":  account.ID,
	})
	suite.Assert().Equal("25.00", transaction.Amount)
	suite.Assert().Equal("125.00", suite.getAccount(account.ID).Balance)

	r := suite.request(http.MethodPatch, "/v1/transactions/"+transaction.ID.String(), map[string]any{"amount": "10.00"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("110.00", suite.getAccount(account.ID).Balance)

	r = suite.request(http.MethodDelete, "/v1/transactions/"+transaction.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("100.00", suite.getAccount(account.ID).Balance)

	r = suite.request(http.MethodGet, "/v1/transactions/"+transaction.ID.String(), nil)
	suite.assertError(r, http.StatusNotFound, "there is no transaction matching your query")
}

func (suite *ControllerSuite) TestTransactionCreateDefaultAccount() {
	account, _, expense := suite.fixtures()

	transaction := suite.createTransaction(map[string]any{
		"amount":      "14.03",
		"description": "Weekly groceries",
		"type":        "expense",
		"categoryId":  expense.ID,
		"date":        "2024-03-01T10:00:00Z",
	})

	suite.Assert().Equal(account.ID, transaction.AccountID)
	suite.Assert().Equal("Weekly groceries", transaction.Description)
	suite.Assert().Equal(baseURL+"/v1/accounts/"+account.ID.String(), transaction.Links.Account)
	suite.Assert().Equal(baseURL+"/v1/categories/"+expense.ID.String(), transaction.Links.Category)
	suite.Assert().Equal("85.97", suite.getAccount(account.ID).Balance)
}

func (suite *ControllerSuite) TestTransactionCreateInvalid() {
	account, income, expense := suite.fixtures()

	tests := []struct {
		name string
		body map[string]any
		msg  string
	}{
		{"No category", map[string]any{"amount": "1", "type": "income"}, "categoryId must be set"},
		{"No type", map[string]any{"amount": "1", "categoryId": income.ID}, "type must be set"},
		{"Unknown type", map[string]any{"amount": "1", "type": "transfer", "categoryId": income.ID}, "type must be one of income, expense"},
		{"Negative amount", map[string]any{"amount": "-1", "type": "income", "categoryId": income.ID}, "the amount must not be negative"},
		{"Unknown category", map[string]any{"amount": "1", "type": "income", "categoryId": uuid.New()}, "does not identify an existing category"},
		{"Type mismatch", map[string]any{"amount": "1", "type": "income", "categoryId": expense.ID}, "must match the type of its category"},
		{"Unknown account", map[string]any{"amount": "1", "type": "income", "categoryId": income.ID, "accountId": uuid.New()}, "does not identify an existing account"},
		{"Invalid ID", map[string]any{"amount": "1", "type": "income", "categoryId": "salary"}, "un-parseable data"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, "/v1/transactions", tt.body)
			suite.assertError(r, http.StatusBadRequest, tt.msg)
		})
	}

	suite.Assert().Equal("100.00", suite.getAccount(account.ID).Balance)
	suite.Assert().Len(suite.listTransactions("").Data, 0)
}

func (suite *ControllerSuite) TestTransactionCreateNoDefaultAccount() {
	suite.createAccount(map[string]any{"name": "Savings", "type": "savings"})
	category := suite.createCategory("Salary", models.TransactionTypeIncome)

	r := suite.request(http.MethodPost, "/v1/transactions", map[string]any{"amount": "1", "type": "income", "categoryId": category.ID})
	suite.assertError(r, http.StatusBadRequest, "there is no default account")
}

func (suite *ControllerSuite) TestTransactionUpdate() {
	checking, income, expense := suite.fixtures()
	savings := suite.createAccount(map[string]any{"name": "Savings", "type": "savings", "balance": "80"})

	transaction := suite.createTransaction(map[string]any{"amount": "50", "type": "expense", "categoryId": expense.ID})
	suite.Assert().Equal("50.00", suite.getAccount(checking.ID).Balance)

	// Moving the transaction moves its effect
	r := suite.request(http.MethodPatch, "/v1/transactions/"+transaction.ID.String(), map[string]any{"accountId": savings.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("100.00", suite.getAccount(checking.ID).Balance)
	suite.Assert().Equal("30.00", suite.getAccount(savings.ID).Balance)

	// Changing the type requires a category of the new type
	r = suite.request(http.MethodPatch, "/v1/transactions/"+transaction.ID.String(), map[string]any{"type": "income"})
	suite.assertError(r, http.StatusBadRequest, "must match the type of its category")

	r = suite.request(http.MethodPatch, "/v1/transactions/"+transaction.ID.String(), map[string]any{"type": "income", "categoryId": income.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("130.00", suite.getAccount(savings.ID).Balance)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.TransactionTypeIncome, response.Data.Type)
	suite.Assert().Equal(income.ID, response.Data.CategoryID)

	r = suite.request(http.MethodPatch, "/v1/transactions/"+transaction.ID.String(), map[string]any{"accountId": uuid.New()})
	suite.assertError(r, http.StatusBadRequest, "does not identify an existing account")

	r = suite.request(http.MethodPatch, "/v1/transactions/"+transaction.ID.String(), map[string]any{"amount": "-3"})
	suite.assertError(r, http.StatusBadRequest, "the amount must not be negative")

	r = suite.request(http.MethodPatch, "/v1/transactions/"+uuid.NewString(), map[string]any{"amount": "3"})
	suite.assertError(r, http.StatusNotFound, "there is no transaction matching your query")

	suite.Assert().Equal("130.00", suite.getAccount(savings.ID).Balance)
}

// Transactions stay editable after their account was removed.
func (suite *ControllerSuite) TestTransactionOrphaned() {
	_, income, _ := suite.fixtures()
	temporary := suite.createAccount(map[string]any{"name": "Temporary", "type": "savings"})

	transaction := suite.createTransaction(map[string]any{"amount": "5", "type": "income", "categoryId": income.ID, "accountId": temporary.ID})

	// Point the transaction to an account that does not exist
	_, _, err := suite.store.UpdateTransaction(suite.T().Context(), transaction.ID, models.TransactionPatch{AccountID: ptr(uuid.New())})
	suite.Require().Nil(err)

	r := suite.request(http.MethodPatch, "/v1/transactions/"+transaction.ID.String(), map[string]any{"description": "Refund"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodDelete, "/v1/transactions/"+transaction.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *ControllerSuite) TestTransactionListFilter() {
	checking, income, expense := suite.fixtures()
	savings := suite.createAccount(map[string]any{"name": "Savings", "type": "savings"})

	transactions := []map[string]any{
		{"amount": "3000", "type": "income", "categoryId": income.ID, "description": "Salary March", "date": "2024-03-01T08:00:00Z"},
		{"amount": "4.50", "type": "expense", "categoryId": expense.ID, "description": "Coffee beans", "date": "2024-03-02T09:00:00Z"},
		{"amount": "62.10", "type": "expense", "categoryId": expense.ID, "description": "Weekly groceries", "date": "2024-03-05T17:30:00Z"},
		{"amount": "100", "type": "income", "categoryId": income.ID, "description": "Interest", "date": "2024-03-31T23:59:00Z", "accountId": savings.ID},
	}
	for _, body := range transactions {
		suite.createTransaction(body)
	}

	tests := []struct {
		query        string
		descriptions []string
	}{
		{"", []string{"Interest", "Weekly groceries", "Coffee beans", "Salary March"}},
		{"?type=income", []string{"Interest", "Salary March"}},
		{"?account=" + checking.ID.String(), []string{"Weekly groceries", "Coffee beans", "Salary March"}},
		{"?account=" + savings.ID.String(), []string{"Interest"}},
		{"?category=" + expense.ID.String(), []string{"Weekly groceries", "Coffee beans"}},
		{"?description=coffee", []string{"Coffee beans"}},
		{"?description=*groceries", []string{"Weekly groceries"}},
		{"?description=w*s", []string{"Weekly groceries"}},
		{"?fromDate=2024-03-02&untilDate=2024-03-05", []string{"Weekly groceries", "Coffee beans"}},
		{"?untilDate=2024-03-01", []string{"Salary March"}},
		{"?fromDate=2024-03-31", []string{"Interest"}},
		{"?type=expense&description=*e*&untilDate=2024-03-02", []string{"Coffee beans"}},
		{"?limit=2", []string{"Interest", "Weekly groceries"}},
		{"?offset=1&limit=2", []string{"Weekly groceries", "Coffee beans"}},
		{"?offset=3&limit=-1", []string{"Salary March"}},
		{"?offset=10", []string{}},
		{"?limit=0", []string{}},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			response := suite.listTransactions(tt.query)

			descriptions := make([]string, 0, len(response.Data))
			for _, t := range response.Data {
				descriptions = append(descriptions, t.Description)
			}
			suite.Assert().Equal(tt.descriptions, descriptions)
			suite.Assert().Equal(len(tt.descriptions), response.Pagination.Count)
		})
	}

	response := suite.listTransactions("?offset=1&limit=2")
	suite.Assert().Equal(v1.Pagination{Count: 2, Offset: 1, Limit: 2, Total: 4}, *response.Pagination)

	response = suite.listTransactions("")
	suite.Assert().Equal(50, response.Pagination.Limit)
}

func (suite *ControllerSuite) TestTransactionListInvalid() {
	tests := []struct {
		query string
		msg   string
	}{
		{"?account=checking", "not a valid UUID"},
		{"?category=1", "not a valid UUID"},
		{"?type=transfer", "the query string contains unparseable data"},
		{"?fromDate=01.03.2024", "the query string contains unparseable data"},
		{"?offset=-1", "the query string contains unparseable data"},
		{"?fromDate=2024-03-05&untilDate=2024-03-01", "untilDate must not be before fromDate"},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			r := suite.request(http.MethodGet, "/v1/transactions"+tt.query, nil)
			suite.assertError(r, http.StatusBadRequest, tt.msg)
		})
	}
}

// The balance always equals the initial balance plus the effect of all transactions.
func (suite *ControllerSuite) TestTransactionBalanceConsistency() {
	account, income, expense := suite.fixtures()

	var ids []string
	for i := range 10 {
		typ, category := "income", income.ID
		if i%3 == 0 {
			typ, category = "expense", expense.ID
		}

		transaction := suite.createTransaction(map[string]any{"amount": fmt.Sprintf("%d.%02d", i, i*7%100), "type": typ, "categoryId": category})
		ids = append(ids, transaction.ID.String())
	}

	// 100 - 0.00 + 1.07 + 2.14 - 3.21 + 4.28 + 5.35 - 6.42 + 7.49 + 8.56 - 9.63
	suite.Assert().Equal("109.63", suite.getAccount(account.ID).Balance)

	for _, id := range ids {
		r := suite.request(http.MethodDelete, "/v1/transactions/"+id, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	}
	suite.Assert().Equal("100.00", suite.getAccount(account.ID).Balance)
}

func ptr[T any](v T) *T {
	return &v
}
