package v1_test

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/pocket-ledger/backend/internal/controllers/v1"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/storage"
	"github.com/pocket-ledger/backend/test"
)

func (suite *ControllerSuite) TestCategoryCreate() {
	r := suite.request(http.MethodPost, "/v1/categories", map[string]any{"name": "Salary", "type": "income", "color": "#10b981", "icon": "briefcase"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Salary", response.Data.Name)
	suite.Assert().Equal(models.TransactionTypeIncome, response.Data.Type)
	suite.Assert().Equal("briefcase", response.Data.Icon)
	suite.Assert().False(response.Data.IsDefault)
	suite.Assert().Equal(baseURL+"/v1/transactions?category="+response.Data.ID.String(), response.Data.Links.Transactions)

	r = suite.request(http.MethodPost, "/v1/categories", map[string]any{"name": "Transfers", "type": "transfer"})
	suite.assertError(r, http.StatusBadRequest, "type must be one of income, expense")
}

func (suite *ControllerSuite) TestCategoryList() {
	suite.Require().Nil(storage.Seed(suite.T().Context(), suite.store))

	tests := []struct {
		query string
		count int
	}{
		{"", 9},
		{"?type=expense", 6},
		{"?type=income", 3},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			r := suite.request(http.MethodGet, "/v1/categories"+tt.query, nil)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.CategoryListResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().Len(response.Data, tt.count)
		})
	}

	r := suite.request(http.MethodGet, "/v1/categories?type=savings", nil)
	suite.assertError(r, http.StatusBadRequest, "the query string contains unparseable data")
}

func (suite *ControllerSuite) TestCategoryUpdate() {
	category := suite.createCategory("Food", models.TransactionTypeExpense)

	r := suite.request(http.MethodPatch, "/v1/categories/"+category.ID.String(), map[string]any{"name": "Dining Out", "color": "#ec4899"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Dining Out", response.Data.Name)
	suite.Assert().Equal("#ec4899", response.Data.Color)
	suite.Assert().Equal(models.TransactionTypeExpense, response.Data.Type)

	r = suite.request(http.MethodPatch, "/v1/categories/"+uuid.NewString(), map[string]any{"name": "Dining Out"})
	suite.assertError(r, http.StatusNotFound, "there is no category matching your query")
}

func (suite *ControllerSuite) TestCategoryDelete() {
	category := suite.createCategory("Gifts", models.TransactionTypeExpense)

	r := suite.request(http.MethodDelete, "/v1/categories/"+category.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, "/v1/categories/"+category.ID.String(), nil)
	suite.assertError(r, http.StatusNotFound, "there is no category matching your query")

	defaultCategory, err := suite.store.CreateCategory(context.Background(), models.CategoryCreate{Name: "Rent", Type: models.TransactionTypeExpense, IsDefault: true})
	suite.Require().Nil(err)

	r = suite.request(http.MethodDelete, "/v1/categories/"+defaultCategory.ID.String(), nil)
	suite.assertError(r, http.StatusConflict, "default categories cannot be deleted")

	// Removing the default flag allows deletion
	r = suite.request(http.MethodPatch, "/v1/categories/"+defaultCategory.ID.String(), map[string]any{"isDefault": false})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodDelete, "/v1/categories/"+defaultCategory.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
