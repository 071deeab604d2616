package v1_test

import (
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/pocket-ledger/backend/internal/controllers/v1"
	"github.com/pocket-ledger/backend/test"
)

func (suite *ControllerSuite) TestGlossaryTerms() {
	for _, term := range []string{"Net Worth", "APR", "Budget"} {
		r := suite.request(http.MethodPost, "/v1/glossary-terms", map[string]any{"term": term, "definition": "What " + term + " means"})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	}

	r := suite.request(http.MethodGet, "/v1/glossary-terms", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.GlossaryTermListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 3)
	suite.Assert().Equal("APR", list.Data[0].Term)
	suite.Assert().Equal("Budget", list.Data[1].Term)
	suite.Assert().Equal("Net Worth", list.Data[2].Term)

	apr := list.Data[0]
	r = suite.request(http.MethodPatch, "/v1/glossary-terms/"+apr.ID.String(), map[string]any{"definition": "Annual Percentage Rate"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GlossaryTermResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("APR", response.Data.Term)
	suite.Assert().Equal("Annual Percentage Rate", response.Data.Definition)

	r = suite.request(http.MethodGet, "/v1/glossary-terms/"+apr.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodDelete, "/v1/glossary-terms/"+apr.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, "/v1/glossary-terms/"+apr.ID.String(), nil)
	suite.assertError(r, http.StatusNotFound, "there is no glossary term matching your query")
}

func (suite *ControllerSuite) TestGlossaryTermInvalid() {
	r := suite.request(http.MethodPost, "/v1/glossary-terms", map[string]any{"term": "APR"})
	suite.assertError(r, http.StatusBadRequest, "definition must be set")

	r = suite.request(http.MethodPatch, "/v1/glossary-terms/"+uuid.NewString(), map[string]any{"term": "APR"})
	suite.assertError(r, http.StatusNotFound, "there is no glossary term matching your query")
}
