package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
)

type GlossaryTermEditable struct {
	Term       string `json:"term" binding:"required" example:"Net Worth"`                                                       // The term
	Definition string `json:"definition" binding:"required" example:"The value of everything you own minus everything you owe."` // What the term means
}

// GlossaryTermPatch contains the fields to update. Fields that are not set are not changed.
type GlossaryTermPatch struct {
	Term       *string `json:"term" binding:"omitempty,min=1" example:"Net Worth"`
	Definition *string `json:"definition" binding:"omitempty,min=1" example:"The value of everything you own minus everything you owe."`
}

type GlossaryTermLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/glossary-terms/9c8a4be1-8ae0-44f4-ab4d-e9c2d4c4d3ec"` // The glossary term itself
}

// GlossaryTerm is the API representation of a GlossaryTerm.
type GlossaryTerm struct {
	models.DefaultModel
	GlossaryTermEditable
	Links GlossaryTermLinks `json:"links"`
}

func newGlossaryTerm(c *gin.Context, model models.GlossaryTerm) GlossaryTerm {
	return GlossaryTerm{
		DefaultModel: model.DefaultModel,
		GlossaryTermEditable: GlossaryTermEditable{
			Term:       model.Term,
			Definition: model.Definition,
		},
		Links: GlossaryTermLinks{
			Self: fmt.Sprintf("%s/v1/glossary-terms/%s", httputil.BaseURL(c), model.ID),
		},
	}
}

type GlossaryTermListResponse struct {
	Data  []GlossaryTerm `json:"data"`                                                          // List of glossary terms
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GlossaryTermResponse struct {
	Data  *GlossaryTerm `json:"data"`                                                          // Data for the glossary term
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
