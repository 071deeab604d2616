package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
)

// RegisterGlossaryTermRoutes registers the routes for glossary terms with
// the RouterGroup that is passed.
func (co Controller) RegisterGlossaryTermRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsGlossaryTermList)
		r.GET("", co.GetGlossaryTerms)
		r.POST("", co.CreateGlossaryTerm)
	}

	// Glossary term with ID
	{
		r.OPTIONS("/:id", co.OptionsGlossaryTermDetail)
		r.GET("/:id", co.GetGlossaryTerm)
		r.PATCH("/:id", co.UpdateGlossaryTerm)
		r.DELETE("/:id", co.DeleteGlossaryTerm)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Glossary Terms
// @Success		204
// @Router			/v1/glossary-terms [options]
func (co Controller) OptionsGlossaryTermList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Glossary Terms
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/glossary-terms/{id} [options]
func (co Controller) OptionsGlossaryTermDetail(c *gin.Context) {
	_, err := co.getGlossaryTerm(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create glossary term
// @Description	Creates a new glossary term
// @Tags			Glossary Terms
// @Produce		json
// @Success		201		{object}	GlossaryTermResponse
// @Failure		400		{object}	GlossaryTermResponse
// @Failure		500		{object}	GlossaryTermResponse
// @Param			term	body		GlossaryTermEditable	true	"Glossary term"
// @Router			/v1/glossary-terms [post]
func (co Controller) CreateGlossaryTerm(c *gin.Context) {
	var editable GlossaryTermEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), GlossaryTermResponse{Error: message(c, err)})
		return
	}

	term, err := co.Storage.CreateGlossaryTerm(c.Request.Context(), models.GlossaryTermCreate{
		Term:       editable.Term,
		Definition: editable.Definition,
	})
	if err != nil {
		c.JSON(status(err), GlossaryTermResponse{Error: message(c, err)})
		return
	}

	data := newGlossaryTerm(c, term)
	c.JSON(http.StatusCreated, GlossaryTermResponse{Data: &data})
}

// @Summary		List glossary terms
// @Description	Returns all glossary terms sorted by term
// @Tags			Glossary Terms
// @Produce		json
// @Success		200	{object}	GlossaryTermListResponse
// @Failure		500	{object}	GlossaryTermListResponse
// @Router			/v1/glossary-terms [get]
func (co Controller) GetGlossaryTerms(c *gin.Context) {
	terms, err := co.Storage.ListGlossaryTerms(c.Request.Context())
	if err != nil {
		c.JSON(status(err), GlossaryTermListResponse{Error: message(c, err)})
		return
	}

	data := make([]GlossaryTerm, 0, len(terms))
	for _, term := range terms {
		data = append(data, newGlossaryTerm(c, term))
	}

	c.JSON(http.StatusOK, GlossaryTermListResponse{Data: data})
}

// @Summary		Get glossary term
// @Description	Returns a specific glossary term
// @Tags			Glossary Terms
// @Produce		json
// @Success		200	{object}	GlossaryTermResponse
// @Failure		400	{object}	GlossaryTermResponse
// @Failure		404	{object}	GlossaryTermResponse
// @Failure		500	{object}	GlossaryTermResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/glossary-terms/{id} [get]
func (co Controller) GetGlossaryTerm(c *gin.Context) {
	term, err := co.getGlossaryTerm(c)
	if err != nil {
		c.JSON(status(err), GlossaryTermResponse{Error: message(c, err)})
		return
	}

	data := newGlossaryTerm(c, term)
	c.JSON(http.StatusOK, GlossaryTermResponse{Data: &data})
}

// @Summary		Update glossary term
// @Description	Updates a glossary term. Only values to be updated need to be specified.
// @Tags			Glossary Terms
// @Produce		json
// @Success		200		{object}	GlossaryTermResponse
// @Failure		400		{object}	GlossaryTermResponse
// @Failure		404		{object}	GlossaryTermResponse
// @Failure		500		{object}	GlossaryTermResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			term	body		GlossaryTermPatch	true	"Glossary term"
// @Router			/v1/glossary-terms/{id} [patch]
func (co Controller) UpdateGlossaryTerm(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), GlossaryTermResponse{Error: message(c, err)})
		return
	}

	var patch GlossaryTermPatch
	err = httputil.BindData(c, &patch)
	if err != nil {
		c.JSON(status(err), GlossaryTermResponse{Error: message(c, err)})
		return
	}

	term, ok, err := co.Storage.UpdateGlossaryTerm(c.Request.Context(), id, models.GlossaryTermPatch{
		Term:       patch.Term,
		Definition: patch.Definition,
	})
	if err == nil && !ok {
		err = models.NotFound("glossary term")
	}
	if err != nil {
		c.JSON(status(err), GlossaryTermResponse{Error: message(c, err)})
		return
	}

	data := newGlossaryTerm(c, term)
	c.JSON(http.StatusOK, GlossaryTermResponse{Data: &data})
}

// @Summary		Delete glossary term
// @Description	Deletes a glossary term
// @Tags			Glossary Terms
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/glossary-terms/{id} [delete]
func (co Controller) DeleteGlossaryTerm(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	ok, err := co.Storage.DeleteGlossaryTerm(c.Request.Context(), id)
	if err == nil && !ok {
		err = models.NotFound("glossary term")
	}
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	c.Status(http.StatusNoContent)
}

// getGlossaryTerm returns the glossary term identified by the ID in the URI.
func (co Controller) getGlossaryTerm(c *gin.Context) (models.GlossaryTerm, error) {
	id, err := bindID(c)
	if err != nil {
		return models.GlossaryTerm{}, err
	}

	term, ok, err := co.Storage.GetGlossaryTerm(c.Request.Context(), id)
	if err != nil {
		return models.GlossaryTerm{}, err
	}

	if !ok {
		return models.GlossaryTerm{}, models.NotFound("glossary term")
	}

	return term, nil
}
