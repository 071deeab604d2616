package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsCategoryList)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
		r.PATCH("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func (co Controller) OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	_, err := co.getCategory(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), CategoryResponse{Error: message(c, err)})
		return
	}

	category, err := co.Storage.CreateCategory(c.Request.Context(), editable.model())
	if err != nil {
		c.JSON(status(err), CategoryResponse{Error: message(c, err)})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusCreated, CategoryResponse{Data: &data})
}

// @Summary		List categories
// @Description	Returns all categories sorted by name
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		400		{object}	CategoryListResponse
// @Failure		500		{object}	CategoryListResponse
// @Param			type	query		string	false	"Filter by type"	Enums(income, expense)
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	var filter struct {
		Type models.TransactionType `form:"type" binding:"omitempty,oneof=income expense"`
	}
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, CategoryListResponse{Error: message(c, httputil.ErrInvalidQuery)})
		return
	}

	categories, err := co.Storage.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(status(err), CategoryListResponse{Error: message(c, err)})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		if filter.Type != "" && category.Type != filter.Type {
			continue
		}
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Failure		500	{object}	CategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	category, err := co.getCategory(c)
	if err != nil {
		c.JSON(status(err), CategoryResponse{Error: message(c, err)})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Update category
// @Description	Updates a category. Only values to be updated need to be specified.
// @Tags			Categories
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			id			path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryPatch	true	"Category"
// @Router			/v1/categories/{id} [patch]
func (co Controller) UpdateCategory(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), CategoryResponse{Error: message(c, err)})
		return
	}

	var patch CategoryPatch
	err = httputil.BindData(c, &patch)
	if err != nil {
		c.JSON(status(err), CategoryResponse{Error: message(c, err)})
		return
	}

	category, ok, err := co.Storage.UpdateCategory(c.Request.Context(), id, patch.model())
	if err == nil && !ok {
		err = models.NotFound("category")
	}
	if err != nil {
		c.JSON(status(err), CategoryResponse{Error: message(c, err)})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Delete category
// @Description	Deletes a category. Default categories cannot be deleted.
// @Tags			Categories
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	category, err := co.getCategory(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	if category.IsDefault {
		c.JSON(http.StatusConflict, httpError{Error: models.ErrCategoryIsDefault.Error()})
		return
	}

	ok, err := co.Storage.DeleteCategory(c.Request.Context(), category.ID)
	if err == nil && !ok {
		err = models.NotFound("category")
	}
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	c.Status(http.StatusNoContent)
}

// getCategory returns the category identified by the ID in the URI.
func (co Controller) getCategory(c *gin.Context) (models.Category, error) {
	id, err := bindID(c)
	if err != nil {
		return models.Category{}, err
	}

	category, ok, err := co.Storage.GetCategory(c.Request.Context(), id)
	if err != nil {
		return models.Category{}, err
	}

	if !ok {
		return models.Category{}, models.NotFound("category")
	}

	return category, nil
}
