package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
)

type CategoryEditable struct {
	Name      string                 `json:"name" binding:"required" example:"Groceries"`                    // Name of the category
	Type      models.TransactionType `json:"type" binding:"required,oneof=income expense" example:"expense"` // Type of transactions the category is used for
	Color     string                 `json:"color" example:"#22c55e"`                                        // Display color
	Icon      string                 `json:"icon" example:"shopping-cart"`                                   // Display icon
	IsDefault bool                   `json:"isDefault" example:"false" default:"false"`                      // Default categories cannot be deleted
}

func (editable CategoryEditable) model() models.CategoryCreate {
	return models.CategoryCreate{
		Name:      editable.Name,
		Type:      editable.Type,
		Color:     editable.Color,
		Icon:      editable.Icon,
		IsDefault: editable.IsDefault,
	}
}

// CategoryPatch contains the fields to update. Fields that are not set are not changed.
type CategoryPatch struct {
	Name      *string                 `json:"name" binding:"omitempty,min=1" example:"Groceries"`
	Type      *models.TransactionType `json:"type" binding:"omitempty,oneof=income expense" example:"expense"`
	Color     *string                 `json:"color" example:"#22c55e"`
	Icon      *string                 `json:"icon" example:"shopping-cart"`
	IsDefault *bool                   `json:"isDefault" example:"false"`
}

func (p CategoryPatch) model() models.CategoryPatch {
	return models.CategoryPatch{
		Name:      p.Name,
		Type:      p.Type,
		Color:     p.Color,
		Icon:      p.Icon,
		IsDefault: p.IsDefault,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                    // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions in the category
}

// Category is the API representation of a Category.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := httputil.BaseURL(c)

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:      model.Name,
			Type:      model.Type,
			Color:     model.Color,
			Icon:      model.Icon,
			IsDefault: model.IsDefault,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of categories
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
