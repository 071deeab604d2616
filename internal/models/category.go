package models

import "gorm.io/gorm"

// Category classifies transactions. Its type declares which transactions it is meant for.
type Category struct {
	DefaultModel
	CategoryCreate
}

type CategoryCreate struct {
	Name      string          `json:"name" example:"Groceries"`
	Type      TransactionType `json:"type" example:"expense"`
	Color     string          `json:"color" example:"#22c55e"`
	Icon      string          `json:"icon" example:"shopping-cart"`
	IsDefault bool            `json:"isDefault" example:"false"` // Default categories cannot be deleted
}

// CategoryPatch holds the fields to change on a category. Nil fields are left as they are.
type CategoryPatch struct {
	Name      *string
	Type      *TransactionType
	Color     *string
	Icon      *string
	IsDefault *bool
}

func (c Category) Apply(p CategoryPatch) Category {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
	if p.IsDefault != nil {
		c.IsDefault = *p.IsDefault
	}
	return c
}

func (c *Category) Clean() {
	c.Name = cleanText(c.Name)
	c.Color = cleanText(c.Color)
	c.Icon = cleanText(c.Icon)
}

func (c Category) Validate() error {
	if c.Name == "" {
		return ErrNameEmpty
	}

	if !c.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	return nil
}

func (c *Category) BeforeSave(_ *gorm.DB) (err error) {
	c.Clean()
	return nil
}
