package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a user-defined label for transactions. Its type
// is fixed relative to the transactions referencing it: a transaction
// may only reference a category of its own type and owner.
type Category struct {
	DefaultModel
	Name   string          `json:"name" gorm:"uniqueIndex:category_user_type_name" example:"Groceries"`
	Type   TransactionType `json:"type" gorm:"uniqueIndex:category_user_type_name" example:"EXPENSE"`
	Color  string          `json:"color" example:"#4CAF50"`
	Icon   string          `json:"icon" example:"🛒"`
	UserID uuid.UUID       `json:"userId" gorm:"uniqueIndex:category_user_type_name"` // Owner of the category, set from the authenticated user
	User   User            `json:"-"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if !c.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	return nil
}
