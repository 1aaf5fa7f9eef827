package v1

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
)

// CategoryEditable represents all user configurable parameters of a
// category.
type CategoryEditable struct {
	Name  string                 `json:"name" binding:"required" example:"Groceries"` // Name of the category
	Type  models.TransactionType `json:"type" binding:"required" example:"EXPENSE"`   // INCOME or EXPENSE
	Color string                 `json:"color" example:"#4CAF50" default:""`          // Display color
	Icon  string                 `json:"icon" example:"🛒" default:""`                 // Display icon
}

func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	return models.Category{
		Name:   editable.Name,
		Type:   editable.Type,
		Color:  editable.Color,
		Icon:   editable.Icon,
		UserID: userID,
	}
}

type CategoryQueryFilter struct {
	Type models.TransactionType `form:"type"` // Filter by category type
}
