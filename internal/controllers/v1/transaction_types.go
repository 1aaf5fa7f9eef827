package v1

import (
	"time"

	"github.com/fintrack/backend/internal/ledger"
	"github.com/fintrack/backend/internal/models"
	ez_uuid "github.com/fintrack/backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters of
// a transaction. The owner is never configurable.
type TransactionEditable struct {
	Date        time.Time               `json:"date" example:"2024-03-20T00:00:00Z"`                        // Date of the transaction. Defaults to the creation time
	Amount      decimal.Decimal         `json:"amount" example:"14.03" minimum:"0.01" maximum:"10000000"`   // The amount for the transaction
	Type        models.TransactionType  `json:"type" example:"EXPENSE"`                                     // INCOME or EXPENSE
	Description string                  `json:"description" example:"Lunch" default:""`                     // A description
	CategoryID  *uuid.UUID              `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`  // ID of the category, null for uncategorized
}

func (editable TransactionEditable) create() ledger.TransactionCreate {
	return ledger.TransactionCreate{
		Date:        editable.Date,
		Amount:      editable.Amount,
		Type:        editable.Type,
		Description: editable.Description,
		CategoryID:  editable.CategoryID,
	}
}

func (editable TransactionEditable) update() ledger.TransactionUpdate {
	return ledger.TransactionUpdate{
		Date:        editable.Date,
		Amount:      editable.Amount,
		Type:        editable.Type,
		Description: editable.Description,
		CategoryID:  editable.CategoryID,
	}
}

// Meta is the pagination information for list responses.
type Meta struct {
	Total      int64 `json:"total" example:"827"`     // Total number of transactions matching the filter
	Page       int   `json:"page" example:"2"`        // The returned page
	Limit      int   `json:"limit" example:"20"`      // Maximum number of transactions per page
	TotalPages int   `json:"totalPages" example:"42"` // Number of pages for the filter
}

type TransactionListResponse struct {
	Data []models.Transaction `json:"data"` // List of transactions
	Meta Meta                 `json:"meta"` // Pagination information
}

type TransactionQueryFilter struct {
	Page       int                    `form:"page"`       // Page to return, starting at 1. Defaults to 1.
	Limit      int                    `form:"limit"`      // Maximum number of transactions per page. Defaults to 20.
	Type       models.TransactionType `form:"type"`       // Filter by transaction type
	CategoryID ez_uuid.UUID           `form:"categoryId"` // Filter by category ID
	StartDate  time.Time              `form:"startDate"`  // Transactions at and after this RFC3339 timestamp
	EndDate    time.Time              `form:"endDate"`    // Transactions before and at this RFC3339 timestamp
	Search     string                 `form:"search"`     // Search in description and category name, case-insensitive
}

func (f TransactionQueryFilter) options() ledger.ListOptions {
	options := ledger.ListOptions{
		Page:       f.Page,
		Limit:      f.Limit,
		Type:       f.Type,
		CategoryID: f.CategoryID.UUID,
		Search:     f.Search,
	}

	if !f.StartDate.IsZero() {
		options.StartDate = &f.StartDate
	}

	if !f.EndDate.IsZero() {
		options.EndDate = &f.EndDate
	}

	return options
}

// ByCategoryQuery is the query for the per-category breakdown. The
// type is required since the breakdown mixes income and expense
// categories otherwise.
type ByCategoryQuery struct {
	DateRangeQuery
	Type models.TransactionType `form:"type"` // INCOME or EXPENSE
}
