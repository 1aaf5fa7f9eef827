package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bounds for transaction amounts.
var (
	AmountMin = decimal.NewFromFloat(0.01)
	AmountMax = decimal.NewFromInt(10_000_000)
)

// Transaction represents a single financial event in a user's ledger.
type Transaction struct {
	DefaultModel
	Date        time.Time       `json:"date" example:"2024-03-20T00:00:00Z"` // Date of the transaction. Defaults to the creation time
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.03"`
	Type        TransactionType `json:"type" example:"EXPENSE"`
	Description string          `json:"description" example:"Lunch" default:""`
	UserID      uuid.UUID       `json:"userId"` // Owner of the transaction, set from the authenticated user
	User        User            `json:"-"`
	CategoryID  *uuid.UUID      `json:"categoryId"` // Optional category. nil means uncategorized
	Category    *Category       `json:"category,omitempty" gorm:"constraint:OnDelete:SET NULL"`
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	// Enforce dates to be in UTC
	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for the Date to UTC and defaults it to now
//   - verifies the type and the amount bounds
//   - trims whitespace from string fields
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Description = strings.TrimSpace(t.Description)

	// Ensure that the category ID is nil and not a pointer to a nil UUID
	// when it is not set
	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if t.Amount.LessThan(AmountMin) || t.Amount.GreaterThan(AmountMax) {
		return ErrAmountInvalid
	}

	return
}
