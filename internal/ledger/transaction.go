package ledger

import (
	"errors"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// TransactionCreate contains all fields a user can set when creating
// a transaction. The owner is never part of it, it is always the
// authenticated user.
type TransactionCreate struct {
	Date        time.Time
	Amount      decimal.Decimal
	Type        models.TransactionType
	Description string
	CategoryID  *uuid.UUID
}

func (create TransactionCreate) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		Date:        create.Date,
		Amount:      create.Amount,
		Type:        create.Type,
		Description: create.Description,
		UserID:      userID,
		CategoryID:  create.CategoryID,
	}
}

// TransactionUpdate contains the new values for an update. Which of
// them are applied is controlled by the fields argument of
// UpdateTransaction, unset fields keep their current value.
type TransactionUpdate struct {
	Date        time.Time
	Amount      decimal.Decimal
	Type        models.TransactionType
	Description string
	CategoryID  *uuid.UUID
}

// Transaction resolves a single transaction scoped to its owner.
//
// A transaction that exists but belongs to another user yields the
// same ErrTransactionNotFound as one that does not exist at all.
func (s *Service) Transaction(userID, id uuid.UUID) (models.Transaction, error) {
	var transaction models.Transaction
	err := s.db.
		Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&transaction).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return models.Transaction{}, ErrTransactionNotFound
		}
		return models.Transaction{}, err
	}

	return transaction, nil
}

// CreateTransaction validates the referenced category and creates the
// transaction for the user.
//
// The category check and the insert run in one database transaction so
// that the invariant holds against the view the write is based on.
func (s *Service) CreateTransaction(userID uuid.UUID, create TransactionCreate) (models.Transaction, error) {
	transaction := create.model(userID)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if transaction.CategoryID != nil && *transaction.CategoryID != uuid.Nil {
			err := checkCategory(tx, userID, *transaction.CategoryID, transaction.Type)
			if err != nil {
				return err
			}
		}

		return tx.Create(&transaction).Error
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return s.Transaction(userID, transaction.ID)
}

// UpdateTransaction applies a partial update to a transaction of the
// user. fields lists the names of the TransactionUpdate fields that
// were actually supplied.
//
// The category consistency is re-checked only when the update sets a
// new category or changes the type. An existing category/type pairing
// that is not touched is not re-validated.
func (s *Service) UpdateTransaction(userID, id uuid.UUID, update TransactionUpdate, fields []any) (models.Transaction, error) {
	// The ownership check runs before any validation of the new values
	existing, err := s.Transaction(userID, id)
	if err != nil {
		return models.Transaction{}, err
	}

	if slices.Contains(fields, any("Amount")) && (update.Amount.LessThan(models.AmountMin) || update.Amount.GreaterThan(models.AmountMax)) {
		return models.Transaction{}, models.ErrAmountInvalid
	}

	effectiveType := existing.Type
	if slices.Contains(fields, any("Type")) && update.Type != "" {
		if !update.Type.Valid() {
			return models.Transaction{}, models.ErrTransactionTypeInvalid
		}
		effectiveType = update.Type
	}

	categoryID := existing.CategoryID
	categoryChanged := false
	if slices.Contains(fields, any("CategoryID")) {
		categoryID = update.CategoryID
		categoryChanged = !uuidPtrEqual(update.CategoryID, existing.CategoryID)
	}

	// Unset values fall back to the current ones so that the model
	// hooks validate the effective state, not zero values
	if update.Amount.IsZero() {
		update.Amount = existing.Amount
	}
	if update.Date.IsZero() {
		update.Date = existing.Date
	}
	update.Type = effectiveType

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if (categoryChanged || effectiveType != existing.Type) && categoryID != nil && *categoryID != uuid.Nil {
			err := checkCategory(tx, userID, *categoryID, effectiveType)
			if err != nil {
				return err
			}
		}

		return tx.Model(&existing).Select("", fields...).Updates(update.model(userID)).Error
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return s.Transaction(userID, id)
}

func (update TransactionUpdate) model(userID uuid.UUID) models.Transaction {
	return TransactionCreate(update).model(userID)
}

// DeleteTransaction permanently deletes a transaction of the user.
func (s *Service) DeleteTransaction(userID, id uuid.UUID) error {
	transaction, err := s.Transaction(userID, id)
	if err != nil {
		return err
	}

	return s.db.Delete(&transaction).Error
}

// checkCategory verifies that the category exists, belongs to the user
// and has the given type. Any miss is reported as ErrCategoryMismatch,
// never revealing which of the three conditions failed.
func checkCategory(tx *gorm.DB, userID, categoryID uuid.UUID, transactionType models.TransactionType) error {
	err := tx.
		Where("id = ? AND user_id = ? AND type = ?", categoryID, userID, transactionType).
		First(&models.Category{}).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return ErrCategoryMismatch
		}
		return err
	}

	return nil
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
