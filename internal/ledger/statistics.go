package ledger

import (
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// TypeSummary is the aggregate over all transactions of one type.
type TypeSummary struct {
	Total decimal.Decimal `json:"total" example:"1400.50"` // Sum of all amounts, 0 for an empty set
	Count int64           `json:"count" example:"17"`      // Number of transactions
}

// Period echoes the date range a summary was computed over.
type Period struct {
	StartDate *time.Time `json:"startDate"` // Inclusive lower bound, null if unbounded
	EndDate   *time.Time `json:"endDate"`   // Inclusive upper bound, null if unbounded
}

// Summary is the period summary over a user's ledger.
type Summary struct {
	Income  TypeSummary     `json:"income"`
	Expense TypeSummary     `json:"expense"`
	Balance decimal.Decimal `json:"balance" example:"250.00"` // income total minus expense total
	Period  Period          `json:"period"`
}

// CategoryInfo is the category metadata attached to a breakdown group.
// For transactions without a category it holds the synthetic
// uncategorized placeholder, which is never persisted.
type CategoryInfo struct {
	ID    *uuid.UUID `json:"id"` // null for the placeholder
	Name  string     `json:"name" example:"Groceries"`
	Color string     `json:"color" example:"#4CAF50"`
	Icon  string     `json:"icon" example:"🛒"`
}

// uncategorized is the placeholder for groups without a resolvable
// category.
var uncategorized = CategoryInfo{
	Name:  "uncategorized",
	Color: "#9E9E9E",
	Icon:  "❓",
}

// CategoryGroup is one group of the per-category breakdown.
type CategoryGroup struct {
	Category         CategoryInfo    `json:"category"`
	TotalAmount      decimal.Decimal `json:"totalAmount" example:"320.00"`
	TransactionCount int64           `json:"transactionCount" example:"5"`
}

// Summary computes the income and expense aggregates for the user
// over the given period.
//
// The two aggregates have no data dependency on each other and are
// issued concurrently. If either of them fails, the whole summary
// fails, a partial summary is never returned.
func (s *Service) Summary(userID uuid.UUID, startDate, endDate *time.Time) (Summary, error) {
	var income, expense TypeSummary

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		income, err = s.typeAggregate(userID, models.TypeIncome, startDate, endDate)
		return err
	})
	g.Go(func() error {
		var err error
		expense, err = s.typeAggregate(userID, models.TypeExpense, startDate, endDate)
		return err
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	return Summary{
		Income:  income,
		Expense: expense,
		Balance: income.Total.Sub(expense.Total),
		Period: Period{
			StartDate: startDate,
			EndDate:   endDate,
		},
	}, nil
}

// typeAggregate sums and counts all transactions of one type in the
// scope. An empty scope is not an error, the sum defaults to zero.
func (s *Service) typeAggregate(userID uuid.UUID, transactionType models.TransactionType, startDate, endDate *time.Time) (TypeSummary, error) {
	var row struct {
		Total decimal.NullDecimal
		Count int64
	}

	q := s.db.Model(&models.Transaction{}).
		Select("SUM(transactions.amount) AS total, COUNT(*) AS count").
		Where("transactions.user_id = ?", userID).
		Where("transactions.type = ?", transactionType)

	err := dateScope(q, startDate, endDate).Scan(&row).Error
	if err != nil {
		return TypeSummary{}, err
	}

	return TypeSummary{
		Total: row.Total.Decimal,
		Count: row.Count,
	}, nil
}

// ByCategory groups the user's transactions of one type by category,
// largest summed amount first.
//
// The category metadata for all groups is resolved in a single batch
// lookup after grouping. Groups without a category, and groups whose
// category cannot be resolved, use the uncategorized placeholder.
func (s *Service) ByCategory(userID uuid.UUID, transactionType models.TransactionType, startDate, endDate *time.Time) ([]CategoryGroup, error) {
	var rows []struct {
		CategoryID *uuid.UUID
		Total      decimal.NullDecimal
		Count      int64
	}

	q := s.db.Model(&models.Transaction{}).
		Select("transactions.category_id, SUM(transactions.amount) AS total, COUNT(*) AS count").
		Where("transactions.user_id = ?", userID).
		Where("transactions.type = ?", transactionType)

	err := dateScope(q, startDate, endDate).
		Group("transactions.category_id").
		Order("SUM(transactions.amount) DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// Resolve all category IDs in one batch
	categoryIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		if row.CategoryID != nil {
			categoryIDs = append(categoryIDs, *row.CategoryID)
		}
	}

	categories := make(map[uuid.UUID]models.Category, len(categoryIDs))
	if len(categoryIDs) > 0 {
		var resolved []models.Category
		err = s.db.
			Where("user_id = ?", userID).
			Where("id IN ?", categoryIDs).
			Find(&resolved).Error
		if err != nil {
			return nil, err
		}

		for _, category := range resolved {
			categories[category.ID] = category
		}
	}

	groups := make([]CategoryGroup, 0, len(rows))
	for _, row := range rows {
		info := uncategorized
		if row.CategoryID != nil {
			if category, ok := categories[*row.CategoryID]; ok {
				id := category.ID
				info = CategoryInfo{
					ID:    &id,
					Name:  category.Name,
					Color: category.Color,
					Icon:  category.Icon,
				}
			}
		}

		groups = append(groups, CategoryGroup{
			Category:         info,
			TotalAmount:      row.Total.Decimal,
			TransactionCount: row.Count,
		})
	}

	return groups, nil
}
