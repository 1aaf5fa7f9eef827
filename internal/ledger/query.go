package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
)

// Defaults for the pagination window.
const (
	defaultPage  = 1
	defaultLimit = 20
)

// likeEscaper escapes the LIKE wildcards in user supplied search input.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListOptions are the filters for a transaction list query. The zero
// value of every field means "no constraint".
type ListOptions struct {
	Page       int                    // Page to return, starting at 1
	Limit      int                    // Maximum number of transactions per page
	Type       models.TransactionType // Filter by transaction type
	CategoryID uuid.UUID              // Filter by category
	StartDate  *time.Time             // Transactions at and after this time
	EndDate    *time.Time             // Transactions before and at this time
	Search     string                 // Case-insensitive search in description and category name
}

// TransactionPage is one page of a filtered transaction list.
type TransactionPage struct {
	Transactions []models.Transaction
	Total        int64 // Total number of transactions matching the filter
	Page         int
	Limit        int
	TotalPages   int
}

// Transactions returns the requested page of the user's transactions,
// most recent first.
//
// The user scope is applied before any other filter, a page past the
// end of the result set is empty, not an error.
func (s *Service) Transactions(userID uuid.UUID, options ListOptions) (TransactionPage, error) {
	page := options.Page
	if page < defaultPage {
		page = defaultPage
	}

	limit := options.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	q := s.db.Model(&models.Transaction{}).Where("transactions.user_id = ?", userID)

	if options.Type != "" {
		q = q.Where("transactions.type = ?", options.Type)
	}

	if options.CategoryID != uuid.Nil {
		q = q.Where("transactions.category_id = ?", options.CategoryID)
	}

	if options.Search != "" {
		// sqlite LIKE is case-insensitive. The wildcards are escaped so
		// a search for "100%" does not match every transaction.
		pattern := fmt.Sprintf("%%%s%%", likeEscaper.Replace(options.Search))
		q = q.
			Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
			Where(s.db.
				Where(`transactions.description LIKE ? ESCAPE '\'`, pattern).
				Or(`categories.name LIKE ? ESCAPE '\'`, pattern))
	}

	q = dateScope(q, options.StartDate, options.EndDate)

	// The id is the final tie-break since sqlite datetimes only have
	// second precision. This keeps the order stable across calls.
	q = q.
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC, transactions.id").
		Offset((page - 1) * limit).
		Limit(limit)

	var transactions []models.Transaction
	err := q.Preload("Category").Find(&transactions).Error
	if err != nil {
		return TransactionPage{}, err
	}

	var total int64
	err = q.Limit(-1).Offset(-1).Count(&total).Error
	if err != nil {
		return TransactionPage{}, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return TransactionPage{
		Transactions: transactions,
		Total:        total,
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages,
	}, nil
}
