// Package ledger implements the transaction query and aggregation
// engine: ownership-scoped queries over a user's transactions,
// category/type consistency enforcement and statistical views.
package ledger

import (
	"time"

	"gorm.io/gorm"
)

// Service executes all ledger operations against the database that
// is passed to NewService.
//
// Every operation takes the ID of the authenticated user as its first
// argument and never returns or modifies data of other users.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// dateScope adds the inclusive date range bounds to a query.
// A nil bound imposes no constraint.
func dateScope(q *gorm.DB, startDate, endDate *time.Time) *gorm.DB {
	if startDate != nil {
		q = q.Where("transactions.date >= ?", startDate.In(time.UTC))
	}

	if endDate != nil {
		q = q.Where("transactions.date <= ?", endDate.In(time.UTC))
	}

	return q
}
