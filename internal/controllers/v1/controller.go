// Package v1 contains the HTTP handlers for the v1 API.
package v1

import (
	"github.com/fintrack/backend/internal/ledger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContextUserID is the gin context key under which the auth middleware
// stores the verified user ID.
const ContextUserID = "userID"

// Controller bundles the handlers with their collaborators. The
// database and the ledger engine are injected, handlers never reach
// for global state.
type Controller struct {
	db     *gorm.DB
	ledger *ledger.Service
}

func NewController(db *gorm.DB) Controller {
	return Controller{
		db:     db,
		ledger: ledger.NewService(db),
	}
}

// currentUser returns the verified user ID for the request. The auth
// middleware guarantees it is set on all routes using it.
func currentUser(c *gin.Context) uuid.UUID {
	return c.MustGet(ContextUserID).(uuid.UUID)
}
