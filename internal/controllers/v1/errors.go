package v1

import (
	"errors"
	"net/http"

	"github.com/fintrack/backend/internal/ledger"
	"github.com/fintrack/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no transaction matching your query"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, ledger.ErrTransactionNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errInvalidCredentials = errors.New("the email or password is incorrect")
	errTypeRequired       = errors.New("the type query parameter must be INCOME or EXPENSE")
)
