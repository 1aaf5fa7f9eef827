package ledger

import "errors"

var (
	// ErrTransactionNotFound is returned for transactions that do not
	// exist as well as for transactions owned by another user. The two
	// cases are deliberately indistinguishable.
	ErrTransactionNotFound = errors.New("there is no transaction matching your query")

	// ErrCategoryMismatch is returned when a referenced category does
	// not exist for the user or its type does not match the
	// transaction type.
	ErrCategoryMismatch = errors.New("category not found or does not match the transaction type")
)
