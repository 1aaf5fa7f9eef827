package models

// TransactionType classifies a transaction or category as money
// coming in or going out.
//
// swagger:enum TransactionType
type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

// Valid reports whether the type is one of the two allowed variants.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}
