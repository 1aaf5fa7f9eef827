package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAmountInvalid          = errors.New("the amount must be between 0.01 and 10000000")
	ErrTransactionTypeInvalid = errors.New("the transaction type must be INCOME or EXPENSE")
	ErrEmailNotUnique         = errors.New("a user with this email address already exists")
	ErrCategoryNameNotUnique  = errors.New("you already have a category with this name and type")
)
