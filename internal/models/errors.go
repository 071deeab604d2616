package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrInvalid          = errors.New("invalid")
)

var (
	ErrAccountInUse      = errors.New("the account is referenced by transactions and cannot be deleted")
	ErrCategoryIsDefault = errors.New("default categories cannot be deleted")
)

var (
	ErrNameEmpty              = fmt.Errorf("%w: the name must not be empty", ErrInvalid)
	ErrAccountTypeInvalid     = fmt.Errorf("%w: the account type must be one of checking, savings, credit, investment", ErrInvalid)
	ErrTransactionTypeInvalid = fmt.Errorf("%w: the type must be one of income, expense", ErrInvalid)
	ErrMoneyOutOfRange        = fmt.Errorf("%w: amounts must have at most %d digits before the decimal point", ErrInvalid, MoneyPrecision-MoneyScale)
	ErrAccountIDMissing       = fmt.Errorf("%w: the accountId must be set", ErrInvalid)
	ErrCategoryIDMissing      = fmt.Errorf("%w: the categoryId must be set", ErrInvalid)
	ErrTermEmpty              = fmt.Errorf("%w: the term must not be empty", ErrInvalid)
	ErrDefinitionEmpty        = fmt.Errorf("%w: the definition must not be empty", ErrInvalid)
)

// NotFound returns an error for a resource that does not exist,
// e.g. "there is no account matching your query".
func NotFound(resource string) error {
	return fmt.Errorf("%w %s matching your query", ErrResourceNotFound, resource)
}
