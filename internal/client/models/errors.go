package models

import "errors"

var (
	ErrInvalidTransactionType = errors.New("transaction type must be income or expense")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrEmptyCategory          = errors.New("category is required")
	ErrMissingDate            = errors.New("date is required")
	ErrEmptyName              = errors.New("name is required")
	ErrNameTooLong            = errors.New("name is too long")
	ErrNegativeAmount         = errors.New("amount must not be negative")
	ErrInvalidOrgType         = errors.New("unknown organization type")
	ErrInvalidTaxSystem       = errors.New("unknown tax system")
	ErrMissingID              = errors.New("id is required")
)
