package debtor

import "errors"

var (
	ErrDebtorDoesNotExist = errors.New("debtor does not exist")
	ErrInvalidValue       = errors.New("debtor value must be positive")
)
