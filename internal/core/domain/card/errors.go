package card

import "errors"

var (
	ErrCardDoesNotExist = errors.New("card does not exist")
	ErrInvalidLimit     = errors.New("card limit must not be negative")
	ErrInvalidDueDay    = errors.New("card due day must be between 1 and 31")
)
