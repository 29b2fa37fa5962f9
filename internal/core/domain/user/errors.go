package user

import (
	"errors"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	// Returned both for an unknown email and for a wrong password.
	ErrInvalidCredentials  = errors.New("Incorrect email/password combination")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrInvalidAuthToken    = errors.New("invalid authentication token")
)

var (
	ErrPasswordResetTokenDoesNotExist = errors.New("password reset token does not exist")
	ErrInvalidPasswordResetToken      = errors.New("invalid reset password token")
	ErrExpiredPasswordResetToken      = errors.New("reset password token is expired")
)
