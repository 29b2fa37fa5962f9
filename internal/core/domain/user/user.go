package user

import (
	"fmt"
	"time"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

// AuthToken is a signed bearer token carrying the user ID as its subject.
type AuthToken string

func (t AuthToken) String() string {
	return "***"
}

type User struct {
	ID           ID
	Email        c.Email
	Name         string
	PasswordHash PasswordHash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	return nil
}

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}

type AuthTokenIssuer interface {
	IssueToken(userID ID) (AuthToken, error)
}

type AuthTokenParser interface {
	ParseToken(token AuthToken) (ID, error)
}
