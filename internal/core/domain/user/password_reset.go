package user

import (
	"context"
	"time"
)

// PasswordResetTokenID is handed to the user as is and acts as the bearer value.
type PasswordResetTokenID string

type PasswordResetToken struct {
	ID        PasswordResetTokenID
	UserID    ID
	IsActive  bool
	ExpiresIn time.Time
	CreatedAt time.Time
}

// IsExpired folds both terminal conditions into one check: the token has been
// consumed (inactive) or its expiration time is in the past.
func (t PasswordResetToken) IsExpired(now time.Time) bool {
	return !t.IsActive || t.ExpiresIn.Before(now)
}

type PasswordResetTokenGenerator interface {
	GenerateToken() PasswordResetTokenID
}

type PasswordResetEmail struct {
	Subject  string
	HTMLBody string
}

type PasswordResetEmailRenderer interface {
	RenderPasswordResetEmail(ctx context.Context, u User, token PasswordResetToken) (PasswordResetEmail, error)
}
