package user

import (
	"context"
	"time"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
)

type CreateUserInput struct {
	Email        c.Email
	Name         string
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

type UpdateUserInput struct {
	ID        ID
	Email     c.Optional[c.Email]
	Name      c.Optional[string]
	UpdatedAt time.Time
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	Update(ctx context.Context, input UpdateUserInput) (User, error)
	SetPassword(ctx context.Context, id ID, password PasswordHash) error
	Delete(ctx context.Context, id ID) error
}

type CreatePasswordResetTokenInput struct {
	ID        PasswordResetTokenID
	UserID    ID
	IsActive  bool
	ExpiresIn time.Time
	CreatedAt time.Time
}

type PasswordResetTokenRepository interface {
	Create(ctx context.Context, input CreatePasswordResetTokenInput) (PasswordResetToken, error)
	GetByID(ctx context.Context, id PasswordResetTokenID) (PasswordResetToken, error)
	// GetLatestByUserID returns the most recently created token of the user.
	GetLatestByUserID(ctx context.Context, userID ID) (PasswordResetToken, error)
	Deactivate(ctx context.Context, id PasswordResetTokenID) error
}
