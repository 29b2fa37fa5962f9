package uow

import (
	"context"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/card"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/debtor"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	PasswordResetTokens() user.PasswordResetTokenRepository
	Debtors() debtor.Repository
	Cards() card.Repository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
