package uow

import (
	"context"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/card"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/debtor"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
)

type FakeUnitOfWorkContext struct {
	UserRepository               *user.FakeUserRepository
	PasswordResetTokenRepository *user.FakePasswordResetTokenRepository
	DebtorRepository             *debtor.FakeRepository
	CardRepository               *card.FakeRepository
	WasRollbackCalled            bool
	WasCommitCalled              bool
}

func NewFakeUnitOfWorkContext(
	userRepository *user.FakeUserRepository,
	passwordResetTokenRepository *user.FakePasswordResetTokenRepository,
	debtorRepository *debtor.FakeRepository,
	cardRepository *card.FakeRepository,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		UserRepository:               userRepository,
		PasswordResetTokenRepository: passwordResetTokenRepository,
		DebtorRepository:             debtorRepository,
		CardRepository:               cardRepository,
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) PasswordResetTokens() user.PasswordResetTokenRepository {
	return c.PasswordResetTokenRepository
}

func (c *FakeUnitOfWorkContext) Debtors() debtor.Repository {
	return c.DebtorRepository
}

func (c *FakeUnitOfWorkContext) Cards() card.Repository {
	return c.CardRepository
}

type FakeUnitOfWork struct {
	Context *FakeUnitOfWorkContext
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			user.NewFakeUserRepository(),
			user.NewFakePasswordResetTokenRepository(),
			debtor.NewFakeRepository(),
			card.NewFakeRepository(),
		),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	return u.Context, nil
}
