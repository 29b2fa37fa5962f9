//go:build integration

package uow

import (
	"context"
	"testing"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/card"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/debtor"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	uow  *PgxUnitOfWork
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.uow = NewPgxUnitOfWork(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUnitOfWorkIntegration(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) createUser(ctx context.Context) user.User {
	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)
	defer uow.Rollback(ctx)
	u, err := uow.Users().Create(ctx, user.CreateUserInput{
		Email:        "ana@example.com",
		Name:         "Ana",
		PasswordHash: "hash",
		CreatedAt:    NOW,
	})
	s.Require().Nil(err)
	s.Require().Nil(uow.Commit(ctx))
	return u
}

func (s *testSuite) TestRollbackDiscardsChanges() {
	ctx := context.Background()
	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)
	_, err = uow.Users().Create(ctx, user.CreateUserInput{
		Email:        "ana@example.com",
		PasswordHash: "hash",
		CreatedAt:    NOW,
	})
	s.Require().Nil(err)
	s.Require().Nil(uow.Rollback(ctx))

	check, err := s.uow.Begin(ctx)
	s.Require().Nil(err)
	defer check.Rollback(ctx)
	_, err = check.Users().GetByEmail(ctx, "ana@example.com")
	s.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) TestDuplicateEmail() {
	ctx := context.Background()
	s.createUser(ctx)

	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)
	defer uow.Rollback(ctx)
	_, err = uow.Users().Create(ctx, user.CreateUserInput{
		Email:        "ana@example.com",
		PasswordHash: "hash",
		CreatedAt:    NOW,
	})
	s.Require().ErrorIs(err, user.ErrEmailAlreadyExists)
}

func (s *testSuite) TestDeletingUserCascades() {
	ctx := context.Background()
	u := s.createUser(ctx)

	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)
	defer uow.Rollback(ctx)

	_, err = uow.PasswordResetTokens().Create(ctx, user.CreatePasswordResetTokenInput{
		ID:        "0f4b1a8e-3c52-4d8e-9f56-2a9b7c1d0e11",
		UserID:    u.ID,
		IsActive:  true,
		ExpiresIn: NOW,
		CreatedAt: NOW,
	})
	s.Require().Nil(err)
	d, err := uow.Debtors().Create(ctx, debtor.CreateInput{UserID: u.ID, Name: "John", Value: 100, CreatedAt: NOW})
	s.Require().Nil(err)
	cd, err := uow.Cards().Create(ctx, card.CreateInput{
		UserID:     u.ID,
		Name:       "Main",
		HolderName: "ANA",
		LastDigits: "4242",
		Brand:      card.BrandVisa,
		DueDay:     5,
		CreatedAt:  NOW,
	})
	s.Require().Nil(err)

	s.Require().Nil(uow.Users().Delete(ctx, u.ID))

	_, err = uow.PasswordResetTokens().GetLatestByUserID(ctx, u.ID)
	s.Require().ErrorIs(err, user.ErrPasswordResetTokenDoesNotExist)
	_, err = uow.Debtors().GetByID(ctx, d.ID)
	s.Require().ErrorIs(err, debtor.ErrDebtorDoesNotExist)
	_, err = uow.Cards().GetByID(ctx, cd.ID)
	s.Require().ErrorIs(err, card.ErrCardDoesNotExist)
}
