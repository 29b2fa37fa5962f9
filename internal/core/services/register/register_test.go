package register

import (
	"context"
	"testing"
	"time"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"
	ratelimiter "github.com/d1d2-apps/ewallet-backend/internal/core/domain/rate_limiter"
	uow "github.com/d1d2-apps/ewallet-backend/internal/core/domain/unit_of_work"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
	ratelimiting "github.com/d1d2-apps/ewallet-backend/internal/core/services/rate_limiting"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	EMAIL        = c.Email("test@test.test")
	NAME         = "Test User"
	RAW_PASSWORD = user.RawPassword("test-password")
)

var NOW = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UnitOfWork     *uow.FakeUnitOfWork
	PasswordHasher *user.FakePasswordHasher
	TokenIssuer    *user.FakeAuthTokenIssuer
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.TokenIssuer = user.NewFakeAuthTokenIssuer()
	suite.Service = New(
		suite.Logger,
		suite.UnitOfWork,
		suite.PasswordHasher,
		suite.TokenIssuer,
		func() time.Time { return NOW },
	)
}

func TestRegisterService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(context.Background(), Input{
		Email:                EMAIL,
		Name:                 NAME,
		Password:             RAW_PASSWORD,
		PasswordConfirmation: RAW_PASSWORD,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(user.ID(0), result.User.ID)
	assert.Equal(EMAIL, result.User.Email)
	assert.Equal(NAME, result.User.Name)
	assert.Equal(NOW, result.User.CreatedAt)
	assert.NotEqual(user.PasswordHash(RAW_PASSWORD), result.User.PasswordHash)
	assert.True(suite.PasswordHasher.ValidatePassword(RAW_PASSWORD, result.User.PasswordHash))
	assert.NotEmpty(result.Token)
	assert.True(suite.UnitOfWork.Context.WasCommitCalled)
}

func (suite *testSuite) TestPasswordsDoNotMatch() {
	_, err := suite.Service.Run(context.Background(), Input{
		Email:                EMAIL,
		Name:                 NAME,
		Password:             RAW_PASSWORD,
		PasswordConfirmation: "another-password",
	})

	assert := suite.Require()
	assert.ErrorIs(err, user.ErrPasswordsDoNotMatch)
	assert.Empty(suite.UnitOfWork.Context.UserRepository.Users)
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	ctx := context.Background()
	suite.UnitOfWork.Context.UserRepository.Create(ctx, user.CreateUserInput{
		Email:        EMAIL,
		PasswordHash: user.PasswordHash("test"),
		CreatedAt:    NOW,
	})

	_, err := suite.Service.Run(ctx, Input{
		Email:                EMAIL,
		Name:                 NAME,
		Password:             RAW_PASSWORD,
		PasswordConfirmation: RAW_PASSWORD,
	})

	assert := suite.Require()
	assert.ErrorIs(err, user.ErrEmailAlreadyExists)
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
	assert.True(suite.UnitOfWork.Context.WasRollbackCalled)
	assert.Empty(suite.TokenIssuer.Issued)
}

func (suite *testSuite) TestRepositoryError() {
	suite.UnitOfWork.Context.UserRepository.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{
		Email:                EMAIL,
		Name:                 NAME,
		Password:             RAW_PASSWORD,
		PasswordConfirmation: RAW_PASSWORD,
	})

	assert := suite.Require()
	assert.NotNil(err)
	assert.Equal(1, suite.Logger.CountByLevel(logging.ERROR))
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
}

func TestRegisterIsLimitedPerClientIP(t *testing.T) {
	assert := require.New(t)
	ctx := context.Background()
	rl := ratelimiter.NewCountingFakeRateLimiter()
	unitOfWork := uow.NewFakeUnitOfWork()
	limited := ratelimiting.WithRateLimiting(
		logging.NewFakeLogger(),
		rl,
		ratelimiter.Limit{Value: 2, Interval: ratelimiter.Day},
		New(
			logging.NewFakeLogger(),
			unitOfWork,
			user.NewFakePasswordHasher(),
			user.NewFakeAuthTokenIssuer(),
			func() time.Time { return NOW },
		),
	)
	input := func(email c.Email, ip string) Input {
		return Input{
			Email:                email,
			Name:                 NAME,
			Password:             RAW_PASSWORD,
			PasswordConfirmation: RAW_PASSWORD,
			ClientIP:             ip,
		}
	}

	_, err := limited.Run(ctx, input("a@test.test", "192.0.2.1"))
	assert.Nil(err)
	_, err = limited.Run(ctx, input("b@test.test", "192.0.2.1"))
	assert.Nil(err)
	_, err = limited.Run(ctx, input("c@test.test", "192.0.2.1"))
	assert.ErrorIs(err, ratelimiter.ErrRateLimitExceeded)

	_, err = limited.Run(ctx, input("c@test.test", "192.0.2.2"))
	assert.Nil(err)

	assert.Len(unitOfWork.Context.UserRepository.Users, 3)
	assert.Equal("register::ip::192.0.2.2", rl.Keys()[3])
}
