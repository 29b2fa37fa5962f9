package authenticate

import (
	"context"
	"errors"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"
	ratelimiter "github.com/d1d2-apps/ewallet-backend/internal/core/domain/rate_limiter"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
)

type Input struct {
	Email    c.Email
	Password user.RawPassword
}

func (i Input) GetRateLimitKey() string {
	return ratelimiter.Key("authenticate", string(i.Email))
}

type Result struct {
	User  user.User
	Token user.AuthToken
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	passwordHasher user.PasswordHasher
	tokenIssuer    user.AuthTokenIssuer
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
	tokenIssuer user.AuthTokenIssuer,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if tokenIssuer == nil {
		panic(e.NewNilArgumentError("tokenIssuer"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		tokenIssuer:    tokenIssuer,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		// Minimize risk for timing attacks
		s.passwordHasher.HashPassword(input.Password)
		s.log.Info(ctx, "Authentication failed, unknown email.", logging.Entry("email", input.Email))
		return result, user.ErrInvalidCredentials
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}
	if !s.passwordHasher.ValidatePassword(input.Password, u.PasswordHash) {
		s.log.Info(ctx, "Authentication failed, wrong password.", logging.Entry("userID", u.ID))
		return result, user.ErrInvalidCredentials
	}

	token, err := s.tokenIssuer.IssueToken(u.ID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}

	s.log.Info(ctx, "User successfully authenticated.", logging.Entry("userID", u.ID))
	return Result{User: u, Token: token}, nil
}
