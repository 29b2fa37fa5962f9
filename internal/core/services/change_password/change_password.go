package changepassword

import (
	"context"

	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services/auth"
)

type Input struct {
	CurrentPassword      user.RawPassword
	Password             user.RawPassword
	PasswordConfirmation user.RawPassword
	User                 user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct{}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	passwordHasher user.PasswordHasher
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
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
	return &service{
		log:            log,
		passwordHasher: passwordHasher,
		userRepository: userRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Password != input.PasswordConfirmation {
		return result, user.ErrPasswordsDoNotMatch
	}

	isCurrentPasswordValid := s.passwordHasher.ValidatePassword(
		input.CurrentPassword,
		input.User.PasswordHash,
	)
	if !isCurrentPasswordValid {
		s.log.Info(ctx, "Current password is invalid.", logging.Entry("userID", input.User.ID))
		return result, user.ErrInvalidCredentials
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.User.ID))
		return result, err
	}
	if err := s.userRepository.SetPassword(ctx, input.User.ID, newPasswordHash); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.User.ID))
		return result, err
	}

	s.log.Info(ctx, "Password changed.", logging.Entry("userID", input.User.ID))
	return Result{}, nil
}
