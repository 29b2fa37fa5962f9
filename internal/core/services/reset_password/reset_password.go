package resetpassword

import (
	"context"
	"errors"
	"time"

	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
)

type Input struct {
	Token                user.PasswordResetTokenID
	Password             user.RawPassword
	PasswordConfirmation user.RawPassword
}

type Result struct{}

type service struct {
	log             logging.Logger
	userRepository  user.UserRepository
	tokenRepository user.PasswordResetTokenRepository
	passwordHasher  user.PasswordHasher
	now             func() time.Time
}

// New returns a service consuming a password reset token.
//
// The password update and the token deactivation are two separate writes.
// When the second one fails the new password is already in place and the
// token remains usable until it expires.
func New(
	log logging.Logger,
	userRepository user.UserRepository,
	tokenRepository user.PasswordResetTokenRepository,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if tokenRepository == nil {
		panic(e.NewNilArgumentError("tokenRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		passwordHasher:  passwordHasher,
		now:             now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Password != input.PasswordConfirmation {
		return result, user.ErrPasswordsDoNotMatch
	}

	token, err := s.tokenRepository.GetByID(ctx, input.Token)
	if errors.Is(err, user.ErrPasswordResetTokenDoesNotExist) {
		s.log.Info(ctx, "Unknown password reset token.")
		return result, user.ErrInvalidPasswordResetToken
	}
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	u, err := s.userRepository.GetByID(ctx, token.UserID)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "Password reset token has no owner.", logging.Entry("userID", token.UserID))
		return result, user.ErrInvalidPasswordResetToken
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", token.UserID))
		return result, err
	}

	if token.IsExpired(s.now()) {
		s.log.Info(
			ctx,
			"Password reset token is expired.",
			logging.Entry("userID", u.ID),
			logging.Entry("isActive", token.IsActive),
			logging.Entry("expiresIn", token.ExpiresIn),
		)
		return result, user.ErrExpiredPasswordResetToken
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}
	err = s.userRepository.SetPassword(ctx, u.ID, newPasswordHash)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}

	err = s.tokenRepository.Deactivate(ctx, token.ID)
	if err != nil {
		s.log.Error(
			ctx,
			"Password has been changed but the reset token could not be deactivated.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New password has been successfully set.",
		logging.Entry("userID", u.ID),
	)
	return result, nil
}
