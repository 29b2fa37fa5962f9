package generatepasswordresettoken

import (
	"context"
	"errors"
	"time"

	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"

	"github.com/golang-module/carbon/v2"
)

type Input struct {
	UserID user.ID
}

type Result struct {
	Token user.PasswordResetToken
}

type service struct {
	log             logging.Logger
	tokenRepository user.PasswordResetTokenRepository
	tokenGenerator  user.PasswordResetTokenGenerator
	ttlMinutes      int
	now             func() time.Time
}

// New returns a service that hands out the latest still usable reset token
// of the user or issues a new one valid for ttlMinutes.
//
// Two concurrent calls for the same user may both observe an expired token
// and create two fresh ones. Both stay valid until they expire or are used.
func New(
	log logging.Logger,
	tokenRepository user.PasswordResetTokenRepository,
	tokenGenerator user.PasswordResetTokenGenerator,
	ttlMinutes int,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if tokenRepository == nil {
		panic(e.NewNilArgumentError("tokenRepository"))
	}
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
	}
	if ttlMinutes <= 0 {
		panic(e.NewInvalidStateError("password reset token TTL must be positive"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		tokenRepository: tokenRepository,
		tokenGenerator:  tokenGenerator,
		ttlMinutes:      ttlMinutes,
		now:             now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	now := s.now()

	latest, err := s.tokenRepository.GetLatestByUserID(ctx, input.UserID)
	switch {
	case err == nil:
		if !latest.IsExpired(now) {
			s.log.Info(
				ctx,
				"Reusing active password reset token.",
				logging.Entry("userID", input.UserID),
				logging.Entry("expiresIn", latest.ExpiresIn),
			)
			return Result{Token: latest}, nil
		}
	case errors.Is(err, user.ErrPasswordResetTokenDoesNotExist):
	default:
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	token, err := s.tokenRepository.Create(ctx, user.CreatePasswordResetTokenInput{
		ID:        s.tokenGenerator.GenerateToken(),
		UserID:    input.UserID,
		IsActive:  true,
		ExpiresIn: carbon.Time2Carbon(now).AddMinutes(s.ttlMinutes).Carbon2Time(),
		CreatedAt: now,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	s.log.Info(
		ctx,
		"New password reset token has been created.",
		logging.Entry("userID", input.UserID),
		logging.Entry("expiresIn", token.ExpiresIn),
	)
	return Result{Token: token}, nil
}
