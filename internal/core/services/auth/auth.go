package auth

import (
	"context"
	"errors"

	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
)

type contextAuthToken string

const CONTEXT_AUTH_TOKEN_KEY = contextAuthToken("authToken")

type Input interface {
	WithAuthenticatedUser(u user.User) Input
}

type service[T Input, S any] struct {
	log            logging.Logger
	tokenParser    user.AuthTokenParser
	userRepository user.UserRepository
	inner          services.Service[T, S]
}

func WithAuthentication[T Input, S any](
	log logging.Logger,
	tokenParser user.AuthTokenParser,
	userRepository user.UserRepository,
	inner services.Service[T, S],
) services.Service[T, S] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if tokenParser == nil {
		panic(e.NewNilArgumentError("tokenParser"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &service[T, S]{
		log:            log,
		tokenParser:    tokenParser,
		userRepository: userRepository,
		inner:          inner,
	}
}

func (s *service[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	authToken, ok := ctx.Value(CONTEXT_AUTH_TOKEN_KEY).(user.AuthToken)
	if !ok || authToken == "" {
		return result, user.ErrInvalidAuthToken
	}
	userID, err := s.tokenParser.ParseToken(authToken)
	if err != nil {
		s.log.Info(ctx, "Auth token rejected.", logging.Entry("err", err))
		return result, user.ErrInvalidAuthToken
	}
	u, err := s.userRepository.GetByID(ctx, userID)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		// The token outlived its user.
		s.log.Info(ctx, "Auth token refers to a missing user.", logging.Entry("userID", userID))
		return result, user.ErrInvalidAuthToken
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", userID))
		return result, err
	}
	return s.inner.Run(ctx, input.WithAuthenticatedUser(u).(T))
}
