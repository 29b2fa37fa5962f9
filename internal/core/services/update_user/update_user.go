package updateuser

import (
	"context"
	"errors"
	"time"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services/auth"
)

type Input struct {
	UserID user.ID
	Email  c.Optional[c.Email]
	Name   c.Optional[string]
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	updatedUser, err := s.userRepository.Update(
		ctx,
		user.UpdateUserInput{
			ID:        input.UserID,
			Email:     input.Email,
			Name:      input.Name,
			UpdatedAt: s.now(),
		},
	)
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		s.log.Info(ctx, "Email is taken by another user.", logging.Entry("userID", input.UserID))
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"User successfully updated.",
		logging.Entry("input", input),
		logging.Entry("userID", updatedUser.ID),
	)
	result.User = updatedUser
	return result, nil
}
