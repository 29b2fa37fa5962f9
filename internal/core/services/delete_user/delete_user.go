package deleteuser

import (
	"context"

	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services/auth"
)

type Input struct {
	UserID user.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct{}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
}

// New returns a service deleting the account together with everything it
// owns. Reset tokens, debtors and cards go away by cascade.
func New(
	log logging.Logger,
	userRepository user.UserRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	err = s.userRepository.Delete(ctx, input.UserID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}
	s.log.Info(ctx, "User has been deleted.", logging.Entry("userID", input.UserID))
	return result, nil
}
