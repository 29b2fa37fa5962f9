package listcards

import (
	"context"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/card"
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

type Result struct {
	Cards []card.Card
}

type service struct {
	log            logging.Logger
	cardRepository card.Repository
}

func New(
	log logging.Logger,
	cardRepository card.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if cardRepository == nil {
		panic(e.NewNilArgumentError("cardRepository"))
	}
	return &service{
		log:            log,
		cardRepository: cardRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	cards, err := s.cardRepository.ReadByUserID(ctx, input.UserID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}
	return Result{Cards: cards}, nil
}
