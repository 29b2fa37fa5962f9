package deletecard

import (
	"context"
	"errors"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/card"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services/auth"
)

type Input struct {
	UserID user.ID
	CardID card.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct{}

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
	existing, err := s.cardRepository.GetByID(ctx, input.CardID)
	if errors.Is(err, card.ErrCardDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	if existing.UserID != input.UserID {
		s.log.Warning(
			ctx,
			"User tried to delete a card of another user.",
			logging.Entry("userID", input.UserID),
			logging.Entry("cardID", existing.ID),
		)
		return result, card.ErrCardDoesNotExist
	}

	err = s.cardRepository.Delete(ctx, existing.ID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Card has been deleted.", logging.Entry("input", input))
	return result, nil
}
