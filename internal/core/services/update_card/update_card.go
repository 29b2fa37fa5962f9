package updatecard

import (
	"context"
	"errors"
	"time"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/card"
	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services/auth"
)

type Input struct {
	UserID     user.ID
	CardID     card.ID
	Name       c.Optional[string]
	HolderName c.Optional[string]
	Limit      c.Optional[c.Money]
	DueDay     c.Optional[uint8]
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Card card.Card
}

type service struct {
	log            logging.Logger
	cardRepository card.Repository
	now            func() time.Time
}

func New(
	log logging.Logger,
	cardRepository card.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if cardRepository == nil {
		panic(e.NewNilArgumentError("cardRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		cardRepository: cardRepository,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Limit.IsPresent && input.Limit.Value < 0 {
		return result, card.ErrInvalidLimit
	}
	if input.DueDay.IsPresent && (input.DueDay.Value < 1 || input.DueDay.Value > 31) {
		return result, card.ErrInvalidDueDay
	}

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
			"User tried to update a card of another user.",
			logging.Entry("userID", input.UserID),
			logging.Entry("cardID", existing.ID),
		)
		return result, card.ErrCardDoesNotExist
	}

	updated, err := s.cardRepository.Update(ctx, card.UpdateInput{
		ID:         existing.ID,
		Name:       input.Name,
		HolderName: input.HolderName,
		Limit:      input.Limit,
		DueDay:     input.DueDay,
		UpdatedAt:  s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Card has been updated.", logging.Entry("input", input))
	return Result{Card: updated}, nil
}
