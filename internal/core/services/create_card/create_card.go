package createcard

import (
	"context"
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
	Name       string
	HolderName string
	LastDigits string
	Brand      card.Brand
	Limit      c.Money
	DueDay     uint8
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
	if input.Limit < 0 {
		return result, card.ErrInvalidLimit
	}
	if input.DueDay < 1 || input.DueDay > 31 {
		return result, card.ErrInvalidDueDay
	}

	created, err := s.cardRepository.Create(ctx, card.CreateInput{
		UserID:     input.UserID,
		Name:       input.Name,
		HolderName: input.HolderName,
		LastDigits: input.LastDigits,
		Brand:      input.Brand,
		Limit:      input.Limit,
		DueDay:     input.DueDay,
		CreatedAt:  s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Card has been created.",
		logging.Entry("userID", input.UserID),
		logging.Entry("cardID", created.ID),
	)
	return Result{Card: created}, nil
}
