package createdebtor

import (
	"context"
	"time"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/debtor"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services/auth"
)

type Input struct {
	UserID      user.ID
	Name        string
	Description string
	Value       c.Money
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Debtor debtor.Debtor
}

type service struct {
	log              logging.Logger
	debtorRepository debtor.Repository
	now              func() time.Time
}

func New(
	log logging.Logger,
	debtorRepository debtor.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if debtorRepository == nil {
		panic(e.NewNilArgumentError("debtorRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:              log,
		debtorRepository: debtorRepository,
		now:              now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Value <= 0 {
		return result, debtor.ErrInvalidValue
	}

	d, err := s.debtorRepository.Create(ctx, debtor.CreateInput{
		UserID:      input.UserID,
		Name:        input.Name,
		Description: input.Description,
		Value:       input.Value,
		CreatedAt:   s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Debtor has been created.",
		logging.Entry("userID", input.UserID),
		logging.Entry("debtorID", d.ID),
	)
	return Result{Debtor: d}, nil
}
