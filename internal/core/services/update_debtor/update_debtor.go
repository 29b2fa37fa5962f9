package updatedebtor

import (
	"context"
	"errors"
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
	DebtorID    debtor.ID
	Name        c.Optional[string]
	Description c.Optional[string]
	Value       c.Optional[c.Money]
	IsPaid      c.Optional[bool]
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
	if input.Value.IsPresent && input.Value.Value <= 0 {
		return result, debtor.ErrInvalidValue
	}

	d, err := s.debtorRepository.GetByID(ctx, input.DebtorID)
	if errors.Is(err, debtor.ErrDebtorDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	if d.UserID != input.UserID {
		s.log.Warning(
			ctx,
			"User tried to update a debtor of another user.",
			logging.Entry("userID", input.UserID),
			logging.Entry("debtorID", d.ID),
		)
		return result, debtor.ErrDebtorDoesNotExist
	}

	updated, err := s.debtorRepository.Update(ctx, debtor.UpdateInput{
		ID:          d.ID,
		Name:        input.Name,
		Description: input.Description,
		Value:       input.Value,
		IsPaid:      input.IsPaid,
		UpdatedAt:   s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Debtor has been updated.", logging.Entry("input", input))
	return Result{Debtor: updated}, nil
}
