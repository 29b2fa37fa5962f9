package deletedebtor

import (
	"context"
	"errors"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/debtor"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services/auth"
)

type Input struct {
	UserID   user.ID
	DebtorID debtor.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct{}

type service struct {
	log              logging.Logger
	debtorRepository debtor.Repository
}

func New(
	log logging.Logger,
	debtorRepository debtor.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if debtorRepository == nil {
		panic(e.NewNilArgumentError("debtorRepository"))
	}
	return &service{
		log:              log,
		debtorRepository: debtorRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
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
			"User tried to delete a debtor of another user.",
			logging.Entry("userID", input.UserID),
			logging.Entry("debtorID", d.ID),
		)
		return result, debtor.ErrDebtorDoesNotExist
	}

	err = s.debtorRepository.Delete(ctx, d.ID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Debtor has been deleted.", logging.Entry("input", input))
	return result, nil
}
