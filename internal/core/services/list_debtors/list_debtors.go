package listdebtors

import (
	"context"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/debtor"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services/auth"
)

type Input struct {
	UserID user.ID
	IsPaid c.Optional[bool]
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Debtors []debtor.Debtor
}

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
	debtors, err := s.debtorRepository.Read(ctx, debtor.ReadOptions{
		UserID: input.UserID,
		IsPaid: input.IsPaid,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	return Result{Debtors: debtors}, nil
}
