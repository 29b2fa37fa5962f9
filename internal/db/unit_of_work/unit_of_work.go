package uow

import (
	"context"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/card"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/debtor"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	uow "github.com/d1d2-apps/ewallet-backend/internal/core/domain/unit_of_work"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/db"
	dbcard "github.com/d1d2-apps/ewallet-backend/internal/db/card"
	dbdebtor "github.com/d1d2-apps/ewallet-backend/internal/db/debtor"
	dbuser "github.com/d1d2-apps/ewallet-backend/internal/db/user"

	"github.com/jackc/pgx/v5"
)

type pgxUnitOfWorkContext struct {
	tx pgx.Tx
}

func newPgxUnitOfWorkContext(tx pgx.Tx) *pgxUnitOfWorkContext {
	return &pgxUnitOfWorkContext{
		tx: tx,
	}
}

func (c *pgxUnitOfWorkContext) Commit(ctx context.Context) error {
	return c.tx.Commit(ctx)
}

// Rollback is a no-op after a successful commit.
func (c *pgxUnitOfWorkContext) Rollback(ctx context.Context) error {
	return c.tx.Rollback(ctx)
}

func (c *pgxUnitOfWorkContext) Users() user.UserRepository {
	return dbuser.NewPgxRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) PasswordResetTokens() user.PasswordResetTokenRepository {
	return dbuser.NewPgxPasswordResetTokenRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) Debtors() debtor.Repository {
	return dbdebtor.NewPgxDebtorRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) Cards() card.Repository {
	return dbcard.NewPgxCardRepository(c.tx)
}

type PgxUnitOfWork struct {
	db db.TxBeginner
}

func NewPgxUnitOfWork(dbtx db.TxBeginner) *PgxUnitOfWork {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUnitOfWork{db: dbtx}
}

func (u *PgxUnitOfWork) Begin(ctx context.Context) (uow.Context, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return newPgxUnitOfWorkContext(tx), nil
}
