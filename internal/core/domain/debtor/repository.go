package debtor

import (
	"context"
	"time"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
)

type CreateInput struct {
	UserID      user.ID
	Name        string
	Description string
	Value       c.Money
	CreatedAt   time.Time
}

type UpdateInput struct {
	ID          ID
	Name        c.Optional[string]
	Description c.Optional[string]
	Value       c.Optional[c.Money]
	IsPaid      c.Optional[bool]
	UpdatedAt   time.Time
}

type ReadOptions struct {
	UserID user.ID
	IsPaid c.Optional[bool]
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Debtor, error)
	GetByID(ctx context.Context, id ID) (Debtor, error)
	Read(ctx context.Context, options ReadOptions) ([]Debtor, error)
	Update(ctx context.Context, input UpdateInput) (Debtor, error)
	Delete(ctx context.Context, id ID) error
}
