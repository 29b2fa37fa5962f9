package card

import (
	"context"
	"time"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
)

type CreateInput struct {
	UserID     user.ID
	Name       string
	HolderName string
	LastDigits string
	Brand      Brand
	Limit      c.Money
	DueDay     uint8
	CreatedAt  time.Time
}

type UpdateInput struct {
	ID         ID
	Name       c.Optional[string]
	HolderName c.Optional[string]
	Limit      c.Optional[c.Money]
	DueDay     c.Optional[uint8]
	UpdatedAt  time.Time
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Card, error)
	GetByID(ctx context.Context, id ID) (Card, error)
	ReadByUserID(ctx context.Context, userID user.ID) ([]Card, error)
	Update(ctx context.Context, input UpdateInput) (Card, error)
	Delete(ctx context.Context, id ID) error
}
