package card

import (
	"fmt"
	"time"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
)

type ID int64

const LAST_DIGITS_LEN = 4

type Card struct {
	ID         ID
	UserID     user.ID
	Name       string
	HolderName string
	// Only the last digits of the card number are ever stored.
	LastDigits string
	Brand      Brand
	Limit      c.Money
	DueDay     uint8
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (card *Card) Validate() error {
	if len(card.LastDigits) != LAST_DIGITS_LEN {
		return e.NewInvalidStateError(fmt.Sprintf("invalid last digits for card %d", card.ID))
	}
	if card.Brand == BrandUnknown {
		return e.NewInvalidStateError(fmt.Sprintf("brand is not set for card %d", card.ID))
	}
	if card.Limit < 0 {
		return e.NewInvalidStateError(fmt.Sprintf("limit of card %d must not be negative", card.ID))
	}
	if card.DueDay < 1 || card.DueDay > 31 {
		return e.NewInvalidStateError(fmt.Sprintf("invalid due day %d for card %d", card.DueDay, card.ID))
	}
	return nil
}
