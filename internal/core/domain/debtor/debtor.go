package debtor

import (
	"fmt"
	"time"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
)

type ID int64

type Debtor struct {
	ID          ID
	UserID      user.ID
	Name        string
	Description string
	Value       c.Money
	IsPaid      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (d *Debtor) Validate() error {
	if d.Name == "" {
		return e.NewInvalidStateError(fmt.Sprintf("name is not set for debtor %d", d.ID))
	}
	if d.Value <= 0 {
		return e.NewInvalidStateError(fmt.Sprintf("value of debtor %d must be positive", d.ID))
	}
	return nil
}
