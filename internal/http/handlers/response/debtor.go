package response

import (
	"time"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/debtor"
)

type Debtor struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Value       int64     `json:"value"`
	IsPaid      bool      `json:"is_paid"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (d *Debtor) FromDomainType(dd debtor.Debtor) {
	d.ID = int64(dd.ID)
	d.Name = dd.Name
	d.Description = dd.Description
	d.Value = int64(dd.Value)
	d.IsPaid = dd.IsPaid
	d.CreatedAt = dd.CreatedAt
	d.UpdatedAt = dd.UpdatedAt
}

func NewDebtors(debtors []debtor.Debtor) []Debtor {
	result := make([]Debtor, 0, len(debtors))
	for _, dd := range debtors {
		var d Debtor
		d.FromDomainType(dd)
		result = append(result, d)
	}
	return result
}
