package response

import (
	"time"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/card"
)

type Card struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	HolderName string    `json:"holder_name"`
	LastDigits string    `json:"last_digits"`
	Brand      string    `json:"brand"`
	Limit      int64     `json:"limit"`
	DueDay     uint8     `json:"due_day"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (c *Card) FromDomainType(dc card.Card) {
	c.ID = int64(dc.ID)
	c.Name = dc.Name
	c.HolderName = dc.HolderName
	c.LastDigits = dc.LastDigits
	c.Brand = dc.Brand.String()
	c.Limit = int64(dc.Limit)
	c.DueDay = dc.DueDay
	c.CreatedAt = dc.CreatedAt
	c.UpdatedAt = dc.UpdatedAt
}

func NewCards(cards []card.Card) []Card {
	result := make([]Card, 0, len(cards))
	for _, dc := range cards {
		var c Card
		c.FromDomainType(dc)
		result = append(result, c)
	}
	return result
}
