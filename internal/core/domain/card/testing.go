package card

import (
	"context"
	"fmt"
	"sync"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
)

type FakeRepository struct {
	Cards       []Card
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (c Card, err error) {
	if r.ReturnError {
		return c, fmt.Errorf("could not create card %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, c := range r.Cards {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	c = Card{
		ID:         maxID + 1,
		UserID:     input.UserID,
		Name:       input.Name,
		HolderName: input.HolderName,
		LastDigits: input.LastDigits,
		Brand:      input.Brand,
		Limit:      input.Limit,
		DueDay:     input.DueDay,
		CreatedAt:  input.CreatedAt,
		UpdatedAt:  input.CreatedAt,
	}
	r.Cards = append(r.Cards, c)
	return c, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (c Card, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, c := range r.Cards {
		if c.ID == id {
			return c, nil
		}
	}
	return c, ErrCardDoesNotExist
}

func (r *FakeRepository) ReadByUserID(ctx context.Context, userID user.ID) ([]Card, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not read cards")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	result := make([]Card, 0, len(r.Cards))
	for _, c := range r.Cards {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateInput) (c Card, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, c := range r.Cards {
		if c.ID != input.ID {
			continue
		}
		if input.Name.IsPresent {
			r.Cards[ix].Name = input.Name.Value
		}
		if input.HolderName.IsPresent {
			r.Cards[ix].HolderName = input.HolderName.Value
		}
		if input.Limit.IsPresent {
			r.Cards[ix].Limit = input.Limit.Value
		}
		if input.DueDay.IsPresent {
			r.Cards[ix].DueDay = input.DueDay.Value
		}
		r.Cards[ix].UpdatedAt = input.UpdatedAt
		return r.Cards[ix], nil
	}
	return c, ErrCardDoesNotExist
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, c := range r.Cards {
		if c.ID == id {
			r.Cards = append(r.Cards[:ix], r.Cards[ix+1:]...)
			return nil
		}
	}
	return ErrCardDoesNotExist
}
