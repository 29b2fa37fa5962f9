package debtor

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

type FakeRepository struct {
	Debtors     []Debtor
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (d Debtor, err error) {
	if r.ReturnError {
		return d, fmt.Errorf("could not create debtor %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, d := range r.Debtors {
		if d.ID > maxID {
			maxID = d.ID
		}
	}
	d = Debtor{
		ID:          maxID + 1,
		UserID:      input.UserID,
		Name:        input.Name,
		Description: input.Description,
		Value:       input.Value,
		CreatedAt:   input.CreatedAt,
		UpdatedAt:   input.CreatedAt,
	}
	r.Debtors = append(r.Debtors, d)
	return d, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (d Debtor, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, d := range r.Debtors {
		if d.ID == id {
			return d, nil
		}
	}
	return d, ErrDebtorDoesNotExist
}

func (r *FakeRepository) Read(ctx context.Context, options ReadOptions) ([]Debtor, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not read debtors")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	result := make([]Debtor, 0, len(r.Debtors))
	for _, d := range r.Debtors {
		if d.UserID != options.UserID {
			continue
		}
		if options.IsPaid.IsPresent && d.IsPaid != options.IsPaid.Value {
			continue
		}
		result = append(result, d)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateInput) (d Debtor, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, d := range r.Debtors {
		if d.ID != input.ID {
			continue
		}
		if input.Name.IsPresent {
			r.Debtors[ix].Name = input.Name.Value
		}
		if input.Description.IsPresent {
			r.Debtors[ix].Description = input.Description.Value
		}
		if input.Value.IsPresent {
			r.Debtors[ix].Value = input.Value.Value
		}
		if input.IsPaid.IsPresent {
			r.Debtors[ix].IsPaid = input.IsPaid.Value
		}
		r.Debtors[ix].UpdatedAt = input.UpdatedAt
		return r.Debtors[ix], nil
	}
	return d, ErrDebtorDoesNotExist
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, d := range r.Debtors {
		if d.ID == id {
			r.Debtors = append(r.Debtors[:ix], r.Debtors[ix+1:]...)
			return nil
		}
	}
	return ErrDebtorDoesNotExist
}
