package deletedebtor

import (
	"context"
	"testing"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/debtor"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"

	"github.com/stretchr/testify/require"
)

func TestDeleteDebtor(t *testing.T) {
	ctx := context.Background()
	repository := debtor.NewFakeRepository()
	repository.Debtors = []debtor.Debtor{{ID: 1, UserID: 1, Name: "John", Value: 100}}
	service := New(logging.NewFakeLogger(), repository)

	_, err := service.Run(ctx, Input{UserID: 2, DebtorID: 1})
	require.ErrorIs(t, err, debtor.ErrDebtorDoesNotExist)
	require.Len(t, repository.Debtors, 1)

	_, err = service.Run(ctx, Input{UserID: 1, DebtorID: 1})
	require.Nil(t, err)
	require.Empty(t, repository.Debtors)
}
