package deletecard

import (
	"context"
	"testing"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/card"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"

	"github.com/stretchr/testify/require"
)

func TestDeleteCard(t *testing.T) {
	ctx := context.Background()
	repository := card.NewFakeRepository()
	repository.Cards = []card.Card{{ID: 1, UserID: 1, LastDigits: "4242", Brand: card.BrandAmex, DueDay: 1}}
	service := New(logging.NewFakeLogger(), repository)

	_, err := service.Run(ctx, Input{UserID: 2, CardID: 1})
	require.ErrorIs(t, err, card.ErrCardDoesNotExist)

	_, err = service.Run(ctx, Input{UserID: 1, CardID: 1})
	require.Nil(t, err)
	require.Empty(t, repository.Cards)

	_, err = service.Run(ctx, Input{UserID: 1, CardID: 1})
	require.ErrorIs(t, err, card.ErrCardDoesNotExist)
}
