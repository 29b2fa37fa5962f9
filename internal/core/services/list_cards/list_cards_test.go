package listcards

import (
	"context"
	"testing"
	"time"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/card"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"

	"github.com/stretchr/testify/require"
)

func TestListCardsReturnsOnlyOwnCards(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repository := card.NewFakeRepository()
	repository.Cards = []card.Card{
		{ID: 1, UserID: 1, Name: "Main", LastDigits: "1234", CreatedAt: now},
		{ID: 2, UserID: 2, Name: "Foreign", LastDigits: "9999", CreatedAt: now},
	}
	service := New(logging.NewFakeLogger(), repository)

	result, err := service.Run(context.Background(), Input{UserID: 1})
	require.Nil(t, err)
	require.Len(t, result.Cards, 1)
	require.Equal(t, card.ID(1), result.Cards[0].ID)
}

func TestListCardsRepositoryError(t *testing.T) {
	repository := card.NewFakeRepository()
	repository.ReturnError = true
	log := logging.NewFakeLogger()
	service := New(log, repository)

	_, err := service.Run(context.Background(), Input{UserID: 1})
	require.NotNil(t, err)
	require.Equal(t, 1, log.CountByLevel(logging.ERROR))
}
