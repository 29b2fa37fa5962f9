package createdebtor

import (
	"context"
	"testing"
	"time"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/debtor"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"

	"github.com/stretchr/testify/suite"
)

var NOW = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Repository *debtor.FakeRepository
	Service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Repository = debtor.NewFakeRepository()
	suite.Service = New(logging.NewFakeLogger(), suite.Repository, func() time.Time { return NOW })
}

func TestCreateDebtorService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(context.Background(), Input{
		UserID:      1,
		Name:        "John",
		Description: "Dinner",
		Value:       4550,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.NotZero(result.Debtor.ID)
	assert.Equal("John", result.Debtor.Name)
	assert.False(result.Debtor.IsPaid)
	assert.Equal(NOW, result.Debtor.CreatedAt)
	assert.Len(suite.Repository.Debtors, 1)
}

func (suite *testSuite) TestNonPositiveValue() {
	_, err := suite.Service.Run(context.Background(), Input{UserID: 1, Name: "John", Value: 0})

	assert := suite.Require()
	assert.ErrorIs(err, debtor.ErrInvalidValue)
	assert.Empty(suite.Repository.Debtors)
}
