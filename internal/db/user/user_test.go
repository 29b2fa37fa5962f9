package user

import (
	"context"
	"errors"
	"testing"
	"time"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var NOW = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

var USER_COLUMNS = []string{"id", "email", "name", "password_hash", "created_at", "updated_at"}

type testSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo *PgxUserRepository
}

func (suite *testSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	suite.Require().Nil(err)
	suite.mock = mock
	suite.repo = NewPgxRepository(mock)
}

func (suite *testSuite) TearDownTest() {
	suite.Require().Nil(suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestPgxUserRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func userRow() *pgxmock.Rows {
	return pgxmock.NewRows(USER_COLUMNS).
		AddRow(int64(1), "ana@example.com", "Ana", "hash", NOW, NOW)
}

func (suite *testSuite) TestCreateSuccess() {
	suite.mock.ExpectQuery(`INSERT INTO "user"`).
		WithArgs("ana@example.com", "Ana", "hash", NOW).
		WillReturnRows(userRow())

	u, err := suite.repo.Create(context.Background(), user.CreateUserInput{
		Email:        "ana@example.com",
		Name:         "Ana",
		PasswordHash: "hash",
		CreatedAt:    NOW,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(user.ID(1), u.ID)
	assert.Equal(c.Email("ana@example.com"), u.Email)
	assert.Equal(user.PasswordHash("hash"), u.PasswordHash)
	assert.Equal(NOW, u.UpdatedAt)
}

func (suite *testSuite) TestCreateDuplicateEmail() {
	suite.mock.ExpectQuery(`INSERT INTO "user"`).
		WithArgs("ana@example.com", "Ana", "hash", NOW).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: EMAIL_CONSTRAINT_NAME})

	_, err := suite.repo.Create(context.Background(), user.CreateUserInput{
		Email:        "ana@example.com",
		Name:         "Ana",
		PasswordHash: "hash",
		CreatedAt:    NOW,
	})

	suite.Require().ErrorIs(err, user.ErrEmailAlreadyExists)
}

func (suite *testSuite) TestGetByEmail() {
	suite.mock.ExpectQuery(`FROM "user" WHERE email = \$1`).
		WithArgs("ana@example.com").
		WillReturnRows(userRow())

	u, err := suite.repo.GetByEmail(context.Background(), "ana@example.com")

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal("Ana", u.Name)
}

func (suite *testSuite) TestGetByIDNotFound() {
	suite.mock.ExpectQuery(`FROM "user" WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows(USER_COLUMNS))

	_, err := suite.repo.GetByID(context.Background(), 5)

	suite.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *testSuite) TestUpdateOnlyName() {
	suite.mock.ExpectQuery(`UPDATE "user" SET`).
		WithArgs(
			int64(1),
			pgtype.Text{},
			pgtype.Text{String: "Ana Maria", Valid: true},
			NOW,
		).
		WillReturnRows(pgxmock.NewRows(USER_COLUMNS).
			AddRow(int64(1), "ana@example.com", "Ana Maria", "hash", NOW, NOW))

	u, err := suite.repo.Update(context.Background(), user.UpdateUserInput{
		ID:        1,
		Name:      c.Some("Ana Maria"),
		UpdatedAt: NOW,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal("Ana Maria", u.Name)
}

func (suite *testSuite) TestSetPassword() {
	suite.mock.ExpectExec(`UPDATE "user" SET password_hash`).
		WithArgs(int64(1), "new-hash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.SetPassword(context.Background(), 1, "new-hash")

	suite.Require().Nil(err)
}

func (suite *testSuite) TestSetPasswordMissingUser() {
	suite.mock.ExpectExec(`UPDATE "user" SET password_hash`).
		WithArgs(int64(9), "new-hash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.SetPassword(context.Background(), 9, "new-hash")

	suite.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *testSuite) TestDeleteError() {
	dbErr := errors.New("connection refused")
	suite.mock.ExpectExec(`DELETE FROM "user"`).
		WithArgs(int64(1)).
		WillReturnError(dbErr)

	err := suite.repo.Delete(context.Background(), 1)

	suite.Require().ErrorIs(err, dbErr)
}

func TestIsEmailUniqueViolation(t *testing.T) {
	require.True(t, isEmailUniqueViolation(&pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: EMAIL_CONSTRAINT_NAME,
	}))
	require.False(t, isEmailUniqueViolation(&pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "another_idx",
	}))
	require.False(t, isEmailUniqueViolation(errors.New("boom")))
	require.False(t, isEmailUniqueViolation(nil))
}
