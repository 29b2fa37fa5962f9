package resetpassword

import (
	"context"
	"testing"
	"time"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/mail"
	uow "github.com/d1d2-apps/ewallet-backend/internal/core/domain/unit_of_work"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services/authenticate"
	generatetoken "github.com/d1d2-apps/ewallet-backend/internal/core/services/generate_password_reset_token"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services/register"
	sendemail "github.com/d1d2-apps/ewallet-backend/internal/core/services/send_forgot_password_email"

	"github.com/stretchr/testify/require"
)

func TestRegisterThenResetPasswordScenario(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	log := logging.NewFakeLogger()
	unitOfWork := uow.NewFakeUnitOfWork()
	users := unitOfWork.Context.UserRepository
	tokens := unitOfWork.Context.PasswordResetTokenRepository
	hasher := user.NewFakePasswordHasher()
	issuer := user.NewFakeAuthTokenIssuer()
	sender := mail.NewFakeSender()

	registerUser := register.New(log, unitOfWork, hasher, issuer, clock)
	authenticateUser := authenticate.New(log, users, hasher, issuer)
	generateToken := generatetoken.New(log, tokens, user.NewFakePasswordResetTokenGenerator(), 30, clock)
	sendForgotPasswordEmail := sendemail.New(
		log,
		users,
		generateToken,
		user.NewFakePasswordResetEmailRenderer(),
		sender,
		"no-reply@ewallet.test",
	)
	resetPassword := New(log, users, tokens, hasher, clock)

	_, err := registerUser.Run(ctx, register.Input{
		Email:                "ana@example.com",
		Name:                 "Ana",
		Password:             "abc12345",
		PasswordConfirmation: "abc12345",
	})
	require.Nil(t, err)
	registered, err := users.GetByEmail(ctx, "ana@example.com")
	require.Nil(t, err)

	_, err = sendForgotPasswordEmail.Run(ctx, sendemail.Input{Email: "ana@example.com"})
	require.Nil(t, err)
	require.Equal(t, 1, tokens.Count())
	t1 := tokens.Tokens[0].ID

	now = now.Add(5 * time.Minute)
	_, err = sendForgotPasswordEmail.Run(ctx, sendemail.Input{Email: "ana@example.com"})
	require.Nil(t, err)
	require.Equal(t, 1, tokens.Count())

	_, err = resetPassword.Run(ctx, Input{Token: t1, Password: "newpass1", PasswordConfirmation: "newpass1"})
	require.Nil(t, err)
	updated, err := users.GetByEmail(ctx, "ana@example.com")
	require.Nil(t, err)
	require.NotEqual(t, registered.PasswordHash, updated.PasswordHash)
	require.True(t, hasher.ValidatePassword("newpass1", updated.PasswordHash))

	_, err = resetPassword.Run(ctx, Input{Token: t1, Password: "newpass2", PasswordConfirmation: "newpass2"})
	require.ErrorIs(t, err, user.ErrExpiredPasswordResetToken)

	_, err = authenticateUser.Run(ctx, authenticate.Input{Email: "ana@example.com", Password: "abc12345"})
	require.ErrorIs(t, err, user.ErrInvalidCredentials)
	result, err := authenticateUser.Run(ctx, authenticate.Input{Email: "ana@example.com", Password: "newpass1"})
	require.Nil(t, err)
	require.Equal(t, "Ana", result.User.Name)

	generated, err := generateToken.Run(ctx, generatetoken.Input{UserID: result.User.ID})
	require.Nil(t, err)
	require.NotEqual(t, t1, generated.Token.ID)
	require.Equal(t, 2, tokens.Count())
}
