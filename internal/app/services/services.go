package services

import (
	"github.com/d1d2-apps/ewallet-backend/internal/app/deps"
	drl "github.com/d1d2-apps/ewallet-backend/internal/core/domain/rate_limiter"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services/auth"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services/authenticate"
	changepassword "github.com/d1d2-apps/ewallet-backend/internal/core/services/change_password"
	createcard "github.com/d1d2-apps/ewallet-backend/internal/core/services/create_card"
	createdebtor "github.com/d1d2-apps/ewallet-backend/internal/core/services/create_debtor"
	deletecard "github.com/d1d2-apps/ewallet-backend/internal/core/services/delete_card"
	deletedebtor "github.com/d1d2-apps/ewallet-backend/internal/core/services/delete_debtor"
	deleteuser "github.com/d1d2-apps/ewallet-backend/internal/core/services/delete_user"
	generatepasswordresettoken "github.com/d1d2-apps/ewallet-backend/internal/core/services/generate_password_reset_token"
	getuser "github.com/d1d2-apps/ewallet-backend/internal/core/services/get_user"
	listcards "github.com/d1d2-apps/ewallet-backend/internal/core/services/list_cards"
	listdebtors "github.com/d1d2-apps/ewallet-backend/internal/core/services/list_debtors"
	ratelimiting "github.com/d1d2-apps/ewallet-backend/internal/core/services/rate_limiting"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services/register"
	resetpassword "github.com/d1d2-apps/ewallet-backend/internal/core/services/reset_password"
	sendforgotpasswordemail "github.com/d1d2-apps/ewallet-backend/internal/core/services/send_forgot_password_email"
	updatecard "github.com/d1d2-apps/ewallet-backend/internal/core/services/update_card"
	updatedebtor "github.com/d1d2-apps/ewallet-backend/internal/core/services/update_debtor"
	updateuser "github.com/d1d2-apps/ewallet-backend/internal/core/services/update_user"
)

var (
	AuthenticateRateLimit            = drl.Limit{Interval: drl.Hour, Value: 10}
	SendForgotPasswordEmailRateLimit = drl.Limit{Interval: drl.Hour, Value: 3}
	RegisterRateLimit                = drl.Limit{Interval: drl.Day, Value: 20}
)

type Services struct {
	Authenticate               services.Service[authenticate.Input, authenticate.Result]
	Register                   services.Service[register.Input, register.Result]
	GeneratePasswordResetToken services.Service[generatepasswordresettoken.Input, generatepasswordresettoken.Result]
	SendForgotPasswordEmail    services.Service[sendforgotpasswordemail.Input, sendforgotpasswordemail.Result]
	ResetPassword              services.Service[resetpassword.Input, resetpassword.Result]

	GetUser        services.Service[getuser.Input, getuser.Result]
	UpdateUser     services.Service[updateuser.Input, updateuser.Result]
	ChangePassword services.Service[changepassword.Input, changepassword.Result]
	DeleteUser     services.Service[deleteuser.Input, deleteuser.Result]

	CreateDebtor services.Service[createdebtor.Input, createdebtor.Result]
	ListDebtors  services.Service[listdebtors.Input, listdebtors.Result]
	UpdateDebtor services.Service[updatedebtor.Input, updatedebtor.Result]
	DeleteDebtor services.Service[deletedebtor.Input, deletedebtor.Result]

	CreateCard services.Service[createcard.Input, createcard.Result]
	ListCards  services.Service[listcards.Input, listcards.Result]
	UpdateCard services.Service[updatecard.Input, updatecard.Result]
	DeleteCard services.Service[deletecard.Input, deletecard.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.Authenticate = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		AuthenticateRateLimit,
		authenticate.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
			deps.AuthTokens,
		),
	)
	s.Register = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		RegisterRateLimit,
		register.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.PasswordHasher,
			deps.AuthTokens,
			deps.Now,
		),
	)
	s.GeneratePasswordResetToken = generatepasswordresettoken.New(
		deps.Logger,
		deps.PasswordResetTokenRepository,
		deps.PasswordResetTokenGenerator,
		deps.Config.ResetTokenTTLMinutes,
		deps.Now,
	)
	s.SendForgotPasswordEmail = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		SendForgotPasswordEmailRateLimit,
		sendforgotpasswordemail.New(
			deps.Logger,
			deps.UserRepository,
			s.GeneratePasswordResetToken,
			deps.PasswordResetEmailRenderer,
			deps.MailSender,
			deps.Config.MailSender,
		),
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordResetTokenRepository,
		deps.PasswordHasher,
		deps.Now,
	)

	s.GetUser = withAuthentication(deps, getuser.New())
	s.UpdateUser = withAuthentication(deps, updateuser.New(deps.Logger, deps.UserRepository, deps.Now))
	s.ChangePassword = withAuthentication(
		deps,
		changepassword.New(deps.Logger, deps.UserRepository, deps.PasswordHasher),
	)
	s.DeleteUser = withAuthentication(deps, deleteuser.New(deps.Logger, deps.UserRepository))

	s.CreateDebtor = withAuthentication(deps, createdebtor.New(deps.Logger, deps.DebtorRepository, deps.Now))
	s.ListDebtors = withAuthentication(deps, listdebtors.New(deps.Logger, deps.DebtorRepository))
	s.UpdateDebtor = withAuthentication(deps, updatedebtor.New(deps.Logger, deps.DebtorRepository, deps.Now))
	s.DeleteDebtor = withAuthentication(deps, deletedebtor.New(deps.Logger, deps.DebtorRepository))

	s.CreateCard = withAuthentication(deps, createcard.New(deps.Logger, deps.CardRepository, deps.Now))
	s.ListCards = withAuthentication(deps, listcards.New(deps.Logger, deps.CardRepository))
	s.UpdateCard = withAuthentication(deps, updatecard.New(deps.Logger, deps.CardRepository, deps.Now))
	s.DeleteCard = withAuthentication(deps, deletecard.New(deps.Logger, deps.CardRepository))

	return s
}

func withAuthentication[T auth.Input, S any](deps *deps.Deps, inner services.Service[T, S]) services.Service[T, S] {
	return auth.WithAuthentication(deps.Logger, deps.AuthTokens, deps.UserRepository, inner)
}
