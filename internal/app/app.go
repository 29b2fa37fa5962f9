package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/d1d2-apps/ewallet-backend/internal/app/deps"
	"github.com/d1d2-apps/ewallet-backend/internal/app/services"
	"github.com/d1d2-apps/ewallet-backend/internal/http/handlers/auth"
	"github.com/d1d2-apps/ewallet-backend/internal/http/handlers/auth/authenticate"
	forgotpassword "github.com/d1d2-apps/ewallet-backend/internal/http/handlers/auth/forgot_password"
	"github.com/d1d2-apps/ewallet-backend/internal/http/handlers/auth/register"
	resetpassword "github.com/d1d2-apps/ewallet-backend/internal/http/handlers/auth/reset_password"
	createcard "github.com/d1d2-apps/ewallet-backend/internal/http/handlers/cards/create_card"
	deletecard "github.com/d1d2-apps/ewallet-backend/internal/http/handlers/cards/delete_card"
	listcards "github.com/d1d2-apps/ewallet-backend/internal/http/handlers/cards/list_cards"
	updatecard "github.com/d1d2-apps/ewallet-backend/internal/http/handlers/cards/update_card"
	createdebtor "github.com/d1d2-apps/ewallet-backend/internal/http/handlers/debtors/create_debtor"
	deletedebtor "github.com/d1d2-apps/ewallet-backend/internal/http/handlers/debtors/delete_debtor"
	listdebtors "github.com/d1d2-apps/ewallet-backend/internal/http/handlers/debtors/list_debtors"
	updatedebtor "github.com/d1d2-apps/ewallet-backend/internal/http/handlers/debtors/update_debtor"
	changepassword "github.com/d1d2-apps/ewallet-backend/internal/http/handlers/user/change_password"
	deleteuser "github.com/d1d2-apps/ewallet-backend/internal/http/handlers/user/delete_user"
	"github.com/d1d2-apps/ewallet-backend/internal/http/handlers/user/me"
	updateuser "github.com/d1d2-apps/ewallet-backend/internal/http/handlers/user/update_user"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(allowedOrigins []string, s *services.Services) chi.Router {
	authRouter := chi.NewRouter()
	authRouter.Use(middleware.RealIP)
	authRouter.Method(http.MethodPost, "/login", authenticate.New(s.Authenticate))
	authRouter.Method(http.MethodPost, "/register", register.New(s.Register))
	authRouter.Method(http.MethodPost, "/forgot-password", forgotpassword.New(s.SendForgotPasswordEmail))
	authRouter.Method(http.MethodPost, "/reset-password", resetpassword.New(s.ResetPassword))

	profileRouter := chi.NewRouter()
	profileRouter.Use(auth.SetAuthTokenToContext)
	profileRouter.Method(http.MethodGet, "/me", me.New(s.GetUser))
	profileRouter.Method(http.MethodPatch, "/me", updateuser.New(s.UpdateUser))
	profileRouter.Method(http.MethodPut, "/password", changepassword.New(s.ChangePassword))
	profileRouter.Method(http.MethodDelete, "/me", deleteuser.New(s.DeleteUser))

	debtorsRouter := chi.NewRouter()
	debtorsRouter.Use(auth.SetAuthTokenToContext)
	debtorsRouter.Method(http.MethodGet, "/", listdebtors.New(s.ListDebtors))
	debtorsRouter.Method(http.MethodPost, "/", createdebtor.New(s.CreateDebtor))
	debtorsRouter.Method(http.MethodPatch, "/{debtorID:[0-9]+}", updatedebtor.New(s.UpdateDebtor))
	debtorsRouter.Method(http.MethodDelete, "/{debtorID:[0-9]+}", deletedebtor.New(s.DeleteDebtor))

	cardsRouter := chi.NewRouter()
	cardsRouter.Use(auth.SetAuthTokenToContext)
	cardsRouter.Method(http.MethodGet, "/", listcards.New(s.ListCards))
	cardsRouter.Method(http.MethodPost, "/", createcard.New(s.CreateCard))
	cardsRouter.Method(http.MethodPatch, "/{cardID:[0-9]+}", updatecard.New(s.UpdateCard))
	cardsRouter.Method(http.MethodDelete, "/{cardID:[0-9]+}", deletecard.New(s.DeleteCard))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/profile", profileRouter)
	router.Mount("/debtors", debtorsRouter)
	router.Mount("/cards", cardsRouter)

	return router
}

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	var handler http.Handler = NewRouter(deps.Config.AllowedOrigins, s)
	if deps.Config.SentryDsn != nil {
		handler = sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle(handler)
	}

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler:           handler,
		Addr:              address,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
