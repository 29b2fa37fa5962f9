package register

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	ratelimiter "github.com/d1d2-apps/ewallet-backend/internal/core/domain/rate_limiter"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
	service "github.com/d1d2-apps/ewallet-backend/internal/core/services/register"
	"github.com/d1d2-apps/ewallet-backend/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Email                string `json:"email"`
	Name                 string `json:"name"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type Result struct {
	User  response.User `json:"user"`
	Token string        `json:"token"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Name, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Password, validation.Required, validation.Length(8, 256)),
		validation.Field(&i.PasswordConfirmation, validation.Required, validation.Length(0, 256)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			Email:                c.NewEmail(input.Email),
			Name:                 input.Name,
			Password:             user.RawPassword(input.Password),
			PasswordConfirmation: user.RawPassword(input.PasswordConfirmation),
			ClientIP:             clientIP(r),
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrPasswordsDoNotMatch):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		case errors.Is(err, user.ErrEmailAlreadyExists):
			response.RenderError(rw, err.Error(), http.StatusConflict)
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	u := response.User{}
	u.FromDomainUser(result.User)
	response.Render(rw, Result{User: u, Token: string(result.Token)}, http.StatusCreated)
}

// clientIP strips the port from RemoteAddr, which the RealIP middleware may
// already have replaced with a bare address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
