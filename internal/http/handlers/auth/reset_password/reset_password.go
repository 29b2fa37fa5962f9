package resetpassword

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
	service "github.com/d1d2-apps/ewallet-backend/internal/core/services/reset_password"
	"github.com/d1d2-apps/ewallet-backend/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
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
	Token                string `json:"token"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Token, validation.Required, validation.Length(0, 1024)),
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

	_, err := h.service.Run(
		r.Context(),
		service.Input{
			Token:                user.PasswordResetTokenID(input.Token),
			Password:             user.RawPassword(input.Password),
			PasswordConfirmation: user.RawPassword(input.PasswordConfirmation),
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrPasswordsDoNotMatch),
			errors.Is(err, user.ErrInvalidPasswordResetToken),
			errors.Is(err, user.ErrExpiredPasswordResetToken):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.RenderNoContent(rw)
}
