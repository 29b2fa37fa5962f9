package updatecard

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/card"
	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
	service "github.com/d1d2-apps/ewallet-backend/internal/core/services/update_card"
	"github.com/d1d2-apps/ewallet-backend/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
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
	Name       *string `json:"name"`
	HolderName *string `json:"holder_name"`
	Limit      *int64  `json:"limit"`
	DueDay     *uint8  `json:"due_day"`
}

type Result struct {
	Card response.Card `json:"card"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.NilOrNotEmpty, validation.Length(0, 256)),
		validation.Field(&i.HolderName, validation.NilOrNotEmpty, validation.Length(0, 256)),
		validation.Field(&i.Limit, validation.Min(int64(0))),
		validation.Field(&i.DueDay, validation.NilOrNotEmpty, validation.Max(uint8(31))),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawCardID := chi.URLParam(r, "cardID")
	cardID, err := strconv.ParseInt(rawCardID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid card ID", http.StatusBadRequest)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	serviceInput := service.Input{CardID: card.ID(cardID)}
	if input.Name != nil {
		serviceInput.Name = c.Some(*input.Name)
	}
	if input.HolderName != nil {
		serviceInput.HolderName = c.Some(*input.HolderName)
	}
	if input.Limit != nil {
		serviceInput.Limit = c.Some(c.Money(*input.Limit))
	}
	if input.DueDay != nil {
		serviceInput.DueDay = c.Some(*input.DueDay)
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidAuthToken):
			response.RenderUnauthorized(rw)
		case errors.Is(err, card.ErrCardDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		case errors.Is(err, card.ErrInvalidLimit), errors.Is(err, card.ErrInvalidDueDay):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	var rc response.Card
	rc.FromDomainType(result.Card)
	response.Render(rw, Result{Card: rc}, http.StatusOK)
}
