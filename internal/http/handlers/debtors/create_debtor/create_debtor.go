package createdebtor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/debtor"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
	service "github.com/d1d2-apps/ewallet-backend/internal/core/services/create_debtor"
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
	Name        string `json:"name"`
	Description string `json:"description"`
	Value       int64  `json:"value"`
}

type Result struct {
	Debtor response.Debtor `json:"debtor"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Description, validation.Length(0, 1024)),
		validation.Field(&i.Value, validation.Required, validation.Min(int64(1))),
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
			Name:        input.Name,
			Description: input.Description,
			Value:       c.Money(input.Value),
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidAuthToken):
			response.RenderUnauthorized(rw)
		case errors.Is(err, debtor.ErrInvalidValue):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	var d response.Debtor
	d.FromDomainType(result.Debtor)
	response.Render(rw, Result{Debtor: d}, http.StatusCreated)
}
