package createcard

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"regexp"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/card"
	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
	service "github.com/d1d2-apps/ewallet-backend/internal/core/services/create_card"
	"github.com/d1d2-apps/ewallet-backend/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

var lastDigitsRegexp = regexp.MustCompile(`^[0-9]{4}$`)

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
	Name       string `json:"name"`
	HolderName string `json:"holder_name"`
	LastDigits string `json:"last_digits"`
	Brand      string `json:"brand"`
	Limit      int64  `json:"limit"`
	DueDay     uint8  `json:"due_day"`
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
		validation.Field(&i.Name, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.HolderName, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.LastDigits, validation.Required, validation.Match(lastDigitsRegexp)),
		validation.Field(&i.Brand, validation.Required),
		validation.Field(&i.Limit, validation.Min(int64(0))),
		validation.Field(&i.DueDay, validation.Required, validation.Max(uint8(31))),
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
	brand, err := card.ParseBrand(input.Brand)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			Name:       input.Name,
			HolderName: input.HolderName,
			LastDigits: input.LastDigits,
			Brand:      brand,
			Limit:      c.Money(input.Limit),
			DueDay:     input.DueDay,
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidAuthToken):
			response.RenderUnauthorized(rw)
		case errors.Is(err, card.ErrInvalidLimit), errors.Is(err, card.ErrInvalidDueDay):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	var rc response.Card
	rc.FromDomainType(result.Card)
	response.Render(rw, Result{Card: rc}, http.StatusCreated)
}
