package listdebtors

import (
	"errors"
	"net/http"
	"strconv"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
	service "github.com/d1d2-apps/ewallet-backend/internal/core/services/list_debtors"
	"github.com/d1d2-apps/ewallet-backend/internal/http/handlers/response"
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

type Result struct {
	Debtors []response.Debtor `json:"debtors"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := service.Input{}

	if rawIsPaid := r.URL.Query().Get("is_paid"); rawIsPaid != "" {
		isPaid, err := strconv.ParseBool(rawIsPaid)
		if err != nil {
			response.RenderError(rw, "invalid is_paid value", http.StatusBadRequest)
			return
		}
		input.IsPaid = c.Some(isPaid)
	}

	result, err := h.service.Run(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidAuthToken):
			response.RenderUnauthorized(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(rw, Result{Debtors: response.NewDebtors(result.Debtors)}, http.StatusOK)
}
