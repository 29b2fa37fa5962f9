package deletecard

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/card"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
	service "github.com/d1d2-apps/ewallet-backend/internal/core/services/delete_card"
	"github.com/d1d2-apps/ewallet-backend/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
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

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawCardID := chi.URLParam(r, "cardID")
	cardID, err := strconv.ParseInt(rawCardID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid card ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), service.Input{CardID: card.ID(cardID)})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidAuthToken):
			response.RenderUnauthorized(rw)
		case errors.Is(err, card.ErrCardDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.RenderNoContent(rw)
}
