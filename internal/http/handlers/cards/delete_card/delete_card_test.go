package deletecard

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/card"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	service "github.com/d1d2-apps/ewallet-backend/internal/core/services/delete_card"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	return result, s.err
}

func TestHandler(t *testing.T) {
	cases := []struct {
		id             string
		url            string
		err            error
		expectedStatus int
		expectedInput  *service.Input
	}{
		{id: "success", url: "/cards/5", expectedStatus: http.StatusNoContent, expectedInput: &service.Input{CardID: 5}},
		{id: "invalid-id", url: "/cards/five", expectedStatus: http.StatusBadRequest},
		{id: "overflow-id", url: "/cards/99999999999999999999999", expectedStatus: http.StatusBadRequest},
		{
			id:             "not-found",
			url:            "/cards/6",
			err:            card.ErrCardDoesNotExist,
			expectedStatus: http.StatusNotFound,
			expectedInput:  &service.Input{CardID: 6},
		},
		{
			id:             "unauthorized",
			url:            "/cards/6",
			err:            user.ErrInvalidAuthToken,
			expectedStatus: http.StatusUnauthorized,
			expectedInput:  &service.Input{CardID: 6},
		},
		{
			id:             "internal-error",
			url:            "/cards/6",
			err:            fmt.Errorf("db is down"),
			expectedStatus: http.StatusInternalServerError,
			expectedInput:  &service.Input{CardID: 6},
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			s := &stubService{err: testcase.err}
			router := chi.NewRouter()
			router.Method(http.MethodDelete, "/cards/{cardID}", New(s))

			req := httptest.NewRequest(http.MethodDelete, testcase.url, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, testcase.expectedInput, s.input)
		})
	}
}
