package me

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	service "github.com/d1d2-apps/ewallet-backend/internal/core/services/get_user"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err error
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	result.User = user.User{ID: 7, Email: "john@example.com", Name: "John", PasswordHash: "hash"}
	return result, nil
}

func TestHandler(t *testing.T) {
	cases := []struct {
		id             string
		err            error
		expectedStatus int
	}{
		{id: "success", expectedStatus: http.StatusOK},
		{id: "unauthorized", err: user.ErrInvalidAuthToken, expectedStatus: http.StatusUnauthorized},
		{id: "internal-error", err: fmt.Errorf("db is down"), expectedStatus: http.StatusInternalServerError},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/profile/me", nil)
			rr := httptest.NewRecorder()
			New(&stubService{err: testcase.err}).ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
		})
	}
}

func TestHandlerDoesNotRenderPasswordHash(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/profile/me", nil)
	rr := httptest.NewRecorder()
	New(&stubService{}).ServeHTTP(rr, req)

	assert.NotContains(t, rr.Body.String(), "hash")
	assert.Contains(t, rr.Body.String(), `"email":"john@example.com"`)
}
