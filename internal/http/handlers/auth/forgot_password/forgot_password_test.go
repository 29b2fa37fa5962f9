package forgotpassword

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	ratelimiter "github.com/d1d2-apps/ewallet-backend/internal/core/domain/rate_limiter"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	service "github.com/d1d2-apps/ewallet-backend/internal/core/services/send_forgot_password_email"

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
	expectedInput := &service.Input{Email: c.Email("john@example.com")}

	cases := []struct {
		id             string
		body           string
		err            error
		expectedStatus int
		expectedInput  *service.Input
	}{
		{id: "success", body: `{"email": "John@example.com"}`, expectedStatus: http.StatusNoContent, expectedInput: expectedInput},
		{id: "invalid-json", body: `email`, expectedStatus: http.StatusBadRequest},
		{id: "invalid-email", body: `{"email": "john"}`, expectedStatus: http.StatusBadRequest},
		{
			id:             "user-does-not-exist",
			body:           `{"email": "john@example.com"}`,
			err:            user.ErrUserDoesNotExist,
			expectedStatus: http.StatusNotFound,
			expectedInput:  expectedInput,
		},
		{
			id:             "rate-limit",
			body:           `{"email": "john@example.com"}`,
			err:            ratelimiter.ErrRateLimitExceeded,
			expectedStatus: http.StatusTooManyRequests,
			expectedInput:  expectedInput,
		},
		{
			id:             "mail-failure",
			body:           `{"email": "john@example.com"}`,
			err:            fmt.Errorf("ses is down"),
			expectedStatus: http.StatusInternalServerError,
			expectedInput:  expectedInput,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/forgot-password", strings.NewReader(testcase.body))
			s := &stubService{err: testcase.err}
			rr := httptest.NewRecorder()
			New(s).ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, testcase.expectedInput, s.input)
		})
	}
}
