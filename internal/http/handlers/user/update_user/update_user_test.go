package updateuser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	service "github.com/d1d2-apps/ewallet-backend/internal/core/services/update_user"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	result.User = user.User{ID: 1, Email: input.Email.Value, Name: input.Name.Value}
	return result, nil
}

func TestHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		err            error
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			id:             "empty",
			body:           `{}`,
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{},
		},
		{
			id:             "name",
			body:           `{"name": "Jane"}`,
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{Name: c.Some("Jane")},
		},
		{
			id:             "email",
			body:           `{"email": "Jane@Example.com"}`,
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{Email: c.Some(c.Email("jane@example.com"))},
		},
		{
			id:             "both",
			body:           `{"email": "jane@example.com", "name": "Jane"}`,
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				Email: c.Some(c.Email("jane@example.com")),
				Name:  c.Some("Jane"),
			},
		},
		{id: "empty-name", body: `{"name": ""}`, expectedStatus: http.StatusBadRequest},
		{id: "invalid-email", body: `{"email": "jane"}`, expectedStatus: http.StatusBadRequest},
		{id: "invalid-json", body: `{"name": 1}`, expectedStatus: http.StatusBadRequest},
		{
			id:             "email-taken",
			body:           `{"email": "jane@example.com"}`,
			err:            user.ErrEmailAlreadyExists,
			expectedStatus: http.StatusConflict,
			expectedInput:  &service.Input{Email: c.Some(c.Email("jane@example.com"))},
		},
		{
			id:             "unauthorized",
			body:           `{"name": "Jane"}`,
			err:            user.ErrInvalidAuthToken,
			expectedStatus: http.StatusUnauthorized,
			expectedInput:  &service.Input{Name: c.Some("Jane")},
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/profile/me", strings.NewReader(testcase.body))
			s := &stubService{err: testcase.err}
			rr := httptest.NewRecorder()
			New(s).ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, testcase.expectedInput, s.input)
		})
	}
}
