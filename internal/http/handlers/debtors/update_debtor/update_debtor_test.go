package updatedebtor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/debtor"
	service "github.com/d1d2-apps/ewallet-backend/internal/core/services/update_debtor"

	"github.com/go-chi/chi/v5"
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
	result.Debtor = debtor.Debtor{ID: input.DebtorID, Name: "Bob", Value: 100}
	return result, nil
}

func TestHandler(t *testing.T) {
	cases := []struct {
		id             string
		url            string
		body           string
		err            error
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			id:             "partial",
			url:            "/debtors/12",
			body:           `{"is_paid": true}`,
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{DebtorID: 12, IsPaid: c.Some(true)},
		},
		{
			id:             "all-fields",
			url:            "/debtors/12",
			body:           `{"name": "Bob", "description": "", "value": 250, "is_paid": false}`,
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				DebtorID:    12,
				Name:        c.Some("Bob"),
				Description: c.Some(""),
				Value:       c.Some(c.Money(250)),
				IsPaid:      c.Some(false),
			},
		},
		{id: "invalid-id", url: "/debtors/abc", body: `{}`, expectedStatus: http.StatusBadRequest},
		{id: "zero-value", url: "/debtors/12", body: `{"value": 0}`, expectedStatus: http.StatusBadRequest},
		{id: "empty-name", url: "/debtors/12", body: `{"name": ""}`, expectedStatus: http.StatusBadRequest},
		{
			id:             "not-found",
			url:            "/debtors/13",
			body:           `{"name": "Bob"}`,
			err:            debtor.ErrDebtorDoesNotExist,
			expectedStatus: http.StatusNotFound,
			expectedInput:  &service.Input{DebtorID: 13, Name: c.Some("Bob")},
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			s := &stubService{err: testcase.err}
			router := chi.NewRouter()
			router.Method(http.MethodPatch, "/debtors/{debtorID}", New(s))

			req := httptest.NewRequest(http.MethodPatch, testcase.url, strings.NewReader(testcase.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, testcase.expectedInput, s.input)
		})
	}
}
