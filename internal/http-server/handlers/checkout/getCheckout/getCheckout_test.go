package getCheckout

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"culturehub/internal/checkout"
	"culturehub/internal/http-server/handlers/checkout/getCheckout/mocks"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/handlers/slogdiscard"
	"culturehub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetCheckoutHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.SessionGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.SessionGetter) {
				m.On("Get", mock.Anything, "u-1", "cs-1").
					Return(&checkout.Session{ID: "cs-1", State: checkout.StateAttendeeInfo, Quantity: 2}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Unknown session",
			mockSetup: func(m *mocks.SessionGetter) {
				m.On("Get", mock.Anything, "u-1", "cs-1").Return(nil, storage.ErrSessionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"checkout session not found"}`,
		},
		{
			name: "Session of another user",
			mockSetup: func(m *mocks.SessionGetter) {
				m.On("Get", mock.Anything, "u-1", "cs-1").Return(nil, checkout.ErrForeignSession)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"checkout session not found"}`,
		},
		{
			name: "Store error",
			mockSetup: func(m *mocks.SessionGetter) {
				m.On("Get", mock.Anything, "u-1", "cs-1").Return(nil, errors.New("redis down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to load checkout session"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewSessionGetter(t)
			tc.mockSetup(mockGetter)

			router := chi.NewRouter()
			router.Get("/checkout/{id}", New(logger, mockGetter))

			req := httptest.NewRequest("GET", "/checkout/cs-1", nil)
			req = req.WithContext(auth.WithSession(req.Context(), &auth.Session{UserID: "u-1"}))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
				return
			}

			var resp SessionResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "OK", resp.Status)
			assert.Equal(t, checkout.StateAttendeeInfo, resp.Session.State)
			assert.Equal(t, 2, resp.Session.Quantity)
		})
	}
}
