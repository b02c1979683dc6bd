package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"culturehub/internal/http-server/middleware/auth/mocks"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/handlers/slogdiscard"
	"culturehub/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func whoAmI(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	_, _ = w.Write([]byte(session.UserID))
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		header         string
		mockSetup      func(m *mocks.TokenVerifier)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Valid token",
			header: "Bearer good-token",
			mockSetup: func(m *mocks.TokenVerifier) {
				m.On("Verify", "good-token").Return(&auth.Session{UserID: "u-1", Role: models.RoleUser}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "u-1",
		},
		{
			name:           "Missing header",
			mockSetup:      func(m *mocks.TokenVerifier) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"missing bearer token"}`,
		},
		{
			name:           "Wrong scheme",
			header:         "Basic dXNlcjpwYXNz",
			mockSetup:      func(m *mocks.TokenVerifier) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"missing bearer token"}`,
		},
		{
			name:           "Empty token",
			header:         "Bearer   ",
			mockSetup:      func(m *mocks.TokenVerifier) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"missing bearer token"}`,
		},
		{
			name:   "Rejected token",
			header: "Bearer expired",
			mockSetup: func(m *mocks.TokenVerifier) {
				m.On("Verify", "expired").Return(nil, auth.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"invalid token"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockVerifier := mocks.NewTokenVerifier(t)
			tc.mockSetup(mockVerifier)

			router := chi.NewRouter()
			router.Use(New(logger, mockVerifier))
			router.Get("/me", whoAmI)

			req := httptest.NewRequest("GET", "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if rr.Code == http.StatusOK {
				assert.Equal(t, tc.expectedBody, rr.Body.String())
			} else {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		session        *auth.Session
		expectedStatus int
	}{
		{name: "Admin allowed", session: &auth.Session{UserID: "a", Role: models.RoleAdmin}, expectedStatus: http.StatusOK},
		{name: "Organizer allowed", session: &auth.Session{UserID: "o", Role: models.RoleOrganizer}, expectedStatus: http.StatusOK},
		{name: "User forbidden", session: &auth.Session{UserID: "u", Role: models.RoleUser}, expectedStatus: http.StatusForbidden},
		{name: "No session", expectedStatus: http.StatusUnauthorized},
	}

	handler := RequireRole(models.RoleOrganizer, models.RoleAdmin)(http.HandlerFunc(whoAmI))

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("POST", "/wizard/submit", nil)
			if tc.session != nil {
				req = req.WithContext(auth.WithSession(req.Context(), tc.session))
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestVerifierErrorIsNotLeaked(t *testing.T) {
	mockVerifier := mocks.NewTokenVerifier(t)
	mockVerifier.On("Verify", "t").Return(nil, errors.New("signature is invalid: key abc"))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer t")
	rr := httptest.NewRecorder()

	New(slogdiscard.NewDiscardLogger(), mockVerifier)(http.HandlerFunc(whoAmI)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NotContains(t, rr.Body.String(), "abc")
}
