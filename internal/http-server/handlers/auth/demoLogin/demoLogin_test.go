package demoLogin

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"culturehub/internal/http-server/handlers/auth/demoLogin/mocks"
	"culturehub/internal/lib/logger/handlers/slogdiscard"
	"culturehub/internal/models"
	"culturehub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDemoLoginHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	demo := &models.UserProfile{ID: "u-demo", Email: "demo@culturehub.local", Role: models.RoleOrganizer}
	expiresAt := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		demoEmail      string
		usersSetup     func(m *mocks.UserProvider)
		issuerSetup    func(m *mocks.TokenIssuer)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Success",
			demoEmail: "demo@culturehub.local",
			usersSetup: func(m *mocks.UserProvider) {
				m.On("GetUserByEmail", mock.Anything, "demo@culturehub.local").Return(demo, nil)
			},
			issuerSetup: func(m *mocks.TokenIssuer) {
				m.On("Issue", demo).Return("token-demo", expiresAt, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","token":"token-demo","expires_at":"2026-01-02T00:00:00Z",` +
				`"user":{"id":"u-demo","email":"demo@culturehub.local","full_name":"","role":"organizer","created_at":"0001-01-01T00:00:00Z"}}`,
		},
		{
			name:           "Disabled",
			usersSetup:     func(m *mocks.UserProvider) {},
			issuerSetup:    func(m *mocks.TokenIssuer) {},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"demo login is disabled"}`,
		},
		{
			name:      "Demo user missing",
			demoEmail: "demo@culturehub.local",
			usersSetup: func(m *mocks.UserProvider) {
				m.On("GetUserByEmail", mock.Anything, "demo@culturehub.local").Return(nil, storage.ErrUserNotFound)
			},
			issuerSetup:    func(m *mocks.TokenIssuer) {},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"demo login is disabled"}`,
		},
		{
			name:      "Issue error",
			demoEmail: "demo@culturehub.local",
			usersSetup: func(m *mocks.UserProvider) {
				m.On("GetUserByEmail", mock.Anything, "demo@culturehub.local").Return(demo, nil)
			},
			issuerSetup: func(m *mocks.TokenIssuer) {
				m.On("Issue", demo).Return("", time.Time{}, errors.New("sign error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to log in"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUsers := mocks.NewUserProvider(t)
			mockIssuer := mocks.NewTokenIssuer(t)
			tc.usersSetup(mockUsers)
			tc.issuerSetup(mockIssuer)

			req := httptest.NewRequest("POST", "/auth/demo", nil)
			rr := httptest.NewRecorder()
			New(logger, tc.demoEmail, mockUsers, mockIssuer).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
