package removeFavorite

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"culturehub/internal/http-server/handlers/favorites/removeFavorite/mocks"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/handlers/slogdiscard"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRemoveFavoriteHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	session := &auth.Session{UserID: "u-1"}

	testCases := []struct {
		name           string
		session        *auth.Session
		eventID        string
		mockSetup      func(m *mocks.FavoriteRemover)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			session: session,
			eventID: "5",
			mockSetup: func(m *mocks.FavoriteRemover) {
				m.On("RemoveFavorite", mock.Anything, "u-1", 5).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Invalid id",
			session:        session,
			eventID:        "x",
			mockSetup:      func(m *mocks.FavoriteRemover) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:           "Not authenticated",
			eventID:        "5",
			mockSetup:      func(m *mocks.FavoriteRemover) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"not authenticated"}`,
		},
		{
			name:    "Database error",
			session: session,
			eventID: "5",
			mockSetup: func(m *mocks.FavoriteRemover) {
				m.On("RemoveFavorite", mock.Anything, "u-1", 5).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to remove favorite"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockRemover := mocks.NewFavoriteRemover(t)
			tc.mockSetup(mockRemover)

			router := chi.NewRouter()
			router.Delete("/me/favorites/{eventID}", New(logger, mockRemover))

			req := httptest.NewRequest("DELETE", "/me/favorites/"+tc.eventID, nil)
			if tc.session != nil {
				req = req.WithContext(auth.WithSession(req.Context(), tc.session))
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
