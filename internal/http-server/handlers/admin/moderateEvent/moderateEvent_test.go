package moderateEvent

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"culturehub/internal/http-server/handlers/admin/moderateEvent/mocks"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/handlers/slogdiscard"
	"culturehub/internal/models"
	"culturehub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestModerateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		eventID        string
		requestBody    string
		mockSetup      func(m *mocks.EventModerator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Approve",
			eventID:     "2",
			requestBody: `{"decision":"approve","reason":"ignored"}`,
			mockSetup: func(m *mocks.EventModerator) {
				m.On("ModerateEvent", mock.Anything, 2, models.EventApproved, "ignored").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","event_id":2,"event_status":"approved"}`,
		},
		{
			name:        "Reject",
			eventID:     "2",
			requestBody: `{"decision":"reject","reason":" Missing venue photos "}`,
			mockSetup: func(m *mocks.EventModerator) {
				m.On("ModerateEvent", mock.Anything, 2, models.EventRejected, "Missing venue photos").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","event_id":2,"event_status":"rejected"}`,
		},
		{
			name:           "Reject without reason",
			eventID:        "2",
			requestBody:    `{"decision":"reject","reason":"  "}`,
			mockSetup:      func(m *mocks.EventModerator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"rejection reason is required"}`,
		},
		{
			name:           "Unknown decision",
			eventID:        "2",
			requestBody:    `{"decision":"archive"}`,
			mockSetup:      func(m *mocks.EventModerator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Decision must be one of [approve reject]"}`,
		},
		{
			name:        "Not found",
			eventID:     "404",
			requestBody: `{"decision":"approve"}`,
			mockSetup: func(m *mocks.EventModerator) {
				m.On("ModerateEvent", mock.Anything, 404, models.EventApproved, "").Return(storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:        "Database error",
			eventID:     "2",
			requestBody: `{"decision":"approve"}`,
			mockSetup: func(m *mocks.EventModerator) {
				m.On("ModerateEvent", mock.Anything, 2, models.EventApproved, "").Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to moderate event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockModerator := mocks.NewEventModerator(t)
			tc.mockSetup(mockModerator)

			router := chi.NewRouter()
			router.Post("/admin/events/{id}/moderate", New(logger, mockModerator))

			req := httptest.NewRequest("POST", "/admin/events/"+tc.eventID+"/moderate", bytes.NewBufferString(tc.requestBody))
			req = req.WithContext(auth.WithSession(req.Context(), &auth.Session{UserID: "admin-1", Role: models.RoleAdmin}))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
