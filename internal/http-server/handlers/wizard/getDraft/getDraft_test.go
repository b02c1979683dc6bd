package getDraft

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"culturehub/internal/http-server/handlers/wizard/getDraft/mocks"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/handlers/slogdiscard"
	"culturehub/internal/storage"
	"culturehub/internal/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetDraftHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	draft := &wizard.Draft{
		Step: wizard.StepVenue,
		Form: wizard.Form{BasicInfo: wizard.BasicInfo{Title: "Jazz by the river"}},
	}

	testCases := []struct {
		name           string
		session        *auth.Session
		mockSetup      func(m *mocks.DraftGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:    "Success",
			session: &auth.Session{UserID: "u-1"},
			mockSetup: func(m *mocks.DraftGetter) {
				m.On("Get", mock.Anything, "u-1").Return(draft, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp DraftResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.NotNil(t, resp.Draft)
				assert.Equal(t, wizard.StepVenue, resp.Draft.Step)
				assert.Equal(t, "Jazz by the river", resp.Draft.Form.BasicInfo.Title)
				assert.Contains(t, body, `"step":"venue"`)
			},
		},
		{
			name:           "Not authenticated",
			session:        nil,
			mockSetup:      func(m *mocks.DraftGetter) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"not authenticated"}`,
		},
		{
			name:    "No draft",
			session: &auth.Session{UserID: "u-2"},
			mockSetup: func(m *mocks.DraftGetter) {
				m.On("Get", mock.Anything, "u-2").Return(nil, storage.ErrDraftNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"draft not found"}`,
		},
		{
			name:    "Store error",
			session: &auth.Session{UserID: "u-3"},
			mockSetup: func(m *mocks.DraftGetter) {
				m.On("Get", mock.Anything, "u-3").Return(nil, errors.New("redis down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to load draft"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewDraftGetter(t)
			tc.mockSetup(mockGetter)

			req := httptest.NewRequest("GET", "/wizard/draft", nil)
			if tc.session != nil {
				req = req.WithContext(auth.WithSession(req.Context(), tc.session))
			}

			rr := httptest.NewRecorder()
			New(logger, mockGetter).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
