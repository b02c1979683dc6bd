package listFavorites

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"culturehub/internal/http-server/handlers/favorites/listFavorites/mocks"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/handlers/slogdiscard"
	"culturehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListFavoritesHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		mockLister := mocks.NewFavoriteLister(t)
		mockLister.On("ListFavorites", mock.Anything, "u-1").
			Return([]models.Event{{ID: 1, Title: "Winter Concert"}, {ID: 4, Title: "Poetry Night"}}, nil)

		req := httptest.NewRequest("GET", "/me/favorites", nil)
		req = req.WithContext(auth.WithSession(req.Context(), &auth.Session{UserID: "u-1"}))
		rr := httptest.NewRecorder()
		New(logger, mockLister).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp FavoritesResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Events, 2)
		assert.Equal(t, "Poetry Night", resp.Events[1].Title)
	})

	t.Run("Not authenticated", func(t *testing.T) {
		t.Parallel()

		mockLister := mocks.NewFavoriteLister(t)

		rr := httptest.NewRecorder()
		New(logger, mockLister).ServeHTTP(rr, httptest.NewRequest("GET", "/me/favorites", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Database error", func(t *testing.T) {
		t.Parallel()

		mockLister := mocks.NewFavoriteLister(t)
		mockLister.On("ListFavorites", mock.Anything, "u-1").Return(nil, errors.New("database error"))

		req := httptest.NewRequest("GET", "/me/favorites", nil)
		req = req.WithContext(auth.WithSession(req.Context(), &auth.Session{UserID: "u-1"}))
		rr := httptest.NewRecorder()
		New(logger, mockLister).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"failed to get favorites"}`, rr.Body.String())
	})
}
