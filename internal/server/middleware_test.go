package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AriqGChowdhury/WSU-Forum/config"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/errors"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/utils"
)

func testServer() *Server {
	return &Server{
		config: config.Config{
			JWT: config.JWT{
				Secret:           "test-secret",
				ExpiredIn:        300,
				RefreshExpiredIn: 3600,
			},
		},
	}
}

func TestRequireAuth(t *testing.T) {
	s := testServer()
	userID := uuid.New()

	next := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userID, userIDFromContext(r.Context()))
		assert.True(t, isStaffFromContext(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	}
	handler := s.requireAuth(next)

	t.Run("happy path - bearer token accepted", func(t *testing.T) {
		access, _, err := utils.GenerateJWTToken(userID, true, s.config)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/settings", nil)
		req.Header.Set("Authorization", "Bearer "+access)
		rec := httptest.NewRecorder()

		handler(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("sad path - missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/settings", nil)
		rec := httptest.NewRecorder()

		handler(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("sad path - refresh token is not an access token", func(t *testing.T) {
		_, refresh, err := utils.GenerateJWTToken(userID, true, s.config)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/settings", nil)
		req.Header.Set("Authorization", "Bearer "+refresh)
		rec := httptest.NewRecorder()

		handler(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("sad path - garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/settings", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		rec := httptest.NewRecorder()

		handler(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	s := testServer()

	t.Run("anonymous request passes through with nil user", func(t *testing.T) {
		handler := s.optionalAuth(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, uuid.Nil, userIDFromContext(r.Context()))
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/subforums", nil)
		rec := httptest.NewRecorder()

		handler(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_AuthRequired(t *testing.T) {
	s := testServer()
	router := s.Router()

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/posts"},
		{http.MethodPost, "/search"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAdminRoutes_RejectNonStaffToken(t *testing.T) {
	s := testServer()
	router := s.Router()

	access, _, err := utils.GenerateJWTToken(uuid.New(), false, s.config)
	require.NoError(t, err)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/admin/subforums/pending"},
		{http.MethodPut, "/admin/subforums/" + uuid.NewString() + "/approve"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			req.Header.Set("Authorization", "Bearer "+access)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestSubforumFilter(t *testing.T) {
	id := uuid.New()

	t.Run("happy path - subforum param", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts?subforum="+id.String(), nil)

		got, err := subforumFilter(req)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, id, *got)
	})

	t.Run("happy path - subforum_id alias", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts?subforum_id="+id.String(), nil)

		got, err := subforumFilter(req)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, id, *got)
	})

	t.Run("absent filter is nil", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts", nil)

		got, err := subforumFilter(req)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("sad path - not a uuid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts?subforum=general", nil)

		_, err := subforumFilter(req)
		assert.Error(t, err)
	})
}

func TestRespondError_StatusMapping(t *testing.T) {
	s := testServer()

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", errors.InvalidArg("bad input"), http.StatusBadRequest},
		{"not found", errors.ErrPostNotFound, http.StatusNotFound},
		{"conflict", errors.ErrUsernameTaken, http.StatusConflict},
		{"forbidden", errors.ErrAdminOnly, http.StatusForbidden},
		{"unauthenticated", errors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"precondition", errors.ErrDuplicateReport, http.StatusUnprocessableEntity},
		{"plain error becomes 500", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.respondError(rec, tc.err)
			assert.Equal(t, tc.status, rec.Code)

			var body errorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.NotEmpty(t, body.Error)
			assert.NotEmpty(t, body.Code)
		})
	}
}
