package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func TestAuth_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		wantStatus     int
		wantNextCalled bool
	}{
		{name: "valid bearer token", header: "Bearer " + validToken, wantStatus: http.StatusOK, wantNextCalled: true},
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + validToken, wantStatus: http.StatusUnauthorized},
		{name: "lowercase scheme", header: "bearer " + validToken, wantStatus: http.StatusUnauthorized},
		{name: "scheme only", header: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "extra part", header: "Bearer " + validToken + " x", wantStatus: http.StatusUnauthorized},
		{name: "superseded token", header: "Bearer old-token", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &fakeAuthService{authenticateFn: acceptValidToken})

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.header, next)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			if !tt.wantNextCalled {
				assert.Equal(t, "Not authorized", decodeMessage(t, rr))
			}
		})
	}
}

func TestAuth_StoresUserInContext(t *testing.T) {
	h := newTestHandler(t, &fakeAuthService{authenticateFn: acceptValidToken})

	var got *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		got, ok = utils.GetUserFromContext(r.Context())
		require.True(t, ok)
	})

	executeAuth(h, "Bearer "+validToken, next)

	require.NotNil(t, got)
	assert.Equal(t, testUser.UserID, got.UserID)
	assert.Equal(t, testUser.Email, got.Email)
}

func TestAuth_ServiceFailure_Returns500(t *testing.T) {
	auth := &fakeAuthService{
		authenticateFn: func(context.Context, string) (models.User, error) {
			return models.User{}, errors.New("db down")
		},
	}
	h := newTestHandler(t, auth)

	rr := executeAuth(h, "Bearer "+validToken, http.NotFoundHandler())

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, internalErrorMessage, decodeMessage(t, rr))
}

func TestAuth_PassesPresentedToken(t *testing.T) {
	var presented string
	auth := &fakeAuthService{
		authenticateFn: func(_ context.Context, token string) (models.User, error) {
			presented = token
			return models.User{}, service.ErrUnauthorized
		},
	}
	h := newTestHandler(t, auth)

	executeAuth(h, "Bearer abc.def.ghi", http.NotFoundHandler())

	assert.Equal(t, "abc.def.ghi", presented)
}
