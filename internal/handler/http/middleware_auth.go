package http

import (
	"net/http"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/utils"
)

// auth is an HTTP middleware that admits only requests carrying the current
// session token of a verified user.
//
// The "Authorization" header must be exactly "Bearer <token>". The token is
// resolved by [service.AuthService.Authenticate]; on success the user is
// stored in the request context under [utils.UserCtxKey] and the request
// logger gains a user_id field.
//
// Every rejection is answered with 401 "Not authorized".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("authorization header rejected")
			writeError(w, r, service.ErrUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = utils.WithUser(ctx, &user)
		ctx = logger.WithUserID(ctx, user.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
