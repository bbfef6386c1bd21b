package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-accounts/internal/app"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/internal/validators"
	"github.com/MKhiriev/go-accounts/models"
)

// errorResponse is what a client sees for a mapped error.
type errorResponse struct {
	status  int
	message string
}

const internalErrorMessage = app.MsgInternalServerError

// errorStatusMap holds one entry per sentinel. Each error chain produced by
// the service layer contains at most one of them.
var errorStatusMap = map[error]errorResponse{
	service.ErrEmailInUse:       {http.StatusConflict, app.MsgEmailInUse},
	service.ErrWrongCredentials: {http.StatusUnauthorized, app.MsgWrongCredentials},
	service.ErrUnauthorized:     {http.StatusUnauthorized, app.MsgNotAuthorized},
	service.ErrUserNotFound:     {http.StatusNotFound, app.MsgUserNotFound},

	service.ErrEmptyBody:           {http.StatusBadRequest, app.MsgEmptyBody},
	utils.ErrEmptyBody:             {http.StatusBadRequest, app.MsgEmptyBody},
	service.ErrMissingEmail:        {http.StatusBadRequest, app.MsgMissingEmail},
	service.ErrInvalidSubscription: {http.StatusBadRequest, app.MsgInvalidSubscription},
	service.ErrInvalidAvatarFile:   {http.StatusBadRequest, app.MsgInvalidAvatarFile},

	errInvalidJSON:               {http.StatusBadRequest, app.MsgInvalidJSON},
	errMissingAvatar:             {http.StatusBadRequest, app.MsgMissingAvatarFile},
	errTooManyRequests:           {http.StatusTooManyRequests, app.MsgTooManyRequests},
	errVerificationAlreadyPassed: {http.StatusBadRequest, app.MsgVerificationAlreadyPassed},

	// set by middleware.Timeout
	context.DeadlineExceeded: {http.StatusGatewayTimeout, app.MsgRequestTimeout},
}

// statusFromError returns the status code and client message for err.
// Validation failures carry their own field messages; anything unknown is
// reported as 500 with a generic text.
func statusFromError(err error) (int, string) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}

	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, internalErrorMessage
}

// writeError logs err and writes it as {"message": "..."}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
