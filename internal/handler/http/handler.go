package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/utils"
)

type Handler struct {
	services *service.Services

	// avatarDir is served read-only under /avatars/.
	avatarDir string

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	resendLimiter *emailRateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		avatarDir:      cfg.Storage.Files.AvatarDir,
		requestTimeout: cfg.Server.RequestTimeout,
		resendLimiter:  newEmailRateLimiter(cfg.Limits.VerifyResendInterval, cfg.Limits.VerifyResendBurst),
		logger:         logger,
	}
}

// decodeJSON reads the request body into dst. Malformed JSON is reported as
// errInvalidJSON, an absent body as utils.ErrEmptyBody.
func decodeJSON(r *http.Request, dst any) error {
	err := utils.DecodeJSON(r, dst)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return err
	}
	return fmt.Errorf("%w: %w", errInvalidJSON, err)
}
