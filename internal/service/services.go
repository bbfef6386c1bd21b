package service

import (
	"fmt"

	"github.com/MKhiriev/go-accounts/internal/adapter"
	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/models"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, mailer adapter.Mailer, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	authService := NewAuthService(storages.UserRepository, storages.AvatarStorage, mailer, cfg.App, logger)

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(authService),
		AppInfoService: appInfoService,
	}, nil
}
