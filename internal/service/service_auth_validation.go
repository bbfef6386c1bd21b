package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-accounts/internal/validators"
	"github.com/MKhiriev/go-accounts/models"
)

// AuthValidationService checks request models before they reach the wrapped
// AuthService. Validation failures are returned as *validators.ValidationError
// or one of the service sentinels.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error validating register request: %w", err)
	}

	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Verify(ctx context.Context, verificationToken string) error {
	return v.inner.Verify(ctx, verificationToken)
}

func (v *AuthValidationService) ResendVerification(ctx context.Context, email string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, ErrMissingEmail
	}

	req := models.ResendVerificationRequest{Email: email}
	if err := v.validator.Validate(ctx, req); err != nil {
		return false, fmt.Errorf("error validating resend verification request: %w", err)
	}

	return v.inner.ResendVerification(ctx, email)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error validating login request: %w", err)
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) Logout(ctx context.Context, userID int64) error {
	return v.inner.Logout(ctx, userID)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	if tokenString == "" {
		return models.User{}, ErrUnauthorized
	}

	return v.inner.Authenticate(ctx, tokenString)
}

func (v *AuthValidationService) UpdateSubscription(ctx context.Context, userID int64, req models.SubscriptionRequest) (models.User, error) {
	if req.Subscription == "" {
		return models.User{}, ErrEmptyBody
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error validating subscription request: %w", err)
	}

	return v.inner.UpdateSubscription(ctx, userID, req)
}

func (v *AuthValidationService) UpdateAvatar(ctx context.Context, userID int64, fileName string, src io.Reader) (string, error) {
	if src == nil || strings.TrimSpace(fileName) == "" {
		return "", ErrInvalidAvatarFile
	}

	return v.inner.UpdateAvatar(ctx, userID, fileName, src)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
