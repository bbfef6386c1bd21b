package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-accounts/models"
)

// AuthService implements the account and session lifecycle:
// register → verify → login → token-gated access → logout.
type AuthService interface {
	// Register creates an unverified account and mails the verification link.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Verify consumes a verification token. A token can be used only once.
	Verify(ctx context.Context, verificationToken string) error

	// ResendVerification mails the existing verification link again.
	// alreadyVerified is true, and nothing is sent, when the account is
	// verified already.
	ResendVerification(ctx context.Context, email string) (alreadyVerified bool, err error)

	// Login checks the credentials of a verified account and issues a new
	// session token, invalidating the previous one. The token is returned in
	// the Token field of the user.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Logout clears the session token of userID.
	Logout(ctx context.Context, userID int64) error

	// Authenticate resolves a presented session token to its owner.
	// Every failure is reported as ErrUnauthorized.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)

	UpdateSubscription(ctx context.Context, userID int64, req models.SubscriptionRequest) (models.User, error)

	// UpdateAvatar stores the uploaded file and returns its public reference.
	UpdateAvatar(ctx context.Context, userID int64, fileName string, src io.Reader) (string, error)
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
