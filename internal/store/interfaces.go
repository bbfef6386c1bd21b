package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists account records. Every mutating method is a single
// atomic statement returning the row as it is after the change.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// VerifyUser marks the owner of verificationToken as verified and clears
	// the token. Returns ErrNoUserWasFound when no unverified user holds it.
	VerifyUser(ctx context.Context, verificationToken string) (models.User, error)

	// SetToken stores the active session token; an empty token clears it.
	SetToken(ctx context.Context, userID int64, token string) (models.User, error)

	UpdateSubscription(ctx context.Context, userID int64, subscription models.Subscription) (models.User, error)
	UpdateAvatar(ctx context.Context, userID int64, avatarURL string) (models.User, error)
}

// AvatarStorage keeps uploaded avatar files.
type AvatarStorage interface {
	// SaveAvatar stores the content of src for userID and returns the public
	// relative reference of the stored file ("avatars/<id>_<name>").
	SaveAvatar(ctx context.Context, userID int64, fileName string, src io.Reader) (string, error)
}
