package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-accounts/internal/adapter"
	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
)

// tokenGenerator produces verification tokens.
type tokenGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// It handles registration, e-mail verification and the single-session JWT
// lifecycle using a UserRepository for persistence, bcrypt for password
// hashing and a Mailer for verification e-mails.
type authService struct {
	// userRepository is the data-access layer used to create, look up and
	// update users.
	userRepository store.UserRepository

	// avatarStorage keeps uploaded avatar files.
	avatarStorage store.AvatarStorage

	// mailer delivers verification e-mails.
	mailer adapter.Mailer

	// verificationTokens generates the one-time tokens mailed to new users.
	verificationTokens tokenGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// passwordHashCost is the bcrypt work factor.
	passwordHashCost int

	// baseURL prefixes the verification link.
	baseURL string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	avatarStorage store.AvatarStorage,
	mailer adapter.Mailer,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:     userRepository,
		avatarStorage:      avatarStorage,
		mailer:             mailer,
		verificationTokens: utils.NewUUIDGenerator(),
		tokenSignKey:       cfg.TokenSignKey,
		tokenIssuer:        cfg.TokenIssuer,
		tokenDuration:      cfg.TokenDuration,
		passwordHashCost:   cfg.PasswordHashCost,
		baseURL:            cfg.BaseURL,
		logger:             logger,
	}
}

// Register creates a new, unverified account and sends the verification
// e-mail.
//
// Returns the persisted user or:
//   - ErrEmailInUse if the normalized email is already registered.
//   - ErrSendingVerificationMail (wrapped) if the e-mail could not be sent;
//     the account stays in place and the link can be re-sent.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)
	email := utils.NormalizeEmail(req.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Info().Str("func", "*authService.Register").Msg("email already registered")
		return models.User{}, ErrEmailInUse
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "*authService.Register").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.User{}, err
	}

	subscription := req.Subscription
	if subscription == "" {
		subscription = models.DefaultSubscription
	}

	user := models.User{
		Email:             email,
		Password:          passwordHash,
		Name:              req.Name,
		Subscription:      subscription,
		AvatarURL:         utils.GravatarURL(email),
		VerificationToken: a.verificationTokens.Generate(),
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		// a concurrent registration may pass the lookup above
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailInUse
		}
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	ctx = logger.WithUserID(ctx, created.UserID)
	if err = a.sendVerification(ctx, created); err != nil {
		return models.User{}, err
	}

	logger.FromContext(ctx).Info().Str("func", "*authService.Register").Msg("user registered")
	return created, nil
}

// Verify marks the owner of verificationToken as verified.
// Returns ErrUserNotFound for unknown or already consumed tokens.
func (a *authService) Verify(ctx context.Context, verificationToken string) error {
	log := logger.FromContext(ctx)

	if verificationToken == "" {
		return ErrUserNotFound
	}

	user, err := a.userRepository.VerifyUser(ctx, verificationToken)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("func", "*authService.Verify").Msg("unknown verification token")
			return ErrUserNotFound
		}
		log.Err(err).Str("func", "*authService.Verify").Msg("verification failed")
		return fmt.Errorf("verification failed: %w", err)
	}

	log.Info().Str("func", "*authService.Verify").Int64("user_id", user.UserID).Msg("user verified")
	return nil
}

// ResendVerification sends the stored verification link once more.
func (a *authService) ResendVerification(ctx context.Context, email string) (bool, error) {
	log := logger.FromContext(ctx)

	email = utils.NormalizeEmail(email)
	if email == "" {
		return false, ErrMissingEmail
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return false, ErrUserNotFound
		}
		log.Err(err).Str("func", "*authService.ResendVerification").Msg("user search by email failed")
		return false, fmt.Errorf("user search by email failed: %w", err)
	}

	if user.Verify {
		return true, nil
	}

	ctx = logger.WithUserID(ctx, user.UserID)
	if err = a.sendVerification(ctx, user); err != nil {
		return false, err
	}

	return false, nil
}

// Login authenticates a verified user and rotates the session token.
//
// A missing account, a wrong password and an unverified account all produce
// ErrWrongCredentials so that callers cannot probe which e-mails exist.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)
	email := utils.NormalizeEmail(req.Email)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("func", "*authService.Login").Msg("login for unknown email")
			return models.User{}, ErrWrongCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	log = logger.FromContext(logger.WithUserID(ctx, user.UserID))

	if err = utils.CheckPassword(user.Password, req.Password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Info().Str("func", "*authService.Login").Msg("wrong password")
			return models.User{}, ErrWrongCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("stored password hash is unusable")
		return models.User{}, err
	}

	if !user.Verify {
		log.Info().Str("func", "*authService.Login").Msg("login of unverified user")
		return models.User{}, ErrWrongCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("token creation failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	updated, err := a.userRepository.SetToken(ctx, user.UserID, token.String())
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("storing session token failed")
		return models.User{}, fmt.Errorf("storing session token failed: %w", err)
	}

	log.Info().Str("func", "*authService.Login").Msg("user logged in")
	return updated, nil
}

// Logout clears the stored session token. Calling it twice is harmless.
func (a *authService) Logout(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := a.userRepository.SetToken(ctx, userID, ""); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		log.Err(err).Str("func", "*authService.Logout").Msg("clearing session token failed")
		return fmt.Errorf("clearing session token failed: %w", err)
	}

	log.Info().Str("func", "*authService.Logout").Msg("user logged out")
	return nil
}

// Authenticate accepts tokenString only if it is a valid JWT of this
// issuer, its owner exists, it equals the token currently stored for the
// owner, and the owner is verified.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.Authenticate").Msg("token rejected")
		return models.User{}, ErrUnauthorized
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("func", "*authService.Authenticate").Int64("user_id", token.UserID).Msg("token owner does not exist")
			return models.User{}, ErrUnauthorized
		}
		log.Err(err).Str("func", "*authService.Authenticate").Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	switch {
	case user.Token == "":
		log.Info().Str("func", "*authService.Authenticate").Int64("user_id", user.UserID).Msg("user is logged out")
		return models.User{}, ErrUnauthorized
	case user.Token != tokenString:
		log.Info().Str("func", "*authService.Authenticate").Int64("user_id", user.UserID).Msg("token was superseded")
		return models.User{}, ErrUnauthorized
	case !user.Verify:
		log.Info().Str("func", "*authService.Authenticate").Int64("user_id", user.UserID).Msg("user is not verified")
		return models.User{}, ErrUnauthorized
	}

	return user, nil
}

func (a *authService) UpdateSubscription(ctx context.Context, userID int64, req models.SubscriptionRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if !req.Subscription.IsValid() {
		return models.User{}, ErrInvalidSubscription
	}

	user, err := a.userRepository.UpdateSubscription(ctx, userID, req.Subscription)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*authService.UpdateSubscription").Msg("subscription update failed")
		return models.User{}, fmt.Errorf("subscription update failed: %w", err)
	}

	log.Info().Str("func", "*authService.UpdateSubscription").Str("subscription", user.Subscription.String()).Msg("subscription updated")
	return user, nil
}

func (a *authService) UpdateAvatar(ctx context.Context, userID int64, fileName string, src io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	avatarURL, err := a.avatarStorage.SaveAvatar(ctx, userID, fileName, src)
	if err != nil {
		if errors.Is(err, store.ErrInvalidFileName) {
			return "", fmt.Errorf("%w: %w", ErrInvalidAvatarFile, err)
		}
		log.Err(err).Str("func", "*authService.UpdateAvatar").Msg("saving avatar failed")
		return "", fmt.Errorf("saving avatar failed: %w", err)
	}

	user, err := a.userRepository.UpdateAvatar(ctx, userID, avatarURL)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return "", ErrUserNotFound
		}
		log.Err(err).Str("func", "*authService.UpdateAvatar").Msg("avatar update failed")
		return "", fmt.Errorf("avatar update failed: %w", err)
	}

	return user.AvatarURL, nil
}

func (a *authService) sendVerification(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	email, err := newVerificationEmail(a.baseURL, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.sendVerification").Msg("rendering verification email failed")
		return fmt.Errorf("%w: %w", ErrSendingVerificationMail, err)
	}

	if err = a.mailer.Send(ctx, email); err != nil {
		log.Err(err).Str("func", "*authService.sendVerification").Msg("sending verification email failed")
		return fmt.Errorf("%w: %w", ErrSendingVerificationMail, err)
	}

	return nil
}
