package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and single-statement updates against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions. Passwords and
// tokens are never logged.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with server-assigned
// fields (UserID, CreatedAt, UpdatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to create query")
		return models.User{}, err
	}

	return r.queryUser(ctx, "*userRepository.CreateUser", query, args...)
}

// FindUserByEmail returns the user whose normalized email equals email,
// or [ErrNoUserWasFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildFindUserByEmailQuery(email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("failed to create query")
		return models.User{}, err
	}

	return r.queryUser(ctx, "*userRepository.FindUserByEmail", query, args...)
}

// FindUserByID returns the user with the given id, or [ErrNoUserWasFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := buildFindUserByIDQuery(userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", userID).Msg("failed to create query")
		return models.User{}, err
	}

	return r.queryUser(ctx, "*userRepository.FindUserByID", query, args...)
}

// VerifyUser sets verify=true and clears the verification token in one
// statement. A token that was already consumed matches no row.
func (r *userRepository) VerifyUser(ctx context.Context, verificationToken string) (models.User, error) {
	query, args, err := buildVerifyUserQuery(verificationToken)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.VerifyUser").Msg("failed to create query")
		return models.User{}, err
	}

	return r.queryUser(ctx, "*userRepository.VerifyUser", query, args...)
}

// SetToken replaces the stored session token. Last write wins.
func (r *userRepository) SetToken(ctx context.Context, userID int64, token string) (models.User, error) {
	query, args, err := buildSetTokenQuery(userID, token)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.SetToken").Int64("user_id", userID).Msg("failed to create query")
		return models.User{}, err
	}

	return r.queryUser(ctx, "*userRepository.SetToken", query, args...)
}

func (r *userRepository) UpdateSubscription(ctx context.Context, userID int64, subscription models.Subscription) (models.User, error) {
	query, args, err := buildUpdateSubscriptionQuery(userID, subscription)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UpdateSubscription").Int64("user_id", userID).Msg("failed to create query")
		return models.User{}, err
	}

	return r.queryUser(ctx, "*userRepository.UpdateSubscription", query, args...)
}

func (r *userRepository) UpdateAvatar(ctx context.Context, userID int64, avatarURL string) (models.User, error) {
	query, args, err := buildUpdateAvatarQuery(userID, avatarURL)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UpdateAvatar").Int64("user_id", userID).Msg("failed to create query")
		return models.User{}, err
	}

	return r.queryUser(ctx, "*userRepository.UpdateAvatar", query, args...)
}

// queryUser runs a statement that yields at most one users row and scans it.
func (r *userRepository) queryUser(ctx context.Context, funcName, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing query")
		return models.User{}, mapUserError(err)
	}

	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug().Str("func", funcName).Msg("no user matched")
		} else {
			log.Err(err).Str("func", funcName).Msg("error scanning user row")
		}
		return models.User{}, mapUserError(err)
	}

	return user, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var (
		user         models.User
		subscription string
	)

	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.Password,
		&user.Name,
		&subscription,
		&user.AvatarURL,
		&user.Token,
		&user.Verify,
		&user.VerificationToken,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Subscription = models.Subscription(subscription)
	return user, nil
}
