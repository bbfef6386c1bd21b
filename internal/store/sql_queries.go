package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-accounts/models"
	sq "github.com/Masterminds/squirrel"
)

const usersTable = "users"

// psql renders PostgreSQL ($n) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns are selected or returned by every user statement, in the
// order scanUser expects them.
var userColumns = []string{
	"id",
	"email",
	"password",
	"name",
	"subscription",
	"avatar_url",
	"COALESCE(token, '')",
	"verify",
	"COALESCE(verification_token, '')",
	"created_at",
	"updated_at",
}

func returningUser() string {
	return "RETURNING " + strings.Join(userColumns, ", ")
}

// nullable turns an empty string into SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	query, args, err := psql.
		Insert(usersTable).
		Columns("email", "password", "name", "subscription", "avatar_url", "verify", "verification_token").
		Values(user.Email, user.Password, user.Name, string(user.Subscription), user.AvatarURL, user.Verify, nullable(user.VerificationToken)).
		Suffix(returningUser()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserQuery(where sq.Eq) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	return buildFindUserQuery(sq.Eq{"email": email})
}

func buildFindUserByIDQuery(userID int64) (string, []any, error) {
	return buildFindUserQuery(sq.Eq{"id": userID})
}

// buildUpdateUserQuery renders "UPDATE users SET ... WHERE ... RETURNING ..."
// with updated_at refreshed.
func buildUpdateUserQuery(set map[string]any, where sq.Eq) (string, []any, error) {
	query, args, err := psql.
		Update(usersTable).
		SetMap(set).
		Set("updated_at", sq.Expr("NOW()")).
		Where(where).
		Suffix(returningUser()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildVerifyUserQuery(verificationToken string) (string, []any, error) {
	return buildUpdateUserQuery(
		map[string]any{"verify": true, "verification_token": nil},
		sq.Eq{"verification_token": verificationToken, "verify": false},
	)
}

func buildSetTokenQuery(userID int64, token string) (string, []any, error) {
	return buildUpdateUserQuery(map[string]any{"token": nullable(token)}, sq.Eq{"id": userID})
}

func buildUpdateSubscriptionQuery(userID int64, subscription models.Subscription) (string, []any, error) {
	return buildUpdateUserQuery(map[string]any{"subscription": string(subscription)}, sq.Eq{"id": userID})
}

func buildUpdateAvatarQuery(userID int64, avatarURL string) (string, []any, error) {
	return buildUpdateUserQuery(map[string]any{"avatar_url": avatarURL}, sq.Eq{"id": userID})
}
