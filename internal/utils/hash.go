package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by CheckPassword when the plain-text
// password does not correspond to the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword derives a bcrypt hash of password with the given work factor.
//
// A cost outside [bcrypt.MinCost, bcrypt.MaxCost] is replaced by
// bcrypt.DefaultCost, which matches how the config layer validates it.
//
// Example usage:
//
//	hash, err := utils.HashPassword("secret1", 10)
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword compares a bcrypt hash with its possible plain-text
// equivalent. It returns ErrPasswordMismatch on a wrong password and a
// wrapped bcrypt error when the stored hash itself is malformed.
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password hash: %w", err)
	}
}
