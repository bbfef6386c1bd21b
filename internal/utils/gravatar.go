package utils

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

const gravatarBaseURL = "https://www.gravatar.com/avatar/"

// NormalizeEmail trims surrounding whitespace and lowercases an address.
// Every lookup and every stored email goes through it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GravatarURL returns the default avatar link derived from the md5 of the
// normalized address.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(NormalizeEmail(email)))
	return gravatarBaseURL + hex.EncodeToString(sum[:])
}
