package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestGravatarURL(t *testing.T) {
	// md5("alice@example.com")
	const want = "https://www.gravatar.com/avatar/c160f8cc69a4f0bf2b0362752353d060"

	assert.Equal(t, want, GravatarURL("alice@example.com"))
	assert.Equal(t, want, GravatarURL(" ALICE@example.com"), "gravatar must be computed on the normalized address")
}
