package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// minimalConfig carries the fields that have no defaults.
func minimalConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/accounts"}},
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_AppliesDefaults verifies that unset fields receive built-in defaults.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilderWithArgs(nil)
	b.configs = append(b.configs, minimalConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, 23*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10, cfg.App.PasswordHashCost)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultAvatarDir, cfg.Storage.Files.AvatarDir)
	assert.Equal(t, defaultVerifyResendBurst, cfg.Limits.VerifyResendBurst)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilderWithArgs(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that a later source overrides non-zero
// fields of an earlier one while keeping fields it does not set.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilderWithArgs(nil)
	first := minimalConfig()
	first.App.Version = "1.0.0"
	first.App.TokenIssuer = "env-issuer"
	b.configs = append(b.configs,
		first,
		&StructuredConfig{App: App{TokenIssuer: "json-issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
}

// TestBuild_MissingDSN verifies that validation rejects an empty DSN.
func TestBuild_MissingDSN(t *testing.T) {
	b := newConfigBuilderWithArgs(nil)
	b.configs = append(b.configs, &StructuredConfig{App: App{TokenSignKey: "secret"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_MissingSignKey verifies that validation rejects an empty sign key.
func TestBuild_MissingSignKey(t *testing.T) {
	b := newConfigBuilderWithArgs(nil)
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{DB: DB{DSN: "dsn"}}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_SMTPWithoutSender verifies that an SMTP host requires a sender address.
func TestBuild_SMTPWithoutSender(t *testing.T) {
	b := newConfigBuilderWithArgs(nil)
	cfg := minimalConfig()
	cfg.Adapter.Mail.SMTPHost = "smtp.example.com"
	b.configs = append(b.configs, cfg)

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// ── withFlags / withJSON ──────────────────────────────────────────────────────

// TestWithFlags_InvalidFlag verifies that an unknown flag is reported by build.
func TestWithFlags_InvalidFlag(t *testing.T) {
	_, err := newConfigBuilderWithArgs([]string{"-unknown"}).withFlags().build()
	require.Error(t, err)
}

// TestWithJSON_PathFromFlags verifies that the JSON file referenced by -c is
// loaded and merged on top of flag values.
func TestWithJSON_PathFromFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"token_sign_key": "json-secret", "token_duration": "2h"},
		"storage": map[string]any{"db": map[string]any{"dsn": "postgres://json/db"}},
	})

	cfg, err := newConfigBuilderWithArgs([]string{"-c", path, "-a", "127.0.0.1:9000"}).
		withFlags().
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://json/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
}

// TestWithJSON_MissingFile verifies that a non-existent JSON path is an error.
func TestWithJSON_MissingFile(t *testing.T) {
	_, err := newConfigBuilderWithArgs([]string{"-config", "/does/not/exist.json"}).
		withFlags().
		withJSON().
		build()
	require.Error(t, err)
}
