package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvatarFileStorage_SaveAvatar(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "avatars")
	s := NewAvatarFileStorage(dir, logger.Nop())

	ref, err := s.SaveAvatar(context.Background(), 42, "me.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "avatars/42_me.png", ref)

	content, err := os.ReadFile(filepath.Join(dir, "42_me.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAvatarFileStorage_SaveAvatar_OverwritesSameName(t *testing.T) {
	dir := t.TempDir()
	s := NewAvatarFileStorage(dir, logger.Nop())

	_, err := s.SaveAvatar(context.Background(), 1, "a.png", strings.NewReader("old"))
	require.NoError(t, err)
	_, err = s.SaveAvatar(context.Background(), 1, "a.png", strings.NewReader("new"))
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "1_a.png"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestAvatarFileStorage_SaveAvatar_StripsDirectories(t *testing.T) {
	dir := t.TempDir()
	s := NewAvatarFileStorage(dir, logger.Nop())

	ref, err := s.SaveAvatar(context.Background(), 7, "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "avatars/7_passwd", ref)

	_, err = os.Stat(filepath.Join(dir, "7_passwd"))
	assert.NoError(t, err)
}

func TestAvatarFileStorage_SaveAvatar_InvalidName(t *testing.T) {
	s := NewAvatarFileStorage(t.TempDir(), logger.Nop())

	for _, name := range []string{"", "/", "."} {
		_, err := s.SaveAvatar(context.Background(), 1, name, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidFileName, "name %q", name)
	}
}

func TestAvatarFileStorage_SaveAvatar_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	s := NewAvatarFileStorage(dir, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.SaveAvatar(ctx, 1, "a.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(filepath.Join(dir, "1_a.png"))
	assert.True(t, os.IsNotExist(statErr))
}
