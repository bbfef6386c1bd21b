package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/MKhiriev/go-accounts/internal/logger"
)

// AvatarURLPrefix is the public path segment under which avatars are served.
const AvatarURLPrefix = "avatars"

// avatarFileStorage is the local-directory implementation of [AvatarStorage].
// Files are named "<userID>_<base name>" so a re-upload with the same name
// overwrites the previous file of the same user only.
type avatarFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewAvatarFileStorage constructs an [AvatarStorage] writing into dir.
// The directory is created lazily on the first upload.
func NewAvatarFileStorage(dir string, logger *logger.Logger) AvatarStorage {
	return &avatarFileStorage{
		dir:    dir,
		logger: logger,
	}
}

// SaveAvatar copies src into the avatar directory. The content is written to
// a temporary file first and renamed into place, so readers never observe a
// partially written avatar.
func (s *avatarFileStorage) SaveAvatar(ctx context.Context, userID int64, fileName string, src io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	base := filepath.Base(filepath.Clean("/" + fileName))
	if base == "/" || base == "." || base == "" {
		return "", ErrInvalidFileName
	}
	name := strconv.FormatInt(userID, 10) + "_" + base

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		log.Err(err).Str("func", "*avatarFileStorage.SaveAvatar").Str("dir", s.dir).Msg("cannot create avatar dir")
		return "", fmt.Errorf("error creating avatar directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "*avatarFileStorage.SaveAvatar").Msg("cannot create temp file")
		return "", fmt.Errorf("error creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err = io.Copy(tmp, readerWithContext(ctx, src)); err != nil {
		_ = tmp.Close()
		log.Err(err).Str("func", "*avatarFileStorage.SaveAvatar").Msg("cannot write avatar")
		return "", fmt.Errorf("error writing avatar: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("error closing avatar file: %w", err)
	}

	if err = os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		log.Err(err).Str("func", "*avatarFileStorage.SaveAvatar").Msg("cannot move avatar into place")
		return "", fmt.Errorf("error storing avatar: %w", err)
	}

	log.Debug().Str("func", "*avatarFileStorage.SaveAvatar").Int64("user_id", userID).Str("file", name).Msg("avatar stored")
	return path.Join(AvatarURLPrefix, name), nil
}

// ctxReader stops copying once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
