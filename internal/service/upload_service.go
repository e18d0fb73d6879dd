package service

import (
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nkshtr/CropIn/internal/cache"
	"github.com/nkshtr/CropIn/internal/errors"
	"github.com/nkshtr/CropIn/internal/repository"
)

// allowed upload types: extension and declared MIME must both match.
var (
	allowedExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
	}
	allowedContentTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true, // non-standard but still sent by some clients
		"image/png":  true,
	}
)

// UploadService stores a profile image and binds its path to the
// requesting user's record.
type UploadService interface {
	Bind(ctx context.Context, userID uuid.UUID, file io.Reader, filename, contentType string) (string, error)
}

type uploadService struct {
	users     repository.UserRepository
	cache     *cache.Client
	uploadDir string
}

// NewUploadService creates an upload service rooted at uploadDir.
func NewUploadService(users repository.UserRepository, cache *cache.Client, uploadDir string) UploadService {
	return &uploadService{users: users, cache: cache, uploadDir: uploadDir}
}

// Bind validates the file type, writes the bytes under the upload root,
// and updates the user's profile picture to the stored path. If the
// record write fails the previous profile picture stays committed; the
// written file is orphaned but harmless.
func (s *uploadService) Bind(ctx context.Context, userID uuid.UUID, file io.Reader, filename, contentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] || !allowedContentTypes[strings.ToLower(contentType)] {
		return "", errors.ErrUnsupportedMedia
	}

	// Nanosecond timestamps keep concurrent uploads from colliding
	// without any locking.
	name := fmt.Sprintf("image-%d%s", time.Now().UnixNano(), ext)

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create upload dir: %v", errors.ErrUploadFailed, err)
	}

	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return "", fmt.Errorf("%w: create file: %v", errors.ErrUploadFailed, err)
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		return "", fmt.Errorf("%w: write file: %v", errors.ErrUploadFailed, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("%w: close file: %v", errors.ErrUploadFailed, err)
	}

	path := "/uploads/" + name
	if err := s.users.UpdateProfilePicture(ctx, userID, path); err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return "", errors.ErrUserNotFound
		}
		return "", fmt.Errorf("%w: bind profile picture: %v", errors.ErrUploadFailed, err)
	}

	_ = s.cache.Delete(ctx, fmt.Sprintf("user:%s", userID.String()))
	return path, nil
}
