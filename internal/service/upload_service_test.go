package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "github.com/nkshtr/CropIn/internal/errors"
)

// Minimal but real PNG header bytes; content is never inspected beyond
// the declared name and MIME type.
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestUploadService_Bind_RejectsUnsupportedTypes(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
	}{
		{name: "text file", filename: "notes.txt", contentType: "text/plain"},
		{name: "image extension with text mime", filename: "photo.png", contentType: "text/plain"},
		{name: "text extension with image mime", filename: "photo.txt", contentType: "image/png"},
		{name: "gif", filename: "anim.gif", contentType: "image/gif"},
		{name: "no extension", filename: "photo", contentType: "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			svc := NewUploadService(mockRepo, nil, t.TempDir())

			path, err := svc.Bind(context.Background(), uuid.New(),
				strings.NewReader("hello"), tt.filename, tt.contentType)

			assert.ErrorIs(t, err, apperrors.ErrUnsupportedMedia)
			assert.Empty(t, path)
			mockRepo.AssertNotCalled(t, "UpdateProfilePicture")
		})
	}
}

func TestUploadService_Bind_StoresAndBinds(t *testing.T) {
	dir := t.TempDir()
	userID := uuid.New()

	mockRepo := new(MockUserRepository)
	mockRepo.On("UpdateProfilePicture", mock.Anything, userID,
		mock.MatchedBy(func(p string) bool {
			return strings.HasPrefix(p, "/uploads/image-") && strings.HasSuffix(p, ".png")
		})).Return(nil)

	svc := NewUploadService(mockRepo, nil, dir)

	path, err := svc.Bind(context.Background(), userID,
		strings.NewReader(string(pngBytes)), "profile.PNG", "image/png")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/image-"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	// The bytes landed under the upload root at the returned name.
	stored := filepath.Join(dir, strings.TrimPrefix(path, "/uploads/"))
	data, err := os.ReadFile(stored)
	assert.NoError(t, err)
	assert.Equal(t, pngBytes, data)

	mockRepo.AssertExpectations(t)
}

// Some clients declare the non-standard image/jpg type; the original
// accepts it and so do we.
func TestUploadService_Bind_AcceptsLegacyJpgContentType(t *testing.T) {
	userID := uuid.New()

	mockRepo := new(MockUserRepository)
	mockRepo.On("UpdateProfilePicture", mock.Anything, userID, mock.Anything).Return(nil)

	svc := NewUploadService(mockRepo, nil, t.TempDir())

	path, err := svc.Bind(context.Background(), userID,
		strings.NewReader("x"), "photo.jpg", "image/jpg")
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	mockRepo.AssertExpectations(t)
}

func TestUploadService_Bind_GeneratedNamesDoNotCollide(t *testing.T) {
	dir := t.TempDir()
	userID := uuid.New()

	mockRepo := new(MockUserRepository)
	mockRepo.On("UpdateProfilePicture", mock.Anything, userID, mock.Anything).Return(nil)

	svc := NewUploadService(mockRepo, nil, dir)

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		path, err := svc.Bind(context.Background(), userID,
			strings.NewReader("x"), "a.jpg", "image/jpeg")
		assert.NoError(t, err)
		assert.False(t, seen[path], "generated path %s repeated", path)
		seen[path] = true
	}
}

func TestUploadService_Bind_RecordWriteFailure(t *testing.T) {
	dir := t.TempDir()
	userID := uuid.New()

	tests := []struct {
		name          string
		repoErr       error
		expectedError error
	}{
		{name: "user vanished", repoErr: gorm.ErrRecordNotFound, expectedError: apperrors.ErrUserNotFound},
		{name: "storage failure", repoErr: errors.New("connection lost"), expectedError: apperrors.ErrUploadFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockRepo.On("UpdateProfilePicture", mock.Anything, userID, mock.Anything).Return(tt.repoErr)

			svc := NewUploadService(mockRepo, nil, dir)

			path, err := svc.Bind(context.Background(), userID,
				strings.NewReader("x"), "a.jpeg", "image/jpeg")

			assert.ErrorIs(t, err, tt.expectedError)
			assert.Empty(t, path)
		})
	}
}
