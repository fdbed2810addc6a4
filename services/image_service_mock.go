package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"sync"

	"github.com/pauloferraz/braseiro-api/utils"
)

// MockImageService is an in-memory ImageService for testing
type MockImageService struct {
	mu     sync.RWMutex
	images map[string]string // key -> original filename
}

// NewMockImageService creates a new mock image service
func NewMockImageService() *MockImageService {
	return &MockImageService{images: make(map[string]string)}
}

// SetAsMockForTesting installs this mock as the global image service
func (m *MockImageService) SetAsMockForTesting() {
	SetImageService(m)
}

// UploadImage validates the file and records it in mock storage
func (m *MockImageService) UploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	key := fmt.Sprintf("menu/mock_%s", fileHeader.Filename)

	m.mu.Lock()
	m.images[key] = fileHeader.Filename
	m.mu.Unlock()

	return key, nil
}

// GetImageURL returns a deterministic fake URL for a stored key
func (m *MockImageService) GetImageURL(ctx context.Context, imageKey string) (string, error) {
	if imageKey == "" {
		return "", nil
	}

	m.mu.RLock()
	_, exists := m.images[imageKey]
	m.mu.RUnlock()

	if !exists {
		return "", fmt.Errorf("image not found in mock storage: %s", imageKey)
	}

	return fmt.Sprintf("https://test-bucket.s3.us-east-1.amazonaws.com/%s?mock=true", imageKey), nil
}

// DeleteImage removes a key from mock storage
func (m *MockImageService) DeleteImage(ctx context.Context, imageKey string) error {
	if imageKey == "" {
		return nil
	}

	m.mu.Lock()
	delete(m.images, imageKey)
	m.mu.Unlock()

	return nil
}

// ImageExists checks whether a key is present (for testing assertions)
func (m *MockImageService) ImageExists(imageKey string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.images[imageKey]
	return exists
}
