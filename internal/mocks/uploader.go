package mocks

import (
	"context"

	"github.com/rkshop/admin-api/internal/platform/imagehost"
)

// MockUploader implements imagehost.Uploader for testing.
type MockUploader struct {
	UploadFn func(ctx context.Context, filePath string) (*imagehost.UploadResult, error)

	// Default values used when UploadFn isn't defined.
	Result *imagehost.UploadResult
	Err    error
}

// Upload implements imagehost.Uploader.
func (m *MockUploader) Upload(ctx context.Context, filePath string) (*imagehost.UploadResult, error) {
	if m.UploadFn != nil {
		return m.UploadFn(ctx, filePath)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Result != nil {
		return m.Result, nil
	}
	return &imagehost.UploadResult{PublicID: "mock-id", SecureURL: "https://example.com/mock.png"}, nil
}
