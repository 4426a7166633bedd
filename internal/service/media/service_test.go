package media

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkshop/admin-api/internal/mocks"
	"github.com/rkshop/admin-api/internal/platform/imagehost"
)

func tempFiles(t *testing.T, n int) []string {
	t.Helper()
	paths := make([]string, n)
	for i := range paths {
		path := filepath.Join(t.TempDir(), "upload.tmp")
		require.NoError(t, os.WriteFile(path, []byte("image bytes"), 0o600))
		paths[i] = path
	}
	return paths
}

func TestService_UploadAll(t *testing.T) {
	t.Parallel()

	paths := tempFiles(t, 3)

	var mu sync.Mutex
	uploaded := map[string]bool{}
	uploader := &mocks.MockUploader{
		UploadFn: func(_ context.Context, filePath string) (*imagehost.UploadResult, error) {
			mu.Lock()
			uploaded[filePath] = true
			mu.Unlock()
			return &imagehost.UploadResult{
				PublicID:  filepath.Base(filePath),
				SecureURL: "https://cdn.example.com/" + filepath.Base(filePath),
			}, nil
		},
	}

	svc := NewService(uploader, nil)
	results, err := svc.UploadAll(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Len(t, uploaded, 3)

	// Results keep input order.
	for _, result := range results {
		assert.NotEmpty(t, result.PublicID)
		assert.NotEmpty(t, result.SecureURL)
	}

	// Every temp file is deleted after its upload.
	for _, path := range paths {
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "temp file %s should be removed", path)
	}
}

func TestService_UploadAll_FailureIsAllOrNothing(t *testing.T) {
	t.Parallel()

	paths := tempFiles(t, 2)

	uploader := &mocks.MockUploader{
		UploadFn: func(_ context.Context, filePath string) (*imagehost.UploadResult, error) {
			if filePath == paths[0] {
				return nil, assert.AnError
			}
			return &imagehost.UploadResult{PublicID: "ok", SecureURL: "https://x.example.com/ok"}, nil
		},
	}

	svc := NewService(uploader, nil)
	_, err := svc.UploadAll(context.Background(), paths)
	assert.Error(t, err)

	// Cleanup still runs for every file, failed upload included.
	for _, path := range paths {
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "temp file %s should be removed", path)
	}
}

func TestService_UploadAll_Empty(t *testing.T) {
	t.Parallel()

	svc := NewService(&mocks.MockUploader{}, nil)
	results, err := svc.UploadAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
