// Package media orchestrates uploads of locally spooled files to the
// external image host.
package media

import (
	"context"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/rkshop/admin-api/internal/platform/imagehost"
	"github.com/rkshop/admin-api/internal/platform/logger"
)

// Service uploads temp files to the image host and cleans them up.
type Service struct {
	uploader imagehost.Uploader
	logger   *slog.Logger
}

// NewService creates a media Service.
func NewService(uploader imagehost.Uploader, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		uploader: uploader,
		logger:   log.With(slog.String("component", "media_service")),
	}
}

// UploadAll pushes every file to the image host concurrently and returns
// the assigned identifiers in input order. Each temp file is removed after
// its upload attempt regardless of outcome; a failed removal is logged,
// never surfaced. The batch is all-or-nothing: any upload failure fails the
// whole call, though cleanup of the other files still runs.
func (s *Service) UploadAll(ctx context.Context, filePaths []string) ([]imagehost.UploadResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	results := make([]imagehost.UploadResult, len(filePaths))
	g, ctx := errgroup.WithContext(ctx)

	for i, path := range filePaths {
		i, path := i, path
		g.Go(func() error {
			result, err := s.uploader.Upload(ctx, path)

			// Best-effort cleanup happens before the error check so a
			// failed upload never strands its temp file.
			if removeErr := os.Remove(path); removeErr != nil {
				log.Error("failed to delete temp file",
					"path", path,
					"error", removeErr)
			}

			if err != nil {
				return err
			}
			results[i] = *result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
