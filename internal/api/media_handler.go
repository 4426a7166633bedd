package api

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/rkshop/admin-api/internal/api/shared"
	"github.com/rkshop/admin-api/internal/platform/logger"
	"github.com/rkshop/admin-api/internal/service/media"
)

// maxUploadMemory bounds how much of a multipart body is held in memory
// before spilling to disk.
const maxUploadMemory = 32 << 20 // 32 MiB

// MediaHandler handles media upload passthrough requests.
type MediaHandler struct {
	mediaService *media.Service
	logger       *slog.Logger
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService *media.Service, log *slog.Logger) *MediaHandler {
	if log == nil {
		log = slog.Default()
	}
	return &MediaHandler{
		mediaService: mediaService,
		logger:       log.With(slog.String("component", "media_handler")),
	}
}

// Upload handles POST /media. Every part under the "image" field is
// spooled to a temp file and handed to the media service, which uploads
// them concurrently and removes the temp copies. The batch is
// all-or-nothing: one rejected upload fails the request.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgNoFilesUploaded)
		return
	}

	var files []*multipart.FileHeader
	if r.MultipartForm != nil {
		files = r.MultipartForm.File["image"]
	}
	if len(files) == 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgNoFilesUploaded)
		return
	}

	tempPaths, err := h.spoolToTemp(files)
	if err != nil {
		log.Error("failed to spool upload to temp file", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, MsgInternalError)
		return
	}

	results, err := h.mediaService.UploadAll(r.Context(), tempPaths)
	if err != nil {
		log.Error("failed to upload media", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, MsgInternalError)
		return
	}

	data := make([]MediaUploadResponse, len(results))
	for i, result := range results {
		data[i] = MediaUploadResponse{
			PublicID:  result.PublicID,
			SecureURL: result.SecureURL,
		}
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, MsgMediaUploaded, data)
}

// spoolToTemp copies each uploaded part into its own temp file and returns
// the paths. The media service owns removal of the temp files.
func (h *MediaHandler) spoolToTemp(files []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, header := range files {
		path, err := spoolFile(header)
		if err != nil {
			// Remove anything already spooled; the service never sees
			// these paths.
			for _, p := range paths {
				if removeErr := os.Remove(p); removeErr != nil {
					h.logger.Error("failed to delete temp file",
						"path", p, "error", removeErr)
				}
			}
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func spoolFile(header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer func() { _ = src.Close() }()

	tmp, err := os.CreateTemp("", "media-upload-*")
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(tmp, src); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
