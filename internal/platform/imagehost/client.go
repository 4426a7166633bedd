// Package imagehost provides the outbound client for the third-party image
// hosting service. Uploads are signed, single-shot HTTP calls; the host
// assigns the public identifier and the served URL.
package imagehost

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/rkshop/admin-api/internal/config"
)

const uploadTimeout = 30 * time.Second

// UploadResult carries the identifiers the host assigned to an uploaded
// image.
type UploadResult struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
}

// Uploader defines the interface for pushing a local file to the image host.
type Uploader interface {
	// Upload sends the file at the given path to the host and returns the
	// assigned identifiers. No retries are attempted; a rejected call is
	// surfaced to the caller as-is.
	Upload(ctx context.Context, filePath string) (*UploadResult, error)
}

// Client implements Uploader against a Cloudinary-compatible upload API.
type Client struct {
	client   *resty.Client
	cfg      config.MediaConfig
	timeFunc func() time.Time // injectable for testing
}

var _ Uploader = (*Client)(nil)

// NewClient creates an image-host client from the media configuration.
func NewClient(cfg config.MediaConfig) *Client {
	cli := resty.New().
		SetBaseURL(fmt.Sprintf("https://api.cloudinary.com/v1_1/%s", cfg.CloudName)).
		SetTimeout(uploadTimeout)

	return &Client{client: cli, cfg: cfg, timeFunc: time.Now}
}

// Upload implements Uploader.
func (c *Client) Upload(ctx context.Context, filePath string) (*UploadResult, error) {
	timestamp := strconv.FormatInt(c.timeFunc().Unix(), 10)

	var result UploadResult
	resp, err := c.client.R().
		SetContext(ctx).
		SetFile("file", filePath).
		SetFormData(map[string]string{
			"api_key":   c.cfg.APIKey,
			"timestamp": timestamp,
			"folder":    c.cfg.Folder,
			"signature": c.sign(timestamp),
		}).
		SetResult(&result).
		Post("/image/upload")
	if err != nil {
		return nil, fmt.Errorf("upload request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("upload rejected: status %d", resp.StatusCode())
	}

	return &result, nil
}

// sign produces the request signature the host expects: the SHA-1 hex of the
// sorted parameter string concatenated with the API secret.
func (c *Client) sign(timestamp string) string {
	payload := fmt.Sprintf("folder=%s&timestamp=%s%s", c.cfg.Folder, timestamp, c.cfg.APISecret)
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}
