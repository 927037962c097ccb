package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"catalog-api/pkg/utils"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type uploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// Client talks to the image storage service over HTTP. Every call has
// a client-side timeout and bounded retries on transport failures, so
// a wedged storage backend cannot hang catalog requests.
type Client struct {
	http   *resty.Client
	folder string
	log    *zap.Logger
}

func NewClient(cfg utils.ImageStoreConfig, log *zap.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Authorization", "Bearer "+cfg.APIKey)

	return &Client{
		http:   cli,
		folder: cfg.UploadFolder,
		log:    log.With(zap.String("component", "imagestore")),
	}
}

// Upload sends the file as multipart form data and returns the public
// URL assigned by the storage service.
func (c *Client) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	var result uploadResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(data)).
		SetFormData(map[string]string{"folder": c.folder}).
		SetResult(&result).
		Post("/upload")
	if err != nil {
		c.log.Error("Image upload request failed", zap.Error(err), zap.String("filename", filename))
		return "", fmt.Errorf("upload image %s: %w", filename, err)
	}

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		c.log.Error("Image upload rejected",
			zap.Int("status", resp.StatusCode()),
			zap.String("filename", filename),
		)
		return "", fmt.Errorf("upload image %s: unexpected status %d", filename, resp.StatusCode())
	}

	if result.URL == "" {
		return "", fmt.Errorf("upload image %s: empty URL in response", filename)
	}

	c.log.Info("Image uploaded",
		zap.String("filename", filename),
		zap.String("url", result.URL),
	)

	return result.URL, nil
}

// Delete removes an image by its storage key. A missing key is not an
// error: the outcome the caller wants (image gone) already holds.
func (c *Client) Delete(ctx context.Context, publicID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/images/" + publicID)
	if err != nil {
		return fmt.Errorf("delete image %s: %w", publicID, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusNoContent {
		return fmt.Errorf("delete image %s: unexpected status %d", publicID, resp.StatusCode())
	}

	return nil
}
