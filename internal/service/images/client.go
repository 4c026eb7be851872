// Package images uploads imagery to the external image host.
package images

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"

	"github.com/jardinverde/gardenia/internal/common"
)

const userAgent = "gardenia"

// ErrUploadFailed is the single failure surfaced to callers; the upload
// host is opaque to the rest of the system.
var ErrUploadFailed = errors.New("image upload failed")

// Uploader pushes an image and returns its hosted URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, data io.Reader) (string, error)
}

// CloudinaryClient implements Uploader against the Cloudinary unsigned
// upload endpoint.
type CloudinaryClient struct {
	httpClient   *http.Client
	baseURL      string
	cloudName    string
	uploadPreset string
}

// Option configures a CloudinaryClient.
type Option func(*CloudinaryClient)

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) Option {
	return func(c *CloudinaryClient) {
		c.baseURL = url
	}
}

// NewCloudinaryClient creates an uploader for the given cloud and preset.
func NewCloudinaryClient(httpClient *http.Client, cloudName, uploadPreset string, opts ...Option) *CloudinaryClient {
	c := &CloudinaryClient{
		httpClient:   httpClient,
		baseURL:      "https://api.cloudinary.com/v1_1",
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

// Upload sends the file as an unsigned upload and returns the secure URL.
func (c *CloudinaryClient) Upload(ctx context.Context, filename string, data io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(fw, data); err != nil {
		return "", err
	}
	if err := mw.WriteField("upload_preset", c.uploadPreset); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s/image/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		common.Logger().Error("image upload failed", zap.Error(err))
		return "", ErrUploadFailed
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		common.Logger().Error("image upload rejected", zap.Int("status", resp.StatusCode))
		return "", ErrUploadFailed
	}

	var ur uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return "", ErrUploadFailed
	}
	if ur.SecureURL == "" {
		return "", ErrUploadFailed
	}
	return ur.SecureURL, nil
}

// Compile-time interface check
var _ Uploader = (*CloudinaryClient)(nil)
