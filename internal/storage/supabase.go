// Package storage signs upload and read URLs against the hosted object
// storage that keeps product and promo images. The API only hands out signed
// URLs; file bytes never pass through this service.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/delipedidos/api/internal/config"
)

var (
	// ErrDisabled is returned when storage credentials are not configured.
	ErrDisabled = errors.New("object storage is not configured")
	// ErrRequestFailed covers transport-level failures.
	ErrRequestFailed = errors.New("storage request failed")
	// ErrResponseInvalid covers unexpected status codes or bodies.
	ErrResponseInvalid = errors.New("storage response invalid")
)

// SignedUpload is a one-time upload grant.
type SignedUpload struct {
	URL   string `json:"url"`
	Token string `json:"token"`
	Path  string `json:"path"`
}

// Client talks to the Supabase Storage REST API with the service role key.
type Client struct {
	baseURL    string
	serviceKey string
	bucket     string
	httpClient *http.Client
}

// NewClient builds a storage client from config. A client without URL or key
// is still returned; every call then fails with ErrDisabled so the rest of
// the app can boot without storage credentials.
func NewClient(cfg *config.StorageConfig) *Client {
	timeout := 5 * time.Second
	if cfg != nil && cfg.TimeoutMS > 0 {
		timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
	}
	client := &Client{httpClient: &http.Client{Timeout: timeout}}
	if cfg != nil {
		client.baseURL = strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
		client.serviceKey = strings.TrimSpace(cfg.ServiceKey)
		client.bucket = strings.TrimSpace(cfg.Bucket)
	}
	return client
}

// Enabled reports whether the client holds working credentials.
func (c *Client) Enabled() bool {
	return c != nil && c.baseURL != "" && c.serviceKey != "" && c.bucket != ""
}

// Bucket returns the configured bucket name.
func (c *Client) Bucket() string {
	if c == nil {
		return ""
	}
	return c.bucket
}

// CreateSignedUploadURL asks storage for a one-time upload grant for path.
func (c *Client) CreateSignedUploadURL(ctx context.Context, path string) (*SignedUpload, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}
	endpoint := fmt.Sprintf("%s/storage/v1/object/upload/sign/%s/%s", c.baseURL, c.bucket, cleanPath(path))
	body, err := c.doJSON(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		URL   string `json:"url"`
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode upload sign response failed", ErrResponseInvalid)
	}
	if parsed.URL == "" {
		return nil, fmt.Errorf("%w: upload sign response missing url", ErrResponseInvalid)
	}
	signedURL := parsed.URL
	if strings.HasPrefix(signedURL, "/") {
		signedURL = c.baseURL + "/storage/v1" + signedURL
	}
	return &SignedUpload{
		URL:   signedURL,
		Token: parsed.Token,
		Path:  cleanPath(path),
	}, nil
}

// CreateSignedReadURL asks storage for a time-limited download URL for path.
func (c *Client) CreateSignedReadURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	endpoint := fmt.Sprintf("%s/storage/v1/object/sign/%s/%s", c.baseURL, c.bucket, cleanPath(path))
	payload, _ := json.Marshal(map[string]int{"expiresIn": int(ttl.Seconds())})
	body, err := c.doJSON(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return "", err
	}

	var parsed struct {
		SignedURL string `json:"signedURL"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: decode read sign response failed", ErrResponseInvalid)
	}
	if parsed.SignedURL == "" {
		return "", fmt.Errorf("%w: read sign response missing signedURL", ErrResponseInvalid)
	}
	if strings.HasPrefix(parsed.SignedURL, "/") {
		return c.baseURL + "/storage/v1" + parsed.SignedURL, nil
	}
	return parsed.SignedURL, nil
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: build request failed", ErrRequestFailed)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: http request failed", ErrRequestFailed)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response failed", ErrRequestFailed)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrResponseInvalid, resp.StatusCode)
	}
	return respBody, nil
}

func cleanPath(path string) string {
	return strings.TrimLeft(strings.TrimSpace(path), "/")
}
