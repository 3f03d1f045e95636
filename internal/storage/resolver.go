package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"inkwell/internal/config"
)

// Resolver turns a stored media reference into a fetchable URL.
type Resolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

// NewResolver builds a resolver from application config. When storage is
// disabled, a passthrough implementation is returned that leaves every
// reference unchanged.
func NewResolver(cfg *config.Config) (Resolver, error) {
	if cfg == nil || !cfg.Storage.Enabled {
		return passthroughResolver{}, nil
	}
	return NewClient(
		cfg.Storage.BaseURL,
		cfg.Storage.ServiceKey,
		cfg.Storage.Bucket,
		cfg.Storage.SignedURLTTL,
		WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.Storage.RequestTimeout) * time.Second}),
	)
}

// IsAbsoluteURL reports whether ref already carries a scheme and host and
// therefore needs no signing.
func IsAbsoluteURL(ref string) bool {
	parsed, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return false
	}
	return parsed.IsAbs() && parsed.Host != ""
}

type passthroughResolver struct{}

func (passthroughResolver) Resolve(_ context.Context, ref string) (string, error) {
	return ref, nil
}

// Client resolves references against the object storage signing endpoint.
type Client struct {
	baseURL    string
	serviceKey string
	bucket     string
	ttlSeconds int
	httpClient *http.Client
}

var _ Resolver = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient creates a storage signing client.
func NewClient(baseURL, serviceKey, bucket string, ttlSeconds int, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("storage base url required")
	}
	serviceKey = strings.TrimSpace(serviceKey)
	if serviceKey == "" {
		return nil, errors.New("storage service key required")
	}
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, errors.New("storage bucket required")
	}
	if ttlSeconds <= 0 {
		ttlSeconds = 3600
	}
	client := &Client{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		bucket:     bucket,
		ttlSeconds: ttlSeconds,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Resolve returns ref unchanged when it is already absolute and otherwise
// exchanges the object path for a signed URL.
func (c *Client) Resolve(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.New("empty media reference")
	}
	if IsAbsoluteURL(ref) {
		return ref, nil
	}
	return c.CreateSignedURL(ctx, c.bucket, ref)
}

type signRequest struct {
	ExpiresIn int `json:"expiresIn"`
}

type signResponse struct {
	SignedURL string `json:"signedURL"`
}

// CreateSignedURL requests a time-limited URL for one object.
func (c *Client) CreateSignedURL(ctx context.Context, bucket, objectPath string) (string, error) {
	objectPath = strings.TrimLeft(strings.TrimSpace(objectPath), "/")
	if objectPath == "" {
		return "", errors.New("empty object path")
	}

	payload, err := json.Marshal(signRequest{ExpiresIn: c.ttlSeconds})
	if err != nil {
		return "", fmt.Errorf("marshal sign request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/object/sign/%s/%s", c.baseURL, url.PathEscape(bucket), objectPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build sign request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sign %s: %w", objectPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("sign %s: status %d: %s", objectPath, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded signResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode sign response: %w", err)
	}
	signed := strings.TrimSpace(decoded.SignedURL)
	if signed == "" {
		return "", errors.New("sign response missing signed url")
	}
	if IsAbsoluteURL(signed) {
		return signed, nil
	}
	return c.baseURL + "/" + strings.TrimLeft(signed, "/"), nil
}
