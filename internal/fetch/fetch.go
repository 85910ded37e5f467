// Package fetch performs the single outbound HTTP request that obtains
// source image bytes for the watermark pipeline.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// Timeout bounds the whole fetch, including the body read.
	Timeout = 10 * time.Second

	// maxBodyBytes caps the source payload. 4K wallpapers stay well under
	// this; anything larger is not a wallpaper.
	maxBodyBytes = 64 << 20
)

var (
	// ErrInvalidURL is returned for malformed URLs and for schemes other
	// than plain http or https. No network activity happens in this case.
	ErrInvalidURL = errors.New("invalid source URL")

	// ErrStatus is returned when the origin answers with a non-200 status.
	ErrStatus = errors.New("unexpected response status")
)

// Client performs single-attempt image fetches with a fixed timeout.
// The zero value is not usable; construct with New.
type Client struct {
	http *http.Client
}

// New returns a Client with the default 10 second timeout.
func New() *Client {
	return NewWithTimeout(Timeout)
}

// NewWithTimeout returns a Client with a custom timeout.
func NewWithTimeout(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}}
}

// Image fetches raw image bytes from rawURL.
//
// The scheme is validated before any network use. A single GET is issued
// with no retries; failures propagate immediately. The request is abandoned
// when ctx is cancelled and no partial payload is returned.
func (c *Client) Image(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme %q", ErrInvalidURL, u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch source image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read source image: %w", err)
	}
	return body, nil
}
