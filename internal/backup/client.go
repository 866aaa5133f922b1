// Package backup talks to a WebDAV-style remote for snapshot backup and
// restore. Only the small surface the app needs is implemented: put, get,
// existence probe and a connectivity check.
package backup

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultFilename is used when the caller does not name the backup file.
const DefaultFilename = "ledgerkeep_backup.json"

// Config holds the remote endpoint and credentials.
type Config struct {
	URL      string
	Username string
	Password string
	Timeout  time.Duration
}

// Client is a minimal WebDAV client over plain HTTP verbs.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

// NewClient creates a backup client for the given remote.
func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse backup url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("backup url must be http or https, got %q", base.Scheme)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(base.String(), "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Check probes connectivity by listing the remote root.
func (c *Client) Check(ctx context.Context) error {
	req, err := c.newRequest(ctx, "PROPFIND", "/", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Depth", "0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backup remote unreachable: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("backup remote check failed: %s", resp.Status)
	}
	return nil
}

// Put uploads the payload, overwriting any previous backup of that name.
func (c *Client) Put(ctx context.Context, filename string, data []byte) error {
	req, err := c.newRequest(ctx, http.MethodPut, c.path(filename), bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backup upload: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("backup upload failed: %s", resp.Status)
	}
	return nil
}

// Exists reports whether a backup of that name is on the remote.
func (c *Client) Exists(ctx context.Context, filename string) (bool, error) {
	req, err := c.newRequest(ctx, http.MethodHead, c.path(filename), nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("backup probe: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode >= 400:
		return false, fmt.Errorf("backup probe failed: %s", resp.Status)
	}
	return true, nil
}

// Get downloads a backup payload.
func (c *Client) Get(ctx context.Context, filename string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.path(filename), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backup download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrBackupNotFound
	}
	if resp.StatusCode >= 400 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("backup download failed: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) path(filename string) string {
	if filename == "" {
		filename = DefaultFilename
	}
	return "/" + strings.TrimLeft(filename, "/")
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	return req, nil
}
