// Package storage is a thin client for a Supabase-style object store: PUT
// bytes at a bucket path, read them back through a public URL. Uploads are
// best-effort and not atomic with the metadata write that follows them.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// SafeName replaces every character outside [A-Za-z0-9_-] with an
// underscore so caller-supplied names cannot steer the storage path.
func SafeName(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}

type Client struct {
	baseURL string
	apiKey  string
	bucket  string
	http    *http.Client
}

func NewClient(baseURL, apiKey, bucket string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		bucket:  bucket,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload stores data at path inside the bucket.
func (c *Client) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("storage upload %s: %s: %s", path, resp.Status, body)
	}
	return nil
}

// PublicURL returns the public address of an uploaded object. No existence
// check: the path is assumed resolvable once Upload has succeeded.
func (c *Client) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, path)
}
