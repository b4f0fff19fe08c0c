package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-portfolio-backend/internal/domain"
)

// Client posts contact submissions to the backend endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL (no trailing slash).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Submit sends the draft as JSON to POST /api/contact. Any non-2xx status or
// transport failure is reported as a single error; the form deliberately does
// not surface the server's specific message, since the same rules already ran
// client-side.
func (c *Client) Submit(ctx context.Context, d Draft) error {
	payload := domain.ContactRequest{
		Name:    d.Name,
		Email:   d.Email,
		Message: d.Message,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/contact", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("submit contact form: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("submit contact form: server returned %d", resp.StatusCode)
	}
	return nil
}
