// Package worker is the HTTP client for the external transcription and
// summarization service.
package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Result is the worker's response for a processing request. Transcript and
// Summary are independently optional; either may be empty on a completed run.
type Result struct {
	Status     string `json:"status"`
	Transcript string `json:"transcript,omitempty"`
	Summary    string `json:"summary,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (r *Result) Completed() bool { return r.Status == StatusCompleted }

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("worker base URL is required")
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

type processRequest struct {
	VideoID string `json:"video_id"`
	URL     string `json:"url"`
}

// Process sends a video to the worker and waits for the outcome. The worker
// holds the connection until it finishes, so callers run this off the
// request path.
func (c *Client) Process(ctx context.Context, videoID, url string) (*Result, error) {
	body, err := json.Marshal(processRequest{VideoID: videoID, URL: url})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode process request")
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/process",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build process request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "process request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("worker returned status %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "failed to decode worker response")
	}

	if result.Status != StatusCompleted && result.Status != StatusFailed {
		return nil, errors.Errorf("worker returned unknown status %q", result.Status)
	}

	return &result, nil
}

// Healthy probes the worker's health endpoint.
func (c *Client) Healthy(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return errors.Wrap(err, "failed to build health request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "health request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("worker health returned status %d", resp.StatusCode)
	}
	return nil
}
