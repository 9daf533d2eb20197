package flavor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxResponse bounds how much of a reply is read.
const maxResponse = 4 << 10

// HTTP asks a remote text service for the quip. The service receives
// {"score": n, "cause": "..."} and answers {"message": "..."}.
type HTTP struct {
	Endpoint string
	Client   *http.Client
	Timeout  time.Duration
}

// NewHTTP creates a generator for endpoint. A zero timeout means no
// deadline beyond the caller's context.
func NewHTTP(endpoint string, timeout time.Duration) *HTTP {
	return &HTTP{
		Endpoint: endpoint,
		Client:   &http.Client{},
		Timeout:  timeout,
	}
}

type request struct {
	Score int    `json:"score"`
	Cause string `json:"cause"`
}

type response struct {
	Message string `json:"message"`
}

// Generate posts the round result and returns the service's message.
func (h *HTTP) Generate(ctx context.Context, score int, cause string) (string, error) {
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	body, err := json.Marshal(request{Score: score, Cause: cause})
	if err != nil {
		return "", fmt.Errorf("flavor: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("flavor: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("flavor: post %s: %w", h.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("flavor: %s returned %s", h.Endpoint, resp.Status)
	}
	var out response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponse)).Decode(&out); err != nil {
		return "", fmt.Errorf("flavor: decode response: %w", err)
	}
	return out.Message, nil
}
