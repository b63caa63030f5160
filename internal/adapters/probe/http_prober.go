package probe

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// HTTPProber checks object reachability with HEAD requests.
type HTTPProber struct {
	client *http.Client
}

// NewHTTPProber creates a prober with the given per-request timeout.
// A zero timeout uses the default.
func NewHTTPProber(timeout time.Duration) *HTTPProber {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPProber{
		client: &http.Client{Timeout: timeout},
	}
}

// Reachable issues a HEAD request and reports whether the response status
// was ok (2xx). Network failures are returned as errors; non-ok statuses
// are not errors.
func (p *HTTPProber) Reachable(ctx context.Context, url string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}
