package httpx

import (
	"net/http"
	"time"
)

// NewDefault returns an HTTP client with sane connection limits for
// outbound API calls. Per-request deadlines come from the context; the
// client timeout is a hard backstop.
func NewDefault(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
