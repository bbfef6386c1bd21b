package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultClientTimeout = 10 * time.Second

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:3000")
//	resp, err := client.R().Get("/api/users/current")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL that sends and expects
// JSON. An empty baseURL leaves request URLs absolute.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetTimeout(defaultClientTimeout).
		SetHeader("Accept", "application/json")

	if baseURL != "" {
		client.SetBaseURL(baseURL)
	}

	return &HTTPClient{Client: client}
}

// WithBearer returns a request that carries "Authorization: Bearer <token>".
func (c *HTTPClient) WithBearer(token string) *resty.Request {
	return c.R().SetAuthScheme("Bearer").SetAuthToken(token)
}
