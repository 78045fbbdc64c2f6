package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client used for
// outbound calls to the identity provider.
//
// Example usage:
//
//	client := utils.NewHTTPClient(10 * time.Second)
//	resp, err := client.R().SetContext(ctx).Get(jwksURL)
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with the given request timeout.
// A non-positive timeout leaves resty's default (no timeout).
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
