// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance with JSON
// accept headers and no client-wide timeout; deadlines are applied per
// request through the request context.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetTimeout(0)

	return &HTTPClient{Client: client}
}

// WithBaseURL sets the base URL all relative request paths are resolved
// against and returns the receiver for chaining.
func (c *HTTPClient) WithBaseURL(baseURL string) *HTTPClient {
	c.SetBaseURL(baseURL)
	return c
}

// WithUserAgent sets the User-Agent header sent with every request.
func (c *HTTPClient) WithUserAgent(userAgent string) *HTTPClient {
	c.SetHeader("User-Agent", userAgent)
	return c
}

// RequestDuration returns the wall-clock time spent on the request, or zero
// when the response is nil.
func RequestDuration(resp *resty.Response) time.Duration {
	if resp == nil {
		return 0
	}
	return resp.Time()
}
