// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// maxResponseSize bounds response body reads: 8 MB. Backend payloads
// are small JSON documents; the bound only exists so a misbehaving
// server cannot exhaust client memory.
const maxResponseSize int64 = 8 << 20

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the backend API root (e.g., "http://localhost:8080/api").
	BaseURL string
	// HTTPClient is used for all requests. If nil, http.DefaultClient
	// is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
	// TokenSource returns the current bearer credential, or "" when no
	// session exists. A request without a credential proceeds
	// unauthenticated — the backend rejects it if authentication is
	// required. If nil, all requests go out unauthenticated.
	TokenSource func() string
	// OnUnauthorized is invoked when a response comes back 401. It fires
	// at most once per credential: concurrent in-flight calls that each
	// receive 401 for the same token trigger a single notification. The
	// application root subscribes here to clear the session and route
	// back to login; the gateway itself never navigates.
	OnUnauthorized func()
	// KeepSessionOnUnauthorized suppresses the OnUnauthorized
	// notification. The source system force-logged-out on every 401,
	// including ones unrelated to credential expiry (a transient proxy
	// can return 401 too); this switch preserves that behavior as the
	// default while allowing deployments behind such proxies to opt out.
	KeepSessionOnUnauthorized bool
}

// Client issues all outbound calls to the ebank backend.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	logger         *slog.Logger
	tokenSource    func() string
	onUnauthorized func()
	notifyOn401    bool

	// mu guards notifiedToken: the credential for which OnUnauthorized
	// has already fired. A fresh login installs a different token, which
	// re-arms the notification.
	mu            sync.Mutex
	notifiedToken string
}

// NewClient creates a gateway client for the backend at config.BaseURL.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("api: invalid BaseURL %q: %w", config.BaseURL, err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:        strings.TrimRight(config.BaseURL, "/"),
		httpClient:     httpClient,
		logger:         logger,
		tokenSource:    config.TokenSource,
		onUnauthorized: config.OnUnauthorized,
		notifyOn401:    !config.KeepSessionOnUnauthorized,
	}, nil
}

// doRequest performs one backend call and returns the raw response body
// on success. All failures come back as *Error; no other error type
// escapes to callers.
func (c *Client) doRequest(ctx context.Context, method, path string, requestBody any, query url.Values) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, &Error{Kind: KindUnknown, Message: unknownMessage}
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: unknownMessage}
	}

	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("X-Request-ID", uuid.NewString())

	var token string
	if c.tokenSource != nil {
		token = c.tokenSource()
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		c.logger.Warn("backend request failed",
			"method", method,
			"path", path,
			"error", err,
		)
		return nil, &Error{Kind: KindUnknown, Message: unknownMessage}
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		c.logger.Warn("reading backend response failed",
			"method", method,
			"path", path,
			"error", err,
		)
		return nil, &Error{Kind: KindUnknown, Message: unknownMessage}
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	return nil, c.normalizeError(method, path, response.StatusCode, responseBody, token)
}

// normalizeError translates an error response into the closed taxonomy.
// This is the only place in the client where HTTP status codes are
// inspected.
func (c *Client) normalizeError(method, path string, statusCode int, body []byte, token string) *Error {
	switch statusCode {
	case http.StatusUnauthorized:
		c.notifyUnauthorized(token)
		return &Error{Kind: KindUnauthorized, Message: unauthorizedMessage, StatusCode: statusCode}
	case http.StatusForbidden:
		// Fixed message, independent of the server payload.
		return &Error{Kind: KindForbidden, Message: forbiddenMessage, StatusCode: statusCode}
	}

	var failure errorBody
	if err := json.Unmarshal(body, &failure); err == nil && failure.Message != "" {
		return &Error{Kind: KindValidation, Message: failure.Message, StatusCode: statusCode}
	}

	c.logger.Warn("backend returned an unexpected error",
		"method", method,
		"path", path,
		"status", statusCode,
	)
	return &Error{Kind: KindUnknown, Message: unknownMessage, StatusCode: statusCode}
}

// notifyUnauthorized fires OnUnauthorized once per credential. The
// token the failed request carried is recorded so that overlapping
// calls rejected with the same stale credential collapse into a single
// notification, while a 401 against a newly issued token re-fires.
func (c *Client) notifyUnauthorized(token string) {
	if c.onUnauthorized == nil || !c.notifyOn401 {
		return
	}

	c.mu.Lock()
	alreadyNotified := c.notifiedToken == token && token != ""
	if !alreadyNotified {
		c.notifiedToken = token
	}
	c.mu.Unlock()

	if alreadyNotified {
		return
	}
	c.onUnauthorized()
}

// decode unmarshals a success body's envelope and returns the data
// payload. A body that does not parse is reported as KindUnknown — the
// caller must treat it as opaque.
func decode[T any](c *Client, body []byte) (T, error) {
	var wrapped envelope[T]
	if err := json.Unmarshal(body, &wrapped); err != nil {
		c.logger.Warn("malformed backend response", "error", err)
		var zero T
		return zero, &Error{Kind: KindUnknown, Message: unknownMessage}
	}
	return wrapped.Data, nil
}
