// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
)

// Login authenticates with username and password. On success the
// returned payload carries the bearer token and the identity triple
// (username, role, email). No gateway state changes — persisting the
// credential is the session store's job.
func (c *Client) Login(ctx context.Context, request LoginRequest) (*LoginResponse, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/auth/login", request, nil)
	if err != nil {
		return nil, err
	}
	response, err := decode[LoginResponse](c, body)
	if err != nil {
		return nil, err
	}

	c.logger.Info("logged in", "username", response.Username, "role", response.Role)
	return &response, nil
}

// ChangePassword submits a password change for the authenticated user.
// All three values are forwarded; the backend re-validates the match
// and strength rules even though the client pre-checks them.
func (c *Client) ChangePassword(ctx context.Context, request ChangePasswordRequest) error {
	_, err := c.doRequest(ctx, http.MethodPost, "/auth/change-password", request, nil)
	return err
}
