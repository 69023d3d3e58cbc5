// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateAccount opens an account identified by RIB for the client with
// the given identity number. Agent-only on the backend.
func (c *Client) CreateAccount(ctx context.Context, request CreateAccountRequest) (*Account, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/accounts/create", request, nil)
	if err != nil {
		return nil, err
	}
	account, err := decode[Account](c, body)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// AccountByID fetches a single account by numeric ID.
func (c *Client) AccountByID(ctx context.Context, id int64) (*Account, error) {
	body, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/accounts/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	account, err := decode[Account](c, body)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// AccountByRIB fetches a single account by RIB.
func (c *Client) AccountByRIB(ctx context.Context, rib string) (*Account, error) {
	path := "/accounts/rib/" + url.PathEscape(rib)
	body, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	account, err := decode[Account](c, body)
	if err != nil {
		return nil, err
	}
	return &account, nil
}
