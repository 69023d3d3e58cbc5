// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
	"net/url"
)

// CreateClient onboards a new bank client. Agent-only on the backend.
func (c *Client) CreateClient(ctx context.Context, request CreateClientRequest) (*BankClient, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/clients", request, nil)
	if err != nil {
		return nil, err
	}
	created, err := decode[BankClient](c, body)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListClients returns all clients. Agent-only on the backend.
func (c *Client) ListClients(ctx context.Context) ([]BankClient, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/clients", nil, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]BankClient](c, body)
}

// ClientByIdentity looks up a client by national identity number.
// Agent-only on the backend.
func (c *Client) ClientByIdentity(ctx context.Context, identityNumber string) (*BankClient, error) {
	path := "/clients/identity/" + url.PathEscape(identityNumber)
	body, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	found, err := decode[BankClient](c, body)
	if err != nil {
		return nil, err
	}
	return &found, nil
}
