// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
)

// ExecuteTransfer moves funds between two accounts addressed by RIB.
// Balance checks, RIB validation, and the resulting ledger entries are
// backend-owned; a rejected transfer surfaces as a KindValidation error
// carrying the server's reason.
func (c *Client) ExecuteTransfer(ctx context.Context, request TransferRequest) (*Transaction, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/transfers", request, nil)
	if err != nil {
		return nil, err
	}
	transaction, err := decode[Transaction](c, body)
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}
