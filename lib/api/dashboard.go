// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Dashboard fetches the balance overview for the authenticated client.
// accountID selects which account's recent transactions to include;
// pass 0 to let the backend pick the client's first account.
func (c *Client) Dashboard(ctx context.Context, accountID int64) (*DashboardSummary, error) {
	var query url.Values
	if accountID > 0 {
		query = url.Values{"accountId": []string{strconv.FormatInt(accountID, 10)}}
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/dashboard", nil, query)
	if err != nil {
		return nil, err
	}
	summary, err := decode[DashboardSummary](c, body)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// Transactions fetches one page of an account's transaction history.
// page is zero-based; size is the page length.
func (c *Client) Transactions(ctx context.Context, accountID int64, page, size int) (*TransactionPage, error) {
	query := url.Values{
		"page": []string{strconv.Itoa(page)},
		"size": []string{strconv.Itoa(size)},
	}
	path := fmt.Sprintf("/dashboard/accounts/%d/transactions", accountID)

	body, err := c.doRequest(ctx, http.MethodGet, path, nil, query)
	if err != nil {
		return nil, err
	}
	listing, err := decode[TransactionPage](c, body)
	if err != nil {
		return nil, err
	}
	return &listing, nil
}
