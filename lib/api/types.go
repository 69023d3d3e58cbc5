// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// envelope is the backend's uniform response wrapper. Every endpoint
// returns {"success": ..., "message": ..., "data": ...}; the gateway
// surfaces only the data payload on success and the message on failure.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// errorBody is the failure shape shared by all endpoints. Only the
// message is consumed; everything else is backend-owned.
type errorBody struct {
	Message string `json:"message"`
}

// Timestamp wraps time.Time to accept the backend's LocalDateTime
// serialization ("2006-01-02T15:04:05", optional fractional seconds,
// no zone designator) alongside RFC 3339.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// UnmarshalJSON parses the backend timestamp formats. An empty or null
// value leaves the zero time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("api: unrecognized timestamp %q", raw)
}

// MarshalJSON emits RFC 3339, which the backend accepts on input.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// Date is a calendar date without a time component, matching the
// backend's LocalDate serialization ("2006-01-02").
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("api: unrecognized date %q", raw)
	}
	d.Time = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// LoginRequest is the credential pair sent to POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the success payload of POST /auth/login. The token
// is an opaque bearer credential from the client's point of view
// (the session layer may peek at JWT claims for expiry display, but
// never depends on them).
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// ChangePasswordRequest is the payload of POST /auth/change-password.
// All three fields are forwarded; the backend re-validates them.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// BankClient is a client-of-the-bank record as returned by the clients
// endpoints. Named to avoid colliding with [Client], the gateway.
type BankClient struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	IdentityNumber string `json:"identityNumber"`
	BirthDate      Date   `json:"birthDate"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	Username       string `json:"username"`
}

// CreateClientRequest is the onboarding payload of POST /clients.
type CreateClientRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	IdentityNumber string `json:"identityNumber"`
	BirthDate      string `json:"birthDate"`
	Email          string `json:"email"`
	Address        string `json:"address"`
}

// Account is a bank account as returned by the accounts and dashboard
// endpoints. Balance uses decimal arithmetic — money never goes through
// binary floating point.
type Account struct {
	ID         int64           `json:"id"`
	RIB        string          `json:"rib"`
	Balance    decimal.Decimal `json:"balance"`
	Status     string          `json:"status"`
	CreatedAt  Timestamp       `json:"createdAt"`
	ClientName string          `json:"clientName"`
}

// CreateAccountRequest is the payload of POST /accounts/create. The RIB
// identifies the new account; the identity number links it to an
// existing client. RIB format validation is backend-owned.
type CreateAccountRequest struct {
	RIB            string `json:"rib"`
	IdentityNumber string `json:"identityNumber"`
}

// Transaction is a single ledger entry.
type Transaction struct {
	ID     int64           `json:"id"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Label  string          `json:"label"`
	Date   Timestamp       `json:"date"`
}

// DashboardSummary is the payload of GET /dashboard: the selected
// account (or the client's first account when none is specified), its
// recent transactions, all accounts held by the client, and the total
// balance across them.
type DashboardSummary struct {
	Account            *Account        `json:"account"`
	RecentTransactions []Transaction   `json:"recentTransactions"`
	AllAccounts        []Account       `json:"allAccounts"`
	TotalBalance       decimal.Decimal `json:"totalBalance"`
}

// TransactionPage is one page of the transaction listing. The backend
// owns the page math; the client only walks Content and TotalPages.
type TransactionPage struct {
	Content    []Transaction `json:"content"`
	TotalPages int           `json:"totalPages"`
}

// TransferRequest is the payload of POST /transfers. Accounts are
// addressed by RIB on both sides; the motif is the human-readable
// reason that ends up as the transaction label.
type TransferRequest struct {
	SourceRIB      string          `json:"sourceRib"`
	DestinationRIB string          `json:"destinationRib"`
	Amount         decimal.Decimal `json:"amount"`
	Motif          string          `json:"motif"`
}
