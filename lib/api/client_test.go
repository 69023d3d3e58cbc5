// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

// newTestClient builds a Client against the given handler. The returned
// cleanup closes the test server.
func newTestClient(t *testing.T, handler http.Handler, config ClientConfig) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config.BaseURL = server.URL
	client, err := NewClient(config)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(ClientConfig{}); err == nil {
		t.Fatal("NewClient with empty BaseURL: expected error")
	}
}

func TestBearerAndRequestIDHeaders(t *testing.T) {
	t.Parallel()

	var gotAuthorization, gotRequestID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{}})
	})

	client := newTestClient(t, handler, ClientConfig{
		TokenSource: func() string { return "tok-123" },
	})

	if _, err := client.Dashboard(context.Background(), 0); err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if gotAuthorization != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuthorization, "Bearer tok-123")
	}
	if gotRequestID == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestNoTokenMeansUnauthenticatedRequest(t *testing.T) {
	t.Parallel()

	var gotAuthorization string
	var sawHeader bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		_, sawHeader = r.Header["Authorization"]
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{}})
	})

	client := newTestClient(t, handler, ClientConfig{
		TokenSource: func() string { return "" },
	})

	if _, err := client.Dashboard(context.Background(), 0); err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if sawHeader {
		t.Errorf("Authorization header sent for empty token: %q", gotAuthorization)
	}
}

func TestErrorNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    Kind
		wantMessage string
	}{
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{"message": "token expired"}`,
			wantKind: KindUnauthorized,
		},
		{
			name:        "forbidden ignores server message",
			status:      http.StatusForbidden,
			body:        `{"message": "backend-specific denial text"}`,
			wantKind:    KindForbidden,
			wantMessage: forbiddenMessage,
		},
		{
			name:        "server message passed through verbatim",
			status:      http.StatusBadRequest,
			body:        `{"message": "RIB is required"}`,
			wantKind:    KindValidation,
			wantMessage: "RIB is required",
		},
		{
			name:     "non-JSON error body",
			status:   http.StatusBadGateway,
			body:     `<html>upstream sad</html>`,
			wantKind: KindUnknown,
		},
		{
			name:     "JSON error body without message",
			status:   http.StatusInternalServerError,
			body:     `{"detail": "oops"}`,
			wantKind: KindUnknown,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
				w.Write([]byte(test.body))
			})
			client := newTestClient(t, handler, ClientConfig{})

			_, err := client.Dashboard(context.Background(), 0)
			if err == nil {
				t.Fatal("expected error")
			}

			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("error type = %T, want *Error", err)
			}
			if apiErr.Kind != test.wantKind {
				t.Errorf("Kind = %v, want %v", apiErr.Kind, test.wantKind)
			}
			if test.wantMessage != "" && apiErr.Message != test.wantMessage {
				t.Errorf("Message = %q, want %q", apiErr.Message, test.wantMessage)
			}
			if apiErr.StatusCode != test.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, test.status)
			}
		})
	}
}

func TestNetworkFailureIsUnknown(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // Deliberately dead endpoint.

	client, err := NewClient(ClientConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.Dashboard(context.Background(), 0)
	if !IsKind(err, KindUnknown) {
		t.Fatalf("error = %v, want KindUnknown", err)
	}
}

func TestUnauthorizedNotifiesOncePerToken(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	var mu sync.Mutex
	notifications := 0
	token := "stale-token"

	client := newTestClient(t, handler, ClientConfig{
		TokenSource: func() string { return token },
		OnUnauthorized: func() {
			mu.Lock()
			notifications++
			mu.Unlock()
		},
	})

	// Several overlapping calls all rejected with the same stale token
	// must collapse into one notification.
	var group sync.WaitGroup
	for range 5 {
		group.Add(1)
		go func() {
			defer group.Done()
			client.Dashboard(context.Background(), 0)
		}()
	}
	group.Wait()

	mu.Lock()
	got := notifications
	mu.Unlock()
	if got != 1 {
		t.Fatalf("notifications = %d, want 1", got)
	}

	// A fresh credential re-arms the notification.
	token = "new-token"
	client.Dashboard(context.Background(), 0)

	mu.Lock()
	got = notifications
	mu.Unlock()
	if got != 2 {
		t.Fatalf("notifications after new token = %d, want 2", got)
	}
}

func TestKeepSessionOnUnauthorized(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	notified := false
	client := newTestClient(t, handler, ClientConfig{
		TokenSource:               func() string { return "tok" },
		OnUnauthorized:            func() { notified = true },
		KeepSessionOnUnauthorized: true,
	})

	_, err := client.Dashboard(context.Background(), 0)
	if !IsKind(err, KindUnauthorized) {
		t.Fatalf("error = %v, want KindUnauthorized", err)
	}
	if notified {
		t.Error("OnUnauthorized fired despite KeepSessionOnUnauthorized")
	}
}

func TestLoginDecodesEnvelope(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("path = %q, want /auth/login", r.URL.Path)
		}
		var request LoginRequest
		json.NewDecoder(r.Body).Decode(&request)
		if request.Username != "sara" || request.Password != "hunter2" {
			t.Errorf("request = %+v", request)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Connexion réussie",
			"data": map[string]any{
				"token":    "jwt-abc",
				"username": "sara",
				"role":     "CLIENT",
				"email":    "sara@example.com",
			},
		})
	})
	client := newTestClient(t, handler, ClientConfig{})

	response, err := client.Login(context.Background(), LoginRequest{Username: "sara", Password: "hunter2"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if response.Token != "jwt-abc" || response.Role != "CLIENT" || response.Email != "sara@example.com" {
		t.Errorf("response = %+v", response)
	}
}

func TestTransactionsPaginationParams(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dashboard/accounts/42/transactions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("page") != "3" || query.Get("size") != "10" {
			t.Errorf("query = %v", query)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"content": []map[string]any{
					{"id": 1, "type": "DEBIT", "amount": "125.50", "label": "rent", "date": "2026-08-01T09:30:00"},
				},
				"totalPages": 7,
			},
		})
	})
	client := newTestClient(t, handler, ClientConfig{})

	page, err := client.Transactions(context.Background(), 42, 3, 10)
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if page.TotalPages != 7 {
		t.Errorf("TotalPages = %d, want 7", page.TotalPages)
	}
	if len(page.Content) != 1 {
		t.Fatalf("Content length = %d, want 1", len(page.Content))
	}
	want := decimal.RequireFromString("125.50")
	if !page.Content[0].Amount.Equal(want) {
		t.Errorf("Amount = %s, want %s", page.Content[0].Amount, want)
	}
}

func TestDashboardAccountSelector(t *testing.T) {
	t.Parallel()

	var gotQuery string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
			"totalBalance": "900.00",
			"allAccounts":  []any{},
		}})
	})
	client := newTestClient(t, handler, ClientConfig{})

	if _, err := client.Dashboard(context.Background(), 0); err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if gotQuery != "" {
		t.Errorf("query for default account = %q, want empty", gotQuery)
	}

	if _, err := client.Dashboard(context.Background(), 42); err != nil {
		t.Fatalf("Dashboard(42): %v", err)
	}
	if gotQuery != "accountId=42" {
		t.Errorf("query = %q, want accountId=42", gotQuery)
	}
}
