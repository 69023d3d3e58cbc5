// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"testing"

	"github.com/TNT-747/ebank/lib/session"
)

func agent() *session.Identity {
	return &session.Identity{Username: "t1", Role: session.RoleAgent, Email: "t1@bank"}
}

func client() *session.Identity {
	return &session.Identity{Username: "c1", Role: session.RoleClient, Email: "c1@bank"}
}

func TestDecide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		identity *session.Identity
		loading  bool
		allowed  []session.Role
		want     Decision
	}{
		{
			name:    "loading renders nothing, even logged out",
			loading: true,
			want:    DecisionPending,
		},
		{
			name:     "loading wins over a live session",
			identity: client(),
			loading:  true,
			allowed:  []session.Role{session.RoleClient},
			want:     DecisionPending,
		},
		{
			name:    "unauthenticated user on a client-only view",
			allowed: []session.Role{session.RoleClient},
			want:    DecisionRedirectLogin,
		},
		{
			name:     "agent on a client-only view",
			identity: agent(),
			allowed:  []session.Role{session.RoleClient},
			want:     DecisionForbidden,
		},
		{
			name:     "client on an agent-only view",
			identity: client(),
			allowed:  []session.Role{session.RoleAgent},
			want:     DecisionForbidden,
		},
		{
			name:     "role in the allow-list",
			identity: client(),
			allowed:  []session.Role{session.RoleClient},
			want:     DecisionRender,
		},
		{
			name:     "both roles allowed",
			identity: agent(),
			allowed:  []session.Role{session.RoleAgent, session.RoleClient},
			want:     DecisionRender,
		},
		{
			name:     "empty allow-list means any authenticated user",
			identity: agent(),
			want:     DecisionRender,
		},
		{
			name: "empty allow-list still requires authentication",
			want: DecisionRedirectLogin,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := Decide(test.identity, test.loading, test.allowed)
			if got != test.want {
				t.Errorf("Decide = %v, want %v", got, test.want)
			}

			// Purity: the same inputs always give the same decision.
			for range 3 {
				if again := Decide(test.identity, test.loading, test.allowed); again != got {
					t.Fatalf("Decide not stable: %v then %v", got, again)
				}
			}
		})
	}
}

func TestPolicyCoversEveryProtectedRoute(t *testing.T) {
	t.Parallel()

	protected := []Route{RouteDashboard, RouteNewClient, RouteNewAccount, RouteNewTransfer, RouteChangePassword}
	for _, route := range protected {
		if len(Allowed(route)) == 0 {
			t.Errorf("route %s has no policy entry", route)
		}
		for _, role := range Allowed(route) {
			if !role.Valid() {
				t.Errorf("route %s allows invalid role %q", route, role)
			}
		}
	}

	if Allowed(RouteLogin) != nil {
		t.Error("login must not have a role policy")
	}
	if Protected(RouteLogin) {
		t.Error("login must be public")
	}
}

func TestChangePasswordOpenToBothRoles(t *testing.T) {
	t.Parallel()

	allowed := Allowed(RouteChangePassword)
	for _, identity := range []*session.Identity{agent(), client()} {
		if got := Decide(identity, false, allowed); got != DecisionRender {
			t.Errorf("Decide(%s, change-password) = %v, want render", identity.Role, got)
		}
	}
}

func TestHomeRoute(t *testing.T) {
	t.Parallel()

	if got := HomeRoute(agent()); got != RouteNewClient {
		t.Errorf("HomeRoute(agent) = %s, want %s", got, RouteNewClient)
	}
	if got := HomeRoute(client()); got != RouteDashboard {
		t.Errorf("HomeRoute(client) = %s, want %s", got, RouteDashboard)
	}
	if got := HomeRoute(nil); got != RouteLogin {
		t.Errorf("HomeRoute(nil) = %s, want %s", got, RouteLogin)
	}
}

func TestNavigableFiltersByRole(t *testing.T) {
	t.Parallel()

	if Navigable(nil) != nil {
		t.Error("Navigable(nil) should be empty")
	}

	for _, route := range Navigable(agent()) {
		if route == RouteDashboard || route == RouteNewTransfer {
			t.Errorf("agent navbar offers client-only view %s", route)
		}
	}
	for _, route := range Navigable(client()) {
		if route == RouteNewClient || route == RouteNewAccount {
			t.Errorf("client navbar offers agent-only view %s", route)
		}
	}

	// Both roles can always reach the password view.
	for _, identity := range []*session.Identity{agent(), client()} {
		found := false
		for _, route := range Navigable(identity) {
			if route == RouteChangePassword {
				found = true
			}
		}
		if !found {
			t.Errorf("%s navbar missing change-password", identity.Role)
		}
	}
}
