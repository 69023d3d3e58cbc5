// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package routes

import "github.com/TNT-747/ebank/lib/session"

// Route identifies a logical view of the application.
type Route string

const (
	RouteLogin          Route = "login"
	RouteDashboard      Route = "dashboard"
	RouteNewClient      Route = "new-client"
	RouteNewAccount     Route = "new-account"
	RouteNewTransfer    Route = "new-transfer"
	RouteChangePassword Route = "change-password"
)

// Policy is the fixed route → allowed-roles mapping. Not user
// configurable: teller views are agent-only, account views are
// client-only, and password change is open to both roles. Login has no
// entry — it is the one public view.
var Policy = map[Route][]session.Role{
	RouteDashboard:      {session.RoleClient},
	RouteNewTransfer:    {session.RoleClient},
	RouteNewClient:      {session.RoleAgent},
	RouteNewAccount:     {session.RoleAgent},
	RouteChangePassword: {session.RoleAgent, session.RoleClient},
}

// Allowed returns the allow-list for a route. A route without a policy
// entry returns nil, which [Decide] reads as "any authenticated user".
func Allowed(route Route) []session.Role {
	return Policy[route]
}

// Protected reports whether a route requires authentication at all.
func Protected(route Route) bool {
	return route != RouteLogin
}

// HomeRoute is the role-based landing view: tellers start at client
// onboarding, clients at their dashboard. With no session the only
// place to go is login.
func HomeRoute(identity *session.Identity) Route {
	if identity == nil {
		return RouteLogin
	}
	switch identity.Role {
	case session.RoleAgent:
		return RouteNewClient
	case session.RoleClient:
		return RouteDashboard
	}
	return RouteLogin
}

// Navigable lists the views the navbar offers for the given identity,
// in display order. Logged out, there is nothing to navigate to.
func Navigable(identity *session.Identity) []Route {
	if identity == nil {
		return nil
	}
	all := []Route{RouteNewClient, RouteNewAccount, RouteDashboard, RouteNewTransfer, RouteChangePassword}
	var visible []Route
	for _, route := range all {
		if Decide(identity, false, Allowed(route)) == DecisionRender {
			visible = append(visible, route)
		}
	}
	return visible
}

// Title returns the human-readable view name used by the navbar and
// view headers.
func Title(route Route) string {
	switch route {
	case RouteLogin:
		return "Sign in"
	case RouteDashboard:
		return "Dashboard"
	case RouteNewClient:
		return "New client"
	case RouteNewAccount:
		return "New account"
	case RouteNewTransfer:
		return "New transfer"
	case RouteChangePassword:
		return "Change password"
	}
	return string(route)
}
