// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"slices"

	"github.com/TNT-747/ebank/lib/session"
)

// Decision is the guard's verdict for a navigation attempt.
type Decision int

const (
	// DecisionPending means session restoration has not completed.
	// Render a neutral loading placeholder; never redirect yet.
	DecisionPending Decision = iota
	// DecisionRender means the view may be shown.
	DecisionRender
	// DecisionRedirectLogin means no session exists — send the user to
	// the login view, remembering where they wanted to go.
	DecisionRedirectLogin
	// DecisionForbidden means the user is authenticated but their role
	// is not in the view's allow-list. Show access denied; no redirect,
	// no session change.
	DecisionForbidden
)

// String returns the decision name for logs and test output.
func (d Decision) String() string {
	switch d {
	case DecisionRender:
		return "render"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionForbidden:
		return "forbidden"
	default:
		return "pending"
	}
}

// Decide gates a protected view. loading is true while the session
// store's restore has not finished; identity is nil when logged out.
// An empty allowed set means "any authenticated user".
func Decide(identity *session.Identity, loading bool, allowed []session.Role) Decision {
	if loading {
		return DecisionPending
	}
	if identity == nil {
		return DecisionRedirectLogin
	}
	if len(allowed) > 0 && !slices.Contains(allowed, identity.Role) {
		return DecisionForbidden
	}
	return DecisionRender
}
