// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"encoding/json"
	"fmt"
)

// Role is the closed set of backend roles. The values are part of the
// external contract — they appear verbatim in login responses.
type Role string

const (
	// RoleAgent is a bank teller (guichet agent): onboards clients and
	// opens accounts.
	RoleAgent Role = "AGENT_GUICHET"
	// RoleClient is a bank client: views balances and executes
	// transfers on their own accounts.
	RoleClient Role = "CLIENT"
)

// ParseRole validates a raw role string from the backend or from the
// persisted identity file.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAgent:
		return RoleAgent, nil
	case RoleClient:
		return RoleClient, nil
	}
	return "", fmt.Errorf("session: unknown role %q", raw)
}

// Valid reports whether the role is one of the two known values.
func (r Role) Valid() bool {
	return r == RoleAgent || r == RoleClient
}

// Label returns the human-readable role name shown in the UI.
func (r Role) Label() string {
	switch r {
	case RoleAgent:
		return "agent"
	case RoleClient:
		return "client"
	}
	return string(r)
}

// UnmarshalJSON rejects roles outside the closed set, so a corrupt or
// tampered identity file fails to parse instead of smuggling an
// unknown role into a live session.
func (r *Role) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseRole(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Identity is the authenticated user as seen by the rest of the
// application: always fully populated when a session exists, never
// partially. The bearer credential lives alongside it in the store but
// is deliberately not part of this struct — views display identity,
// only the gateway handles the credential.
type Identity struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Email    string `json:"email"`
}
