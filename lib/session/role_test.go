// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"encoding/json"
	"testing"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{"AGENT_GUICHET", RoleAgent, false},
		{"CLIENT", RoleClient, false},
		{"client", "", true},
		{"ADMIN", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		role, err := ParseRole(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseRole(%q): expected error", test.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRole(%q): %v", test.input, err)
			continue
		}
		if role != test.want {
			t.Errorf("ParseRole(%q) = %q, want %q", test.input, role, test.want)
		}
	}
}

func TestRoleJSONRejectsUnknownValues(t *testing.T) {
	t.Parallel()

	var identity Identity
	err := json.Unmarshal([]byte(`{"username": "x", "role": "ROOT", "email": "x@y"}`), &identity)
	if err == nil {
		t.Fatal("expected error decoding unknown role")
	}

	if err := json.Unmarshal([]byte(`{"username": "x", "role": "AGENT_GUICHET", "email": "x@y"}`), &identity); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if identity.Role != RoleAgent {
		t.Errorf("Role = %q, want %q", identity.Role, RoleAgent)
	}
}
