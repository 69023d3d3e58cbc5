// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "testing"

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"login", "", 5},
		{"login", "login", 0},
		{"login", "logout", 3},
		{"transfre", "transfer", 2},
		{"whoami", "whomai", 2},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestSuggestCommandThreshold(t *testing.T) {
	t.Parallel()

	commands := []*Command{
		{Name: "transfer"},
		{Name: "dashboard"},
	}

	if got := suggestCommand("transfre", commands); got != "transfer" {
		t.Errorf("suggestCommand(transfre) = %q, want transfer", got)
	}
	// Nothing within edit distance 3 of this.
	if got := suggestCommand("xyzzyplugh", commands); got != "" {
		t.Errorf("suggestCommand(xyzzyplugh) = %q, want no suggestion", got)
	}
}
