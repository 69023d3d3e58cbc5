// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"testing"
)

func TestTimestampAcceptsBackendFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string // RFC 3339 rendering, "" for zero time
	}{
		{"local date time", `"2026-08-01T09:30:00"`, "2026-08-01T09:30:00Z"},
		{"fractional seconds", `"2026-08-01T09:30:00.123"`, "2026-08-01T09:30:00Z"},
		{"rfc3339", `"2026-08-01T09:30:00Z"`, "2026-08-01T09:30:00Z"},
		{"null", `null`, ""},
		{"empty", `""`, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var timestamp Timestamp
			if err := json.Unmarshal([]byte(test.input), &timestamp); err != nil {
				t.Fatalf("Unmarshal(%s): %v", test.input, err)
			}
			if test.want == "" {
				if !timestamp.IsZero() {
					t.Errorf("parsed %s, want zero time", timestamp)
				}
				return
			}
			if got := timestamp.UTC().Truncate(0).Format("2006-01-02T15:04:05Z"); got != test.want {
				t.Errorf("parsed = %s, want %s", got, test.want)
			}
		})
	}

	var timestamp Timestamp
	if err := json.Unmarshal([]byte(`"01/08/2026"`), &timestamp); err == nil {
		t.Error("expected error for unrecognized format")
	}
}

func TestDateParsing(t *testing.T) {
	t.Parallel()

	var date Date
	if err := json.Unmarshal([]byte(`"1994-03-12"`), &date); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if date.Format(dateLayout) != "1994-03-12" {
		t.Errorf("date = %s", date)
	}

	encoded, err := json.Marshal(date)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(encoded) != `"1994-03-12"` {
		t.Errorf("encoded = %s", encoded)
	}
}
