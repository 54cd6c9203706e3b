package menu

import (
	"strings"
	"testing"
)

func TestEncodeAction(t *testing.T) {
	tests := []struct {
		name    string
		verb    string
		groupID int64
		want    string
		wantErr bool
	}{
		{
			name:    "open verb with negative group",
			verb:    "open_daily",
			groupID: -1003595290365,
			want:    "open_daily:-1003595290365",
		},
		{
			name:    "toggle verb",
			verb:    "toggle_morning",
			groupID: 42,
			want:    "toggle_morning:42",
		},
		{
			name:    "empty verb",
			verb:    "",
			groupID: 1,
			wantErr: true,
		},
		{
			name:    "verb containing separator",
			verb:    "open:daily",
			groupID: 1,
			wantErr: true,
		},
		{
			name:    "verb exceeding limit",
			verb:    strings.Repeat("x", 70),
			groupID: 1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeAction(tt.verb, tt.groupID)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("EncodeAction() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseActionRoundTrip(t *testing.T) {
	data, err := EncodeAction("interval_increase", -987654321)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	action, err := ParseAction(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if action.Verb != "interval_increase" || action.GroupID != -987654321 {
		t.Fatalf("round trip mismatch: %+v", action)
	}
}

func TestParseActionRejectsGarbage(t *testing.T) {
	for _, data := range []string{"", "noseparator", ":42", "verb:", "verb:notanumber", strings.Repeat("x", 80)} {
		if _, err := ParseAction(data); err == nil {
			t.Errorf("expected error for %q", data)
		}
	}
}
