package services

import (
	"testing"
	"time"
)

func TestToday(t *testing.T) {
	// GO_ENV=test freezes the clock to September 11, 2025 15:00 UTC
	expected := time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC)
	if got := Today(); !got.Equal(expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestParseEventDay(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "ISO date",
			input:    "2025-09-12",
			expected: time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "RFC3339 timestamp drops the clock portion",
			input:    "2025-09-12T18:30:00Z",
			expected: time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "US style date",
			input:    "09/12/2025",
			expected: time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "written-out date",
			input:    "September 12, 2025",
			expected: time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "fuzzy date embedded in prose",
			input:    "join us on 12th September 2025 at the beach",
			expected: time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "no date at all",
			input:   "see you there",
			wantErr: true,
		},
		{
			name:    "month and day without a year",
			input:   "12th September",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEventDay(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got %v", tt.input, got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.input, err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
