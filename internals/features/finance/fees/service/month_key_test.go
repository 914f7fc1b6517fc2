package service

import (
	"testing"
	"time"
)

func TestParseMonthKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "2026-03", wantErr: false},
		{name: "valid december", input: "2025-12", wantErr: false},
		{name: "missing zero padding", input: "2026-3", wantErr: true},
		{name: "full date", input: "2026-03-01", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "maret 2026", wantErr: true},
		{name: "month out of range", input: "2026-13", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMonthKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMonthKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestMonthKeyOrderingIsChronological(t *testing.T) {
	// zero-padding bikin urutan leksikografis == urutan waktu
	if !("2025-09" < "2025-10") {
		t.Fatal("expected 2025-09 < 2025-10")
	}
	if !("2025-12" < "2026-01") {
		t.Fatal("expected 2025-12 < 2026-01")
	}
}

func TestDueDateFor(t *testing.T) {
	got, err := DueDateFor("2026-02")
	if err != nil {
		t.Fatalf("DueDateFor: %v", err)
	}
	want := time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("DueDateFor(2026-02) = %v, want %v", got, want)
	}

	if _, err := DueDateFor("2026-2"); err == nil {
		t.Fatal("expected error for malformed month key")
	}
}
