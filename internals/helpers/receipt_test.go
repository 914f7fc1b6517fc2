package helper

import (
	"strings"
	"testing"
	"time"
)

func TestNewReceiptNumber(t *testing.T) {
	at := time.Date(2026, time.March, 7, 14, 30, 0, 0, time.UTC)

	got := NewReceiptNumber(at)

	parts := strings.Split(got, "-")
	if len(parts) != 3 {
		t.Fatalf("receipt %q: want 3 segments, got %d", got, len(parts))
	}
	if parts[0] != "RCPT" {
		t.Errorf("prefix = %q, want RCPT", parts[0])
	}
	if parts[1] != "20260307" {
		t.Errorf("date segment = %q, want 20260307", parts[1])
	}
	if len(parts[2]) != 8 {
		t.Errorf("fragment %q: want 8 chars", parts[2])
	}
	if parts[2] != strings.ToUpper(parts[2]) {
		t.Errorf("fragment %q must be uppercase", parts[2])
	}
}

func TestNewReceiptNumberIsCollisionResistant(t *testing.T) {
	at := time.Now()
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		r := NewReceiptNumber(at)
		if seen[r] {
			t.Fatalf("duplicate receipt number %q", r)
		}
		seen[r] = true
	}
}

func TestNewOrderID(t *testing.T) {
	got := NewOrderID("DUES")
	if !strings.HasPrefix(got, "DUES-") {
		t.Fatalf("order id %q: want DUES- prefix", got)
	}
	if len(got) != len("DUES-")+12 {
		t.Errorf("order id %q: want 12-char fragment", got)
	}
}
