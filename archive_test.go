package main

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestReceiptObjectName(t *testing.T) {
	id := uuid.MustParse("6f1c2a9e-3b1d-4c2e-9a41-0c5b8f7d1e22")
	// 23:30 in Los Angeles is already the next day in UTC.
	la := time.FixedZone("PDT", -7*60*60)
	now := time.Date(2026, 3, 14, 23, 30, 0, 0, la)

	tests := []struct {
		filename string
		want     string
	}{
		{"lunch.png", "receipts/2026/03/15/6f1c2a9e-3b1d-4c2e-9a41-0c5b8f7d1e22-lunch.png"},
		{"../../etc/passwd", "receipts/2026/03/15/6f1c2a9e-3b1d-4c2e-9a41-0c5b8f7d1e22-passwd"},
		{`C:\Users\ana\scan.jpg`, "receipts/2026/03/15/6f1c2a9e-3b1d-4c2e-9a41-0c5b8f7d1e22-scan.jpg"},
		{"", "receipts/2026/03/15/6f1c2a9e-3b1d-4c2e-9a41-0c5b8f7d1e22-receipt"},
	}
	for _, tt := range tests {
		if got := receiptObjectName(now, id, tt.filename); got != tt.want {
			t.Errorf("receiptObjectName(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
