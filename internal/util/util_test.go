package util

import (
	"testing"
	"time"
)

func TestFormatMeters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		meters   float64
		expected string
	}{
		{name: "zero", meters: 0, expected: "0 m"},
		{name: "inside default radius", meters: 149.6, expected: "150 m"},
		{name: "just under a kilometre", meters: 999.4, expected: "999 m"},
		{name: "kilometres", meters: 1234, expected: "1.23 km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatMeters(tt.meters); got != tt.expected {
				t.Fatalf("FormatMeters(%f) = %s, want %s", tt.meters, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "poll interval", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "check-out threshold", duration: 5 * time.Minute, expected: "5m0s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestNormalizeAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		address  string
		expected string
	}{
		{name: "already normal", address: "1 main st", expected: "1 main st"},
		{name: "mixed case and padding", address: "  1 Main   St\t", expected: "1 main st"},
		{name: "empty", address: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeAddress(tt.address); got != tt.expected {
				t.Fatalf("NormalizeAddress(%q) = %q, want %q", tt.address, got, tt.expected)
			}
		})
	}
}
