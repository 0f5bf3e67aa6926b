package util

import "testing"

func TestPluralize(t *testing.T) {
	tests := []struct {
		count    int
		expected string
	}{
		{0, "hosts"},
		{1, "host"},
		{2, "hosts"},
	}

	for _, tt := range tests {
		got := Pluralize(tt.count, "host", "hosts")
		if got != tt.expected {
			t.Errorf("Pluralize(%d) = %q, want %q", tt.count, got, tt.expected)
		}
	}
}
