package utils

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "returns empty when limit non-positive",
			input:  "Python is a language",
			limit:  0,
			expect: "",
		},
		{
			name:   "shorter than limit",
			input:  "Python",
			limit:  10,
			expect: "Python",
		},
		{
			name:   "truncates and adds ellipsis",
			input:  "Python is a language",
			limit:  6,
			expect: "Python...",
		},
		{
			name:   "flattens multi-line answers",
			input:  "  first line\n\n\tsecond line  ",
			limit:  50,
			expect: "first line second line",
		},
		{
			name:   "counts runes not bytes",
			input:  "привет мир",
			limit:  6,
			expect: "привет...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
