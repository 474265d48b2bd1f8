package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSecret(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing secret: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("ANSWER_SCORER_TEST_KEY", "  from-env \n")

	tests := []struct {
		name    string
		src     Source
		expect  string
		wantErr string
	}{
		{
			name:   "file wins",
			src:    Source{File: writeSecret(t, "from-file\n"), Value: "inline", Env: "ANSWER_SCORER_TEST_KEY"},
			expect: "from-file",
		},
		{
			name:   "inline value",
			src:    Source{Value: " inline ", Env: "ANSWER_SCORER_TEST_KEY"},
			expect: "inline",
		},
		{
			name:   "environment fallback",
			src:    Source{Env: "ANSWER_SCORER_TEST_KEY"},
			expect: "from-env",
		},
		{
			name:    "empty file",
			src:     Source{Name: "gemini api key", File: writeSecret(t, "  \n")},
			wantErr: `gemini api key file`,
		},
		{
			name:    "missing file",
			src:     Source{File: filepath.Join(t.TempDir(), "absent")},
			wantErr: "reading secret from file",
		},
		{
			name:    "empty environment",
			src:     Source{Name: "openai api key", Env: "ANSWER_SCORER_UNSET_KEY"},
			wantErr: "openai api key is not configured (ANSWER_SCORER_UNSET_KEY is empty)",
		},
		{
			name:    "nothing configured",
			src:     Source{},
			wantErr: "secret is not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.src)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
