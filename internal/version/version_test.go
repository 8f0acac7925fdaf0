package version

import (
	"strings"
	"testing"
)

func TestVersionComponents(t *testing.T) {
	if Version == "" {
		t.Fatal("Version should have a default value")
	}
	// Строка может содержать ANSI-коды, но цифры компонентов видны всегда.
	for _, part := range []string{"0", "1", "-dev"} {
		if !strings.Contains(Version, part) {
			t.Errorf("Version %q missing %q", Version, part)
		}
	}
}

func TestBuildMetadataOverride(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	defer func() {
		GitCommit, BuildDate = origCommit, origDate
	}()

	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q", GitCommit)
	}
	if BuildDate != "2024-01-15T10:30:00Z" {
		t.Errorf("BuildDate = %q", BuildDate)
	}
}

func TestOptionalFieldsDefaultEmpty(t *testing.T) {
	// ldflags не заданы в тестовой сборке
	if GitCommit != "" {
		t.Errorf("GitCommit = %q, want empty", GitCommit)
	}
	if GitMessage != "" {
		t.Errorf("GitMessage = %q, want empty", GitMessage)
	}
	if BuildDate != "" {
		t.Errorf("BuildDate = %q, want empty", BuildDate)
	}
}
