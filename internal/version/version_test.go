package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	// GitCommit and BuildDate can be empty (optional)
	_ = GitCommit
	_ = BuildDate
}

func TestColored(t *testing.T) {
	got := Colored("1.2.3-rc.1")
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI escapes in %q", got)
	}
	if !strings.HasSuffix(got, "-rc.1") {
		t.Errorf("suffix must stay uncoloured: %q", got)
	}
	for _, part := range []string{"1", "2", "3"} {
		if !strings.Contains(got, part) {
			t.Errorf("component %q missing from %q", part, got)
		}
	}
}

func TestColored_Unchanged(t *testing.T) {
	for _, v := range []string{"dev", "1.2", ""} {
		if got := Colored(v); got != v {
			t.Errorf("Colored(%q) = %q, want unchanged", v, got)
		}
	}
}
