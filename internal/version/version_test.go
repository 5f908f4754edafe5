package version

import (
	"strings"
	"testing"
)

func TestCurrent(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	t.Cleanup(func() { Version, GitCommit = origVersion, origCommit })

	Version = "  "
	GitCommit = " abc123 \n"
	info := Current()
	if info.Version != "dev" || info.GitCommit != "abc123" || info.BuildDate != strings.TrimSpace(BuildDate) {
		t.Fatalf("Current() = %+v", info)
	}
}

func TestColored(t *testing.T) {
	tests := []struct {
		in string
	}{
		{"0.1.0-dev"},
		{"1.2.3+build.7"},
		{"dev"},
		{"1.2"},
	}
	for _, tt := range tests {
		if got := Colored(tt.in, false); got != tt.in {
			t.Errorf("Colored(%q, false) = %q", tt.in, got)
		}
	}

	got := Colored("1.2.3-rc.1", true)
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-rc.1") {
		t.Fatalf("Colored(..., true) = %q", got)
	}
	if Colored("dev", true) != "dev" {
		t.Fatal("non-semver versions stay plain")
	}
}
