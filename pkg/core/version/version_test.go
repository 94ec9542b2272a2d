package version

import (
	"regexp"
	"runtime"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Tool", Tool},
		{"Parser", Parser},
		{"Executor", Executor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		component string
		expected  string
	}{
		{"parser", Parser},
		{"executor", Executor},
		{"language", Language},
		{"unknown", Tool},
		{"", Tool},
	}

	for _, tt := range tests {
		if got := ComponentVersion(tt.component); got != tt.expected {
			t.Errorf("ComponentVersion(%q) = %q, want %q", tt.component, got, tt.expected)
		}
	}
}

func TestGet(t *testing.T) {
	info := Get()
	if info.Tool != Tool {
		t.Errorf("Expected tool version %s, got %s", Tool, info.Tool)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("Expected Go version %s, got %s", runtime.Version(), info.GoVersion)
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Unexpected platform %s", info.Platform)
	}
	if Short() != "pwoli v"+Tool {
		t.Errorf("Unexpected short version %s", Short())
	}
}
