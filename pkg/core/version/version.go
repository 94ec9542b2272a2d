// ============================================================================
// pwoli - keyword-driven toy language
// ============================================================================
//
// Package:     version
// Description: Central version management for the tool and its components
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for pwoli and its components
const (
	// Tool version
	Tool = "0.2.0"

	// Language revision accepted by the parser
	Language = "1"

	// Component versions
	Parser   = "0.2.0"
	Executor = "0.2.0"
)

// Set at build time via -ldflags "-X"
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "parser":
		return Parser
	case "executor":
		return Executor
	case "language":
		return Language
	default:
		return Tool
	}
}

// Info describes the running build
type Info struct {
	Tool      string `json:"tool" yaml:"tool"`
	Language  string `json:"language" yaml:"language"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the build information
func Get() Info {
	return Info{
		Tool:      Tool,
		Language:  Language,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Short returns "pwoli vX.Y.Z"
func Short() string {
	return "pwoli v" + Tool
}
