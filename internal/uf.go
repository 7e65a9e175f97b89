// Package internal provides core application constants and metadata.
package internal

import (
	"fmt"
	"runtime"
)

const (
	// ApplicationName is the name of the uf application.
	ApplicationName = "uf"
	// NotProvided is the value used when a build variable was not provided
	NotProvided = "[not provided]"
)

var (
	// Version info populated at build time
	version   = NotProvided
	gitCommit = NotProvided
	buildDate = NotProvided
	platform  = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	goVersion = runtime.Version()
)

// BuildInfo holds the application build details
type BuildInfo struct {
	Application string
	Version     string
	BuildDate   string
	GitCommit   string
	Platform    string
	GoVersion   string
}

// SetBuildInfo sets build information from the main package
func SetBuildInfo(ver, commit, date, goVer string) {
	if ver != "" && ver != NotProvided {
		version = ver
	}
	if commit != "" && commit != NotProvided {
		gitCommit = commit
	}
	if date != "" && date != NotProvided {
		buildDate = date
	}
	if goVer != "" {
		goVersion = goVer
	}
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Application: ApplicationName,
		Version:     version,
		BuildDate:   buildDate,
		GitCommit:   gitCommit,
		Platform:    platform,
		GoVersion:   goVersion,
	}
}

// ApplicationVersion returns the version set at build time, or a development placeholder.
func ApplicationVersion() string {
	if version != NotProvided {
		return version
	}
	return "0.0.0-dev"
}
