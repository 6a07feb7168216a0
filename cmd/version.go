package cmd

import (
	"runtime/debug"
)

const versionTemplate = "{{.Name}} version {{.Version}}\n"

// versionString reports the module version and the Go version used to build
// the binary.
func versionString() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "unknown"
	}

	return info.Main.Version + " (" + info.GoVersion + ")"
}
