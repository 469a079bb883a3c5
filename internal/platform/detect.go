package platform

import (
	"os"
	"runtime"
)

// Environment variables consumed by DetectSettings.
const (
	// EnvTargetOS selects the target operating system (cross builds).
	EnvTargetOS = "GOOS"

	// EnvTargetArch selects the target architecture (cross builds).
	EnvTargetArch = "GOARCH"

	// EnvBuildType selects the conan build_type setting.
	EnvBuildType = "GOCONAN_BUILD_TYPE"
)

// DetectSettings builds a conan settings map for the current build target.
//
// os and arch come from GOOS/GOARCH when set (honoring cross builds) and
// from the runtime otherwise; build_type comes from GOCONAN_BUILD_TYPE
// and is omitted when unset. Every value is fed through the mapper.
func DetectSettings() map[string]string {
	settings := make(map[string]string, 3)

	targetOS := runtime.GOOS
	if v, ok := os.LookupEnv(EnvTargetOS); ok && v != "" {
		targetOS = v
	}
	settings["os"] = ConanOS(targetOS)

	targetArch := runtime.GOARCH
	if v, ok := os.LookupEnv(EnvTargetArch); ok && v != "" {
		targetArch = v
	}
	settings["arch"] = ConanArch(targetArch)

	if v, ok := os.LookupEnv(EnvBuildType); ok && v != "" {
		settings["build_type"] = ConanBuildType(v)
	}

	return settings
}
