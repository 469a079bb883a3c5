package platform

// osNames maps Go/build-system OS tokens to conan's os setting values.
var osNames = map[string]string{
	"windows": "Windows",
	"linux":   "Linux",
	"macos":   "Macos",
	"darwin":  "Macos",
	"android": "Android",
	"ios":     "iOS",
	"freebsd": "FreeBSD",
}

// archNames maps Go/build-system architecture tokens to conan's arch
// setting values.
var archNames = map[string]string{
	"amd64":     "x86_64",
	"386":       "x86",
	"powerpc":   "ppc32",
	"powerpc64": "ppc64",
	"ppc64":     "ppc64",
	"arm":       "armv7",
	"arm64":     "armv8",
	"aarch64":   "armv8",
}

// ConanOS translates an OS token into conan's vocabulary.
// Unknown tokens are returned unchanged.
func ConanOS(name string) string {
	if mapped, ok := osNames[name]; ok {
		return mapped
	}
	return name
}

// ConanArch translates an architecture token into conan's vocabulary.
// Unknown tokens are returned unchanged.
func ConanArch(name string) string {
	if mapped, ok := archNames[name]; ok {
		return mapped
	}
	return name
}

// ConanBuildType translates a build profile name into conan's build_type
// setting value. Unknown profiles are returned unchanged.
func ConanBuildType(profile string) string {
	switch profile {
	case "debug":
		return "Debug"
	case "release":
		return "Release"
	default:
		return profile
	}
}
