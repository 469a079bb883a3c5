// Package platform translates Go platform vocabulary into conan's
// settings vocabulary.
//
// The mapping tables are small, fixed, and never mutated after package
// initialization, so they are safe for concurrent reads. Tokens absent
// from a table pass through unchanged; translation never fails.
//
//	platform.ConanOS("darwin")   // "Macos"
//	platform.ConanArch("arm64")  // "armv8"
//	platform.ConanBuildType("release") // "Release"
//
// [DetectSettings] builds a conan settings map from the GOOS, GOARCH and
// GOCONAN_BUILD_TYPE environment variables, falling back to the runtime
// values for OS and architecture.
package platform
