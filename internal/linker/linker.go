// Package linker derives cgo compile and link flags from a decoded
// build-info document, so a Go build can link against conan-provided
// native libraries. It is a pure pass-through over DependencyInfo;
// nothing here parses conan output.
package linker

import (
	"strings"

	"github.com/thoreinstein/goconan/internal/buildinfo"
)

// CFlags returns compiler flags for every dependency in order:
// include paths (-I), preprocessor defines (-D), then the dependency's
// own cflags and cppflags verbatim.
func CFlags(info *buildinfo.BuildInfo) []string {
	var flags []string
	for _, dep := range info.Dependencies {
		for _, p := range dep.IncludePaths {
			flags = append(flags, "-I"+p)
		}
		for _, d := range dep.Defines {
			flags = append(flags, "-D"+d)
		}
		flags = append(flags, dep.CFlags...)
		flags = append(flags, dep.CppFlags...)
	}
	return flags
}

// LDFlags returns linker flags for every dependency in order: library
// search paths (-L), framework paths (-F), libraries and system
// libraries (-l), frameworks (-framework), then the dependency's shared
// and exe link flags verbatim.
func LDFlags(info *buildinfo.BuildInfo) []string {
	var flags []string
	for _, dep := range info.Dependencies {
		for _, p := range dep.LibPaths {
			flags = append(flags, "-L"+p)
		}
		for _, p := range dep.FrameworkPaths {
			flags = append(flags, "-F"+p)
		}
		for _, lib := range dep.Libs {
			flags = append(flags, "-l"+lib)
		}
		for _, lib := range dep.SystemLibs {
			flags = append(flags, "-l"+lib)
		}
		for _, fw := range dep.Frameworks {
			flags = append(flags, "-framework", fw)
		}
		flags = append(flags, dep.SharedLinkFlags...)
		flags = append(flags, dep.ExeLinkFlags...)
	}
	return flags
}

// Env returns the CGO environment variables for the build info.
// Keys with no flags are omitted.
func Env(info *buildinfo.BuildInfo) map[string]string {
	env := make(map[string]string, 2)
	if cflags := CFlags(info); len(cflags) > 0 {
		env["CGO_CFLAGS"] = strings.Join(cflags, " ")
	}
	if ldflags := LDFlags(info); len(ldflags) > 0 {
		env["CGO_LDFLAGS"] = strings.Join(ldflags, " ")
	}
	return env
}
