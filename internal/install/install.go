// Package install models a conan install request and compiles it into
// the exact argument vector `conan install` expects.
//
// The compiler ([Config.Args]) is a wire contract: the emission order
// matches what conan's CLI parser accepts and must not be reordered.
// List-valued fields (generators, build policies) keep their
// configuration order verbatim; map-valued fields have no mandated
// iteration order but every key is emitted exactly once.
package install

import "fmt"

// Config describes one conan install invocation. Construct it directly
// or start from [NewConfig] for the historical defaults. A Config is an
// immutable input to Args once handed off; the compiler never mutates it.
type Config struct {
	// Target is what to install: a conanfile or a package reference.
	Target Target

	// Generators are emitted as -g flags in list order.
	Generators []Generator

	// InstallFolder is where conan writes generator output (-if).
	InstallFolder string

	// NoImports skips the imports section of the conanfile.
	NoImports bool

	// BuildPolicies are emitted as --build directives in list order.
	BuildPolicies []BuildPolicy

	// Env / EnvBuild set environment variables in the host (-e) and
	// build (-e:b) contexts.
	Env      map[string]string
	EnvBuild map[string]string

	// Options / OptionsBuild set package options in the host (-o) and
	// build (-o:b) contexts.
	Options      map[string]string
	OptionsBuild map[string]string

	// Profile / ProfileBuild name the host (-pr) and build (-pr:b)
	// profiles.
	Profile      string
	ProfileBuild string

	// Remote restricts the install to one remote (-r).
	Remote string

	// Settings / SettingsBuild set conan settings in the host (-s) and
	// build (-s:b) contexts.
	Settings      map[string]string
	SettingsBuild map[string]string

	// Update checks remotes for newer revisions (--update).
	Update bool
}

// NewConfig returns a Config for the given target and install folder
// with the historical defaults: build policy [BuildAll], everything
// else empty.
func NewConfig(target Target, installFolder string) *Config {
	return &Config{
		Target:        target,
		InstallFolder: installFolder,
		BuildPolicies: []BuildPolicy{BuildAll},
	}
}

// Args compiles the configuration into the argument vector for
// `conan install`, starting with the subcommand token itself.
//
// Emission order is fixed: target, generators, install folder,
// --no-imports, build policies, env (host then build), options (host
// then build), profiles, remote, settings (host then build), --update.
// The function is pure and deterministic for list-valued fields; map
// entries appear once each in Go's map iteration order.
func (c *Config) Args() []string {
	args := []string{"install"}

	args = append(args, c.Target.targetArgs()...)

	for _, g := range c.Generators {
		args = append(args, "-g", g.String())
	}

	args = append(args, "-if", c.InstallFolder)

	if c.NoImports {
		args = append(args, "--no-imports")
	}

	for _, p := range c.BuildPolicies {
		args = append(args, "--build")
		args = append(args, p.args()...)
	}

	args = appendKeyValues(args, "-e", c.Env)
	args = appendKeyValues(args, "-e:b", c.EnvBuild)

	args = appendKeyValues(args, "-o", c.Options)
	args = appendKeyValues(args, "-o:b", c.OptionsBuild)

	if c.Profile != "" {
		args = append(args, "-pr", c.Profile)
	}
	if c.ProfileBuild != "" {
		args = append(args, "-pr:b", c.ProfileBuild)
	}

	if c.Remote != "" {
		args = append(args, "-r", c.Remote)
	}

	args = appendKeyValues(args, "-s", c.Settings)
	args = appendKeyValues(args, "-s:b", c.SettingsBuild)

	if c.Update {
		args = append(args, "--update")
	}

	return args
}

// appendKeyValues emits flag followed by key=value for every map entry.
func appendKeyValues(args []string, flag string, values map[string]string) []string {
	for k, v := range values {
		args = append(args, flag, fmt.Sprintf("%s=%s", k, v))
	}
	return args
}
