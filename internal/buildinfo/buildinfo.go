// Package buildinfo decodes conan's conanbuildinfo.json dependency
// report (the json generator's output) into typed records.
//
// Field names and shapes follow conan's schema exactly. Decoding is
// all-or-nothing: malformed JSON or a missing required field fails the
// whole decode; only description is optional per dependency.
package buildinfo

import (
	"encoding/json"
	"io"

	"github.com/thoreinstein/goconan/internal/errors"
)

// ErrMissingField indicates a decoded document lacks a required field.
var ErrMissingField = errors.New("build info missing required field")

// DependencyInfo describes one resolved dependency: where it lives and
// what a build system needs to compile and link against it. All list
// fields keep conan's ordering.
type DependencyInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
	RootPath    string `json:"rootpath"`
	SysRoot     string `json:"sysroot"`

	IncludePaths []string `json:"include_paths"`
	LibPaths     []string `json:"lib_paths"`
	BinPaths     []string `json:"bin_paths"`
	BuildPaths   []string `json:"build_paths"`
	ResPaths     []string `json:"res_paths"`

	Libs       []string `json:"libs"`
	SystemLibs []string `json:"system_libs"`
	Defines    []string `json:"defines"`

	CFlags          []string `json:"cflags"`
	CxxFlags        []string `json:"cxxflags"` // legacy alias of cppflags, kept for schema fidelity
	SharedLinkFlags []string `json:"sharedlinkflags"`
	ExeLinkFlags    []string `json:"exelinkflags"`

	Frameworks     []string `json:"frameworks"`
	FrameworkPaths []string `json:"framework_paths"`
	CppFlags       []string `json:"cppflags"`
}

// BuildInfo is the top-level conanbuildinfo.json document.
type BuildInfo struct {
	// DepsEnvInfo maps environment variable names to their ordered values.
	DepsEnvInfo map[string][]string `json:"deps_env_info"`

	// DepsUserInfo maps dependency names to recipe-defined key/value pairs.
	DepsUserInfo map[string]map[string]string `json:"deps_user_info"`

	// Dependencies lists the resolved dependencies in conan's order.
	Dependencies []DependencyInfo `json:"dependencies"`

	// Settings are the effective conan settings of the install.
	Settings map[string]string `json:"settings"`

	// Options maps dependency names to their effective option values.
	Options map[string]map[string]string `json:"options"`
}

// requiredDependencyKeys lists the dependency fields whose absence
// fails the decode. Description is the only optional field.
var requiredDependencyKeys = []string{
	"name", "version", "rootpath", "sysroot",
	"include_paths", "lib_paths", "bin_paths", "build_paths", "res_paths",
	"libs", "system_libs", "defines",
	"cflags", "cxxflags", "sharedlinkflags", "exelinkflags",
	"frameworks", "framework_paths", "cppflags",
}

// Decode deserializes a conanbuildinfo.json document. It returns an
// error for malformed JSON or a document missing a required field;
// there is no partial result.
func Decode(data []byte) (*BuildInfo, error) {
	var info BuildInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, errors.Wrap(err, "decoding build info")
	}
	if err := validateDependencyKeys(data); err != nil {
		return nil, err
	}
	if err := info.validate(); err != nil {
		return nil, err
	}
	return &info, nil
}

// validateDependencyKeys checks field presence against the raw
// document: the struct decode leaves an absent field and an explicit
// zero value indistinguishable, and only the former fails the schema.
func validateDependencyKeys(data []byte) error {
	var doc struct {
		Dependencies []map[string]json.RawMessage `json:"dependencies"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "decoding build info")
	}

	for i, dep := range doc.Dependencies {
		for _, key := range requiredDependencyKeys {
			if _, ok := dep[key]; !ok {
				return errors.Wrapf(ErrMissingField, "dependencies[%d].%s", i, key)
			}
		}
	}
	return nil
}

// DecodeReader is Decode over a stream.
func DecodeReader(r io.Reader) (*BuildInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading build info")
	}
	return Decode(data)
}

// validate enforces the top-level schema and identity fields: the five
// collections must be present and every dependency needs a non-empty
// name and version. Field presence is validateDependencyKeys' job.
func (b *BuildInfo) validate() error {
	switch {
	case b.DepsEnvInfo == nil:
		return errors.Wrap(ErrMissingField, "deps_env_info")
	case b.DepsUserInfo == nil:
		return errors.Wrap(ErrMissingField, "deps_user_info")
	case b.Dependencies == nil:
		return errors.Wrap(ErrMissingField, "dependencies")
	case b.Settings == nil:
		return errors.Wrap(ErrMissingField, "settings")
	case b.Options == nil:
		return errors.Wrap(ErrMissingField, "options")
	}

	for i, dep := range b.Dependencies {
		if dep.Name == "" {
			return errors.Wrapf(ErrMissingField, "dependencies[%d].name", i)
		}
		if dep.Version == "" {
			return errors.Wrapf(ErrMissingField, "dependencies[%d].version", i)
		}
	}

	return nil
}

// Encode serializes the build info back into the schema's JSON shape.
func (b *BuildInfo) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encoding build info")
	}
	return data, nil
}

// FindDependency returns the first dependency with the given name, in
// stored order, matching case-sensitively. Later duplicates by name are
// unreachable. The second return value is false when no dependency
// matches.
func (b *BuildInfo) FindDependency(name string) (*DependencyInfo, bool) {
	for i := range b.Dependencies {
		if b.Dependencies[i].Name == name {
			return &b.Dependencies[i], true
		}
	}
	return nil, false
}
