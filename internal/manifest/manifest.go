// Package manifest loads declarative install manifests (goconan.toml or
// goconan.yaml) into install configurations, so projects can commit
// their conan install setup instead of repeating CLI flags.
package manifest

import (
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/goconan/internal/errors"
	"github.com/thoreinstein/goconan/internal/install"
	"github.com/thoreinstein/goconan/internal/paths"
)

// DefaultNames are the manifest file names probed by Discover, in order.
var DefaultNames = []string{"goconan.toml", "goconan.yaml", "goconan.yml"}

// Sentinel errors for manifest loading.
var (
	// ErrNoManifest indicates no manifest file was found.
	ErrNoManifest = errors.New("no manifest found")

	// ErrAmbiguousTarget indicates the manifest names both a conanfile
	// and a package reference.
	ErrAmbiguousTarget = errors.New("manifest target must be either a conanfile or a reference")

	// ErrMissingTarget indicates the manifest names no install target.
	ErrMissingTarget = errors.New("manifest names no install target")
)

// Manifest is the on-disk schema, shared by the TOML and YAML forms.
type Manifest struct {
	Target  TargetSection  `toml:"target" yaml:"target"`
	Install InstallSection `toml:"install" yaml:"install"`

	Env      map[string]string `toml:"env" yaml:"env"`
	EnvBuild map[string]string `toml:"env_build" yaml:"env_build"`

	Options      map[string]string `toml:"options" yaml:"options"`
	OptionsBuild map[string]string `toml:"options_build" yaml:"options_build"`

	Settings      map[string]string `toml:"settings" yaml:"settings"`
	SettingsBuild map[string]string `toml:"settings_build" yaml:"settings_build"`
}

// TargetSection names what to install. Exactly one of Conanfile or
// Reference must be set.
type TargetSection struct {
	// Conanfile is a conanfile.txt/conanfile.py path.
	Conanfile string `toml:"conanfile" yaml:"conanfile"`

	// ConanfileReference optionally pins user/channel for the conanfile.
	ConanfileReference string `toml:"conanfile_reference" yaml:"conanfile_reference"`

	// Reference is a package reference, e.g. "zlib/1.2.11@_/_".
	Reference string `toml:"reference" yaml:"reference"`
}

// InstallSection carries the install options.
type InstallSection struct {
	Folder       string   `toml:"folder" yaml:"folder"`
	Generators   []string `toml:"generators" yaml:"generators"`
	Build        []string `toml:"build" yaml:"build"`
	NoImports    bool     `toml:"no_imports" yaml:"no_imports"`
	Update       bool     `toml:"update" yaml:"update"`
	Profile      string   `toml:"profile" yaml:"profile"`
	ProfileBuild string   `toml:"profile_build" yaml:"profile_build"`
	Remote       string   `toml:"remote" yaml:"remote"`
}

// Discover finds a manifest in dir, probing DefaultNames in order.
// Returns ErrNoManifest when none exists.
func Discover(dir string) (string, error) {
	for _, name := range DefaultNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", errors.Wrapf(ErrNoManifest, "in %s", dir)
}

// Load reads a manifest file and compiles it into an install config.
// The decoder is chosen by file extension: .toml uses TOML, .yaml/.yml
// use YAML.
func Load(path string) (*install.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifest %s", path)
	}

	var m Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrapf(err, "parsing manifest %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrapf(err, "parsing manifest %s", path)
		}
	default:
		return nil, errors.Newf("unsupported manifest format: %s", path)
	}

	return m.Config()
}

// Config compiles the manifest into an install configuration.
func (m *Manifest) Config() (*install.Config, error) {
	target, err := m.Target.target()
	if err != nil {
		return nil, err
	}

	folder := m.Install.Folder
	if folder == "" {
		folder = paths.DefaultInstallFolder
	}

	cfg := install.NewConfig(target, folder)

	if len(m.Install.Generators) > 0 {
		cfg.Generators = make([]install.Generator, len(m.Install.Generators))
		for i, g := range m.Install.Generators {
			cfg.Generators[i] = install.Generator(g)
		}
	}

	if len(m.Install.Build) > 0 {
		cfg.BuildPolicies = make([]install.BuildPolicy, len(m.Install.Build))
		for i, b := range m.Install.Build {
			cfg.BuildPolicies[i] = ParseBuildPolicy(b)
		}
	}

	cfg.NoImports = m.Install.NoImports
	cfg.Update = m.Install.Update
	cfg.Profile = m.Install.Profile
	cfg.ProfileBuild = m.Install.ProfileBuild
	cfg.Remote = m.Install.Remote

	cfg.Env = m.Env
	cfg.EnvBuild = m.EnvBuild
	cfg.Options = m.Options
	cfg.OptionsBuild = m.OptionsBuild
	cfg.Settings = m.Settings
	cfg.SettingsBuild = m.SettingsBuild

	return cfg, nil
}

func (t *TargetSection) target() (install.Target, error) {
	switch {
	case t.Conanfile != "" && t.Reference != "":
		return nil, ErrAmbiguousTarget
	case t.Conanfile != "":
		return install.ConanfileTarget{Path: t.Conanfile, Reference: t.ConanfileReference}, nil
	case t.Reference != "":
		return install.PackageTarget{Reference: t.Reference}, nil
	default:
		return nil, ErrMissingTarget
	}
}

// ParseBuildPolicy maps a manifest build entry to a policy: the literal
// names all, never, missing, cascade and outdated select the fixed
// policies; anything else is a package pattern.
func ParseBuildPolicy(s string) install.BuildPolicy {
	switch s {
	case "all":
		return install.BuildAll
	case "never":
		return install.BuildNever
	case "missing":
		return install.BuildMissing
	case "cascade":
		return install.BuildCascade
	case "outdated":
		return install.BuildOutdated
	default:
		return install.BuildPackage(s)
	}
}
