package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/goconan/internal/errors"
	"github.com/thoreinstein/goconan/internal/install"
	"github.com/thoreinstein/goconan/internal/logging"
	"github.com/thoreinstein/goconan/internal/manifest"
	"github.com/thoreinstein/goconan/internal/paths"
	"github.com/thoreinstein/goconan/internal/platform"
)

var (
	installManifestPath string
	installFolder       string
	installGenerators   []string
	installBuild        []string
	installNoImports    bool
	installUpdate       bool
	installDetect       bool
	installProfile      string
	installProfileBuild string
	installRemote       string
	installEnv          []string
	installEnvBuild     []string
	installOptions      []string
	installOptionsBuild []string
	installSettings     []string
	installSettingsBld  []string
)

func init() {
	f := installCmd.Flags()
	f.StringVar(&installManifestPath, "manifest", "", "manifest file (default: goconan.toml/goconan.yaml in the working directory)")
	f.StringVar(&installFolder, "folder", "", "install folder for generator output")
	f.StringArrayVarP(&installGenerators, "generator", "g", nil, "generator to emit (repeatable, order preserved)")
	f.StringArrayVar(&installBuild, "build", nil, "build policy: all, never, missing, cascade, outdated, or a package pattern (repeatable)")
	f.BoolVar(&installNoImports, "no-imports", false, "skip the imports section of the conanfile")
	f.BoolVar(&installUpdate, "update", false, "check remotes for newer revisions")
	f.BoolVar(&installDetect, "detect", false, "merge autodetected os/arch/build_type settings")
	f.StringVar(&installProfile, "profile", "", "host profile (-pr)")
	f.StringVar(&installProfileBuild, "profile-build", "", "build profile (-pr:b)")
	f.StringVarP(&installRemote, "remote", "r", "", "restrict the install to one remote")
	f.StringArrayVarP(&installEnv, "env", "e", nil, "host environment variable KEY=VALUE (repeatable)")
	f.StringArrayVar(&installEnvBuild, "env-build", nil, "build environment variable KEY=VALUE (repeatable)")
	f.StringArrayVarP(&installOptions, "option", "o", nil, "host package option KEY=VALUE (repeatable)")
	f.StringArrayVar(&installOptionsBuild, "option-build", nil, "build package option KEY=VALUE (repeatable)")
	f.StringArrayVarP(&installSettings, "setting", "s", nil, "host setting KEY=VALUE (repeatable)")
	f.StringArrayVar(&installSettingsBld, "setting-build", nil, "build setting KEY=VALUE (repeatable)")

	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install [TARGET]",
	Short: "Run conan install for a conanfile or package reference",
	Long: `Compile an install configuration into a conan invocation and run it.

TARGET is a conanfile path or a package reference (anything containing
'@' is treated as a reference). Without TARGET, the configuration comes
from the project manifest (goconan.toml or goconan.yaml); flags then
override the manifest.

Examples:
  # Manifest-driven install
  goconan install

  # Ad-hoc package install
  goconan install zlib/1.2.11@_/_ -g json --build missing

  # Cross build with autodetected settings
  GOOS=linux GOARCH=arm64 goconan install --detect`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall(cmd.Context(), args)
	},
}

func runInstall(ctx context.Context, args []string) error {
	cfg, err := buildInstallConfig(args)
	if err != nil {
		return err
	}

	tool, err := resolveConan()
	if err != nil {
		return err
	}

	logger := logging.FromContext(ctx)
	logger.Debug("compiled install arguments", "args", cfg.Args())

	out, err := tool.Install(ctx, cfg)
	if err != nil {
		return errors.NewSystemError(err, "Run: goconan doctor")
	}
	if len(out) > 0 {
		_, _ = os.Stdout.Write(out)
	}

	logger.Info("install finished", "folder", cfg.InstallFolder)
	return nil
}

// buildInstallConfig assembles the install configuration from the
// positional target, the manifest, flags, and config defaults, in that
// precedence order (flags win over the manifest, the manifest over
// config defaults).
func buildInstallConfig(args []string) (*install.Config, error) {
	var installCfg *install.Config

	switch {
	case len(args) == 1:
		target := targetFromToken(args[0])
		installCfg = install.NewConfig(target, defaultInstallFolder())
	default:
		path := installManifestPath
		if path == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, errors.Wrap(err, "resolving working directory")
			}
			discovered, err := manifest.Discover(wd)
			if err != nil {
				return nil, errors.NewUserError(err,
					"Create a goconan.toml or name a target: goconan install <reference>")
			}
			path = discovered
		}

		loaded, err := manifest.Load(path)
		if err != nil {
			return nil, errors.NewUserError(err, "Check the manifest file")
		}
		installCfg = loaded
	}

	if err := applyInstallFlags(installCfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(installCfg)

	if installDetect {
		installCfg.Settings = mergeDetected(installCfg.Settings)
	}

	return installCfg, nil
}

// targetFromToken maps a positional target to its variant.
func targetFromToken(token string) install.Target {
	if isPackageReference(token) {
		return install.PackageTarget{Reference: token}
	}
	return install.ConanfileTarget{Path: token}
}

func defaultInstallFolder() string {
	if installFolder != "" {
		return installFolder
	}
	if cfg != nil && cfg.InstallFolder != "" {
		return cfg.InstallFolder
	}
	return paths.DefaultInstallFolder
}

// applyInstallFlags overlays command-line flags onto the configuration.
func applyInstallFlags(c *install.Config) error {
	if installFolder != "" {
		c.InstallFolder = installFolder
	}

	if len(installGenerators) > 0 {
		c.Generators = make([]install.Generator, len(installGenerators))
		for i, g := range installGenerators {
			c.Generators[i] = install.Generator(g)
		}
	}

	if len(installBuild) > 0 {
		c.BuildPolicies = make([]install.BuildPolicy, len(installBuild))
		for i, b := range installBuild {
			c.BuildPolicies[i] = manifest.ParseBuildPolicy(b)
		}
	}

	if installNoImports {
		c.NoImports = true
	}
	if installUpdate {
		c.Update = true
	}
	if installProfile != "" {
		c.Profile = installProfile
	}
	if installProfileBuild != "" {
		c.ProfileBuild = installProfileBuild
	}
	if installRemote != "" {
		c.Remote = installRemote
	}

	overlays := []struct {
		pairs []string
		dst   *map[string]string
	}{
		{installEnv, &c.Env},
		{installEnvBuild, &c.EnvBuild},
		{installOptions, &c.Options},
		{installOptionsBuild, &c.OptionsBuild},
		{installSettings, &c.Settings},
		{installSettingsBld, &c.SettingsBuild},
	}
	for _, o := range overlays {
		parsed, err := parseKeyValues(o.pairs)
		if err != nil {
			return errors.NewUserError(err, "Use KEY=VALUE form")
		}
		if parsed != nil {
			if *o.dst == nil {
				*o.dst = parsed
			} else {
				for k, v := range parsed {
					(*o.dst)[k] = v
				}
			}
		}
	}

	return nil
}

// applyConfigDefaults fills gaps from the CLI configuration.
func applyConfigDefaults(c *install.Config) {
	if cfg == nil {
		return
	}
	if c.Profile == "" && cfg.DefaultProfile != "" {
		c.Profile = cfg.DefaultProfile
	}
	if c.Remote == "" && cfg.DefaultRemote != "" {
		c.Remote = cfg.DefaultRemote
	}
	if len(c.Generators) == 0 && len(cfg.DefaultGenerators) > 0 {
		c.Generators = make([]install.Generator, len(cfg.DefaultGenerators))
		for i, g := range cfg.DefaultGenerators {
			c.Generators[i] = install.Generator(g)
		}
	}
}

// mergeDetected merges autodetected platform settings under any the
// caller set explicitly.
func mergeDetected(explicit map[string]string) map[string]string {
	detected := platform.DetectSettings()
	if explicit == nil {
		return detected
	}
	for k, v := range detected {
		if _, set := explicit[k]; !set {
			explicit[k] = v
		}
	}
	return explicit
}
