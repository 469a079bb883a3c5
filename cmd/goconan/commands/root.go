// Package commands implements the CLI commands for goconan.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/goconan/internal/conan"
	"github.com/thoreinstein/goconan/internal/config"
	"github.com/thoreinstein/goconan/internal/errors"
	"github.com/thoreinstein/goconan/internal/logging"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
const version = "0.1.0"

// conanPathFlag holds the value of the --conan flag.
var conanPathFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// cfg is the loaded CLI configuration.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&conanPathFlag, "conan", "",
		"path to the conan binary (default: PATH lookup)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("goconan version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "goconan",
	Short: "Conan package manager integration for Go builds",
	Long: `goconan wraps the conan C/C++ package manager for Go builds.

It compiles declarative install configurations into conan invocations,
manages remotes, and turns conan's dependency reports into the cgo
flags a Go build needs to link against native libraries.

Conan itself resolves and builds the packages; goconan only drives it.`,
	Example: `  # Install dependencies declared in goconan.toml
  goconan install

  # Install a single package reference
  goconan install zlib/1.2.11@_/_ --build missing

  # Inspect the resolved dependencies
  goconan deps

  # Print cgo flags for the resolved dependencies
  goconan flags

  # Check the conan toolchain
  goconan doctor`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if configLoadErr != nil {
			return errors.NewUserError(configLoadErr, "Check the goconan config file")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("GOCONAN_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 1
				case "2":
					v = 2
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		handler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// resolveConan locates the conan binary honoring, in order, the --conan
// flag, the conan_path config key, and PATH lookup. A missing binary is
// a system error: the environment cannot run installs.
func resolveConan() (*conan.Conan, error) {
	if conanPathFlag != "" {
		return conan.New(conanPathFlag), nil
	}
	if cfg != nil && cfg.ConanPath != "" {
		return conan.New(cfg.ConanPath), nil
	}

	tool, err := conan.Find()
	if err != nil {
		return nil, errors.NewSystemError(err, "Install conan: https://conan.io/downloads")
	}
	return tool, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
