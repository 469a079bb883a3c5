package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/goconan/internal/buildinfo"
	"github.com/thoreinstein/goconan/internal/errors"
	"github.com/thoreinstein/goconan/internal/paths"
)

var (
	depsBuildInfoPath string
	depsJSON          bool
	depsInteractive   bool
)

func init() {
	f := depsCmd.Flags()
	f.StringVar(&depsBuildInfoPath, "buildinfo", "",
		"path to conanbuildinfo.json (default: <install folder>/conanbuildinfo.json)")
	f.BoolVar(&depsJSON, "json", false, "Output in JSON format")
	f.BoolVarP(&depsInteractive, "interactive", "i", false,
		"pick a dependency with a fuzzy finder")

	rootCmd.AddCommand(depsCmd)
}

var depsCmd = &cobra.Command{
	Use:   "deps [NAME]",
	Short: "Inspect the resolved dependency report",
	Long: `Inspect the conanbuildinfo.json written by a previous install.

Without NAME, lists every resolved dependency. With NAME, shows the
details of that dependency. --interactive opens a fuzzy finder over the
dependency list instead.

Examples:
  goconan deps
  goconan deps zlib
  goconan deps --interactive
  goconan deps --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := loadBuildInfo()
		if err != nil {
			return err
		}
		return runDeps(info, args, os.Stdout)
	},
}

// loadBuildInfo reads the dependency report from --buildinfo or the
// default install folder location.
func loadBuildInfo() (*buildinfo.BuildInfo, error) {
	path := depsBuildInfoPath
	if path == "" {
		folder := paths.DefaultInstallFolder
		if cfg != nil && cfg.InstallFolder != "" {
			folder = cfg.InstallFolder
		}
		path = paths.BuildInfoPath(folder)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewUserError(
			errors.Wrapf(err, "opening %s", path),
			"Run: goconan install -g json")
	}
	defer f.Close()

	info, err := buildinfo.DecodeReader(f)
	if err != nil {
		return nil, errors.NewSystemError(
			errors.Wrapf(err, "decoding %s", path),
			"Re-run the install to regenerate the report")
	}
	return info, nil
}

func runDeps(info *buildinfo.BuildInfo, args []string, w io.Writer) error {
	switch {
	case depsInteractive:
		dep, err := pickDependency(info)
		if err != nil {
			return err
		}
		if dep == nil {
			return nil
		}
		return writeDependency(w, dep)
	case len(args) == 1:
		dep, ok := info.FindDependency(args[0])
		if !ok {
			return errors.NewUserError(
				errors.Wrapf(errors.ErrNotFound, "dependency %q not in the report", args[0]),
				"Run: goconan deps")
		}
		return writeDependency(w, dep)
	default:
		return writeDependencyList(w, info)
	}
}

func pickDependency(info *buildinfo.BuildInfo) (*buildinfo.DependencyInfo, error) {
	if len(info.Dependencies) == 0 {
		return nil, errors.NewUserError(
			errors.New("no dependencies in the report"),
			"Run: goconan install -g json")
	}

	idx, err := fuzzyfinder.Find(
		info.Dependencies,
		func(i int) string {
			return fmt.Sprintf("%s/%s", info.Dependencies[i].Name, info.Dependencies[i].Version)
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i < 0 {
				return ""
			}
			dep := info.Dependencies[i]
			return fmt.Sprintf("%s %s\n\n%s\n\nlibs: %v", dep.Name, dep.Version, dep.Description, dep.Libs)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}

	return &info.Dependencies[idx], nil
}

func writeDependencyList(w io.Writer, info *buildinfo.BuildInfo) error {
	if depsJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info.Dependencies)
	}

	if len(info.Dependencies) == 0 {
		fmt.Fprintln(w, "(no dependencies)")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVERSION\tLIBS\tDESCRIPTION")
	for _, dep := range info.Dependencies {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
			dep.Name, dep.Version, len(dep.Libs), truncate(dep.Description, 50))
	}
	return tw.Flush()
}

func writeDependency(w io.Writer, dep *buildinfo.DependencyInfo) error {
	if depsJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dep)
	}

	fmt.Fprintf(w, "%s %s\n", dep.Name, dep.Version)
	if dep.Description != "" {
		fmt.Fprintf(w, "  %s\n", dep.Description)
	}
	fmt.Fprintf(w, "  rootpath:  %s\n", dep.RootPath)

	writeListField(w, "includes", dep.IncludePaths)
	writeListField(w, "lib dirs", dep.LibPaths)
	writeListField(w, "libs", dep.Libs)
	writeListField(w, "system libs", dep.SystemLibs)
	writeListField(w, "defines", dep.Defines)
	writeListField(w, "frameworks", dep.Frameworks)
	return nil
}

func writeListField(w io.Writer, label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s:\n", label)
	for _, v := range values {
		fmt.Fprintf(w, "    %s\n", v)
	}
}
