package commands

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/goconan/internal/buildinfo"
	"github.com/thoreinstein/goconan/internal/linker"
)

var flagsExport bool

func init() {
	flagsCmd.Flags().StringVar(&depsBuildInfoPath, "buildinfo", "",
		"path to conanbuildinfo.json (default: <install folder>/conanbuildinfo.json)")
	flagsCmd.Flags().BoolVar(&flagsExport, "export", false,
		"prefix each line with 'export' for shell eval")

	rootCmd.AddCommand(flagsCmd)
}

var flagsCmd = &cobra.Command{
	Use:   "flags",
	Short: "Print cgo flags for the resolved dependencies",
	Long: `Print the CGO_CFLAGS and CGO_LDFLAGS a Go build needs to compile
and link against the conan-provided libraries.

The flags come from the conanbuildinfo.json written by a previous
install with the json generator. Output is one VAR=value line per
variable, suitable for eval with --export:

  eval "$(goconan flags --export)"
  go build ./...`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		info, err := loadBuildInfo()
		if err != nil {
			return err
		}
		return runFlags(info, os.Stdout)
	},
}

func runFlags(info *buildinfo.BuildInfo, w io.Writer) error {
	env := linker.Env(info)
	if len(env) == 0 {
		return nil
	}

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if flagsExport {
			fmt.Fprintf(w, "export %s=%q\n", k, env[k])
		} else {
			fmt.Fprintf(w, "%s=%s\n", k, env[k])
		}
	}
	return nil
}
