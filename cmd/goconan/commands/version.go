package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show goconan and conan versions",
	Long: `Show the goconan version and the version of the conan binary
goconan would use.

The conan version is parsed from the tool's own --version output; when
conan is unavailable the command reports that instead of failing.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runVersion(cmd.Context(), os.Stdout)
	},
}

func runVersion(ctx context.Context, w io.Writer) error {
	fmt.Fprintf(w, "goconan version %s\n", version)

	tool, err := resolveConan()
	if err != nil {
		fmt.Fprintln(w, "conan: not found")
		return nil
	}

	conanVersion, err := tool.Version(ctx)
	if err != nil {
		fmt.Fprintf(w, "conan (%s): version unknown: %v\n", tool.Path, err)
		return nil
	}

	fmt.Fprintf(w, "conan version %s (%s)\n", conanVersion, tool.Path)
	return nil
}
