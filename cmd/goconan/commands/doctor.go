package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/goconan/internal/doctor"
	"github.com/thoreinstein/goconan/internal/errors"
)

var doctorJSON bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the conan toolchain",
	Long: `Run diagnostic checks over the conan toolchain: the binary, its
version output, and the configured remotes.

Exits non-zero when any check reports an error.

Example:
  goconan doctor
  goconan doctor --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDoctor(cmd.Context(), os.Stdout)
	},
}

func runDoctor(ctx context.Context, w io.Writer) error {
	runner := doctor.NewRunner()
	for _, check := range doctor.DefaultChecks() {
		runner.AddCheck(check)
	}

	report := runner.Run(ctx)

	if doctorJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		writeDoctorReport(w, report)
	}

	if report.HasErrors() {
		return errors.NewSystemError(
			errors.Newf("%d check(s) failed", report.Summary.Errors),
			"Address the failing checks above")
	}
	return nil
}

func writeDoctorReport(w io.Writer, report *doctor.Report) {
	var lastCategory string
	for _, result := range report.Results {
		if result.Category != lastCategory {
			if lastCategory != "" {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s\n", color.New(color.Bold).Sprint(result.Category))
			lastCategory = result.Category
		}

		fmt.Fprintf(w, "  %s %s: %s\n", statusSymbol(result.Status), result.Name, result.Message)
		if result.FixHint != "" && result.Status != doctor.SeverityPass {
			fmt.Fprintf(w, "      %s\n", color.New(color.Faint).Sprintf("fix: %s", result.FixHint))
		}
	}

	fmt.Fprintf(w, "\n%d passed, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Warnings, report.Summary.Errors)
}

func statusSymbol(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("i")
	case doctor.SeverityWarning:
		return color.YellowString("!")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}
