package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/thoreinstein/goconan/internal/doctor"
)

func TestDoctorCommand_Metadata(t *testing.T) {
	if doctorCmd.Use != "doctor" {
		t.Errorf("Use = %q, want %q", doctorCmd.Use, "doctor")
	}
	if doctorCmd.Flags().Lookup("json") == nil {
		t.Error("--json flag should be defined")
	}
}

func TestWriteDoctorReport(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	report := &doctor.Report{
		Timestamp: time.Now().UTC(),
		Results: []*doctor.CheckResult{
			{
				Name:     "conan-binary",
				Category: "toolchain",
				Status:   doctor.SeverityPass,
				Message:  "conan found at /usr/bin/conan",
			},
			{
				Name:     "conan-version",
				Category: "toolchain",
				Status:   doctor.SeverityPass,
				Message:  "conan version 1.59.0",
			},
			{
				Name:     "conan-remotes",
				Category: "remotes",
				Status:   doctor.SeverityWarning,
				Message:  "no remotes configured; installs cannot fetch packages",
				FixHint:  "Run: goconan remote add conan-center https://center.conan.io",
			},
		},
		Summary: doctor.Summary{Passed: 2, Warnings: 1},
	}

	var buf bytes.Buffer
	writeDoctorReport(&buf, report)

	output := buf.String()
	if !strings.Contains(output, "toolchain") || !strings.Contains(output, "remotes") {
		t.Error("output should contain the category headers")
	}
	if !strings.Contains(output, "conan found at /usr/bin/conan") {
		t.Error("output should contain check messages")
	}
	if !strings.Contains(output, "fix: Run: goconan remote add") {
		t.Error("output should contain the fix hint for failing checks")
	}
	if !strings.Contains(output, "2 passed, 1 warnings, 0 errors") {
		t.Errorf("output should contain the summary line: %q", output)
	}
}

func TestStatusSymbol(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	tests := []struct {
		status doctor.Severity
		want   string
	}{
		{doctor.SeverityPass, "✓"},
		{doctor.SeverityInfo, "i"},
		{doctor.SeverityWarning, "!"},
		{doctor.SeverityError, "✗"},
	}

	for _, tt := range tests {
		if got := statusSymbol(tt.status); got != tt.want {
			t.Errorf("statusSymbol(%v) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
