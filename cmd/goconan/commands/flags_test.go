package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/thoreinstein/goconan/internal/buildinfo"
)

func TestFlagsCommand_Metadata(t *testing.T) {
	if flagsCmd.Use != "flags" {
		t.Errorf("Use = %q, want %q", flagsCmd.Use, "flags")
	}
	if flagsCmd.Flags().Lookup("export") == nil {
		t.Error("--export flag should be defined")
	}
	if flagsCmd.Flags().Lookup("buildinfo") == nil {
		t.Error("--buildinfo flag should be defined")
	}
}

func TestRunFlags_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := runFlags(sampleBuildInfo(), &buf); err != nil {
		t.Fatalf("runFlags() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}

	// sorted key order
	if !strings.HasPrefix(lines[0], "CGO_CFLAGS=") {
		t.Errorf("first line = %q, want CGO_CFLAGS", lines[0])
	}
	if !strings.HasPrefix(lines[1], "CGO_LDFLAGS=") {
		t.Errorf("second line = %q, want CGO_LDFLAGS", lines[1])
	}
	if !strings.Contains(lines[0], "-I/cache/zlib/include") {
		t.Errorf("CGO_CFLAGS should contain the include path: %q", lines[0])
	}
	if !strings.Contains(lines[1], "-lz") || !strings.Contains(lines[1], "-lbz2") {
		t.Errorf("CGO_LDFLAGS should contain all libraries: %q", lines[1])
	}
}

func TestRunFlags_Export(t *testing.T) {
	flagsExport = true
	t.Cleanup(func() { flagsExport = false })

	var buf bytes.Buffer
	if err := runFlags(sampleBuildInfo(), &buf); err != nil {
		t.Fatalf("runFlags() error = %v", err)
	}

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if !strings.HasPrefix(line, "export ") {
			t.Errorf("line %q should be prefixed with export", line)
		}
	}
}

func TestRunFlags_NoFlags(t *testing.T) {
	info := &buildinfo.BuildInfo{
		DepsEnvInfo:  map[string][]string{},
		DepsUserInfo: map[string]map[string]string{},
		Dependencies: []buildinfo.DependencyInfo{},
		Settings:     map[string]string{},
		Options:      map[string]map[string]string{},
	}

	var buf bytes.Buffer
	if err := runFlags(info, &buf); err != nil {
		t.Fatalf("runFlags() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty report should produce no output, got %q", buf.String())
	}
}
