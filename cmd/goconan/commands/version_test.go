package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestVersionCommand_Metadata(t *testing.T) {
	if versionCmd.Use != "version" {
		t.Errorf("Use = %q, want %q", versionCmd.Use, "version")
	}
	if versionCmd.Short == "" {
		t.Error("Short description should not be empty")
	}
}

func TestRunVersion_ConanMissing(t *testing.T) {
	// An empty PATH makes the lookup fail without touching the host.
	t.Setenv("PATH", t.TempDir())

	var buf bytes.Buffer
	if err := runVersion(context.Background(), &buf); err != nil {
		t.Fatalf("runVersion() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "goconan version "+version) {
		t.Errorf("output should contain the goconan version: %q", output)
	}
	if !strings.Contains(output, "conan: not found") {
		t.Errorf("output should report the missing conan binary: %q", output)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	if rootCmd.Use != "goconan" {
		t.Errorf("Use = %q, want %q", rootCmd.Use, "goconan")
	}

	for _, flag := range []string{"conan", "verbose", "quiet", "log-format"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("--%s persistent flag should be defined", flag)
		}
	}

	subs := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		subs[c.Name()] = true
	}
	for _, name := range []string{"install", "deps", "flags", "remote", "doctor", "version"} {
		if !subs[name] {
			t.Errorf("root should have a %q subcommand", name)
		}
	}
}
