package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/thoreinstein/goconan/internal/buildinfo"
	"github.com/thoreinstein/goconan/internal/errors"
)

func sampleBuildInfo() *buildinfo.BuildInfo {
	return &buildinfo.BuildInfo{
		DepsEnvInfo:  map[string][]string{},
		DepsUserInfo: map[string]map[string]string{},
		Dependencies: []buildinfo.DependencyInfo{
			{
				Name:         "zlib",
				Version:      "1.2.11",
				Description:  "A massively spiffy yet delicately unobtrusive compression library",
				RootPath:     "/cache/zlib",
				IncludePaths: []string{"/cache/zlib/include"},
				LibPaths:     []string{"/cache/zlib/lib"},
				Libs:         []string{"z"},
			},
			{
				Name:     "bzip2",
				Version:  "1.0.8",
				RootPath: "/cache/bzip2",
				Libs:     []string{"bz2"},
			},
		},
		Settings: map[string]string{"os": "Linux"},
		Options:  map[string]map[string]string{},
	}
}

func TestDepsCommand_Metadata(t *testing.T) {
	if depsCmd.Use != "deps [NAME]" {
		t.Errorf("Use = %q, want %q", depsCmd.Use, "deps [NAME]")
	}

	for _, flag := range []string{"buildinfo", "json", "interactive"} {
		if depsCmd.Flags().Lookup(flag) == nil {
			t.Errorf("--%s flag should be defined", flag)
		}
	}
}

func TestWriteDependencyList_Tabular(t *testing.T) {
	var buf bytes.Buffer
	if err := writeDependencyList(&buf, sampleBuildInfo()); err != nil {
		t.Fatalf("writeDependencyList() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "NAME") {
		t.Error("output should contain the table header")
	}
	if !strings.Contains(output, "zlib") || !strings.Contains(output, "1.2.11") {
		t.Error("output should list zlib with its version")
	}
	if !strings.Contains(output, "bzip2") {
		t.Error("output should list every dependency")
	}
}

func TestWriteDependencyList_Empty(t *testing.T) {
	info := sampleBuildInfo()
	info.Dependencies = nil

	var buf bytes.Buffer
	if err := writeDependencyList(&buf, info); err != nil {
		t.Fatalf("writeDependencyList() error = %v", err)
	}
	if !strings.Contains(buf.String(), "(no dependencies)") {
		t.Error("output should indicate an empty report")
	}
}

func TestWriteDependencyList_JSON(t *testing.T) {
	depsJSON = true
	t.Cleanup(func() { depsJSON = false })

	var buf bytes.Buffer
	if err := writeDependencyList(&buf, sampleBuildInfo()); err != nil {
		t.Fatalf("writeDependencyList() error = %v", err)
	}

	var deps []buildinfo.DependencyInfo
	if err := json.Unmarshal(buf.Bytes(), &deps); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(deps) != 2 || deps[0].Name != "zlib" {
		t.Errorf("decoded deps = %v", deps)
	}
}

func TestWriteDependency_Detail(t *testing.T) {
	info := sampleBuildInfo()
	dep, ok := info.FindDependency("zlib")
	if !ok {
		t.Fatal("sample should contain zlib")
	}

	var buf bytes.Buffer
	if err := writeDependency(&buf, dep); err != nil {
		t.Fatalf("writeDependency() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "zlib 1.2.11") {
		t.Error("output should lead with name and version")
	}
	if !strings.Contains(output, "/cache/zlib/include") {
		t.Error("output should list include paths")
	}
	if !strings.Contains(output, "libs:") {
		t.Error("output should list libraries")
	}
	if strings.Contains(output, "frameworks:") {
		t.Error("empty list fields should be omitted")
	}
}

func TestRunDeps_UnknownName(t *testing.T) {
	var buf bytes.Buffer
	err := runDeps(sampleBuildInfo(), []string{"openssl"}, &buf)
	if err == nil {
		t.Fatal("unknown dependency name should be an error")
	}
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
