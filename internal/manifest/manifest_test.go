package manifest

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/thoreinstein/goconan/internal/errors"
	"github.com/thoreinstein/goconan/internal/install"
)

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeManifest(t, "goconan.toml", `
[target]
conanfile = "conanfile.txt"

[install]
folder = "out"
generators = ["json", "cmake"]
build = ["missing", "zlib/*"]
profile = "clang-release"
remote = "conan-center"
update = true

[options]
shared = "True"

[settings_build]
os = "Linux"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if target, ok := cfg.Target.(install.ConanfileTarget); !ok || target.Path != "conanfile.txt" {
		t.Errorf("Target = %#v", cfg.Target)
	}
	if cfg.InstallFolder != "out" {
		t.Errorf("InstallFolder = %q", cfg.InstallFolder)
	}
	wantGen := []install.Generator{install.GeneratorJSON, install.GeneratorCMake}
	if !reflect.DeepEqual(cfg.Generators, wantGen) {
		t.Errorf("Generators = %v", cfg.Generators)
	}
	wantBuild := []install.BuildPolicy{install.BuildMissing, install.BuildPackage("zlib/*")}
	if !reflect.DeepEqual(cfg.BuildPolicies, wantBuild) {
		t.Errorf("BuildPolicies = %v", cfg.BuildPolicies)
	}
	if cfg.Profile != "clang-release" || cfg.Remote != "conan-center" || !cfg.Update {
		t.Errorf("install section not applied: %+v", cfg)
	}
	if cfg.Options["shared"] != "True" {
		t.Errorf("Options = %v", cfg.Options)
	}
	if cfg.SettingsBuild["os"] != "Linux" {
		t.Errorf("SettingsBuild = %v", cfg.SettingsBuild)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeManifest(t, "goconan.yaml", `
target:
  reference: zlib/1.2.11@_/_
install:
  generators: [json]
  build: [missing]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if target, ok := cfg.Target.(install.PackageTarget); !ok || target.Reference != "zlib/1.2.11@_/_" {
		t.Errorf("Target = %#v", cfg.Target)
	}
	// Folder falls back to the default.
	if cfg.InstallFolder != "build" {
		t.Errorf("InstallFolder = %q, want build", cfg.InstallFolder)
	}
}

func TestLoad_DefaultBuildPolicy(t *testing.T) {
	path := writeManifest(t, "goconan.toml", `
[target]
conanfile = "conanfile.txt"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []install.BuildPolicy{install.BuildAll}
	if !reflect.DeepEqual(cfg.BuildPolicies, want) {
		t.Errorf("BuildPolicies = %v, want %v", cfg.BuildPolicies, want)
	}
}

func TestLoad_TargetValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "no target",
			content: "[install]\nfolder = \"build\"\n",
			wantErr: ErrMissingTarget,
		},
		{
			name: "both targets",
			content: `[target]
conanfile = "conanfile.txt"
reference = "zlib/1.2.11@_/_"
`,
			wantErr: ErrAmbiguousTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, "goconan.toml", tt.content)
			_, err := Load(path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeManifest(t, "goconan.json", `{}`)
	if _, err := Load(path); err == nil {
		t.Error("Load() should reject unsupported formats")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	if _, err := Discover(dir); !errors.Is(err, ErrNoManifest) {
		t.Errorf("error = %v, want ErrNoManifest", err)
	}

	want := filepath.Join(dir, "goconan.yaml")
	if err := os.WriteFile(want, []byte("target:\n  conanfile: conanfile.txt\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if got != want {
		t.Errorf("Discover() = %q, want %q", got, want)
	}

	// TOML takes precedence when both exist.
	tomlPath := filepath.Join(dir, "goconan.toml")
	if err := os.WriteFile(tomlPath, []byte("[target]\nconanfile = \"conanfile.txt\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != tomlPath {
		t.Errorf("Discover() = %q, want %q", got, tomlPath)
	}
}

func TestParseBuildPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want install.BuildPolicy
	}{
		{"all", install.BuildAll},
		{"never", install.BuildNever},
		{"missing", install.BuildMissing},
		{"cascade", install.BuildCascade},
		{"outdated", install.BuildOutdated},
		{"boost/*", install.BuildPackage("boost/*")},
	}

	for _, tt := range tests {
		if got := ParseBuildPolicy(tt.in); got != tt.want {
			t.Errorf("ParseBuildPolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
