// Package paths resolves the directories used by the goconan CLI.
//
// Configuration lives under the XDG config home; install folders default
// to a build directory relative to the working directory, matching the
// conan convention of writing generator output next to the build tree.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/goconan/internal/errors"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "goconan"

// DefaultInstallFolder is the install folder used when neither the
// manifest nor the command line specifies one.
const DefaultInstallFolder = "build"

// BuildInfoFileName is the file conan's json generator writes into the
// install folder.
const BuildInfoFileName = "conanbuildinfo.json"

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the directory holding the goconan config file.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// EnsureDir creates the directory and any necessary parents with the given
// permissions. If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// BuildInfoPath returns the expected conanbuildinfo.json location for an
// install folder.
func BuildInfoPath(installFolder string) string {
	return filepath.Join(installFolder, BuildInfoFileName)
}
