package install

// Target identifies what a conan install operates on: a conanfile on
// disk or a package reference. It is a closed set; the two
// implementations in this package are the only ones.
type Target interface {
	// targetArgs returns the positional tokens the target contributes
	// to the install invocation.
	targetArgs() []string
}

// ConanfileTarget installs from a conanfile.txt or conanfile.py path.
type ConanfileTarget struct {
	// Path is the conanfile location (file or containing directory).
	Path string

	// Reference optionally pins a user/channel reference for the
	// conanfile, e.g. "user/stable".
	Reference string
}

func (t ConanfileTarget) targetArgs() []string {
	args := []string{t.Path}
	if t.Reference != "" {
		args = append(args, t.Reference)
	}
	return args
}

// PackageTarget installs a package reference directly,
// e.g. "zlib/1.2.11@_/_".
type PackageTarget struct {
	Reference string
}

func (t PackageTarget) targetArgs() []string {
	return []string{t.Reference}
}
