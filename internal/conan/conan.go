// Package conan wraps the conan command-line tool. It locates the
// binary, compiles install configurations into argument vectors (via
// the install package), runs them through an injected [Runner], and
// parses conan's textual output into typed records.
//
// The package never interprets conan's package-resolution semantics; it
// is an integration layer only.
package conan

import (
	"context"
	"os/exec"
	"strconv"

	"github.com/thoreinstein/goconan/internal/errors"
	"github.com/thoreinstein/goconan/internal/install"
)

// Sentinel errors for conan operations.
var (
	// ErrConanNotFound indicates the conan binary could not be located.
	// This is a broken environment, not a parse miss.
	ErrConanNotFound = errors.New("conan executable not found")

	// ErrVersionNotFound indicates `conan --version` output carried no
	// recognizable version token.
	ErrVersionNotFound = errors.New("no conan version in output")

	// ErrMalformedRemoteList indicates `conan remote list --raw` output
	// did not match the remote-listing grammar.
	ErrMalformedRemoteList = errors.New("malformed remote listing")
)

// Conan is a handle to a conan binary. The zero value is not usable;
// construct via New or Find.
type Conan struct {
	// Path is the location of the conan binary.
	Path string

	runner Runner
}

// New creates a handle for the conan binary at path.
func New(path string) *Conan {
	return &Conan{Path: path, runner: execRunner{}}
}

// NewWithRunner creates a handle using a caller-supplied Runner.
// Tests and callers with custom process policy (timeouts, sandboxing)
// inject their runner here.
func NewWithRunner(path string, runner Runner) *Conan {
	return &Conan{Path: path, runner: runner}
}

// Find locates conan on PATH. A missing binary is a hard
// ErrConanNotFound error: the environment is broken and installs
// cannot proceed.
func Find() (*Conan, error) {
	path, err := exec.LookPath("conan")
	if err != nil {
		return nil, errors.Wrap(ErrConanNotFound, err.Error())
	}
	return New(path), nil
}

// Version runs `conan --version` and returns the parsed version string.
// Output without a version token returns ErrVersionNotFound; a failure
// to run conan at all surfaces as the runner's error.
func (c *Conan) Version(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, c.Path, "--version")
	if err != nil {
		return "", err
	}

	version, ok := ParseVersion(string(out))
	if !ok {
		return "", errors.Wrapf(ErrVersionNotFound, "output %q", string(out))
	}
	return version, nil
}

// Remotes runs `conan remote list --raw` and returns the configured
// remotes in listing order. A listing that does not match the grammar
// returns ErrMalformedRemoteList with no partial result.
func (c *Conan) Remotes(ctx context.Context) ([]Remote, error) {
	out, err := c.runner.Run(ctx, c.Path, "remote", "list", "--raw")
	if err != nil {
		return nil, err
	}

	remotes, ok := ParseRemotes(string(out))
	if !ok {
		return nil, ErrMalformedRemoteList
	}
	return remotes, nil
}

// AddRemoteOptions control AddRemote.
type AddRemoteOptions struct {
	// InsertAt places the remote at the given listing index.
	InsertAt *int

	// Force overwrites an existing remote with the same name.
	Force bool
}

// AddRemote registers a remote with conan. The remote's VerifySSL
// tri-state is forwarded verbatim: nil omits the trailing argument.
func (c *Conan) AddRemote(ctx context.Context, r Remote, opts AddRemoteOptions) error {
	args := []string{"remote", "add"}
	if opts.InsertAt != nil {
		args = append(args, "-i", strconv.Itoa(*opts.InsertAt))
	}
	if opts.Force {
		args = append(args, "--force")
	}
	args = append(args, r.Name, r.URL)
	if r.VerifySSL != nil {
		if *r.VerifySSL {
			args = append(args, "True")
		} else {
			args = append(args, "False")
		}
	}

	if _, err := c.runner.Run(ctx, c.Path, args...); err != nil {
		return errors.Wrapf(err, "adding remote %s", r.Name)
	}
	return nil
}

// RemoveRemote unregisters a remote by name.
func (c *Conan) RemoveRemote(ctx context.Context, name string) error {
	if _, err := c.runner.Run(ctx, c.Path, "remote", "remove", name); err != nil {
		return errors.Wrapf(err, "removing remote %s", name)
	}
	return nil
}

// Install compiles cfg into the install argument vector and runs it.
// Conan's stdout is returned for callers that want to log it.
func (c *Conan) Install(ctx context.Context, cfg *install.Config) ([]byte, error) {
	out, err := c.runner.Run(ctx, c.Path, cfg.Args()...)
	if err != nil {
		return nil, errors.Wrap(err, "conan install failed")
	}
	return out, nil
}
