package conan

import (
	"context"
	"os"
	"os/exec"

	"github.com/thoreinstein/goconan/internal/errors"
)

// Runner executes an argument vector and captures its stdout. It is the
// single process-spawning capability in the module; everything above it
// is a pure transform. Implementations own blocking, cancellation and
// output capture policy.
type Runner interface {
	// Run executes path with args and returns captured stdout.
	// A failure to launch the process is a hard error; a nonzero exit
	// is too, wrapped with whatever stderr conan produced.
	Run(ctx context.Context, path string, args ...string) ([]byte, error)
}

// execRunner shells out via os/exec. Stderr passes through to the
// caller's stderr so conan's own diagnostics stay visible.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, path string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrapf(err, "running %s", path)
	}
	return out, nil
}
