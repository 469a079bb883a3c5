package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/thoreinstein/goconan/internal/conan"
	"github.com/thoreinstein/goconan/internal/paths"
)

// finder locates a conan binary; swapped out in tests.
type finder func() (*conan.Conan, error)

// BinaryCheck verifies the conan binary can be located.
type BinaryCheck struct {
	// Find locates the binary. Defaults to conan.Find.
	Find finder
}

var _ Check = (*BinaryCheck)(nil)

// NewBinaryCheck creates a check that looks up conan on PATH.
func NewBinaryCheck() *BinaryCheck {
	return &BinaryCheck{Find: conan.Find}
}

// Name returns the unique identifier for this check.
func (c *BinaryCheck) Name() string {
	return "conan-binary"
}

// Category returns the grouping for this check.
func (c *BinaryCheck) Category() string {
	return "toolchain"
}

// Run executes the lookup.
func (c *BinaryCheck) Run(_ context.Context) *CheckResult {
	tool, err := c.Find()
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "conan executable not found on PATH",
			FixHint:  "Install conan: https://conan.io/downloads",
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("conan found at %s", tool.Path),
	}
}

// VersionCheck verifies `conan --version` output parses.
type VersionCheck struct {
	Find finder
}

var _ Check = (*VersionCheck)(nil)

// NewVersionCheck creates a check that queries and parses the conan version.
func NewVersionCheck() *VersionCheck {
	return &VersionCheck{Find: conan.Find}
}

// Name returns the unique identifier for this check.
func (c *VersionCheck) Name() string {
	return "conan-version"
}

// Category returns the grouping for this check.
func (c *VersionCheck) Category() string {
	return "toolchain"
}

// Run queries the version.
func (c *VersionCheck) Run(ctx context.Context) *CheckResult {
	tool, err := c.Find()
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "conan executable not found on PATH",
			FixHint:  "Install conan: https://conan.io/downloads",
		}
	}

	version, err := tool.Version(ctx)
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("could not determine conan version: %v", err),
			FixHint:  "Run: conan --version",
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("conan version %s", version),
	}
}

// RemotesCheck verifies the remote listing parses and at least one
// remote is configured.
type RemotesCheck struct {
	Find finder
}

var _ Check = (*RemotesCheck)(nil)

// NewRemotesCheck creates a check over the configured remotes.
func NewRemotesCheck() *RemotesCheck {
	return &RemotesCheck{Find: conan.Find}
}

// Name returns the unique identifier for this check.
func (c *RemotesCheck) Name() string {
	return "conan-remotes"
}

// Category returns the grouping for this check.
func (c *RemotesCheck) Category() string {
	return "remotes"
}

// Run lists the remotes.
func (c *RemotesCheck) Run(ctx context.Context) *CheckResult {
	tool, err := c.Find()
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "conan executable not found on PATH",
			FixHint:  "Install conan: https://conan.io/downloads",
		}
	}

	remotes, err := tool.Remotes(ctx)
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("could not list remotes: %v", err),
			FixHint:  "Run: conan remote list --raw",
		}
	}

	if len(remotes) == 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  "no remotes configured; installs cannot fetch packages",
			FixHint:  "Run: goconan remote add conan-center https://center.conan.io",
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("%d remote(s) configured", len(remotes)),
	}
}

// PathsCheck verifies the directories goconan needs are resolvable and
// writable: the home directory and the config directory.
type PathsCheck struct {
	// Home resolves the home directory. Defaults to paths.ResolveHome.
	Home func() (string, error)

	// Ensure creates the config directory. Defaults to paths.EnsureDir.
	Ensure func(string, os.FileMode) error
}

var _ Check = (*PathsCheck)(nil)

// NewPathsCheck creates a check over the goconan directories.
func NewPathsCheck() *PathsCheck {
	return &PathsCheck{Home: paths.ResolveHome, Ensure: paths.EnsureDir}
}

// Name returns the unique identifier for this check.
func (c *PathsCheck) Name() string {
	return "config-paths"
}

// Category returns the grouping for this check.
func (c *PathsCheck) Category() string {
	return "config"
}

// Run resolves the home directory and bootstraps the config directory.
func (c *PathsCheck) Run(_ context.Context) *CheckResult {
	if _, err := c.Home(); err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("home directory not resolvable: %v", err),
			FixHint:  "Set HOME to a writable directory",
		}
	}

	dir := paths.ConfigDir()
	if err := c.Ensure(dir, 0); err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  fmt.Sprintf("config directory not writable: %v", err),
			FixHint:  fmt.Sprintf("Check permissions on %s", dir),
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("config directory ready at %s", dir),
	}
}

// DefaultChecks returns the standard toolchain checks in display order.
func DefaultChecks() []Check {
	return []Check{
		NewBinaryCheck(),
		NewVersionCheck(),
		NewRemotesCheck(),
		NewPathsCheck(),
	}
}
