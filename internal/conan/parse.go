package conan

import (
	"regexp"
	"strings"
)

// Fixed grammars for conan's textual output. The grammar, not the
// parsing technique, is the contract; these match the output of every
// conan 1.x release.
var (
	versionPattern = regexp.MustCompile(`Conan version ([\d.]+)`)
	remotePattern  = regexp.MustCompile(`^(\S+) (\S+) (True|False)$`)
)

// Remote is a configured package-repository endpoint.
type Remote struct {
	// Name identifies the remote in conan's configuration.
	Name string

	// URL is the repository endpoint.
	URL string

	// VerifySSL is conan's tri-state SSL verification policy:
	// nil when unspecified.
	VerifySSL *bool
}

// NewRemote creates a Remote with unspecified SSL verification.
func NewRemote(name, url string) Remote {
	return Remote{Name: name, URL: url}
}

// ParseVersion extracts the conan version from `conan --version` output.
// It tolerates surrounding text and whitespace anywhere in the input.
// The second return value is false when no version token is present;
// that is an absence, not an error.
func ParseVersion(out string) (string, bool) {
	m := versionPattern.FindStringSubmatch(out)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ParseRemotes parses `conan remote list --raw` output. Each line must
// match `<name> <url> <True|False>` exactly; records are returned in
// line order. The anchored grammar rejects trailing tokens after the
// verify flag, where the historical substring match tolerated them; no
// conan 1.x release emits such lines.
//
// Parsing is all-or-nothing: one malformed line (blank lines included)
// voids the whole result, discarding remotes that already parsed. That
// strictness is kept for compatibility with the historical behavior;
// callers wanting partial results must split lines themselves.
func ParseRemotes(out string) ([]Remote, bool) {
	trimmed := strings.TrimRight(out, "\n")
	if trimmed == "" {
		// No remotes configured is a valid, empty listing.
		return []Remote{}, true
	}

	var remotes []Remote
	for _, line := range strings.Split(trimmed, "\n") {
		m := remotePattern.FindStringSubmatch(line)
		if m == nil {
			return nil, false
		}
		verify := m[3] == "True"
		remotes = append(remotes, Remote{
			Name:      m[1],
			URL:       m[2],
			VerifySSL: &verify,
		})
	}

	return remotes, true
}
