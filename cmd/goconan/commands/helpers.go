package commands

import (
	"strings"

	"github.com/thoreinstein/goconan/internal/errors"
)

// parseKeyValues turns repeated key=value flag values into a map.
// Returns nil for an empty input so unset flags stay absent from the
// compiled arguments. Duplicate keys and entries without '=' are
// rejected.
func parseKeyValues(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, errors.Newf("invalid key=value pair: %q", pair)
		}
		if _, dup := values[key]; dup {
			return nil, errors.Newf("duplicate key: %q", key)
		}
		values[key] = value
	}
	return values, nil
}

// isPackageReference reports whether a target token looks like a conan
// package reference rather than a conanfile path. References carry an
// '@' (zlib/1.2.11@_/_) or end with one (boost/1.76.0@).
func isPackageReference(target string) bool {
	return strings.Contains(target, "@")
}

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
