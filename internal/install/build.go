package install

// buildKind discriminates the BuildPolicy variants.
type buildKind int

const (
	buildAll buildKind = iota
	buildNever
	buildMissing
	buildCascade
	buildOutdated
	buildPackage
)

// BuildPolicy is one --build directive: whether (and which) dependencies
// are compiled from source versus fetched as prebuilt binaries. A config
// carries an ordered list of policies; each entry emits one directive.
type BuildPolicy struct {
	kind    buildKind
	pattern string
}

// The fixed build policies conan understands.
var (
	// BuildAll compiles everything from source (bare --build).
	BuildAll = BuildPolicy{kind: buildAll}

	// BuildNever never builds from source.
	BuildNever = BuildPolicy{kind: buildNever}

	// BuildMissing builds packages with no prebuilt binary.
	BuildMissing = BuildPolicy{kind: buildMissing}

	// BuildCascade rebuilds packages affected by source-built dependencies.
	BuildCascade = BuildPolicy{kind: buildCascade}

	// BuildOutdated rebuilds packages whose recipe changed.
	BuildOutdated = BuildPolicy{kind: buildOutdated}
)

// BuildPackage builds only packages matching the given pattern,
// e.g. "zlib/*".
func BuildPackage(pattern string) BuildPolicy {
	return BuildPolicy{kind: buildPackage, pattern: pattern}
}

// args returns the tokens this policy contributes after the --build flag.
// BuildAll contributes none: conan treats the bare flag as "build all".
func (p BuildPolicy) args() []string {
	switch p.kind {
	case buildNever:
		return []string{"never"}
	case buildMissing:
		return []string{"missing"}
	case buildCascade:
		return []string{"cascade"}
	case buildOutdated:
		return []string{"outdated"}
	case buildPackage:
		return []string{p.pattern}
	default:
		return nil
	}
}
