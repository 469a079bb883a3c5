package install

// Generator names an output format conan emits describing dependency
// info for a specific build tool. The constants below cover the
// generators conan ships; any other token is passed to conan verbatim,
// so custom generators are plain conversions: Generator("my_gen").
type Generator string

// Generators shipped with conan.
const (
	GeneratorCMake                 Generator = "cmake"
	GeneratorCMakeMulti            Generator = "cmake_multi"
	GeneratorCMakePaths            Generator = "cmake_paths"
	GeneratorCMakeFindPackage      Generator = "cmake_find_package"
	GeneratorCMakeFindPackageMulti Generator = "cmake_find_package_multi"
	GeneratorVisualStudio          Generator = "visual_studio"
	GeneratorVisualStudioMulti     Generator = "visual_studio_multi"
	GeneratorVisualStudioLegacy    Generator = "visual_studio_legacy"
	GeneratorXcode                 Generator = "xcode"
	GeneratorCompilerArgs          Generator = "compiler_args"
	GeneratorGCC                   Generator = "gcc"
	GeneratorBoostBuild            Generator = "boost-build"
	GeneratorB2                    Generator = "b2"
	GeneratorQbs                   Generator = "qbs"
	GeneratorQmake                 Generator = "qmake"
	GeneratorSCons                 Generator = "scons"
	GeneratorPkgConfig             Generator = "pkg_config"
	GeneratorVirtualEnv            Generator = "virtualenv"
	GeneratorVirtualEnvPython      Generator = "virtualenv_python"
	GeneratorVirtualBuildEnv       Generator = "virtualbuildenv"
	GeneratorVirtualRunEnv         Generator = "virtualrunenv"
	GeneratorYouCompleteMe         Generator = "youcompleteme"
	GeneratorTxt                   Generator = "txt"
	GeneratorJSON                  Generator = "json"
	GeneratorPremake               Generator = "premake"
	GeneratorMake                  Generator = "make"
	GeneratorDeploy                Generator = "deploy"
)

// CustomGenerator wraps a caller-supplied generator name.
func CustomGenerator(name string) Generator {
	return Generator(name)
}

// String returns the token conan receives.
func (g Generator) String() string {
	return string(g)
}
