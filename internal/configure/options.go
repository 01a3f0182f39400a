package configure

// ROCmPlatform selects the device vendor the ROCm plugin targets.
type ROCmPlatform string

const (
	ROCmPlatformAMD    ROCmPlatform = "AMD"
	ROCmPlatformNVIDIA ROCmPlatform = "NVIDIA"
)

// Defaults applied by NewOptions and by the CLI.
const (
	DefaultBuildType = "Release"
	DefaultGenerator = "Ninja"
)

// Options is the recognized set of build options. SourceDir and BuildDir
// must be absolute, already-resolved paths.
type Options struct {
	SourceDir string
	BuildDir  string

	BuildType string
	Generator string

	// Backends
	CUDA         bool
	ROCm         bool
	ROCmPlatform ROCmPlatform

	// Target ISA and feature toggles
	ARM             bool
	DisableESIMDCPU bool
	NoAssertions    bool
	NoWerror        bool
	Docs            bool
	SharedLibs      bool
	UseLLD          bool

	// ExternalProjects is a comma separated list appended to the baseline.
	ExternalProjects string
	// CMakeOptions are passed through verbatim.
	CMakeOptions []string

	// Level Zero (hardware abstraction) pair; both or neither.
	L0Headers string
	L0Loader  string

	// Alternate C++ standard library.
	UseLibcxx     bool
	LibcxxInclude string
	LibcxxLibrary string
}

// NewOptions returns Options for the given directories with every other
// field at its default.
func NewOptions(sourceDir, buildDir string) Options {
	return Options{
		SourceDir:    sourceDir,
		BuildDir:     buildDir,
		BuildType:    DefaultBuildType,
		Generator:    DefaultGenerator,
		ROCmPlatform: ROCmPlatformAMD,
	}
}

func (o Options) buildType() string {
	if o.BuildType == "" {
		return DefaultBuildType
	}
	return o.BuildType
}

func (o Options) generator() string {
	if o.Generator == "" {
		return DefaultGenerator
	}
	return o.Generator
}

func (o Options) rocmPlatform() ROCmPlatform {
	if o.ROCmPlatform == "" {
		return ROCmPlatformAMD
	}
	return o.ROCmPlatform
}
