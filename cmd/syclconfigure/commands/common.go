package commands

import (
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/syclconfigure/internal/config"
	"git.home.luguber.info/inful/syclconfigure/internal/git"
	"git.home.luguber.info/inful/syclconfigure/internal/runner"
	"git.home.luguber.info/inful/syclconfigure/internal/workspace"
	"github.com/alecthomas/kong"
)

// Global carries process-level collaborators into Run.
type Global struct {
	Logger *slog.Logger
	// Runner executes cmake; nil means the real binary.
	Runner runner.Runner
	// Stdout receives the printed command and failure hints.
	Stdout io.Writer
	// BaseDir anchors relative paths when --builder-dir is not given.
	BaseDir string
	// DetectSource finds the source root when --src-dir is not given.
	DetectSource workspace.SourceDetector
}

func (g *Global) withDefaults() *Global {
	out := *g
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	if out.Runner == nil {
		out.Runner = runner.NewBinaryRunner()
	}
	if out.Stdout == nil {
		out.Stdout = os.Stdout
	}
	if out.DetectSource == nil {
		out.DetectSource = git.FindRoot
	}
	return &out
}

// CLI is the flag model. Everything lives on the root since the tool does one thing.
type CLI struct {
	Config      string           `short:"c" help:"YAML preset supplying default options" type:"path"`
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit"`
	CMake       string           `name:"cmake" help:"cmake binary to run (default: SYCL_CONFIGURE_CMAKE or cmake on PATH)"`
	DryRun      bool             `name:"dry-run" help:"Print the cmake command without running it"`
	MetricsFile string           `name:"metrics-file" help:"Write Prometheus metrics for this run to a textfile" type:"path"`

	// CI system options
	BuildNumber string `short:"n" name:"build-number" placeholder:"BUILD_NUM" help:"build number" group:"CI"`
	Branch      string `short:"b" name:"branch" placeholder:"BRANCH" help:"pull request branch" group:"CI"`
	BaseBranch  string `short:"d" name:"base-branch" placeholder:"BASE_BRANCH" help:"pull request base branch" group:"CI"`
	PRNumber    string `short:"r" name:"pr-number" placeholder:"PR_NUM" help:"pull request number" group:"CI"`
	BuilderDir  string `short:"w" name:"builder-dir" placeholder:"BUILDER_DIR" help:"builder directory, which is the directory containing source and build directories" group:"CI"`

	SrcDir               string   `short:"s" name:"src-dir" placeholder:"SRC_DIR" help:"source directory (autodetected by default)"`
	ObjDir               string   `short:"o" name:"obj-dir" placeholder:"OBJ_DIR" help:"build directory (<src>/build by default)"`
	L0Headers            string   `name:"l0-headers" placeholder:"L0_HEADER_DIR" help:"directory with Level Zero headers"`
	L0Loader             string   `name:"l0-loader" placeholder:"L0_LOADER" help:"path to the Level Zero loader"`
	BuildType            string   `short:"t" name:"build-type" placeholder:"BUILD_TYPE" help:"build type: Debug, Release (default Release)"`
	CUDA                 bool     `name:"cuda" help:"switch from OpenCL to CUDA"`
	ROCm                 bool     `name:"rocm" help:"switch from OpenCL to ROCm"`
	ROCmPlatform         string   `name:"rocm-platform" placeholder:"AMD|NVIDIA" help:"choose ROCm backend (default AMD)"`
	ARM                  bool     `name:"arm" help:"build ARM support rather than x86"`
	DisableESIMDCPU      bool     `name:"disable-esimd-cpu" help:"build without ESIMD_CPU support"`
	NoAssertions         bool     `name:"no-assertions" help:"build without assertions"`
	Docs                 bool     `name:"docs" help:"build Doxygen documentation"`
	NoWerror             bool     `name:"no-werror" help:"don't treat warnings as errors"`
	SharedLibs           bool     `name:"shared-libs" help:"build shared libraries"`
	CMakeOpt             []string `name:"cmake-opt" sep:"none" help:"additional CMake option not configured via script parameters (repeatable)"`
	CMakeGen             string   `name:"cmake-gen" help:"CMake generator (default Ninja)"`
	UseLibcxx            bool     `name:"use-libcxx" help:"build sycl runtime with libcxx"`
	LibcxxInclude        string   `name:"libcxx-include" placeholder:"LIBCXX_INCLUDE_PATH" help:"libcxx include path"`
	LibcxxLibrary        string   `name:"libcxx-library" placeholder:"LIBCXX_LIBRARY_PATH" help:"libcxx library path"`
	UseLLD               bool     `name:"use-lld" help:"use LLD linker for build"`
	LLVMExternalProjects string   `name:"llvm-external-projects" help:"add external projects to build, as a comma separated list"`
}

// AfterApply runs after flag parsing; loads .env files and sets up logging once.
func (c *CLI) AfterApply() error {
	if _, err := config.LoadEnvFiles(config.DefaultEnvFiles...); err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.logLevel()})))
	return nil
}

func (c *CLI) logLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return config.NormalizeLogLevel(os.Getenv(config.EnvLogLevel)).Slog()
}
