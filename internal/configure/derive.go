package configure

import (
	"path/filepath"
	"strings"
)

// Cache variable names emitted by Derive.
const (
	VarBuildType          = "CMAKE_BUILD_TYPE"
	VarAssertions         = "LLVM_ENABLE_ASSERTIONS"
	VarTargetsToBuild     = "LLVM_TARGETS_TO_BUILD"
	VarExternalProjects   = "LLVM_EXTERNAL_PROJECTS"
	VarEnableProjects     = "LLVM_ENABLE_PROJECTS"
	VarLibclcTargets      = "LIBCLC_TARGETS_TO_BUILD"
	VarPICUDA             = "SYCL_BUILD_PI_CUDA"
	VarPIROCm             = "SYCL_BUILD_PI_ROCM"
	VarPIROCmPlatform     = "SYCL_BUILD_PI_ROCM_PLATFORM"
	VarBuildTools         = "LLVM_BUILD_TOOLS"
	VarWerror             = "SYCL_ENABLE_WERROR"
	VarInstallPrefix      = "CMAKE_INSTALL_PREFIX"
	VarIncludeTests       = "SYCL_INCLUDE_TESTS"
	VarDoxygen            = "LLVM_ENABLE_DOXYGEN"
	VarSphinx             = "LLVM_ENABLE_SPHINX"
	VarSharedLibs         = "BUILD_SHARED_LIBS"
	VarXPTITracing        = "SYCL_ENABLE_XPTI_TRACING"
	VarLLD                = "LLVM_ENABLE_LLD"
	VarPIESIMDCPU         = "SYCL_BUILD_PI_ESIMD_CPU"
	VarL0IncludeDir       = "L0_INCLUDE_DIR"
	VarL0Library          = "L0_LIBRARY"
	VarUseLibcxx          = "SYCL_USE_LIBCXX"
	VarLibcxxIncludePath  = "SYCL_LIBCXX_INCLUDE_PATH"
	VarLibcxxLibraryPath  = "SYCL_LIBCXX_LIBRARY_PATH"
	installSubdir         = "install"
	llvmSubdir            = "llvm"
	libclcProject         = "libclc"
	hostProject           = "clang"
	listSeparator         = ";"
	userProjectsSeparator = ","
)

// BaselineExternalProjects are always built as LLVM external projects.
var BaselineExternalProjects = []string{"sycl", "llvm-spirv", "opencl", "libdevice", "xpti", "xptifw"}

var (
	defaultTargets = []string{"X86"}
	armTargets     = []string{"ARM", "AArch64"}
	nvptxLibclc    = []string{"nvptx64--", "nvptx64--nvidiacl"}
	amdgcnLibclc   = []string{"amdgcn--", "amdgcn--amdhsa"}
)

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// Derive builds the FlagSet for o. It does not validate; use Translate
// unless o is known to be valid. Repeated calls on equal Options return
// identical argument lists.
func Derive(o Options) FlagSet {
	externals := append([]string(nil), BaselineExternalProjects...)
	if o.ExternalProjects != "" {
		externals = append(externals, strings.Split(o.ExternalProjects, userProjectsSeparator)...)
	}

	enabled := append([]string{hostProject}, externals...)
	if o.CUDA || o.ROCm {
		enabled = append(enabled, libclcProject)
	}

	// ARM replaces the default ISA; backends add to whichever list is active.
	targets := append([]string(nil), defaultTargets...)
	if o.ARM {
		targets = append([]string(nil), armTargets...)
	}

	var libclc []string
	if o.CUDA {
		targets = append(targets, "NVPTX")
		libclc = append(libclc, nvptxLibclc...)
	}

	platform := o.rocmPlatform()
	if o.ROCm {
		switch {
		case platform == ROCmPlatformAMD:
			targets = append(targets, "AMDGPU")
			libclc = append(libclc, amdgcnLibclc...)
		case platform == ROCmPlatformNVIDIA && !o.CUDA:
			targets = append(targets, "NVPTX")
			libclc = append(libclc, nvptxLibclc...)
		}
	}

	src := func(name string) string { return filepath.Join(o.SourceDir, name) }
	xptiDir := src("xpti")

	defines := []Define{
		{VarBuildType, o.buildType()},
		{VarAssertions, onOff(!o.NoAssertions)},
		{VarTargetsToBuild, strings.Join(targets, listSeparator)},
		{VarExternalProjects, strings.Join(externals, listSeparator)},
		{"LLVM_EXTERNAL_SYCL_SOURCE_DIR", src("sycl")},
		{"LLVM_EXTERNAL_LLVM_SPIRV_SOURCE_DIR", src("llvm-spirv")},
		{"LLVM_EXTERNAL_XPTI_SOURCE_DIR", xptiDir},
		{"XPTI_SOURCE_DIR", xptiDir},
		{"LLVM_EXTERNAL_XPTIFW_SOURCE_DIR", src("xptifw")},
		{"LLVM_EXTERNAL_LIBDEVICE_SOURCE_DIR", src("libdevice")},
		{VarEnableProjects, strings.Join(enabled, listSeparator)},
		{VarLibclcTargets, strings.Join(libclc, listSeparator)},
		{VarPICUDA, onOff(o.CUDA)},
		{VarPIROCm, onOff(o.ROCm)},
		{VarPIROCmPlatform, string(platform)},
		{VarBuildTools, "ON"},
		{VarWerror, onOff(!o.NoWerror)},
		{VarInstallPrefix, filepath.Join(o.BuildDir, installSubdir)},
		{VarIncludeTests, "ON"},
		{VarDoxygen, onOff(o.Docs)},
		{VarSphinx, onOff(o.Docs)},
		{VarSharedLibs, onOff(o.SharedLibs)},
		{VarXPTITracing, "ON"},
		{VarLLD, onOff(o.UseLLD)},
		{VarPIESIMDCPU, onOff(!o.DisableESIMDCPU)},
	}

	if o.L0Headers != "" && o.L0Loader != "" {
		defines = append(defines,
			Define{VarL0IncludeDir, o.L0Headers},
			Define{VarL0Library, o.L0Loader})
	}

	if o.UseLibcxx {
		defines = append(defines,
			Define{VarUseLibcxx, "ON"},
			Define{VarLibcxxIncludePath, o.LibcxxInclude},
			Define{VarLibcxxLibraryPath, o.LibcxxLibrary})
	}

	return FlagSet{
		generator:  o.generator(),
		defines:    defines,
		extra:      append([]string(nil), o.CMakeOptions...),
		sourcePath: src(llvmSubdir),
	}
}
