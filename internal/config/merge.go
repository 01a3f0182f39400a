package config

import (
	"strings"

	"git.home.luguber.info/inful/syclconfigure/internal/configure"
)

// Merge overlays flags onto preset and fills remaining defaults. Flags win
// for scalar fields, toggles are enabled if either side enables them, and
// preset lists come before flag lists so later command-line values override.
// A nil preset is treated as empty.
func Merge(preset *Preset, flags configure.Options) configure.Options {
	out := flags
	if preset == nil {
		preset = &Preset{}
	}

	out.SourceDir = firstNonEmpty(flags.SourceDir, preset.SourceDir)
	out.BuildDir = firstNonEmpty(flags.BuildDir, preset.BuildDir)
	out.BuildType = firstNonEmpty(flags.BuildType, preset.BuildType, configure.DefaultBuildType)
	out.Generator = firstNonEmpty(flags.Generator, preset.Generator, configure.DefaultGenerator)
	out.ROCmPlatform = configure.ROCmPlatform(firstNonEmpty(
		string(flags.ROCmPlatform), preset.ROCmPlatform, string(configure.ROCmPlatformAMD)))

	out.CUDA = flags.CUDA || preset.CUDA
	out.ROCm = flags.ROCm || preset.ROCm
	out.ARM = flags.ARM || preset.ARM
	out.DisableESIMDCPU = flags.DisableESIMDCPU || preset.DisableESIMDCPU
	out.NoAssertions = flags.NoAssertions || preset.NoAssertions
	out.NoWerror = flags.NoWerror || preset.NoWerror
	out.Docs = flags.Docs || preset.Docs
	out.SharedLibs = flags.SharedLibs || preset.SharedLibs
	out.UseLLD = flags.UseLLD || preset.UseLLD

	var projects []string
	projects = append(projects, preset.ExternalProjects...)
	if flags.ExternalProjects != "" {
		projects = append(projects, flags.ExternalProjects)
	}
	out.ExternalProjects = strings.Join(projects, ",")

	out.CMakeOptions = append(append([]string(nil), preset.CMakeOptions...), flags.CMakeOptions...)

	// The Level Zero pair is taken as a unit so a flag never pairs with half a preset.
	if flags.L0Headers == "" && flags.L0Loader == "" && preset.L0 != nil {
		out.L0Headers, out.L0Loader = preset.L0.Headers, preset.L0.Loader
	}

	if preset.Libcxx != nil {
		out.UseLibcxx = flags.UseLibcxx || preset.Libcxx.Enabled
		out.LibcxxInclude = firstNonEmpty(flags.LibcxxInclude, preset.Libcxx.Include)
		out.LibcxxLibrary = firstNonEmpty(flags.LibcxxLibrary, preset.Libcxx.Library)
	}

	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
