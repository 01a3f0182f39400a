package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	cerrors "git.home.luguber.info/inful/syclconfigure/internal/errors"
)

// Preset is a YAML file of option defaults, typically checked in next to a
// CI job. Command-line flags take precedence over every preset field.
type Preset struct {
	// CMake overrides the cmake binary (also settable via SYCL_CONFIGURE_CMAKE).
	CMake string `yaml:"cmake,omitempty"`

	BuildType string `yaml:"build_type,omitempty"`
	Generator string `yaml:"generator,omitempty"`
	SourceDir string `yaml:"source_dir,omitempty"`
	BuildDir  string `yaml:"build_dir,omitempty"`

	CUDA         bool   `yaml:"cuda,omitempty"`
	ROCm         bool   `yaml:"rocm,omitempty"`
	ROCmPlatform string `yaml:"rocm_platform,omitempty"`

	ARM             bool `yaml:"arm,omitempty"`
	DisableESIMDCPU bool `yaml:"disable_esimd_cpu,omitempty"`
	NoAssertions    bool `yaml:"no_assertions,omitempty"`
	NoWerror        bool `yaml:"no_werror,omitempty"`
	Docs            bool `yaml:"docs,omitempty"`
	SharedLibs      bool `yaml:"shared_libs,omitempty"`
	UseLLD          bool `yaml:"use_lld,omitempty"`

	ExternalProjects []string `yaml:"external_projects,omitempty"`
	CMakeOptions     []string `yaml:"cmake_options,omitempty"`

	L0     *L0Preset     `yaml:"level_zero,omitempty"`
	Libcxx *LibcxxPreset `yaml:"libcxx,omitempty"`
}

// L0Preset holds the Level Zero headers/loader pair.
type L0Preset struct {
	Headers string `yaml:"headers,omitempty"`
	Loader  string `yaml:"loader,omitempty"`
}

// LibcxxPreset enables building the runtime against libc++.
type LibcxxPreset struct {
	Enabled bool   `yaml:"enabled"`
	Include string `yaml:"include,omitempty"`
	Library string `yaml:"library,omitempty"`
}

// Load reads a preset file. Environment variables in the file are expanded
// before parsing and unknown keys are rejected.
func Load(path string) (*Preset, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, cerrors.PresetNotFound(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cerrors.PresetInvalid(path, fmt.Errorf("read: %w", err))
	}

	p, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		return nil, cerrors.PresetInvalid(path, err)
	}
	return p, nil
}

// Parse decodes preset YAML. An empty document yields an empty preset.
func Parse(data []byte) (*Preset, error) {
	var p Preset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unmarshal preset: %w", err)
	}
	return &p, nil
}
