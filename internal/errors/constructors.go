package errors

// Convenience functions for common error patterns

// Option errors

// InvalidOptions reports an illegal option combination. The message is
// the cause's text so the CLI prints which pairing is incomplete.
func InvalidOptions(cause error) *ConfigureError {
	return Wrap(cause, CategoryValidation, SeverityFatal, cause.Error())
}

func PresetNotFound(path string) *ConfigureError {
	return New(CategoryConfig, SeverityFatal, "preset file not found").
		WithContext("path", path)
}

func PresetInvalid(path string, cause error) *ConfigureError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "preset file could not be parsed").
		WithContext("path", path)
}

// Directory errors

func BuildDirError(path string, cause error) *ConfigureError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "build directory unavailable").
		WithContext("path", path)
}

// Invocation errors

func ConfigureFailed(buildDir string, cause error) *ConfigureError {
	return Wrap(cause, CategoryInvocation, SeverityFatal, "configure failed").
		WithContext("build_dir", buildDir)
}

// Internal errors

func InternalError(message string, cause error) *ConfigureError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
