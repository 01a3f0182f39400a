package configure

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteHardwareAbstractionPair is returned when only one of the
	// Level Zero headers/loader paths is given.
	ErrIncompleteHardwareAbstractionPair = errors.New("please specify both Level Zero headers and loader, or neither of them to let the build download them")
	// ErrIncompleteAlternateStdlibPair is returned when libc++ is requested
	// without both its include and library paths.
	ErrIncompleteAlternateStdlibPair = errors.New("please specify include and library path of libc++ when building the sycl runtime with it")
	// ErrUnknownROCmPlatform is returned for a platform other than AMD or NVIDIA.
	ErrUnknownROCmPlatform = errors.New("unknown ROCm platform")
)

// Validate reports the first illegal option combination. Every other
// combination is accepted and composed additively by Derive.
func Validate(o Options) error {
	if (o.L0Headers == "") != (o.L0Loader == "") {
		return ErrIncompleteHardwareAbstractionPair
	}
	if o.UseLibcxx && (o.LibcxxInclude == "" || o.LibcxxLibrary == "") {
		return ErrIncompleteAlternateStdlibPair
	}
	switch o.rocmPlatform() {
	case ROCmPlatformAMD, ROCmPlatformNVIDIA:
	default:
		return fmt.Errorf("%w: %q (want AMD or NVIDIA)", ErrUnknownROCmPlatform, o.ROCmPlatform)
	}
	return nil
}

// Translate validates o and derives its FlagSet. On error no FlagSet is produced.
func Translate(o Options) (FlagSet, error) {
	if err := Validate(o); err != nil {
		return FlagSet{}, err
	}
	return Derive(o), nil
}
