package build

import "errors"

// ErrConfigure classifies a failed cmake run. It is always wrapped with the
// runner error and the build directory at the call site.
var ErrConfigure = errors.New("syclconfigure: configure error")
