// Package build provides the configure execution pipeline.
//
// Service.Run is the single entry point used by the CLI and by tests: it
// validates and translates the options, prints the resulting cmake command,
// runs it through an injected runner.Runner and, when cmake fails, looks for
// a CMakeCache.txt left by an earlier run and prints a removal hint. The
// cache file is never removed here.
package build
