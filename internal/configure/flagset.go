package configure

import "strings"

// Define is a single -D<Name>=<Value> cache entry.
type Define struct {
	Name  string
	Value string
}

// String renders the define as a cmake argument.
func (d Define) String() string {
	return "-D" + d.Name + "=" + d.Value
}

// FlagSet is the derived cmake invocation. It is built once by Derive and
// is not modified afterwards; accessors return copies.
type FlagSet struct {
	generator  string
	defines    []Define
	extra      []string
	sourcePath string
}

// Generator returns the cmake generator name passed with -G.
func (f FlagSet) Generator() string { return f.generator }

// SourcePath returns the positional path to the root CMakeLists.txt directory.
func (f FlagSet) SourcePath() string { return f.sourcePath }

// Defines returns the derived defines in emission order.
func (f FlagSet) Defines() []Define {
	return append([]Define(nil), f.defines...)
}

// Extra returns the caller-supplied options in caller order.
func (f FlagSet) Extra() []string {
	return append([]string(nil), f.extra...)
}

// Lookup returns the value of the named define.
func (f FlagSet) Lookup(name string) (string, bool) {
	for _, d := range f.defines {
		if d.Name == name {
			return d.Value, true
		}
	}
	return "", false
}

// IsZero reports whether f was never derived, as returned by Translate on error.
func (f FlagSet) IsZero() bool {
	return f.sourcePath == "" && f.generator == "" && len(f.defines) == 0
}

// Args renders the argument list, without the cmake binary itself.
// A zero FlagSet renders nothing.
func (f FlagSet) Args() []string {
	if f.IsZero() {
		return nil
	}
	args := make([]string, 0, 2+len(f.defines)+len(f.extra)+1)
	args = append(args, "-G", f.generator)
	for _, d := range f.defines {
		args = append(args, d.String())
	}
	args = append(args, f.extra...)
	return append(args, f.sourcePath)
}

// CommandLine renders binary and arguments space-separated, for display only.
// It is empty for a zero FlagSet.
func (f FlagSet) CommandLine(binary string) string {
	if f.IsZero() {
		return ""
	}
	return strings.Join(append([]string{binary}, f.Args()...), " ")
}
