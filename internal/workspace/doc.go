// Package workspace resolves the source and build directories for a
// configure run and makes sure the build directory exists.
//
// Relative paths are resolved against a base directory (the CI builder
// directory when given, otherwise the working directory). When no source
// directory is given it is detected from the enclosing git checkout. The
// build directory defaults to <source>/build.
package workspace
