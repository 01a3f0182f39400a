// Package git inspects the local checkout that holds the SYCL sources.
//
// It is used by the CLI to locate the source root when --src-dir is not
// given and to log the revision being configured. Nothing here clones,
// fetches or modifies a repository.
package git
