// Package configure turns a set of build options into a cmake invocation.
//
// Translation is split into two pure steps. Validate rejects the few option
// combinations that cannot be expressed (a half-specified Level Zero pair, or
// libc++ requested without its paths). Derive builds the ordered FlagSet; it
// performs no filesystem access, so every path it emits must already be
// resolved by the caller.
//
// Ordering of the produced arguments is fixed:
//
//	-G <generator>
//	-D<derived defines>          (fixed order, see Derive)
//	-DL0_* defines               (when both Level Zero paths are set)
//	-DSYCL_USE_LIBCXX=ON ...     (when libc++ is requested)
//	<user --cmake-opt values>    (verbatim, caller order)
//	<source>/llvm                (always last)
//
// User options come after every derived define so that cmake's
// last-definition-wins rule lets them override anything derived here.
package configure
