// Package runtime builds applications from definitions produced at run
// time rather than declared in Go source.
//
// A Definition is the format-agnostic description of an application:
// its commands, flags, parameters and arguments, with handlers referred
// to by name. A Registry maps those names to compiled Go functions.
// Assemble lowers the pair onto the static API after checking that the
// definition and the registered handlers are in sync, so a mismatch
// between the two surfaces at startup instead of mid-invocation.
//
// Concrete definition sources implement Loader; the manifest package
// provides an HCL-backed one. Applications put together in code use the
// imperative builder started by New, which produces a Definition with
// handlers attached inline and feeds it through the same lowering.
package runtime
