// Package preflight runs environment checks before conversions and installs.
//
// Checks cover the managed tools directory, the optional log directory, the
// output directory of a conversion, and the toolchain needed to install
// goalign. Each check returns a Result so the CLI can render them uniformly.
package preflight
