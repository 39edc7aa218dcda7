// Package main hosts the bioconvert CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into conversion
// dispatcher runs, tool availability reports, managed installs, and
// configuration scaffolding. It centralizes configuration resolution and
// structured logging setup so subcommands stay small.
//
// Add new behaviour to the internal packages first, then surface it through a
// command or flag here.
package main
