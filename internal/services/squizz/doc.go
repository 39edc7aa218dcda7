// Package squizz drives the squizz sequence converter as a child process.
//
// The client builds an argument vector (never a shell string), redirects
// squizz stdout into the requested output file, and reports non-zero exits
// as *services.ToolError so callers can inspect the exit code and stderr.
package squizz
