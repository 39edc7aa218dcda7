// Package services defines shared utilities consumed by the conversion
// strategies and the external tool clients.
//
// Key responsibilities:
//   - Context helpers that stamp the conversion method, input path, and
//     correlation identifiers for logging.
//   - Structured error markers plus the Wrap helper so callers can classify
//     failures (configuration, parse, external tool, installation, I/O) with
//     errors.Is, and ToolError for exit codes and captured stderr.
//   - The Runner abstraction that makes child process execution testable
//     without spawning real binaries.
package services
