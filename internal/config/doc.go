// Package config loads, normalizes, and validates bioconvert configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// BIOCONVERT_TOOLS_DIR and BIOCONVERT_GOALIGN.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical method names, and clear validation errors.
package config
