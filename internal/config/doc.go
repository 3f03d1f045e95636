// Package config loads, normalizes, and validates inkwell's TOML
// configuration. Paths are tilde-expanded and made absolute during Load so
// downstream code never handles relative or user-shorthand paths.
package config
