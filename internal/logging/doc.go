// Package logging builds slog loggers for inkwell's daemon and CLI from
// configuration: console or JSON output, optional file mirroring into the
// configured log directory.
package logging
