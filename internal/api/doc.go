// Package api defines wire-format types and converters for the HTTP API
// layer. It translates internal journal models into transport-friendly DTOs
// that the planner editing surface can render without coupling to internal
// types.
//
// # Key Types
//
// Element: transport representation of one positioned spread object. Its ID
// is a string so clients can submit placeholder identifiers (UUIDs) for
// rows that do not exist yet; the converter maps those to inserts.
//
// SpreadResponse: a spread plus its full element set in paint order.
//
// Entry/Media/Smudge/DayEntry/DecorItem: per-day journal payloads.
//
// # Design Notes
//
// DTOs use camelCase JSON tags for JavaScript/TypeScript consumers.
// Timestamps use RFC3339 with milliseconds. Element meta is passed through
// as json.RawMessage to avoid double-encoding, so client styling fields
// round-trip bytewise.
package api
