// Package journal persists the planner's data model in SQLite: monthly
// two-page spreads and their freeform elements, per-day entries with attached
// media, single-row day notes, decorative smudges, and legacy decor items.
//
// The element store follows full-reconciliation semantics: the caller always
// supplies the complete desired element set for a spread and the store
// computes deletes, updates, and inserts. Geometry is normalized store-side
// so out-of-range positions can never be persisted.
package journal
