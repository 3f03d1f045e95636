// Package summary aggregates per-day journal data into render-ready
// calendar previews. For each day of a month it folds entries, attached
// media, and the optional ink smudge into one DaySummary record, resolving
// media references through the storage resolver along the way.
package summary
