// Package geometry provides normalization helpers for the freeform planner
// canvas. Positions and sizes are stored as fractions of the page dimensions
// and must always land inside the unit interval; rotation and stacking values
// are coerced to finite numbers so a malformed client payload can never
// persist unusable geometry.
package geometry
