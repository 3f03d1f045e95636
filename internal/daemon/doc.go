// Package daemon hosts the long-running planner service: it owns the journal
// store, enforces single-instance execution through a lock file, and serves
// the HTTP API the editing surface talks to.
package daemon
