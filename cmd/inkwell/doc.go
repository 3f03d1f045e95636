// Command inkwell is the CLI for the planner journal service. It can run the
// daemon in the foreground, inspect and edit monthly spreads, manage per-day
// journal entries, and render month summaries.
package main
