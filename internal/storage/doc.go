// Package storage resolves persisted media references into fetchable URLs.
// References that are already absolute pass through unchanged; bare object
// paths are exchanged for time-limited signed URLs via the object storage
// HTTP API. Uploads and deletions are out of scope.
package storage
