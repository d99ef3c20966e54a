// Package slot provides durable key-value entries holding the serialized job collection.
// Each implementation keeps exactly one value under one key and rewrites it in full on every
// write. Supported backends are a plain file, SQLite with WAL mode, Redis and memory.
package slot

import "errors"

// DefaultKey is the name of the slot holding jobs
const DefaultKey = "jobwiseJobs"

// ErrEmpty returned by Read if nothing was written to the slot yet
var ErrEmpty = errors.New("slot is empty")
