// Package types defines the core types and interfaces used throughout graftree.
// This includes the FS and WorktreeProvider interfaces as well as the result
// structures produced by the materializer, the ignore-list merger and the
// graft pipeline.
package types
