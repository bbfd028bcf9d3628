// Package filesystem provides filesystem implementations for graftree.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem and an afero-backed filesystem used by tests and
// by callers that want to sandbox writes.
package filesystem
