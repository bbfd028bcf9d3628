// Package graft wires the pieces of a graft run together.
//
// Run is the pipeline proper: expand the include patterns against the
// source checkout, drop excluded paths, materialize each survivor into the
// target worktree, then hide everything that was attempted from git. It
// takes explicit roots and never looks at the process working directory.
//
// Graft is the full command: it discovers the repository, creates the
// worktree through a types.WorktreeProvider and hands off to Run.
package graft
