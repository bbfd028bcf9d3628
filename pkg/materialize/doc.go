// Package materialize reproduces files and directory trees from a source
// root at the same relative position under a target root, either by copying
// or by symlinking.
//
// Nothing that already exists at the destination is ever overwritten, so
// running the same materialization twice performs no writes the second time.
// Directory trees are walked with an explicit stack; symlinks found in the
// source are treated as leaves and never followed.
package materialize
