// Package patterns turns include patterns into concrete relative paths and
// drops the ones matched by exclusion patterns.
//
// Include patterns are either literal paths, passed through untouched, or
// globs (anything containing *, ? or [) expanded against a base directory
// with doublestar semantics, so ** crosses directory boundaries.
//
// Exclusion patterns are deliberately coarse. A pattern without * excludes a
// path equal to it or containing it as a whole path segment. A pattern with *
// becomes an unanchored regular expression where every * is replaced by .*
// and nothing else is escaped, so "*.log" also excludes "catalog".
package patterns
