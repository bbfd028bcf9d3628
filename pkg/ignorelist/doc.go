// Package ignorelist appends patterns to a git ignore list such as
// .git/info/exclude without disturbing what is already there.
//
// Existing content is never rewritten. Patterns already listed (compared
// after trimming, comments and blank lines ignored) are not added again, and
// when nothing is new the file is not touched at all. New patterns are
// appended in a single write under a marker comment:
//
//	# Added by git-graftree
//	.env
//	config/local.json
package ignorelist
