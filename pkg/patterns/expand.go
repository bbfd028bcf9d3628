package patterns

import (
	"io/fs"
	"os"
	"strings"

	"github.com/arthur-debert/graftree/pkg/errors"
	"github.com/arthur-debert/graftree/pkg/logging"
	"github.com/bmatcuk/doublestar/v4"
)

// globChars are the characters that turn a pattern into a glob
const globChars = "*?["

// IsGlob reports whether the pattern needs glob expansion
func IsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, globChars)
}

// Expand resolves patterns against baseDir on the real filesystem. See
// ExpandFS.
func Expand(patterns []string, baseDir string) ([]string, error) {
	return ExpandFS(patterns, os.DirFS(baseDir))
}

// ExpandFS resolves patterns against fsys into a de-duplicated list of
// slash-separated relative paths.
//
// Literal patterns are returned as given without checking that they exist.
// Glob patterns only yield paths that exist; a glob with no matches
// contributes nothing. The first occurrence of a path decides its position
// in the result.
//
// Globs never descend through symlinked directories, and a wildcard never
// matches a segment starting with "." unless the pattern segment itself
// starts with ".". A malformed glob (an unclosed bracket) names a literal
// file that is returned only when it exists.
func ExpandFS(patterns []string, fsys fs.FS) ([]string, error) {
	logger := logging.GetLogger("patterns.expand")

	seen := make(map[string]struct{}, len(patterns))
	expanded := make([]string, 0, len(patterns))
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		expanded = append(expanded, p)
	}

	for _, pattern := range patterns {
		if !IsGlob(pattern) {
			add(pattern)
			continue
		}

		glob := strings.TrimPrefix(pattern, "./")
		if !doublestar.ValidatePattern(glob) {
			logger.Warn().
				Str("pattern", pattern).
				Msg("Malformed glob, matching it as a literal name")
			if _, err := fs.Stat(fsys, glob); err == nil {
				add(glob)
			}
			continue
		}

		matches, err := doublestar.Glob(fsys, glob, doublestar.WithNoFollow())
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to expand %q", pattern).
				WithDetail("pattern", pattern)
		}

		kept := 0
		for _, m := range matches {
			if !dotAllowed(glob, m) {
				continue
			}
			add(m)
			kept++
		}

		logger.Trace().
			Str("pattern", pattern).
			Int("matches", len(matches)).
			Int("kept", kept).
			Msg("Expanded glob pattern")
	}

	logger.Debug().
		Int("patterns", len(patterns)).
		Int("paths", len(expanded)).
		Msg("Expanded include patterns")

	return expanded, nil
}

// dotAllowed reports whether match can be reached by pattern with
// wildcards that skip dot-prefixed names: "**" never crosses one, and any
// other segment only matches one when it starts with "." itself.
func dotAllowed(pattern, match string) bool {
	if !strings.HasPrefix(match, ".") && !strings.Contains(match, "/.") {
		return true
	}
	return alignSegments(strings.Split(pattern, "/"), strings.Split(match, "/"))
}

func alignSegments(pat, path []string) bool {
	if len(pat) == 0 {
		return len(path) == 0
	}

	if pat[0] == "**" {
		for k := 0; k <= len(path); k++ {
			if k > 0 && isHidden(path[k-1]) {
				return false
			}
			if alignSegments(pat[1:], path[k:]) {
				return true
			}
		}
		return false
	}

	if len(path) == 0 {
		return false
	}
	if isHidden(path[0]) && !strings.HasPrefix(pat[0], ".") {
		return false
	}
	if ok, err := doublestar.Match(pat[0], path[0]); err != nil || !ok {
		return false
	}
	return alignSegments(pat[1:], path[1:])
}

func isHidden(segment string) bool {
	return strings.HasPrefix(segment, ".")
}
