package patterns

import (
	"strings"

	"github.com/arthur-debert/graftree/pkg/errors"
	"github.com/dlclark/regexp2"
)

type exclusion struct {
	pattern string
	re      *regexp2.Regexp
}

// Excluder tests paths against a compiled set of exclusion patterns
type Excluder struct {
	rules []exclusion
}

// NewExcluder compiles exclusion patterns. Patterns containing * are turned
// into ECMAScript regular expressions by replacing each * with .* and are
// matched anywhere in the path.
func NewExcluder(patterns []string) (*Excluder, error) {
	e := &Excluder{rules: make([]exclusion, 0, len(patterns))}
	for _, p := range patterns {
		rule := exclusion{pattern: p}
		if strings.Contains(p, "*") {
			re, err := regexp2.Compile(strings.ReplaceAll(p, "*", ".*"), regexp2.ECMAScript)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrInvalidPattern, "invalid exclude pattern %q", p).
					WithDetail("pattern", p)
			}
			rule.re = re
		}
		e.rules = append(e.rules, rule)
	}
	return e, nil
}

// IsExcluded reports whether any exclusion matches path
func (e *Excluder) IsExcluded(path string) bool {
	for _, r := range e.rules {
		if r.re != nil {
			if ok, err := r.re.MatchString(path); err == nil && ok {
				return true
			}
			continue
		}
		if path == r.pattern ||
			strings.HasSuffix(path, "/"+r.pattern) ||
			strings.Contains(path, "/"+r.pattern+"/") ||
			strings.HasPrefix(path, r.pattern+"/") {
			return true
		}
	}
	return false
}

// Filter returns the paths not matched by any exclusion, in input order
func (e *Excluder) Filter(paths []string) []string {
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if !e.IsExcluded(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

// Filter compiles excludes and applies them to paths
func Filter(paths []string, excludes []string) ([]string, error) {
	e, err := NewExcluder(excludes)
	if err != nil {
		return nil, err
	}
	return e.Filter(paths), nil
}

// IsExcluded compiles excludes and tests a single path
func IsExcluded(path string, excludes []string) (bool, error) {
	e, err := NewExcluder(excludes)
	if err != nil {
		return false, err
	}
	return e.IsExcluded(path), nil
}
