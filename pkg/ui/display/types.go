// Package display turns graft results into a presentation model shared by
// the text and terminal renderers.
package display

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/graftree/pkg/types"
)

// Row is one top-level path in the summary
type Row struct {
	Path    string
	Outcome types.Outcome
	// Label is the short status shown in front of the path
	Label string
	// Detail carries leaf counts for directories or the failure reason
	Detail string
}

// Summary is the presentation model of a graft run
type Summary struct {
	Header string
	DryRun bool
	Rows   []Row
	// Ignore describes the ignore-list update, empty when there was none
	Ignore string
	Totals string
	Failed int
}

var labels = map[types.Outcome]string{
	types.OutcomeCopied:        "copied",
	types.OutcomeLinked:        "linked",
	types.OutcomeAlreadyExists: "exists",
	types.OutcomeSourceMissing: "missing",
	types.OutcomeFailed:        "failed",
}

// Label returns the short status word for an outcome
func Label(o types.Outcome) string {
	if l, ok := labels[o]; ok {
		return l
	}
	return string(o)
}

// FromResult builds the summary of result
func FromResult(result *types.GraftResult) Summary {
	s := Summary{DryRun: result.DryRun}

	target := result.WorktreePath
	if result.Branch != "" {
		target = fmt.Sprintf("%s (%s)", result.WorktreePath, result.Branch)
	}

	if result.DryRun {
		s.Header = fmt.Sprintf("Would %s %s into %s", verb(result.Mode), plural(len(result.Paths), "path"), target)
		for _, p := range result.Paths {
			s.Rows = append(s.Rows, Row{Path: p, Label: "plan"})
		}
		if len(result.Paths) == 0 {
			s.Totals = "Nothing matched the include patterns"
		}
		return s
	}

	s.Header = fmt.Sprintf("Grafted %s into %s using %s mode", plural(len(result.Results), "path"), target, result.Mode)

	for _, r := range result.Results {
		row := Row{Path: r.Path, Outcome: r.Outcome, Label: Label(r.Outcome)}
		switch {
		case r.Failed():
			row.Detail = r.Reason()
			s.Failed++
		case r.Written > 0 || r.Skipped > 0:
			row.Detail = fmt.Sprintf("%d written, %d already present", r.Written, r.Skipped)
		}
		s.Rows = append(s.Rows, row)
	}

	if result.Ignore != nil && result.Ignore.Written {
		s.Ignore = fmt.Sprintf("Added %s to %s", plural(len(result.Ignore.Added), "pattern"), shortPath(result.Ignore.File, result.SourceRoot))
	}

	s.Totals = totals(result)
	return s
}

func totals(result *types.GraftResult) string {
	if len(result.Results) == 0 {
		return "Nothing matched the include patterns"
	}
	var parts []string
	for _, o := range []types.Outcome{
		types.OutcomeCopied,
		types.OutcomeLinked,
		types.OutcomeAlreadyExists,
		types.OutcomeSourceMissing,
		types.OutcomeFailed,
	} {
		if n := result.Count(o); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, Label(o)))
		}
	}
	return strings.Join(parts, ", ")
}

func verb(mode types.Mode) string {
	if mode.UseSymlinks() {
		return "link"
	}
	return "copy"
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// shortPath shows path relative to root when it lies below it
func shortPath(path, root string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
