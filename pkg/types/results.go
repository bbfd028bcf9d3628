package types

import "time"

// Outcome is the per-path result of a materialization attempt.
type Outcome string

const (
	OutcomeCopied        Outcome = "copied"
	OutcomeLinked        Outcome = "linked"
	OutcomeAlreadyExists Outcome = "skipped_exists"
	OutcomeSourceMissing Outcome = "skipped_missing"
	OutcomeFailed        Outcome = "failed"
)

// IsSkip reports whether the outcome left the destination untouched without error.
func (o Outcome) IsSkip() bool {
	return o == OutcomeAlreadyExists || o == OutcomeSourceMissing
}

// MaterializeResult describes what happened to a single top-level path.
type MaterializeResult struct {
	Path    string  `json:"path"`
	Outcome Outcome `json:"outcome"`
	Err     error   `json:"-"`
	// Written and Skipped count leaf entries (files and symlinks) inside a
	// directory tree. Both are zero for a single file.
	Written int `json:"written"`
	Skipped int `json:"skipped"`
}

// Failed reports whether the path could not be materialized.
func (r MaterializeResult) Failed() bool {
	return r.Outcome == OutcomeFailed
}

// Reason returns the failure cause, or an empty string.
func (r MaterializeResult) Reason() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// MergeResult holds the result of appending patterns to an ignore list.
type MergeResult struct {
	File     string   `json:"file"`
	Added    []string `json:"added"`
	Existing []string `json:"existing"`
	Written  bool     `json:"written"`
}

// WorktreeOptions are handed to the worktree provider.
type WorktreeOptions struct {
	// RepoDir is the directory git runs in
	RepoDir string
	Branch  string
	// Path is where the worktree goes; empty means ../<branch> next to RepoDir
	Path    string
	NoTrack bool
	Force   bool
}

// GraftResult is the outcome of a full graft run.
type GraftResult struct {
	Branch       string              `json:"branch"`
	SourceRoot   string              `json:"sourceRoot"`
	WorktreePath string              `json:"worktreePath"`
	Mode         Mode                `json:"mode"`
	Paths        []string            `json:"paths"`
	Results      []MaterializeResult `json:"results"`
	Ignore       *MergeResult        `json:"ignore,omitempty"`
	DryRun       bool                `json:"dryRun"`
	Duration     time.Duration       `json:"-"`
}

// Failures returns the results that failed, in input order.
func (g *GraftResult) Failures() []MaterializeResult {
	var failed []MaterializeResult
	for _, r := range g.Results {
		if r.Failed() {
			failed = append(failed, r)
		}
	}
	return failed
}

// Count returns how many results have the given outcome.
func (g *GraftResult) Count(o Outcome) int {
	n := 0
	for _, r := range g.Results {
		if r.Outcome == o {
			n++
		}
	}
	return n
}

// HasFailures reports whether any path failed.
func (g *GraftResult) HasFailures() bool {
	return len(g.Failures()) > 0
}
