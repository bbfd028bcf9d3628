package git

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/graftree/pkg/errors"
	"github.com/arthur-debert/graftree/pkg/logging"
	"github.com/arthur-debert/graftree/pkg/types"
)

// CLIWorktreeProvider creates worktrees by running "git worktree add"
type CLIWorktreeProvider struct {
	// Binary is the git executable; empty means "git" from PATH
	Binary string
}

var _ types.WorktreeProvider = (*CLIWorktreeProvider)(nil)

// NewCLIWorktreeProvider returns a provider using git from PATH
func NewCLIWorktreeProvider() *CLIWorktreeProvider {
	return &CLIWorktreeProvider{Binary: "git"}
}

// DefaultWorktreePath is where a worktree for branch goes when no path is
// given: a sibling of the repository directory named after the branch.
func DefaultWorktreePath(repoDir, branch string) string {
	return filepath.Join(repoDir, "..", branch)
}

// ResolveWorktreePath is where the worktree for opts goes. Relative paths
// resolve against the repository directory.
func ResolveWorktreePath(opts types.WorktreeOptions) string {
	switch {
	case opts.Path == "":
		return DefaultWorktreePath(opts.RepoDir, opts.Branch)
	case !filepath.IsAbs(opts.Path):
		return filepath.Join(opts.RepoDir, opts.Path)
	}
	return filepath.Clean(opts.Path)
}

// Args builds the git arguments for opts with the worktree at path
func Args(opts types.WorktreeOptions, path string) []string {
	args := []string{"worktree", "add"}
	if opts.Force {
		args = append(args, "--force")
	}
	if opts.NoTrack {
		args = append(args, "--no-track")
	}
	return append(args, path, opts.Branch)
}

// Create adds a worktree for opts.Branch and returns its absolute path
func (p *CLIWorktreeProvider) Create(ctx context.Context, opts types.WorktreeOptions) (string, error) {
	logger := logging.GetLogger("git.worktree")

	if opts.Branch == "" {
		return "", errors.New(errors.ErrInvalidInput, "branch name is required")
	}

	path, err := filepath.Abs(ResolveWorktreePath(opts))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrWorktreeCreate, "cannot resolve worktree path %s", opts.Path)
	}

	bin := p.Binary
	if bin == "" {
		bin = "git"
	}
	args := Args(opts, path)

	logger.Info().Str("branch", opts.Branch).Str("path", path).Strs("args", args).Msg("Creating worktree")

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = opts.RepoDir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		output := strings.TrimSpace(out.String())
		logger.Error().Err(err).Str("output", output).Msg("git worktree add failed")
		return "", errors.Wrapf(err, errors.ErrWorktreeCreate, "failed to create worktree for %s: %s", opts.Branch, output).
			WithDetail("branch", opts.Branch).
			WithDetail("path", path).
			WithDetail("output", output)
	}

	logger.Debug().Str("output", strings.TrimSpace(out.String())).Msg("Worktree created")
	return path, nil
}
