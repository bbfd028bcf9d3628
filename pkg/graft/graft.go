package graft

import (
	"context"
	"time"

	"github.com/arthur-debert/graftree/pkg/config"
	"github.com/arthur-debert/graftree/pkg/errors"
	"github.com/arthur-debert/graftree/pkg/git"
	"github.com/arthur-debert/graftree/pkg/logging"
	"github.com/arthur-debert/graftree/pkg/types"
)

// Request holds the options of a full graft
type Request struct {
	Branch string
	// WorkDir is any directory inside the source checkout
	WorkDir string
	// WorktreePath is where the new worktree goes; empty picks a sibling
	// of the checkout named after the branch
	WorktreePath string
	NoTrack      bool
	Force        bool
	Settings     *config.Settings
	DryRun       bool
	// Provider creates the worktree; nil uses the git binary
	Provider types.WorktreeProvider
	FS       types.FS
}

// Graft creates a worktree for req.Branch and fills it with the configured
// untracked files of the checkout containing req.WorkDir.
func Graft(ctx context.Context, req Request) (*types.GraftResult, error) {
	logger := logging.GetLogger("graft")
	start := time.Now()
	defer logging.LogOperationStart(logger, "graft")()

	if req.Branch == "" {
		return nil, errors.New(errors.ErrInvalidInput, "branch name is required")
	}
	if req.Settings == nil {
		return nil, errors.New(errors.ErrInvalidInput, "settings are required")
	}

	repo, err := git.Discover(req.WorkDir)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("branch", req.Branch).
		Str("repo", repo.Root()).
		Str("mode", string(req.Settings.Mode)).
		Bool("dry_run", req.DryRun).
		Msg("Starting graft")

	wtOpts := types.WorktreeOptions{
		RepoDir: repo.Root(),
		Branch:  req.Branch,
		Path:    req.WorktreePath,
		NoTrack: req.NoTrack,
		Force:   req.Force,
	}

	var worktreePath string
	if req.DryRun {
		worktreePath = git.ResolveWorktreePath(wtOpts)
	} else {
		provider := req.Provider
		if provider == nil {
			provider = git.NewCLIWorktreeProvider()
		}
		worktreePath, err = provider.Create(ctx, wtOpts)
		if err != nil {
			return nil, err
		}
	}

	result, err := Run(ctx, Options{
		SourceRoot: repo.Root(),
		TargetRoot: worktreePath,
		Include:    req.Settings.Include,
		Exclude:    req.Settings.Exclude,
		Mode:       req.Settings.Mode,
		Jobs:       req.Settings.Jobs,
		IgnoreFile: repo.ExcludeFile(),
		DryRun:     req.DryRun,
		FS:         req.FS,
	})
	if result != nil {
		result.Branch = req.Branch
		result.Duration = time.Since(start)
	}
	return result, err
}
