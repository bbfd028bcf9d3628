// pkg/git/worktree_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: git binary (skipped when missing), go-git
// PURPOSE: Test worktree creation through the git CLI

package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/graftree/pkg/errors"
	"github.com/arthur-debert/graftree/pkg/git"
	"github.com/arthur-debert/graftree/pkg/types"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs(t *testing.T) {
	tests := []struct {
		name string
		opts types.WorktreeOptions
		want []string
	}{
		{
			name: "plain",
			opts: types.WorktreeOptions{Branch: "feature"},
			want: []string{"worktree", "add", "/wt", "feature"},
		},
		{
			name: "force_and_no_track",
			opts: types.WorktreeOptions{Branch: "feature", Force: true, NoTrack: true},
			want: []string{"worktree", "add", "--force", "--no-track", "/wt", "feature"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, git.Args(tt.opts, "/wt"))
		})
	}
}

func TestDefaultWorktreePath(t *testing.T) {
	assert.Equal(t, "/src/feature", git.DefaultWorktreePath("/src/repo", "feature"))
	assert.Equal(t, "/src/fix/login", git.DefaultWorktreePath("/src/repo", "fix/login"))
}

// commitRepo creates a repository with one commit on master and a branch
// named branch pointing at it.
func commitRepo(t *testing.T, branch string) string {
	t.Helper()
	root := initRepo(t)
	repo, err := gogit.PlainOpen(root)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "README"), []byte("hello"), 0644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README")
	require.NoError(t, err)
	hash, err := wt.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(branch), hash)
	require.NoError(t, repo.Storer.SetReference(ref))
	return root
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func TestCLIWorktreeProvider_Create(t *testing.T) {
	requireGit(t)
	root := commitRepo(t, "feature")
	provider := git.NewCLIWorktreeProvider()

	t.Run("default_path", func(t *testing.T) {
		path, err := provider.Create(context.Background(), types.WorktreeOptions{
			RepoDir: root,
			Branch:  "feature",
		})
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(filepath.Dir(root), "feature"), path)
		assert.FileExists(t, filepath.Join(path, "README"))

		repo, err := git.Discover(path)
		require.NoError(t, err)
		assert.True(t, repo.IsLinkedWorktree())
		assert.Equal(t, filepath.Join(root, ".git"), repo.CommonDir())
	})

	t.Run("relative_path_resolves_against_repo", func(t *testing.T) {
		path, err := provider.Create(context.Background(), types.WorktreeOptions{
			RepoDir: root,
			Branch:  "master",
			Path:    "../elsewhere",
			Force:   true,
		})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(filepath.Dir(root), "elsewhere"), path)
		assert.DirExists(t, path)
	})

	t.Run("unknown_branch_fails", func(t *testing.T) {
		_, err := provider.Create(context.Background(), types.WorktreeOptions{
			RepoDir: root,
			Branch:  "does-not-exist",
			Path:    filepath.Join(filepath.Dir(root), "nowhere"),
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrWorktreeCreate))
		assert.NotEmpty(t, errors.GetErrorDetails(err)["output"])
	})
}

func TestCLIWorktreeProvider_Errors(t *testing.T) {
	t.Run("missing_branch", func(t *testing.T) {
		_, err := git.NewCLIWorktreeProvider().Create(context.Background(), types.WorktreeOptions{RepoDir: t.TempDir()})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("missing_binary", func(t *testing.T) {
		provider := &git.CLIWorktreeProvider{Binary: filepath.Join(t.TempDir(), "no-git-here")}
		_, err := provider.Create(context.Background(), types.WorktreeOptions{
			RepoDir: t.TempDir(),
			Branch:  "feature",
		})
		assert.True(t, errors.IsErrorCode(err, errors.ErrWorktreeCreate))
	})
}

func TestResolveWorktreePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"default", "", "/src/feature"},
		{"relative", "../wt/feature", "/src/wt/feature"},
		{"absolute", "/tmp/wt/", "/tmp/wt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := git.ResolveWorktreePath(types.WorktreeOptions{RepoDir: "/src/repo", Branch: "feature", Path: tt.path})
			assert.Equal(t, tt.want, got)
		})
	}
}
