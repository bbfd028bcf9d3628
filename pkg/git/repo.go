package git

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/graftree/pkg/errors"
	"github.com/arthur-debert/graftree/pkg/logging"
	"github.com/go-git/go-billy/v5"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// Repository describes the checkout a directory belongs to
type Repository struct {
	root      string
	gitDir    string
	commonDir string
}

// Discover finds the repository enclosing dir, walking up parent
// directories the way git does.
func Discover(dir string) (*Repository, error) {
	logger := logging.GetLogger("git")

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve %s", dir)
	}

	repo, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if err == gogit.ErrRepositoryNotExists {
			return nil, errors.Newf(errors.ErrNotARepository, "%s is not inside a git repository", abs).
				WithDetail("dir", abs)
		}
		return nil, errors.Wrapf(err, errors.ErrNotARepository, "cannot open repository at %s", abs)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotARepository, "%s has no working tree", abs)
	}

	storage, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return nil, errors.Newf(errors.ErrNotARepository, "repository at %s is not stored on disk", abs)
	}
	dotGit := storage.Filesystem()

	common, err := commonDir(dotGit)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotARepository, "cannot resolve common git directory of %s", abs)
	}

	r := &Repository{
		root:      wt.Filesystem.Root(),
		gitDir:    dotGit.Root(),
		commonDir: common,
	}

	logger.Debug().
		Str("root", r.root).
		Str("gitDir", r.gitDir).
		Str("commonDir", r.commonDir).
		Msg("Discovered repository")

	return r, nil
}

// commonDir follows the commondir file linked worktrees keep in their git
// directory. Main checkouts have none and share nothing.
func commonDir(dotGit billy.Filesystem) (dir string, err error) {
	f, err := dotGit.Open("commondir")
	if os.IsNotExist(err) {
		return dotGit.Root(), nil
	}
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(string(b))
	if path == "" {
		return dotGit.Root(), nil
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(dotGit.Root(), path)
	}
	return filepath.Clean(path), nil
}

// Root is the top level of the working tree
func (r *Repository) Root() string { return r.root }

// GitDir is the git directory of this working tree. For a linked worktree
// it lives under the common directory's worktrees/.
func (r *Repository) GitDir() string { return r.gitDir }

// CommonDir is the git directory shared by all worktrees of the repository
func (r *Repository) CommonDir() string { return r.commonDir }

// ExcludeFile is the repository-wide ignore list that is never committed.
// Every worktree reads it, so paths added here are hidden everywhere.
func (r *Repository) ExcludeFile() string {
	return filepath.Join(r.commonDir, "info", "exclude")
}

// IsLinkedWorktree reports whether this checkout was created with
// "git worktree add"
func (r *Repository) IsLinkedWorktree() bool {
	return r.gitDir != r.commonDir
}
