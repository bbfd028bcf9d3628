package types

import (
	"context"
	"io"
	"io/fs"
)

// FS is the filesystem interface required for graftree operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	Open(name string) (fs.File, error)
	OpenFile(name string, flag int, perm fs.FileMode) (io.WriteCloser, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// DirFS returns a read-only view rooted at dir for glob expansion
	DirFS(dir string) fs.FS
}

// WorktreeProvider creates a git worktree and returns its absolute path
type WorktreeProvider interface {
	Create(ctx context.Context, opts WorktreeOptions) (string, error)
}
