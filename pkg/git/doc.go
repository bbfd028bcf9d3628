// Package git locates the repository graftree runs in and creates linked
// worktrees for it.
//
// Discovery is done in-process with go-git. Worktree creation shells out to
// the git binary, since "git worktree add" also checks out the branch and
// sets up tracking, which go-git does not offer for linked worktrees.
package git
