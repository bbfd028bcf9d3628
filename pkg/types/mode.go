package types

import "fmt"

// Mode selects how a path is materialized into the worktree
type Mode string

const (
	// ModeCopy copies file contents verbatim
	ModeCopy Mode = "copy"
	// ModeSymlink creates a symlink pointing at the absolute source path
	ModeSymlink Mode = "symlink"
)

// ParseMode validates a mode string
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeCopy, ModeSymlink:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q (expected %q or %q)", s, ModeCopy, ModeSymlink)
}

// UseSymlinks reports whether the mode links instead of copying
func (m Mode) UseSymlinks() bool {
	return m == ModeSymlink
}

func (m Mode) String() string {
	return string(m)
}
