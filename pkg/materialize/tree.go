package materialize

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/graftree/pkg/errors"
	"github.com/arthur-debert/graftree/pkg/types"
)

type dirPair struct {
	source string
	target string
}

// walkTree materializes every entry below source depth-first. The walk keeps
// its own stack so nesting depth is bounded only by the filesystem.
func (m *Materializer) walkTree(source, target string, mode types.Mode) (TreeStats, error) {
	var stats TreeStats
	stack := []dirPair{{source: source, target: target}}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		proceed, created, err := m.ensureDir(dir.target)
		if err != nil {
			return stats, err
		}
		if created {
			stats.DirsCreated++
		}
		if !proceed {
			stats.Skipped++
			continue
		}

		entries, err := m.fs.ReadDir(dir.source)
		if err != nil {
			return stats, errors.Wrapf(err, errors.ErrIOFailure, "cannot read directory %s", dir.source)
		}

		var subdirs []dirPair
		for _, entry := range entries {
			src := filepath.Join(dir.source, entry.Name())
			dst := filepath.Join(dir.target, entry.Name())

			if entry.IsDir() {
				subdirs = append(subdirs, dirPair{source: src, target: dst})
				continue
			}

			info, err := entry.Info()
			if err != nil {
				return stats, errors.Wrapf(err, errors.ErrIOFailure, "cannot stat %s", src)
			}
			if !info.Mode().IsRegular() && info.Mode()&fs.ModeSymlink == 0 {
				m.logger.Warn().Str("path", src).Str("type", info.Mode().Type().String()).Msg("Skipping special file")
				stats.Skipped++
				continue
			}

			written, err := m.materializeLeaf(src, dst, info, mode)
			if err != nil {
				return stats, err
			}
			if written {
				stats.Written++
			} else {
				stats.Skipped++
			}
		}

		// Reverse so subdirectories pop in directory order.
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	return stats, nil
}

// ensureDir makes sure target is a directory. proceed is false when
// something other than a directory already occupies target; it is left alone.
func (m *Materializer) ensureDir(target string) (proceed bool, created bool, err error) {
	info, err := m.fs.Lstat(target)
	if err == nil {
		if info.IsDir() {
			return true, false, nil
		}
		m.logger.Debug().Str("target", target).Msg("Destination exists and is not a directory, skipping subtree")
		return false, false, nil
	}
	if !os.IsNotExist(err) {
		return false, false, errors.Wrapf(err, errors.ErrIOFailure, "cannot stat %s", target)
	}

	if err := m.fs.MkdirAll(target, dirPerm); err != nil {
		return false, false, errors.Wrapf(err, errors.ErrIOFailure, "cannot create directory %s", target)
	}
	return true, true, nil
}
