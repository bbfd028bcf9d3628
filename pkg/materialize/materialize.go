package materialize

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/graftree/pkg/errors"
	"github.com/arthur-debert/graftree/pkg/logging"
	"github.com/arthur-debert/graftree/pkg/types"
	"github.com/rs/zerolog"
)

const dirPerm = 0755

// TreeStats counts leaf entries handled while materializing a directory
type TreeStats struct {
	Written int
	Skipped int
	// DirsCreated counts directories created under the target, including the
	// target itself
	DirsCreated int
}

// Materializer copies or links paths from one root to another
type Materializer struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a Materializer operating on fs
func New(fs types.FS) *Materializer {
	return &Materializer{
		fs:     fs,
		logger: logging.GetLogger("materialize"),
	}
}

// Materialize reproduces rel, a slash-separated path relative to sourceRoot,
// at the same position under targetRoot. A missing source or an existing
// destination is reported as a skip, never as an error.
func (m *Materializer) Materialize(rel, sourceRoot, targetRoot string, mode types.Mode) types.MaterializeResult {
	result := types.MaterializeResult{Path: rel}

	source, err := filepath.Abs(filepath.Join(sourceRoot, filepath.FromSlash(rel)))
	if err != nil {
		return m.fail(result, errors.Wrapf(err, errors.ErrIOFailure, "cannot resolve source for %s", rel))
	}
	target := filepath.Join(targetRoot, filepath.FromSlash(rel))

	info, err := m.fs.Lstat(source)
	if err != nil {
		if os.IsNotExist(err) {
			m.logger.Debug().Str("path", rel).Msg("Source missing, skipping")
			result.Outcome = types.OutcomeSourceMissing
			return result
		}
		return m.fail(result, errors.Wrapf(err, errors.ErrIOFailure, "cannot stat %s", rel))
	}

	switch {
	case info.IsDir():
		stats, err := m.walkTree(source, target, mode)
		result.Written = stats.Written
		result.Skipped = stats.Skipped
		if err != nil {
			return m.fail(result, err)
		}
		if stats.Written == 0 && stats.DirsCreated == 0 {
			result.Outcome = types.OutcomeAlreadyExists
		} else {
			result.Outcome = successOutcome(mode)
		}

	case info.Mode().IsRegular() || info.Mode()&fs.ModeSymlink != 0:
		written, err := m.materializeLeaf(source, target, info, mode)
		if err != nil {
			return m.fail(result, err)
		}
		if written {
			result.Outcome = successOutcome(mode)
		} else {
			result.Outcome = types.OutcomeAlreadyExists
		}

	default:
		return m.fail(result, errors.Newf(errors.ErrUnsupportedFileType,
			"%s is neither a regular file, a directory nor a symlink (%s)", rel, info.Mode().Type()).
			WithDetail("path", rel))
	}

	m.logger.Debug().
		Str("path", rel).
		Str("outcome", string(result.Outcome)).
		Int("written", result.Written).
		Int("skipped", result.Skipped).
		Msg("Materialized path")

	return result
}

// MaterializeDirectory reproduces the tree at source under target. A missing
// source is a no-op; a source that is not a directory is an error.
func (m *Materializer) MaterializeDirectory(source, target string, mode types.Mode) (TreeStats, error) {
	info, err := m.fs.Lstat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return TreeStats{}, nil
		}
		return TreeStats{}, errors.Wrapf(err, errors.ErrIOFailure, "cannot stat %s", source)
	}
	if !info.IsDir() {
		return TreeStats{}, errors.Newf(errors.ErrNotADirectory, "%s is not a directory", source).
			WithDetail("path", source)
	}

	abs, err := filepath.Abs(source)
	if err != nil {
		return TreeStats{}, errors.Wrapf(err, errors.ErrIOFailure, "cannot resolve %s", source)
	}
	return m.walkTree(abs, target, mode)
}

func successOutcome(mode types.Mode) types.Outcome {
	if mode.UseSymlinks() {
		return types.OutcomeLinked
	}
	return types.OutcomeCopied
}

func (m *Materializer) fail(result types.MaterializeResult, err error) types.MaterializeResult {
	result.Outcome = types.OutcomeFailed
	result.Err = err
	m.logger.Warn().Err(err).Str("path", result.Path).Msg("Failed to materialize path")
	return result
}

// materializeLeaf creates target from a regular file or symlink at source.
// It returns false when target already exists.
func (m *Materializer) materializeLeaf(source, target string, info fs.FileInfo, mode types.Mode) (bool, error) {
	if _, err := m.fs.Lstat(target); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, errors.ErrIOFailure, "cannot stat %s", target)
	}

	if err := m.fs.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return false, errors.Wrapf(err, errors.ErrIOFailure, "cannot create directory for %s", target)
	}

	var err error
	switch {
	case mode.UseSymlinks():
		err = m.fs.Symlink(source, target)
	case info.Mode()&fs.ModeSymlink != 0:
		err = m.copySymlink(source, target)
	default:
		err = m.copyFile(source, target, info.Mode().Perm())
	}
	if err != nil {
		// Lost a race with another writer; the destination is still not ours to touch.
		if os.IsExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrIOFailure, "cannot materialize %s", target)
	}

	m.logger.Trace().Str("source", source).Str("target", target).Bool("symlink", mode.UseSymlinks()).Msg("Wrote entry")
	return true, nil
}

// copySymlink recreates the link at source with the same link text
func (m *Materializer) copySymlink(source, target string) error {
	link, err := m.fs.Readlink(source)
	if err != nil {
		return err
	}
	return m.fs.Symlink(link, target)
}

func (m *Materializer) copyFile(source, target string, perm fs.FileMode) (err error) {
	in, err := m.fs.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := m.fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
