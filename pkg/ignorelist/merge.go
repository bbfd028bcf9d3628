package ignorelist

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/graftree/pkg/errors"
	"github.com/arthur-debert/graftree/pkg/logging"
	"github.com/arthur-debert/graftree/pkg/types"
)

// Marker is the comment line written above each appended block
const Marker = "# Added by git-graftree"

// Merge appends the patterns not yet present in ignoreFile. The parent
// directory is created when missing; a missing file counts as empty.
func Merge(fsys types.FS, patterns []string, ignoreFile string) (*types.MergeResult, error) {
	logger := logging.GetLogger("ignorelist")
	result := &types.MergeResult{File: ignoreFile}

	if err := fsys.MkdirAll(filepath.Dir(ignoreFile), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIgnoreList, "cannot create directory for %s", ignoreFile)
	}

	content, err := fsys.ReadFile(ignoreFile)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, errors.ErrIgnoreList, "cannot read %s", ignoreFile)
	}

	known := Parse(string(content))
	seen := make(map[string]bool, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		if known[p] {
			result.Existing = append(result.Existing, p)
		} else {
			result.Added = append(result.Added, p)
		}
	}

	if len(result.Added) == 0 {
		logger.Debug().Str("file", ignoreFile).Int("existing", len(result.Existing)).Msg("Ignore list already up to date")
		return result, nil
	}

	block := "\n" + Marker + "\n" + strings.Join(result.Added, "\n") + "\n"
	if err := appendTo(fsys, ignoreFile, block); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIgnoreList, "cannot append to %s", ignoreFile).
			WithDetail("patterns", result.Added)
	}
	result.Written = true

	logger.Info().
		Str("file", ignoreFile).
		Strs("added", result.Added).
		Int("existing", len(result.Existing)).
		Msg("Updated ignore list")

	return result, nil
}

// Parse returns the set of patterns listed in content. Blank lines and
// comments are not patterns.
func Parse(content string) map[string]bool {
	set := make(map[string]bool)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[line] = true
	}
	return set
}

func appendTo(fsys types.FS, name, data string) (err error) {
	f, err := fsys.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = f.Write([]byte(data))
	return err
}
