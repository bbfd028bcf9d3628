package graft

import (
	"context"
	"time"

	"github.com/arthur-debert/graftree/pkg/errors"
	"github.com/arthur-debert/graftree/pkg/filesystem"
	"github.com/arthur-debert/graftree/pkg/ignorelist"
	"github.com/arthur-debert/graftree/pkg/logging"
	"github.com/arthur-debert/graftree/pkg/materialize"
	"github.com/arthur-debert/graftree/pkg/patterns"
	"github.com/arthur-debert/graftree/pkg/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Options holds the inputs of a pipeline run
type Options struct {
	SourceRoot string
	TargetRoot string
	Include    []string
	Exclude    []string
	Mode       types.Mode
	// Jobs above 1 materializes that many paths concurrently
	Jobs int
	// IgnoreFile receives every attempted path; empty skips the merge
	IgnoreFile string
	// DryRun resolves the path list without touching the target
	DryRun bool
	// FS defaults to the real filesystem
	FS types.FS
}

// Run executes the pipeline. Per-path failures are reported in the result
// and never stop the batch; pattern and ignore-list errors fail the run.
func Run(ctx context.Context, opts Options) (*types.GraftResult, error) {
	logger := logging.GetLogger("graft.pipeline")
	start := time.Now()

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	mode := opts.Mode
	if mode == "" {
		mode = types.ModeCopy
	}

	result := &types.GraftResult{
		SourceRoot:   opts.SourceRoot,
		WorktreePath: opts.TargetRoot,
		Mode:         mode,
		DryRun:       opts.DryRun,
	}

	paths, err := ResolvePaths(fsys, opts.Include, opts.Exclude, opts.SourceRoot)
	if err != nil {
		logRun(logger, opts, result, err)
		return nil, err
	}
	result.Paths = paths

	if opts.DryRun {
		result.Duration = time.Since(start)
		logRun(logger, opts, result, nil)
		return result, nil
	}

	results, err := materializeAll(ctx, materialize.New(fsys), paths, opts.SourceRoot, opts.TargetRoot, mode, opts.Jobs)
	result.Results = results
	if err != nil {
		logRun(logger, opts, result, err)
		return result, err
	}

	if opts.IgnoreFile != "" {
		merged, err := ignorelist.Merge(fsys, attempted(results), opts.IgnoreFile)
		if err != nil {
			result.Duration = time.Since(start)
			logRun(logger, opts, result, err)
			return result, err
		}
		result.Ignore = merged
	}

	result.Duration = time.Since(start)
	logRun(logger, opts, result, nil)
	return result, nil
}

// ResolvePaths expands include against sourceRoot on fsys and removes
// excluded paths, keeping expansion order. A nil fsys is the real
// filesystem.
func ResolvePaths(fsys types.FS, include, exclude []string, sourceRoot string) ([]string, error) {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	excluder, err := patterns.NewExcluder(exclude)
	if err != nil {
		return nil, err
	}
	expanded, err := patterns.ExpandFS(include, fsys.DirFS(sourceRoot))
	if err != nil {
		return nil, err
	}
	return excluder.Filter(expanded), nil
}

func materializeAll(ctx context.Context, m *materialize.Materializer, paths []string, sourceRoot, targetRoot string, mode types.Mode, jobs int) ([]types.MaterializeResult, error) {
	results := make([]types.MaterializeResult, len(paths))

	if jobs <= 1 {
		for i, rel := range paths {
			if err := ctx.Err(); err != nil {
				return results[:i], errors.Wrap(err, errors.ErrMaterialization, "materialization cancelled")
			}
			results[i] = m.Materialize(rel, sourceRoot, targetRoot, mode)
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, rel := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = m.Materialize(rel, sourceRoot, targetRoot, mode)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, errors.ErrMaterialization, "materialization cancelled")
	}
	return results, nil
}

// attempted lists the paths whose source existed, whatever happened next
func attempted(results []types.MaterializeResult) []string {
	var paths []string
	for _, r := range results {
		if r.Outcome != types.OutcomeSourceMissing {
			paths = append(paths, r.Path)
		}
	}
	return paths
}

// logRun logs the pipeline execution
func logRun(logger zerolog.Logger, opts Options, result *types.GraftResult, err error) {
	event := logger.Info()
	if err != nil {
		event = logger.Error().Err(err)
	}

	event.
		Str("source", opts.SourceRoot).
		Str("target", opts.TargetRoot).
		Str("mode", string(result.Mode)).
		Bool("dry_run", opts.DryRun).
		Int("paths", len(result.Paths))

	if len(result.Results) > 0 {
		event.
			Int("copied", result.Count(types.OutcomeCopied)).
			Int("linked", result.Count(types.OutcomeLinked)).
			Int("skipped_exists", result.Count(types.OutcomeAlreadyExists)).
			Int("skipped_missing", result.Count(types.OutcomeSourceMissing)).
			Int("failed", result.Count(types.OutcomeFailed))
	}
	if result.Ignore != nil {
		event.Int("ignore_added", len(result.Ignore.Added))
	}

	if err != nil {
		event.Msg("Pipeline failed")
	} else {
		event.Dur("duration", result.Duration).Msg("Pipeline completed")
	}
}
