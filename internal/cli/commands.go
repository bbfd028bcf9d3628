package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/graftree/internal/version"
	"github.com/arthur-debert/graftree/pkg/config"
	"github.com/arthur-debert/graftree/pkg/errors"
	"github.com/arthur-debert/graftree/pkg/git"
	"github.com/arthur-debert/graftree/pkg/graft"
	"github.com/arthur-debert/graftree/pkg/logging"
	"github.com/arthur-debert/graftree/pkg/types"
	"github.com/arthur-debert/graftree/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions are the flags shared by every command
type globalOptions struct {
	verbosity int
	dir       string
	symlink   bool
	include   []string
	exclude   []string
	jobs      int
	format    string
	noColor   bool
}

// graftOptions are the flags of the root command
type graftOptions struct {
	path    string
	noTrack bool
	force   bool
	dryRun  bool
}

// deps are the collaborators commands use; tests replace them
type deps struct {
	provider types.WorktreeProvider
	stdout   io.Writer
	stderr   io.Writer
	// homeDir and configHome override the user's config locations
	homeDir    string
	configHome string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(deps{
		provider: git.NewCLIWorktreeProvider(),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	})
}

func newRootCmd(d deps) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		global globalOptions
		opts   graftOptions
	)

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logging.Options{
				Verbosity: global.verbosity,
				Console:   d.stderr,
				NoColor:   global.noColor,
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return fmt.Errorf(MsgErrNoBranch)
			}
			return runGraft(cmd.Context(), d, global, opts, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&global.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVarP(&global.dir, "dir", "C", "", MsgFlagDir)
	pf.BoolVarP(&global.symlink, "symlink", "s", false, MsgFlagSymlink)
	pf.StringArrayVarP(&global.include, "include", "i", nil, MsgFlagInclude)
	pf.StringArrayVarP(&global.exclude, "exclude", "e", nil, MsgFlagExclude)
	pf.IntVarP(&global.jobs, "jobs", "j", 0, MsgFlagJobs)
	pf.StringVar(&global.format, "format", "auto", MsgFlagFormat)
	pf.BoolVar(&global.noColor, "no-color", false, MsgFlagNoColor)

	// Graft flags
	f := rootCmd.Flags()
	f.StringVarP(&opts.path, "path", "p", "", MsgFlagPath)
	f.BoolVar(&opts.noTrack, "no-track", false, MsgFlagNoTrack)
	f.BoolVarP(&opts.force, "force", "f", false, MsgFlagForce)
	f.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetOut(d.stdout)
	rootCmd.SetErr(d.stderr)

	rootCmd.AddCommand(newConfigCmd(d, &global))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// workDir resolves --dir, defaulting to the process working directory
func (g globalOptions) workDir() (string, error) {
	if g.dir != "" {
		return g.dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf(MsgErrWorkDir, err)
	}
	return wd, nil
}

func (g globalOptions) overrides() config.Overrides {
	return config.Overrides{
		Symlink: g.symlink,
		Include: g.include,
		Exclude: g.exclude,
		Jobs:    g.jobs,
	}
}

// sourceDir is the repository root containing dir, or dir itself outside
// a repository
func sourceDir(dir string) string {
	if repo, err := git.Discover(dir); err == nil {
		return repo.Root()
	}
	return dir
}

func (d deps) loadSettings(global globalOptions, dir string) (*config.Result, error) {
	result, err := config.Load(config.LoadOptions{
		SourceDir:  sourceDir(dir),
		HomeDir:    d.homeDir,
		ConfigHome: d.configHome,
		Overrides:  global.overrides(),
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return result, nil
}

func newRenderer(global globalOptions, w io.Writer) (ui.Renderer, error) {
	format, err := ui.Resolve(global.format, global.noColor)
	if err != nil {
		return nil, fmt.Errorf(MsgErrRenderer, err)
	}
	return ui.NewRenderer(format, w)
}

func runGraft(ctx context.Context, d deps, global globalOptions, opts graftOptions, branch string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	renderer, err := newRenderer(global, d.stdout)
	if err != nil {
		return err
	}

	dir, err := global.workDir()
	if err != nil {
		return err
	}

	loaded, err := d.loadSettings(global, dir)
	if err != nil {
		return err
	}

	result, err := graft.Graft(ctx, graft.Request{
		Branch:       branch,
		WorkDir:      dir,
		WorktreePath: opts.path,
		NoTrack:      opts.noTrack,
		Force:        opts.force,
		Settings:     loaded.Settings,
		DryRun:       opts.dryRun,
		Provider:     d.provider,
	})
	if result != nil {
		if rerr := renderer.RenderResult(result); rerr != nil {
			return rerr
		}
		if result.DryRun {
			_ = renderer.RenderMessage(MsgDryRunNotice)
		}
	}
	if err != nil {
		return err
	}

	if result.HasFailures() {
		return errors.Newf(errors.ErrMaterialization, MsgFailedPathsError, len(result.Failures()), len(result.Results))
	}
	return nil
}

// Execute runs the root command and returns the process exit status.
// Errors are printed to stderr.
func Execute() int {
	return execute(NewRootCmd(), os.Stderr)
}

func execute(cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
