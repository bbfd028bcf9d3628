package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Create a git worktree and bring your untracked files along"
	MsgRootLong  = `graftree creates a git worktree for a branch and copies (or symlinks) the
untracked files your checkout needs to run, such as .env files, local config
and credentials, into it. Every grafted path is added to the repository's
.git/info/exclude so it never shows up as untracked in any worktree.

Which files are grafted comes from the include and exclude patterns in
~/.graftreerc, $XDG_CONFIG_HOME/graftree/config.toml and the checkout's own
.graftreerc, from GRAFTREE_* environment variables and from the flags below.`
	MsgRootUse     = "graftree <branch>"
	MsgRootExample = `  graftree feature/login
  graftree feature/login --symlink -i 'config/*.local.json'
  graftree hotfix -p ../hotfix-wt --no-track --dry-run`
	MsgConfigShort  = "Print the resolved settings as TOML"
	MsgConfigLong   = "Config loads every configuration layer the way a graft run would and prints the result, followed by the files that were considered."
	MsgVersionShort = "Print version information"

	// Status messages
	MsgDryRunNotice     = "DRY RUN - no worktree was created and nothing was written"
	MsgConfigLayer      = "# %-6s %s (%s)\n"
	MsgLayerLoaded      = "loaded"
	MsgLayerMissing     = "not found"
	MsgLayerInvalid     = "invalid: %v"
	MsgFailedPathsError = "%d of %d paths could not be grafted"

	// Error messages
	MsgErrWorkDir    = "failed to determine working directory: %w"
	MsgErrNoBranch   = "a branch name is required"
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrRenderer   = "failed to create output renderer: %w"
	MsgErrDumpConfig = "failed to render configuration: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDir     = "Run as if graftree was started in this directory"
	MsgFlagSymlink = "Create symbolic links instead of copying files"
	MsgFlagPath    = "Path where to create the worktree (default ../<branch>)"
	MsgFlagNoTrack = "Do not set up upstream tracking for the branch"
	MsgFlagForce   = "Force creation even if the branch is checked out elsewhere"
	MsgFlagInclude = "Additional path or glob pattern to graft (repeatable)"
	MsgFlagExclude = "Additional pattern to exclude (repeatable)"
	MsgFlagJobs    = "Number of paths to materialize concurrently"
	MsgFlagDryRun  = "Show what would be grafted without creating anything"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagNoColor = "Disable colored output"
)

// MsgUsageTemplate is the cobra usage template with bold section headers
const MsgUsageTemplate = `{{boldUpper "Usage"}}:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases"}}:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples"}}:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

{{boldUpper "Commands"}}:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags"}}:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags"}}:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`
