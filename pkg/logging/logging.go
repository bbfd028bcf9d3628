package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// levels maps -v counts to zerolog levels; anything above the table is trace
var levels = []zerolog.Level{
	zerolog.WarnLevel,
	zerolog.InfoLevel,
	zerolog.DebugLevel,
}

// Options tune where log events go
type Options struct {
	Verbosity int
	// Console receives the human-readable stream; nil means stderr
	Console io.Writer
	NoColor bool
	// LogFile overrides the state-dir log file; "-" disables file logging
	LogFile string
}

// SetupLogger configures the global logger based on verbosity level.
// Events go to stderr and to graftree.log under the XDG state dir.
func SetupLogger(verbosity int) {
	Setup(Options{Verbosity: verbosity})
}

// Setup installs the global logger and returns the log file in use ("" when
// only the console is written).
func Setup(opts Options) string {
	zerolog.SetGlobalLevel(levelFor(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}}

	logFile := opts.LogFile
	if logFile == "" {
		logFile = getLogFilePath()
	}

	var fileErr error
	if logFile != "-" {
		var f *os.File
		if f, fileErr = openLogFile(logFile); fileErr == nil {
			writers = append(writers, f)
		}
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if opts.Verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logFile).Msg("Log file unavailable, logging to console only")
		logFile = ""
	}
	if logFile == "-" {
		logFile = ""
	}

	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", logFile).Msg("Logger initialized")
	return logFile
}

func levelFor(verbosity int) zerolog.Level {
	if verbosity < 0 {
		verbosity = 0
	}
	if verbosity < len(levels) {
		return levels[verbosity]
	}
	return zerolog.TraceLevel
}

// GetLogger returns a logger tagged with the component name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// getLogFilePath honours XDG_STATE_HOME at call time; xdg only reads it at init.
func getLogFilePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	if stateHome == "" {
		return "graftree.log"
	}
	return filepath.Join(stateHome, "graftree", "graftree.log")
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// LogOperationStart logs the start of an operation and returns a function
// that logs its completion with the elapsed time
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")
	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
